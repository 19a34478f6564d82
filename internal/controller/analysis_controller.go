package controller

import (
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/pkg/serverutils"
	"ai-roomplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	SubmitInspiration(ctx *fiber.Ctx) error
	RemoveInspiration(ctx *fiber.Ctx) error
	Result(ctx *fiber.Ctx) error
}

type analysisController struct {
	service service.IAnalysisService
}

func NewAnalysisController(service service.IAnalysisService) IAnalysisController {
	return &analysisController{service: service}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analysis/v1")
	h.Post("/sessions/:id/inspiration", c.SubmitInspiration)
	h.Delete("/sessions/:id/inspiration", c.RemoveInspiration)
	h.Get("/sessions/:id/result", c.Result)
}

func (c *analysisController) SubmitInspiration(ctx *fiber.Ctx) error {
	var req dto.SubmitInspirationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.service.SubmitInspiration(ctx.Context(), ctx.Params("id"), &req)
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Analysis started", res))
}

func (c *analysisController) RemoveInspiration(ctx *fiber.Ctx) error {
	res := c.service.RemoveInspiration(ctx.Context(), ctx.Params("id"))
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove inspiration", res))
}

// Result reports 202 while the analysis is still running so clients can poll.
func (c *analysisController) Result(ctx *fiber.Ctx) error {
	res := c.service.Result(ctx.Context(), ctx.Params("id"))
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	if res.IsAnalyzing {
		return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Analysis in progress", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get analysis result", res))
}
