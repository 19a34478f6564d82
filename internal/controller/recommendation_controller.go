package controller

import (
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/pkg/serverutils"
	"ai-roomplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	GenerateForSession(ctx *fiber.Ctx) error
	Alternatives(ctx *fiber.Ctx) error
}

type recommendationController struct {
	service service.IRecommendationService
}

func NewRecommendationController(service service.IRecommendationService) IRecommendationController {
	return &recommendationController{service: service}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recommendation/v1")
	h.Post("/generate", c.Generate)
	h.Post("/sessions/:id/generate", c.GenerateForSession)
	h.Get("/alternatives/:productId", c.Alternatives)
}

func (c *recommendationController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateRecommendationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.service.Generate(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success generate recommendations", res))
}

func (c *recommendationController) GenerateForSession(ctx *fiber.Ctx) error {
	res := c.service.GenerateForSession(ctx.Context(), ctx.Params("id"))
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate recommendations", res))
}

func (c *recommendationController) Alternatives(ctx *fiber.Ctx) error {
	budget := ctx.QueryFloat("budget")
	if budget <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameter budget must be positive")
	}

	res := c.service.Alternatives(ctx.Context(), ctx.Params("productId"), budget)
	return ctx.JSON(serverutils.SuccessResponse("Success get alternatives", res))
}
