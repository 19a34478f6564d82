package controller

import (
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/pkg/serverutils"
	"ai-roomplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlannerController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	DispatchAction(ctx *fiber.Ctx) error
	SeedLayout(ctx *fiber.Ctx) error
	RotateItem(ctx *fiber.Ctx) error
	ShareLink(ctx *fiber.Ctx) error
	RestoreSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type plannerController struct {
	service service.IPlannerService
}

func NewPlannerController(service service.IPlannerService) IPlannerController {
	return &plannerController{service: service}
}

func (c *plannerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/planner/v1")
	h.Post("/sessions", c.CreateSession)
	h.Post("/sessions/restore", c.RestoreSession)
	h.Get("/sessions/:id", c.ShowSession)
	h.Delete("/sessions/:id", c.DeleteSession)
	h.Post("/sessions/:id/actions", c.DispatchAction)
	h.Post("/sessions/:id/layout/seed", c.SeedLayout)
	h.Post("/sessions/:id/layout/:itemId/rotate", c.RotateItem)
	h.Get("/sessions/:id/share-link", c.ShareLink)
}

func (c *plannerController) CreateSession(ctx *fiber.Ctx) error {
	res := c.service.CreateSession(ctx.Context())
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *plannerController) ShowSession(ctx *fiber.Ctx) error {
	res := c.service.GetSession(ctx.Context(), ctx.Params("id"))
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *plannerController) DispatchAction(ctx *fiber.Ctx) error {
	var req dto.DispatchActionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.DispatchAction(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success dispatch action", res))
}

func (c *plannerController) SeedLayout(ctx *fiber.Ctx) error {
	res := c.service.SeedLayout(ctx.Context(), ctx.Params("id"))
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success seed layout", res))
}

func (c *plannerController) RotateItem(ctx *fiber.Ctx) error {
	res := c.service.RotateItem(ctx.Context(), ctx.Params("id"), ctx.Params("itemId"))
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rotate item", res))
}

func (c *plannerController) ShareLink(ctx *fiber.Ctx) error {
	res, err := c.service.ShareLink(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create share link", res))
}

func (c *plannerController) RestoreSession(ctx *fiber.Ctx) error {
	var req dto.RestoreSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.service.RestoreSession(ctx.Context(), req.Payload)
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success restore session", res))
}

func (c *plannerController) DeleteSession(ctx *fiber.Ctx) error {
	c.service.DeleteSession(ctx.Context(), ctx.Params("id"))
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}
