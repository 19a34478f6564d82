package controller

import (
	"ai-roomplanner-be/internal/dto"
	"ai-roomplanner-be/internal/pkg/serverutils"
	"ai-roomplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConsultationController interface {
	RegisterRoutes(r fiber.Router)
	Book(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
}

type consultationController struct {
	service service.IConsultationService
}

func NewConsultationController(service service.IConsultationService) IConsultationController {
	return &consultationController{service: service}
}

func (c *consultationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/consultation/v1")
	h.Post("/sessions/:id/book", c.Book)
	h.Post("/sessions/:id/checkout", c.Checkout)
}

func (c *consultationController) Book(ctx *fiber.Ctx) error {
	var req dto.BookConsultationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Book(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success book consultation", res))
}

func (c *consultationController) Checkout(ctx *fiber.Ctx) error {
	res := c.service.Checkout(ctx.Context(), ctx.Params("id"))
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success checkout", res))
}
