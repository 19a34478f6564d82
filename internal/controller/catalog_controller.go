package controller

import (
	"ai-roomplanner-be/internal/pkg/serverutils"
	"ai-roomplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetRooms(ctx *fiber.Ctx) error
	GetStyles(ctx *fiber.Ctx) error
	GetFamilySizes(ctx *fiber.Ctx) error
	GetProducts(ctx *fiber.Ctx) error
	Debug(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("/rooms", c.GetRooms)
	h.Get("/styles", c.GetStyles)
	h.Get("/family-sizes", c.GetFamilySizes)
	h.Get("/products", c.GetProducts)
	h.Get("/debug", c.Debug)
}

func (c *catalogController) GetRooms(ctx *fiber.Ctx) error {
	res := c.service.Rooms(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get rooms", res))
}

func (c *catalogController) GetStyles(ctx *fiber.Ctx) error {
	res := c.service.Styles(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get styles", res))
}

func (c *catalogController) GetFamilySizes(ctx *fiber.Ctx) error {
	res := c.service.FamilySizes(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get family sizes", res))
}

func (c *catalogController) GetProducts(ctx *fiber.Ctx) error {
	res := c.service.Products(ctx.Context(), service.ProductFilter{
		RoomId:   ctx.Query("room"),
		StyleId:  ctx.Query("style"),
		Category: ctx.Query("category"),
		MaxPrice: ctx.QueryInt("maxPrice"),
	})
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *catalogController) Debug(ctx *fiber.Ctx) error {
	res := c.service.Debug(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get catalog dump", res))
}
