package controller

import (
	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/pkg/serverutils"
	"conjoint-survey-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAttributeController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	UpdateLevels(ctx *fiber.Ctx) error
	Statistics(ctx *fiber.Ctx) error
}

type attributeController struct {
	attributeService service.IAttributeService
}

func NewAttributeController(attributeService service.IAttributeService) IAttributeController {
	return &attributeController{
		attributeService: attributeService,
	}
}

func (c *attributeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/attribute/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("statistics", c.Statistics)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put(":key/levels", c.UpdateLevels)
}

func (c *attributeController) GetAll(ctx *fiber.Ctx) error {
	attributes, err := c.attributeService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	res := make([]dto.AttributeResponse, len(attributes))
	for i, attribute := range attributes {
		levels := make([]dto.AttributeLevelPayload, len(attribute.Levels))
		for j, level := range attribute.Levels {
			levels[j] = dto.AttributeLevelPayload{LevelId: level.LevelId, DisplayText: level.DisplayText}
		}
		res[i] = dto.AttributeResponse{
			Id:          attribute.Id,
			Key:         attribute.Key,
			DisplayName: attribute.DisplayName,
			Levels:      levels,
			Position:    attribute.Position,
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show attributes", res))
}

func (c *attributeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAttributeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.attributeService.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create attribute", res))
}

func (c *attributeController) UpdateLevels(ctx *fiber.Ctx) error {
	var req dto.UpdateLevelsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Key = ctx.Params("key")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.attributeService.UpdateLevels(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update levels", nil))
}

func (c *attributeController) Statistics(ctx *fiber.Ctx) error {
	res, err := c.attributeService.Statistics(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show statistics", res))
}
