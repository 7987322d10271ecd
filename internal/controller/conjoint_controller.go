package controller

import (
	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/pkg/serverutils"
	"conjoint-survey-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConjointController interface {
	RegisterRoutes(r fiber.Router)
	GetRoundCards(ctx *fiber.Ctx) error
	RecordChoice(ctx *fiber.Ctx) error
	GetResults(ctx *fiber.Ctx) error
}

type conjointController struct {
	conjointService service.IConjointService
}

func NewConjointController(conjointService service.IConjointService) IConjointController {
	return &conjointController{
		conjointService: conjointService,
	}
}

func (c *conjointController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conjoint/v1")
	h.Get(":id/round/:round/cards", c.GetRoundCards)
	h.Post(":id/choice", c.RecordChoice)
	h.Get(":id/results", c.GetResults)
}

func (c *conjointController) GetRoundCards(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}
	round, err := ctx.ParamsInt("round")
	if err != nil {
		return apperrors.Validation("invalid round number")
	}

	res, err := c.conjointService.GetRoundCards(ctx.Context(), id, round)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show round cards", res))
}

func (c *conjointController) RecordChoice(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.RecordChoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conjointService.RecordChoice(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success record choice", res))
}

func (c *conjointController) GetResults(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.conjointService.GetSessionResults(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show results", res))
}
