package controller

import (
	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/pkg/serverutils"
	"conjoint-survey-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISurveyController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	GetState(ctx *fiber.Ctx) error
	GetQuestion(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
	SubmitResponse(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Abandon(ctx *fiber.Ctx) error
}

type surveyController struct {
	sessionService  service.ISessionService
	responseService service.IResponseService
}

func NewSurveyController(sessionService service.ISessionService, responseService service.IResponseService) ISurveyController {
	return &surveyController{
		sessionService:  sessionService,
		responseService: responseService,
	}
}

func (c *surveyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/survey/v1")
	h.Post("start", c.Start)
	h.Get(":id", c.GetState)
	h.Get(":id/question", c.GetQuestion)
	h.Post(":id/advance", c.Advance)
	h.Post(":id/response", c.SubmitResponse)
	h.Post(":id/complete", c.Complete)
	h.Post(":id/abandon", c.Abandon)
}

func (c *surveyController) Start(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}
	}

	res, err := c.sessionService.Start(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *surveyController) GetState(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.sessionService.GetState(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *surveyController) GetQuestion(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.sessionService.GetCurrentQuestion(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show question", res))
}

func (c *surveyController) Advance(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.sessionService.Advance(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success advance session", res))
}

func (c *surveyController) SubmitResponse(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitResponseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.responseService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save response", res))
}

func (c *surveyController) Complete(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.sessionService.Complete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success complete session", nil))
}

func (c *surveyController) Abandon(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.sessionService.Abandon(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success abandon session", nil))
}

func sessionIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid session id")
	}
	return id, nil
}
