package controller

import (
	"strings"

	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/pkg/serverutils"
	"conjoint-survey-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	ExportData(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
}

type exportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) IExportController {
	return &exportController{
		exportService: exportService,
	}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("data", c.ExportData)
	h.Get("summary", c.Summary)
}

// ExportData streams the flattened dataset as a download. Format and session
// scope come from query parameters.
func (c *exportController) ExportData(ctx *fiber.Ctx) error {
	req := dto.ExportDataRequest{
		Format: ctx.Query("format", "csv"),
	}
	if raw := ctx.Query("session_ids"); raw != "" {
		req.SessionIds = strings.Split(raw, ",")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.exportService.ExportData(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, result.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="conjoint_export.`+result.FileExtension+`"`)
	return ctx.Send(result.Data)
}

func (c *exportController) Summary(ctx *fiber.Ctx) error {
	var sessionIds []string
	if raw := ctx.Query("session_ids"); raw != "" {
		sessionIds = strings.Split(raw, ",")
	}

	res, err := c.exportService.Summary(ctx.Context(), sessionIds)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show summary", res))
}
