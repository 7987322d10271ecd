package bootstrap

import (
	"context"
	"log"

	"conjoint-survey-be/internal/config"
	"conjoint-survey-be/internal/controller"
	"conjoint-survey-be/internal/pkg/logger"
	"conjoint-survey-be/internal/repository/unitofwork"
	"conjoint-survey-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SurveyController    controller.ISurveyController
	ConjointController  controller.IConjointController
	AttributeController controller.IAttributeController
	ExportController    controller.IExportController

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Services
	attributeService := service.NewAttributeService(uowFactory, sysLogger)
	sessionService := service.NewSessionService(uowFactory, cfg, sysLogger)
	responseService := service.NewResponseService(uowFactory, sessionService, sysLogger)
	conjointService := service.NewConjointService(uowFactory, attributeService, cfg, sysLogger)
	exportService := service.NewExportService(uowFactory, sysLogger)

	// 3. Startup tasks
	if err := attributeService.EnsureSeeded(context.Background()); err != nil {
		// GetAll re-seeds lazily, so an unreachable store at boot is not fatal.
		log.Printf("Warning: could not seed attribute catalog: %v", err)
	}

	// 4. Controllers
	return &Container{
		SurveyController:    controller.NewSurveyController(sessionService, responseService),
		ConjointController:  controller.NewConjointController(conjointService),
		AttributeController: controller.NewAttributeController(attributeService),
		ExportController:    controller.NewExportController(exportService),
		Logger:              sysLogger,
	}
}
