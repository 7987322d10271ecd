package service

import (
	"context"

	"conjoint-survey-be/internal/config"
	"conjoint-survey-be/internal/pkg/logger"
	"conjoint-survey-be/internal/repository/memory"
	"conjoint-survey-be/internal/repository/unitofwork"
)

type testEnv struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
	attributes IAttributeService
	sessions   ISessionService
	responses  IResponseService
	conjoint   IConjointService
	exports    IExportService
}

func newTestEnv(rounds int) *testEnv {
	cfg := &config.Config{
		Survey: config.SurveyConfig{
			ConjointRounds: rounds,
			StrategyName:   "balanced",
			MinDifferences: 2,
		},
		Branding: config.BrandingConfig{
			AssistantName: "Jill",
			CompanyName:   "Veda-",
		},
	}

	store := memory.NewStore()
	factory := store.Factory()
	log := logger.NopLogger{}

	attributes := NewAttributeService(factory, log)
	sessions := NewSessionService(factory, cfg, log)
	return &testEnv{
		uowFactory: factory,
		cfg:        cfg,
		attributes: attributes,
		sessions:   sessions,
		responses:  NewResponseService(factory, sessions, log),
		conjoint:   NewConjointService(factory, attributes, cfg, log),
		exports:    NewExportService(factory, log),
	}
}

func (e *testEnv) ctx() context.Context {
	return context.Background()
}
