package service

import (
	"context"
	"time"

	"conjoint-survey-be/internal/constant"
	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/pkg/logger"
	"conjoint-survey-be/internal/repository/specification"
	"conjoint-survey-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAttributeService interface {
	EnsureSeeded(ctx context.Context) error
	GetAll(ctx context.Context) ([]*entity.Attribute, error)
	GetByKey(ctx context.Context, key string) (*entity.Attribute, error)
	Add(ctx context.Context, req *dto.CreateAttributeRequest) (*dto.CreateAttributeResponse, error)
	UpdateLevels(ctx context.Context, req *dto.UpdateLevelsRequest) error
	Statistics(ctx context.Context) (*dto.AttributeStatisticsResponse, error)
}

type attributeService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAttributeService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAttributeService {
	return &attributeService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// EnsureSeeded inserts every default catalog attribute whose key is absent.
// Safe to call on every startup; concurrent seeding races resolve through the
// unique key index.
func (s *attributeService) EnsureSeeded(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AttributeRepository()

	for position, seed := range constant.DefaultJobAttributes {
		existing, err := repo.FindOne(ctx, specification.ByAttributeKey{Key: seed.Key})
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		levels := make([]entity.AttributeLevel, len(seed.Levels))
		for i, level := range seed.Levels {
			levels[i] = entity.AttributeLevel{LevelId: level.LevelId, DisplayText: level.DisplayText}
		}
		err = repo.Create(ctx, &entity.Attribute{
			Id:          uuid.New(),
			Key:         seed.Key,
			DisplayName: seed.DisplayName,
			Levels:      levels,
			Position:    position,
			CreatedAt:   time.Now(),
		})
		if apperrors.IsKind(err, apperrors.KindDuplicateWrite) {
			// Another instance seeded this key first.
			continue
		}
		if err != nil {
			return err
		}
		s.logger.Info("ATTRIBUTE", "Seeded default attribute", map[string]interface{}{"key": seed.Key})
	}
	return nil
}

// GetAll returns the catalog in display order. An empty catalog triggers one
// lazy re-seed before giving up, so a wiped store heals on first read.
func (s *attributeService) GetAll(ctx context.Context) ([]*entity.Attribute, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AttributeRepository()

	attributes, err := repo.FindAll(ctx, specification.OrderBy{Field: "position"})
	if err != nil {
		return nil, err
	}
	if len(attributes) > 0 {
		return attributes, nil
	}

	s.logger.Warn("ATTRIBUTE", "Catalog empty, re-seeding defaults", nil)
	if err := s.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	return repo.FindAll(ctx, specification.OrderBy{Field: "position"})
}

func (s *attributeService) GetByKey(ctx context.Context, key string) (*entity.Attribute, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	attribute, err := uow.AttributeRepository().FindOne(ctx, specification.ByAttributeKey{Key: key})
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, apperrors.NotFound("attribute %s not found", key)
	}
	return attribute, nil
}

func (s *attributeService) Add(ctx context.Context, req *dto.CreateAttributeRequest) (*dto.CreateAttributeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AttributeRepository()

	existing, err := repo.FindOne(ctx, specification.ByAttributeKey{Key: req.Key})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.DuplicateWrite("attribute %s already exists", req.Key)
	}

	attribute := &entity.Attribute{
		Id:          uuid.New(),
		Key:         req.Key,
		DisplayName: req.DisplayName,
		Levels:      levelsFromPayload(req.Levels),
		Position:    req.Position,
		CreatedAt:   time.Now(),
	}
	if err := repo.Create(ctx, attribute); err != nil {
		return nil, err
	}

	s.logger.Info("ATTRIBUTE", "Added attribute", map[string]interface{}{"key": req.Key})
	return &dto.CreateAttributeResponse{Id: attribute.Id}, nil
}

// UpdateLevels replaces an attribute's level set wholesale. Changing levels
// mid-experiment invalidates comparability of cards generated before and
// after, hence the warning log.
func (s *attributeService) UpdateLevels(ctx context.Context, req *dto.UpdateLevelsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.AttributeRepository().UpdateLevels(ctx, req.Key, levelsFromPayload(req.Levels))
	if err != nil {
		return err
	}

	s.logger.Warn("ATTRIBUTE", "Levels replaced, previously generated cards are no longer comparable", map[string]interface{}{
		"key":    req.Key,
		"levels": len(req.Levels),
	})
	return nil
}

func (s *attributeService) Statistics(ctx context.Context) (*dto.AttributeStatisticsResponse, error) {
	attributes, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.AttributeStatisticsResponse{
		TotalAttributes:   len(attributes),
		TotalCombinations: 1,
	}
	for _, attribute := range attributes {
		stats.TotalLevels += len(attribute.Levels)
		stats.TotalCombinations *= len(attribute.Levels)
	}
	if len(attributes) == 0 {
		stats.TotalCombinations = 0
	}
	return stats, nil
}

func levelsFromPayload(payload []dto.AttributeLevelPayload) []entity.AttributeLevel {
	levels := make([]entity.AttributeLevel, len(payload))
	for i, level := range payload {
		levels[i] = entity.AttributeLevel{LevelId: level.LevelId, DisplayText: level.DisplayText}
	}
	return levels
}
