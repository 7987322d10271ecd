package implementation

import (
	"context"
	"errors"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/mapper"
	"conjoint-survey-be/internal/model"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/repository/contract"
	"conjoint-survey-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ResponseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewResponseRepository(db *gorm.DB) contract.ResponseRepository {
	return &ResponseRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *ResponseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ResponseRepositoryImpl) Create(ctx context.Context, response *entity.SurveyResponse) error {
	m := r.mapper.ResponseToModel(response)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.DuplicateWrite("response already recorded for session %s question %s",
				response.SessionId, response.QuestionId)
		}
		return err
	}
	*response = *r.mapper.ResponseToEntity(m)
	return nil
}

func (r *ResponseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error) {
	var m model.SurveyResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ResponseToEntity(&m), nil
}

func (r *ResponseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveyResponse, error) {
	var models []*model.SurveyResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SurveyResponse, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ResponseToEntity(m)
	}
	return entities, nil
}

func (r *ResponseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SurveyResponse{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
