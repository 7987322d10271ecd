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

type CardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewCardRepository(db *gorm.DB) contract.CardRepository {
	return &CardRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *CardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CardRepositoryImpl) Create(ctx context.Context, card *entity.JobCard) error {
	m := r.mapper.CardToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.DuplicateWrite("card %s already exists for session %s round %d",
				card.CardLabel, card.SessionId, card.RoundNumber)
		}
		return err
	}
	*card = *r.mapper.CardToEntity(m)
	return nil
}

func (r *CardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobCard, error) {
	var m model.JobCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CardToEntity(&m), nil
}

func (r *CardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobCard, error) {
	var models []*model.JobCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.JobCard, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CardToEntity(m)
	}
	return entities, nil
}

func (r *CardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.JobCard{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
