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

type ChoiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewChoiceRepository(db *gorm.DB) contract.ChoiceRepository {
	return &ChoiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *ChoiceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChoiceRepositoryImpl) Create(ctx context.Context, choice *entity.ConjointChoice) error {
	m := r.mapper.ChoiceToModel(choice)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		// The unique (session_id, round_number) index settles the
		// check-then-insert race between concurrent submissions.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.DuplicateWrite("choice already recorded for session %s round %d",
				choice.SessionId, choice.RoundNumber)
		}
		return err
	}
	*choice = *r.mapper.ChoiceToEntity(m)
	return nil
}

func (r *ChoiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConjointChoice, error) {
	var m model.ConjointChoice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChoiceToEntity(&m), nil
}

func (r *ChoiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConjointChoice, error) {
	var models []*model.ConjointChoice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ConjointChoice, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChoiceToEntity(m)
	}
	return entities, nil
}

func (r *ChoiceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ConjointChoice{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
