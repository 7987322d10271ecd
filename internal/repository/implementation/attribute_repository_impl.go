package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/mapper"
	"conjoint-survey-be/internal/model"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/repository/contract"
	"conjoint-survey-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AttributeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewAttributeRepository(db *gorm.DB) contract.AttributeRepository {
	return &AttributeRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *AttributeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AttributeRepositoryImpl) Create(ctx context.Context, attribute *entity.Attribute) error {
	m := r.mapper.AttributeToModel(attribute)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.DuplicateWrite("attribute %q already exists", attribute.Key)
		}
		return err
	}
	*attribute = *r.mapper.AttributeToEntity(m)
	return nil
}

func (r *AttributeRepositoryImpl) UpdateLevels(ctx context.Context, key string, levels []entity.AttributeLevel) error {
	raw, err := json.Marshal(levels)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&model.JobAttribute{}).
		Where("key = ?", key).
		Update("levels", raw)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("attribute %q not found", key)
	}
	return nil
}

func (r *AttributeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Attribute, error) {
	var m model.JobAttribute
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AttributeToEntity(&m), nil
}

func (r *AttributeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Attribute, error) {
	var models []*model.JobAttribute
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Attribute, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AttributeToEntity(m)
	}
	return entities, nil
}

func (r *AttributeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.JobAttribute{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
