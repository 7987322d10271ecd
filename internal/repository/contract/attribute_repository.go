package contract

import (
	"context"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/repository/specification"
)

type AttributeRepository interface {
	Create(ctx context.Context, attribute *entity.Attribute) error
	// UpdateLevels replaces an attribute's level set wholesale. Partial level
	// edits are not supported.
	UpdateLevels(ctx context.Context, key string, levels []entity.AttributeLevel) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Attribute, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Attribute, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
