package contract

import (
	"context"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/repository/specification"
)

// ChoiceRepository stores A/B decisions. Insert-only, unique per
// (session, round); no update or delete operations exist.
type ChoiceRepository interface {
	Create(ctx context.Context, choice *entity.ConjointChoice) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConjointChoice, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConjointChoice, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
