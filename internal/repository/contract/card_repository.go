package contract

import (
	"context"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/repository/specification"
)

// CardRepository stores generated cards. Cards are insert-only; the store
// enforces uniqueness on (session, round, label).
type CardRepository interface {
	Create(ctx context.Context, card *entity.JobCard) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobCard, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobCard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
