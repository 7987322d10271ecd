package contract

import (
	"context"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/repository/specification"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entity.Participant) error
	Update(ctx context.Context, participant *entity.Participant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Participant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Participant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
