package contract

import (
	"context"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.SurveySession) error
	Update(ctx context.Context, session *entity.SurveySession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveySession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveySession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
