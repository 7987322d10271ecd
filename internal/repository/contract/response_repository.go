package contract

import (
	"context"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/repository/specification"
)

// ResponseRepository stores questionnaire answers. Insert-only, unique per
// (session, question).
type ResponseRepository interface {
	Create(ctx context.Context, response *entity.SurveyResponse) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveyResponse, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
