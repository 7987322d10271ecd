package memory

import (
	"context"
	"sort"
	"time"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ResponseRepository struct {
	store *Store
}

func (r *ResponseRepository) matches(res *entity.SurveyResponse, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if res.Id != s.ID {
				return false
			}
		case specification.BySessionID:
			if res.SessionId != s.SessionID {
				return false
			}
		case specification.ByQuestionID:
			if res.QuestionId != s.QuestionID {
				return false
			}
		}
	}
	return true
}

func (r *ResponseRepository) Create(ctx context.Context, response *entity.SurveyResponse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.responses {
		if existing.SessionId == response.SessionId && existing.QuestionId == response.QuestionId {
			return apperrors.DuplicateWrite("response already recorded for session %s question %s",
				response.SessionId, response.QuestionId)
		}
	}
	if response.Id == uuid.Nil {
		response.Id = uuid.New()
	}
	if response.Timestamp.IsZero() {
		response.Timestamp = time.Now()
	}
	copied := *response
	r.store.responses = append(r.store.responses, &copied)
	return nil
}

func (r *ResponseRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, res := range r.store.responses {
		if r.matches(res, specs) {
			copied := *res
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ResponseRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveyResponse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.SurveyResponse
	for _, res := range r.store.responses {
		if r.matches(res, specs) {
			copied := *res
			result = append(result, &copied)
		}
	}
	opts := parseOptions(specs)
	if opts.orderField == "timestamp" {
		sort.SliceStable(result, func(i, j int) bool {
			if opts.orderDesc {
				return result[i].Timestamp.After(result[j].Timestamp)
			}
			return result[i].Timestamp.Before(result[j].Timestamp)
		})
	}
	return paginate(result, opts), nil
}

func (r *ResponseRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var count int64
	for _, res := range r.store.responses {
		if r.matches(res, specs) {
			count++
		}
	}
	return count, nil
}
