package memory

import (
	"context"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionRepository struct {
	store *Store
}

func (r *SessionRepository) matches(s *entity.SurveySession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.ByStatus:
			if s.Status != sp.Status {
				return false
			}
		}
	}
	return true
}

func (r *SessionRepository) Create(ctx context.Context, session *entity.SurveySession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	copied := *session
	r.store.sessions = append(r.store.sessions, &copied)
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, session *entity.SurveySession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.sessions {
		if existing.Id == session.Id {
			copied := *session
			r.store.sessions[i] = &copied
			return nil
		}
	}
	return apperrors.NotFound("session %s not found", session.Id)
}

func (r *SessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveySession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, s := range r.store.sessions {
		if r.matches(s, specs) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *SessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SurveySession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.SurveySession
	for _, s := range r.store.sessions {
		if r.matches(s, specs) {
			copied := *s
			result = append(result, &copied)
		}
	}
	return paginate(result, parseOptions(specs)), nil
}

func (r *SessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var count int64
	for _, s := range r.store.sessions {
		if r.matches(s, specs) {
			count++
		}
	}
	return count, nil
}
