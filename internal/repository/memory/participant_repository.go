package memory

import (
	"context"
	"time"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ParticipantRepository struct {
	store *Store
}

func (r *ParticipantRepository) matches(p *entity.Participant, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if p.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entity.Participant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.participants {
		if existing.Email == participant.Email {
			return apperrors.DuplicateWrite("participant %q already exists", participant.Email)
		}
	}
	if participant.Id == uuid.Nil {
		participant.Id = uuid.New()
	}
	if participant.CreatedAt.IsZero() {
		participant.CreatedAt = time.Now()
	}
	copied := *participant
	r.store.participants = append(r.store.participants, &copied)
	return nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant *entity.Participant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.participants {
		if existing.Id == participant.Id {
			copied := *participant
			r.store.participants[i] = &copied
			return nil
		}
	}
	return apperrors.NotFound("participant %s not found", participant.Id)
}

func (r *ParticipantRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.participants {
		if r.matches(p, specs) {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.Participant
	for _, p := range r.store.participants {
		if r.matches(p, specs) {
			copied := *p
			result = append(result, &copied)
		}
	}
	return paginate(result, parseOptions(specs)), nil
}

func (r *ParticipantRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var count int64
	for _, p := range r.store.participants {
		if r.matches(p, specs) {
			count++
		}
	}
	return count, nil
}
