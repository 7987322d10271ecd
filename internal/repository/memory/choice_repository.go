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

type ChoiceRepository struct {
	store *Store
}

func (r *ChoiceRepository) matches(c *entity.ConjointChoice, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.BySessionID:
			if c.SessionId != s.SessionID {
				return false
			}
		case specification.ByRoundNumber:
			if c.RoundNumber != s.Round {
				return false
			}
		}
	}
	return true
}

func (r *ChoiceRepository) Create(ctx context.Context, choice *entity.ConjointChoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.choices {
		if existing.SessionId == choice.SessionId && existing.RoundNumber == choice.RoundNumber {
			return apperrors.DuplicateWrite("choice already recorded for session %s round %d",
				choice.SessionId, choice.RoundNumber)
		}
	}
	if choice.Id == uuid.Nil {
		choice.Id = uuid.New()
	}
	if choice.Timestamp.IsZero() {
		choice.Timestamp = time.Now()
	}
	copied := *choice
	r.store.choices = append(r.store.choices, &copied)
	return nil
}

func (r *ChoiceRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConjointChoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.choices {
		if r.matches(c, specs) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ChoiceRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConjointChoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.ConjointChoice
	for _, c := range r.store.choices {
		if r.matches(c, specs) {
			copied := *c
			result = append(result, &copied)
		}
	}
	opts := parseOptions(specs)
	if opts.orderField == "round_number" {
		sort.SliceStable(result, func(i, j int) bool {
			if opts.orderDesc {
				return result[i].RoundNumber > result[j].RoundNumber
			}
			return result[i].RoundNumber < result[j].RoundNumber
		})
	}
	return paginate(result, opts), nil
}

func (r *ChoiceRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var count int64
	for _, c := range r.store.choices {
		if r.matches(c, specs) {
			count++
		}
	}
	return count, nil
}
