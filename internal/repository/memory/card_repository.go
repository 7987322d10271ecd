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

type CardRepository struct {
	store *Store
}

func (r *CardRepository) matches(c *entity.JobCard, specs []specification.Specification) bool {
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
		case specification.ByCardLabel:
			if c.CardLabel != s.Label {
				return false
			}
		}
	}
	return true
}

func (r *CardRepository) Create(ctx context.Context, card *entity.JobCard) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.cards {
		if existing.SessionId == card.SessionId &&
			existing.RoundNumber == card.RoundNumber &&
			existing.CardLabel == card.CardLabel {
			return apperrors.DuplicateWrite("card %s already exists for session %s round %d",
				card.CardLabel, card.SessionId, card.RoundNumber)
		}
	}
	if card.Id == uuid.Nil {
		card.Id = uuid.New()
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}
	copied := *card
	r.store.cards = append(r.store.cards, &copied)
	return nil
}

func (r *CardRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobCard, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.cards {
		if r.matches(c, specs) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *CardRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobCard, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []*entity.JobCard
	for _, c := range r.store.cards {
		if r.matches(c, specs) {
			copied := *c
			result = append(result, &copied)
		}
	}
	opts := parseOptions(specs)
	if opts.orderField == "round_number" {
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].RoundNumber == result[j].RoundNumber {
				return result[i].CardLabel < result[j].CardLabel
			}
			if opts.orderDesc {
				return result[i].RoundNumber > result[j].RoundNumber
			}
			return result[i].RoundNumber < result[j].RoundNumber
		})
	}
	return paginate(result, opts), nil
}

func (r *CardRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var count int64
	for _, c := range r.store.cards {
		if r.matches(c, specs) {
			count++
		}
	}
	return count, nil
}
