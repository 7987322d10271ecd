package card

import (
	"context"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/repository/contract"
	"conjoint-survey-be/pkg/conjoint/strategy"

	"github.com/google/uuid"
)

// Factory generates A/B card pairs for a round using a randomization
// strategy and persists them. One factory serves one attribute catalog
// snapshot; rebuild it when the catalog changes.
type Factory struct {
	strategy strategy.Strategy
	builder  *Builder
}

func NewFactory(s strategy.Strategy, attributes []*entity.Attribute) *Factory {
	return &Factory{
		strategy: s,
		builder:  NewBuilder(attributes),
	}
}

// CreatePair generates both cards for a round without persisting them.
// Identical (sessionSeed, roundNumber) inputs produce identical cards apart
// from the generated ids and timestamps.
func (f *Factory) CreatePair(sessionId uuid.UUID, roundNumber int, sessionSeed string) (*entity.JobCard, *entity.JobCard) {
	assignmentA, assignmentB := f.strategy.GeneratePair(f.builder.attributes, roundNumber, sessionSeed)
	cardA := f.builder.Build(sessionId, entity.CardLabelA, roundNumber, assignmentA)
	cardB := f.builder.Build(sessionId, entity.CardLabelB, roundNumber, assignmentB)
	return cardA, cardB
}

// CreateAndSavePair generates and stores both cards. The store's unique
// index on (session, round, label) rejects a second generation of the same
// round, so concurrent callers cannot double-write a pair.
func (f *Factory) CreateAndSavePair(ctx context.Context, repo contract.CardRepository, sessionId uuid.UUID, roundNumber int, sessionSeed string) (*entity.JobCard, *entity.JobCard, error) {
	cardA, cardB := f.CreatePair(sessionId, roundNumber, sessionSeed)
	if err := repo.Create(ctx, cardA); err != nil {
		return nil, nil, err
	}
	if err := repo.Create(ctx, cardB); err != nil {
		return nil, nil, err
	}
	return cardA, cardB, nil
}
