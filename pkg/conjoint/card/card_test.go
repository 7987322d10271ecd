package card

import (
	"context"
	"testing"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/repository/memory"
	"conjoint-survey-be/pkg/conjoint/strategy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []*entity.Attribute {
	return []*entity.Attribute{
		{
			Key:         "compensation",
			DisplayName: "Compensation",
			Position:    1,
			Levels: []entity.AttributeLevel{
				{LevelId: "market", DisplayText: "Market-aligned salary"},
				{LevelId: "above", DisplayText: "Above market salary"},
			},
		},
		{
			Key:         "location",
			DisplayName: "Location",
			Position:    2,
			Levels: []entity.AttributeLevel{
				{LevelId: "remote", DisplayText: "Fully remote"},
				{LevelId: "office", DisplayText: "In office"},
			},
		},
	}
}

func TestBuilderRenderText(t *testing.T) {
	b := NewBuilder(catalog())

	text := b.RenderText(strategy.Assignment{
		"compensation": "above",
		"location":     "remote",
	})

	assert.Equal(t, "**Compensation**: Above market salary\n**Location**: Fully remote", text)
}

func TestBuilderRenderTextUnknownLevelFallsBack(t *testing.T) {
	b := NewBuilder(catalog())

	text := b.RenderText(strategy.Assignment{
		"compensation": "mystery",
		"location":     "office",
	})

	assert.Equal(t, "**Compensation**: mystery\n**Location**: In office", text)
}

func TestBuilderRenderTextSkipsMissingAttributes(t *testing.T) {
	b := NewBuilder(catalog())

	text := b.RenderText(strategy.Assignment{"location": "office"})

	assert.Equal(t, "**Location**: In office", text)
}

func TestFactoryCreatePairIsDeterministic(t *testing.T) {
	f := NewFactory(strategy.NewBalancedRandom(2), catalog())
	sessionId := uuid.New()

	a1, b1 := f.CreatePair(sessionId, 1, "abc")
	a2, b2 := f.CreatePair(sessionId, 1, "abc")

	assert.Equal(t, a1.Attributes, a2.Attributes)
	assert.Equal(t, b1.Attributes, b2.Attributes)
	assert.Equal(t, a1.RenderedText, a2.RenderedText)
	assert.Equal(t, entity.CardLabelA, a1.CardLabel)
	assert.Equal(t, entity.CardLabelB, b1.CardLabel)
	assert.Equal(t, 1, a1.RoundNumber)
	assert.Equal(t, sessionId, a1.SessionId)
}

func TestFactoryCreateAndSavePair(t *testing.T) {
	store := memory.NewStore()
	uow := store.Factory().NewUnitOfWork(context.Background())
	repo := uow.CardRepository()

	f := NewFactory(strategy.NewSeededRandom(), catalog())
	sessionId := uuid.New()

	cardA, cardB, err := f.CreateAndSavePair(context.Background(), repo, sessionId, 1, "abc")
	require.NoError(t, err)
	require.NotNil(t, cardA)
	require.NotNil(t, cardB)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFactoryCreateAndSavePairRejectsDuplicateRound(t *testing.T) {
	store := memory.NewStore()
	uow := store.Factory().NewUnitOfWork(context.Background())
	repo := uow.CardRepository()

	f := NewFactory(strategy.NewSeededRandom(), catalog())
	sessionId := uuid.New()

	_, _, err := f.CreateAndSavePair(context.Background(), repo, sessionId, 1, "abc")
	require.NoError(t, err)

	_, _, err = f.CreateAndSavePair(context.Background(), repo, sessionId, 1, "abc")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDuplicateWrite))
}
