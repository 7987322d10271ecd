package service

import (
	"testing"

	"conjoint-survey-be/internal/constant"
	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSeededIdempotent(t *testing.T) {
	env := newTestEnv(5)

	require.NoError(t, env.attributes.EnsureSeeded(env.ctx()))
	require.NoError(t, env.attributes.EnsureSeeded(env.ctx()))

	attributes, err := env.attributes.GetAll(env.ctx())
	require.NoError(t, err)
	assert.Len(t, attributes, len(constant.DefaultJobAttributes))
}

func TestGetAllLazySeedsEmptyCatalog(t *testing.T) {
	env := newTestEnv(5)

	// No explicit seeding: the first read heals the empty catalog.
	attributes, err := env.attributes.GetAll(env.ctx())
	require.NoError(t, err)
	require.Len(t, attributes, len(constant.DefaultJobAttributes))

	for i, attribute := range attributes {
		assert.Equal(t, constant.DefaultJobAttributes[i].Key, attribute.Key, "catalog order preserved")
	}
}

func TestGetByKey(t *testing.T) {
	env := newTestEnv(5)
	require.NoError(t, env.attributes.EnsureSeeded(env.ctx()))

	attribute, err := env.attributes.GetByKey(env.ctx(), "company_size")
	require.NoError(t, err)
	assert.Equal(t, "Company size", attribute.DisplayName)
	assert.NotEmpty(t, attribute.Levels)

	_, err = env.attributes.GetByKey(env.ctx(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestAddAttribute(t *testing.T) {
	env := newTestEnv(5)
	require.NoError(t, env.attributes.EnsureSeeded(env.ctx()))

	created, err := env.attributes.Add(env.ctx(), &dto.CreateAttributeRequest{
		Key:         "commute",
		DisplayName: "Commute",
		Levels: []dto.AttributeLevelPayload{
			{LevelId: "short", DisplayText: "Under 20 minutes"},
			{LevelId: "long", DisplayText: "Over an hour"},
		},
		Position: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	attribute, err := env.attributes.GetByKey(env.ctx(), "commute")
	require.NoError(t, err)
	assert.Equal(t, "Under 20 minutes", attribute.GetLevelText("short"))
}

func TestAddAttributeDuplicateKey(t *testing.T) {
	env := newTestEnv(5)
	require.NoError(t, env.attributes.EnsureSeeded(env.ctx()))

	_, err := env.attributes.Add(env.ctx(), &dto.CreateAttributeRequest{
		Key:         "company_size",
		DisplayName: "Duplicate",
		Levels: []dto.AttributeLevelPayload{
			{LevelId: "x", DisplayText: "X"},
			{LevelId: "y", DisplayText: "Y"},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDuplicateWrite))
}

func TestUpdateLevels(t *testing.T) {
	env := newTestEnv(5)
	require.NoError(t, env.attributes.EnsureSeeded(env.ctx()))

	err := env.attributes.UpdateLevels(env.ctx(), &dto.UpdateLevelsRequest{
		Key: "company_size",
		Levels: []dto.AttributeLevelPayload{
			{LevelId: "tiny", DisplayText: "Under 10"},
			{LevelId: "huge", DisplayText: "Over 10000"},
		},
	})
	require.NoError(t, err)

	attribute, err := env.attributes.GetByKey(env.ctx(), "company_size")
	require.NoError(t, err)
	require.Len(t, attribute.Levels, 2)
	assert.Equal(t, []string{"tiny", "huge"}, attribute.LevelIds())
}

func TestUpdateLevelsUnknownKey(t *testing.T) {
	env := newTestEnv(5)
	require.NoError(t, env.attributes.EnsureSeeded(env.ctx()))

	err := env.attributes.UpdateLevels(env.ctx(), &dto.UpdateLevelsRequest{
		Key: "missing",
		Levels: []dto.AttributeLevelPayload{
			{LevelId: "x", DisplayText: "X"},
			{LevelId: "y", DisplayText: "Y"},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestStatistics(t *testing.T) {
	env := newTestEnv(5)
	require.NoError(t, env.attributes.EnsureSeeded(env.ctx()))

	stats, err := env.attributes.Statistics(env.ctx())
	require.NoError(t, err)

	assert.Equal(t, len(constant.DefaultJobAttributes), stats.TotalAttributes)

	wantLevels := 0
	wantCombinations := 1
	for _, seed := range constant.DefaultJobAttributes {
		wantLevels += len(seed.Levels)
		wantCombinations *= len(seed.Levels)
	}
	assert.Equal(t, wantLevels, stats.TotalLevels)
	assert.Equal(t, wantCombinations, stats.TotalCombinations)
}
