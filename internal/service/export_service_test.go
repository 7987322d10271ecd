package service

import (
	"encoding/csv"
	"strings"
	"testing"

	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedChoices walks a session through the first n conjoint rounds, fetching
// cards and recording a choice for each.
func seedChoices(t *testing.T, env *testEnv, sessionId uuid.UUID, n int) {
	t.Helper()
	for round := 1; round <= n; round++ {
		_, err := env.conjoint.GetRoundCards(env.ctx(), sessionId, round)
		require.NoError(t, err)
		_, err = env.conjoint.RecordChoice(env.ctx(), &dto.RecordChoiceRequest{
			Id: sessionId, RoundNumber: round, Choice: "A", ResponseTimeMs: 500,
		})
		require.NoError(t, err)
	}
}

func TestExportDataCSV(t *testing.T) {
	env := newTestEnv(3)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)
	seedChoices(t, env, started.SessionId, 3)

	result, err := env.exports.ExportData(env.ctx(), &dto.ExportDataRequest{Format: "csv"})
	require.NoError(t, err)

	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, 3, result.RowCount)
	assert.Equal(t, 0, result.SkippedCount)

	records, err := csv.NewReader(strings.NewReader(string(result.Data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	header := records[0]
	assert.Equal(t, "session_id", header[0])
	assert.Contains(t, header, "chose_a")

	hasPrefixed := false
	for _, column := range header {
		if strings.HasPrefix(column, "a_") {
			hasPrefixed = true
		}
	}
	assert.True(t, hasPrefixed, "attribute columns carry the a_ prefix")
}

func TestExportDataSkipsChoiceMissingCards(t *testing.T) {
	env := newTestEnv(3)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	// Round 1 has cards and a choice; round 2's choice is recorded without
	// ever generating cards.
	seedChoices(t, env, started.SessionId, 1)
	_, err = env.conjoint.RecordChoice(env.ctx(), &dto.RecordChoiceRequest{
		Id: started.SessionId, RoundNumber: 2, Choice: "B", ResponseTimeMs: 300,
	})
	require.NoError(t, err)

	result, err := env.exports.ExportData(env.ctx(), &dto.ExportDataRequest{Format: "json"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.RowCount)
	assert.Equal(t, 1, result.SkippedCount)
}

func TestExportDataSessionScope(t *testing.T) {
	env := newTestEnv(2)
	first, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)
	second, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)
	seedChoices(t, env, first.SessionId, 2)
	seedChoices(t, env, second.SessionId, 2)

	result, err := env.exports.ExportData(env.ctx(), &dto.ExportDataRequest{
		Format:     "csv",
		SessionIds: []string{first.SessionId.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount)
}

func TestExportDataInvalidFormat(t *testing.T) {
	env := newTestEnv(3)

	_, err := env.exports.ExportData(env.ctx(), &dto.ExportDataRequest{Format: "yaml"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestExportDataInvalidSessionId(t *testing.T) {
	env := newTestEnv(3)

	_, err := env.exports.ExportData(env.ctx(), &dto.ExportDataRequest{
		Format:     "csv",
		SessionIds: []string{"not-a-uuid"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestSummary(t *testing.T) {
	env := newTestEnv(2)
	first, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)
	second, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	seedChoices(t, env, first.SessionId, 2)
	require.NoError(t, env.sessions.Complete(env.ctx(), first.SessionId))
	_ = second

	summary, err := env.exports.Summary(env.ctx(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalSessions)
	assert.Equal(t, 1, summary.CompletedSessions)
	assert.InDelta(t, 0.5, summary.CompletionRate, 1e-9)
	assert.Equal(t, 2, summary.TotalChoices)
	assert.Equal(t, 2, summary.ChoiceDistribution[entity.CardLabelA])
	assert.Equal(t, 500.0, summary.ResponseTimeStats["mean"])
}
