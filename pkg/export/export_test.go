package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCard(sessionId uuid.UUID, round int, label string, attrs map[string]string) *entity.JobCard {
	return &entity.JobCard{
		Id:          uuid.New(),
		SessionId:   sessionId,
		CardLabel:   label,
		Attributes:  attrs,
		RoundNumber: round,
	}
}

func fixtureChoice(sessionId uuid.UUID, round int, choice string, ms int) *entity.ConjointChoice {
	return &entity.ConjointChoice{
		Id:             uuid.New(),
		SessionId:      sessionId,
		RoundNumber:    round,
		Choice:         choice,
		ResponseTimeMs: ms,
		Timestamp:      time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func fixtureDataset() (*Dataset, uuid.UUID) {
	sessionId := uuid.New()
	cards := []*entity.JobCard{
		fixtureCard(sessionId, 1, entity.CardLabelA, map[string]string{"compensation": "above", "location": "remote"}),
		fixtureCard(sessionId, 1, entity.CardLabelB, map[string]string{"compensation": "market", "location": "office"}),
	}
	choices := []*entity.ConjointChoice{
		fixtureChoice(sessionId, 1, entity.CardLabelA, 1200),
	}
	return Flatten(choices, cards), sessionId
}

func TestFlatten(t *testing.T) {
	ds, sessionId := fixtureDataset()

	require.Len(t, ds.Rows, 1)
	assert.Equal(t, 0, ds.Skipped)

	row := ds.Rows[0]
	assert.Equal(t, sessionId.String(), row.SessionId)
	assert.Equal(t, 1, row.RoundNumber)
	assert.Equal(t, "A", row.Choice)
	assert.Equal(t, 1, row.ChoseA)
	assert.Equal(t, 1200, row.ResponseTimeMs)
	assert.Equal(t, "2025-03-14T09:26:53Z", row.Timestamp)
	assert.Equal(t, "above", row.AttributesA["compensation"])
	assert.Equal(t, "office", row.AttributesB["location"])
}

func TestFlattenChoseAZeroForB(t *testing.T) {
	sessionId := uuid.New()
	cards := []*entity.JobCard{
		fixtureCard(sessionId, 1, entity.CardLabelA, map[string]string{"k": "v1"}),
		fixtureCard(sessionId, 1, entity.CardLabelB, map[string]string{"k": "v2"}),
	}
	ds := Flatten([]*entity.ConjointChoice{fixtureChoice(sessionId, 1, entity.CardLabelB, 900)}, cards)

	require.Len(t, ds.Rows, 1)
	assert.Equal(t, 0, ds.Rows[0].ChoseA)
}

func TestFlattenSkipsChoicesMissingACard(t *testing.T) {
	s1 := uuid.New()
	s2 := uuid.New()
	cards := []*entity.JobCard{
		fixtureCard(s1, 1, entity.CardLabelA, map[string]string{"k": "v"}),
		fixtureCard(s1, 1, entity.CardLabelB, map[string]string{"k": "v"}),
		fixtureCard(s2, 1, entity.CardLabelA, map[string]string{"k": "v"}),
		fixtureCard(s2, 1, entity.CardLabelB, map[string]string{"k": "v"}),
		// Round 2 of s2 only has card A stored.
		fixtureCard(s2, 2, entity.CardLabelA, map[string]string{"k": "v"}),
	}
	choices := []*entity.ConjointChoice{
		fixtureChoice(s1, 1, "A", 100),
		fixtureChoice(s2, 1, "B", 200),
		fixtureChoice(s2, 2, "A", 300),
	}

	ds := Flatten(choices, cards)

	assert.Len(t, ds.Rows, 2)
	assert.Equal(t, 1, ds.Skipped)
}

func TestDatasetColumns(t *testing.T) {
	ds, _ := fixtureDataset()

	assert.Equal(t, []string{
		"session_id", "round_number", "choice", "chose_a", "response_time_ms", "timestamp",
		"a_compensation", "a_location",
		"b_compensation", "b_location",
	}, ds.Columns())
}

func TestCSVEncoder(t *testing.T) {
	ds, sessionId := fixtureDataset()
	enc, err := NewEncoder(FormatCSV)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, ds))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ds.Columns(), records[0])
	assert.Equal(t, []string{sessionId.String(), "1", "A", "1", "1200", "2025-03-14T09:26:53Z", "above", "remote", "market", "office"}, records[1])
}

func TestJSONEncoder(t *testing.T) {
	ds, _ := fixtureDataset()
	enc, err := NewEncoder(FormatJSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, ds))

	var records []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "above", records[0]["a_compensation"])
	assert.Equal(t, float64(1), records[0]["chose_a"])
}

func TestRScriptEncoder(t *testing.T) {
	ds, _ := fixtureDataset()
	enc, err := NewEncoder(FormatRScript)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, ds))

	script := buf.String()
	assert.Contains(t, script, "conjoint_data <- data.frame(")
	assert.Contains(t, script, "chose_a = c(1)")
	assert.Contains(t, script, `a_compensation = c("above")`)
	assert.Contains(t, script, "stringsAsFactors = FALSE")
}

func TestXLSXEncoder(t *testing.T) {
	ds, _ := fixtureDataset()
	enc, err := NewEncoder(FormatXLSX)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, ds))
	// xlsx files are zip archives.
	assert.True(t, strings.HasPrefix(buf.String(), "PK"))
}

func TestNewEncoderUnknownFormat(t *testing.T) {
	_, err := NewEncoder("parquet")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestSummarize(t *testing.T) {
	sessions := []*entity.SurveySession{
		{Status: entity.SessionStatusCompleted},
		{Status: entity.SessionStatusCompleted},
		{Status: entity.SessionStatusStarted},
		{Status: entity.SessionStatusAbandoned},
	}
	s := uuid.New()
	choices := []*entity.ConjointChoice{
		fixtureChoice(s, 1, "A", 100),
		fixtureChoice(s, 2, "B", 200),
		fixtureChoice(s, 3, "A", 600),
	}

	summary := Summarize(sessions, choices)

	assert.Equal(t, 4, summary.TotalSessions)
	assert.Equal(t, 2, summary.CompletedSessions)
	assert.InDelta(t, 0.5, summary.CompletionRate, 1e-9)
	assert.Equal(t, 3, summary.TotalChoices)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, summary.ChoiceDistribution)
	assert.Equal(t, 100.0, summary.ResponseTime.Min)
	assert.Equal(t, 600.0, summary.ResponseTime.Max)
	assert.InDelta(t, 300.0, summary.ResponseTime.Mean, 1e-9)
	assert.Equal(t, 200.0, summary.ResponseTime.Median)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, nil)

	assert.Equal(t, 0, summary.TotalSessions)
	assert.Equal(t, 0.0, summary.CompletionRate)
	assert.Equal(t, 0.0, summary.ResponseTime.Mean)
}
