package service

import (
	"testing"

	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitResponseNormalization(t *testing.T) {
	tests := []struct {
		name       string
		questionId string
		input      string
		want       string
	}{
		{"email lowercased", "email", "  Jo.Doe@Example.COM ", "jo.doe@example.com"},
		{"zip reduced to digits", "zip_code", "IL 60647-1234", "60647"},
		{"name title cased", "name", "jo ann doe", "Jo Ann Doe"},
		{"free text trimmed", "position_type", "  Marketing Manager  ", "Marketing Manager"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(5)
			started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
			require.NoError(t, err)

			saved, err := env.responses.Submit(env.ctx(), &dto.SubmitResponseRequest{
				Id:         started.SessionId,
				QuestionId: tt.questionId,
				Input:      tt.input,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, saved.NormalizedValue)
		})
	}
}

func TestSubmitResponseValidation(t *testing.T) {
	tests := []struct {
		name       string
		questionId string
		input      string
	}{
		{"empty input", "name", "   "},
		{"bad email", "email", "not-an-email"},
		{"short zip", "zip_code", "123"},
		{"one letter name", "name", "J"},
		{"unknown question", "favorite_color", "blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(5)
			started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
			require.NoError(t, err)

			_, err = env.responses.Submit(env.ctx(), &dto.SubmitResponseRequest{
				Id:         started.SessionId,
				QuestionId: tt.questionId,
				Input:      tt.input,
			})
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}

func TestSubmitResponseImmutable(t *testing.T) {
	env := newTestEnv(5)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	first, err := env.responses.Submit(env.ctx(), &dto.SubmitResponseRequest{
		Id:         started.SessionId,
		QuestionId: "name",
		Input:      "Jo Doe",
	})
	require.NoError(t, err)

	// Resubmitting returns the stored answer, not the new input.
	second, err := env.responses.Submit(env.ctx(), &dto.SubmitResponseRequest{
		Id:         started.SessionId,
		QuestionId: "name",
		Input:      "Someone Else",
	})
	require.NoError(t, err)
	assert.Equal(t, first.NormalizedValue, second.NormalizedValue)

	all, err := env.responses.GetAll(env.ctx(), started.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "Jo Doe", all["name"])
}

func TestSubmitEmailLinksParticipant(t *testing.T) {
	env := newTestEnv(5)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	_, err = env.responses.Submit(env.ctx(), &dto.SubmitResponseRequest{
		Id:         started.SessionId,
		QuestionId: "name",
		Input:      "jo doe",
	})
	require.NoError(t, err)

	_, err = env.responses.Submit(env.ctx(), &dto.SubmitResponseRequest{
		Id:         started.SessionId,
		QuestionId: "email",
		Input:      "Jo@Example.com",
	})
	require.NoError(t, err)

	// The participant picked up the earlier name answer.
	participant, err := env.sessions.LinkParticipant(env.ctx(), started.SessionId, "jo@example.com", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Jo Doe", participant.Name)
	assert.Equal(t, "jo@example.com", participant.Email)
}

func TestSubmitZipBackfillsParticipant(t *testing.T) {
	env := newTestEnv(5)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	_, err = env.responses.Submit(env.ctx(), &dto.SubmitResponseRequest{
		Id:         started.SessionId,
		QuestionId: "email",
		Input:      "jo@example.com",
	})
	require.NoError(t, err)

	_, err = env.responses.Submit(env.ctx(), &dto.SubmitResponseRequest{
		Id:         started.SessionId,
		QuestionId: "zip_code",
		Input:      "60647",
	})
	require.NoError(t, err)

	participant, err := env.sessions.LinkParticipant(env.ctx(), started.SessionId, "jo@example.com", "", "")
	require.NoError(t, err)
	assert.Equal(t, "60647", participant.ZipCode)
}
