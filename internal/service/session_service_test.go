package service

import (
	"testing"

	"conjoint-survey-be/internal/constant"
	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSession(t *testing.T) {
	env := newTestEnv(5)

	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, started.SessionId)
	assert.Equal(t, entity.SessionStatusStarted, started.Status)
	assert.Equal(t, "welcome", started.Question.Id)
	// Branding placeholders are filled in the welcome message.
	assert.Contains(t, started.Question.Message, "Jill")
	assert.Contains(t, started.Question.Message, "Veda-")
	assert.NotContains(t, started.Question.Message, "{assistant_name}")
}

func TestStartSessionWithParticipant(t *testing.T) {
	env := newTestEnv(5)

	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{
		ParticipantEmail: "jo@example.com",
		ParticipantName:  "Jo",
	})
	require.NoError(t, err)

	state, err := env.sessions.GetState(env.ctx(), started.SessionId)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusStarted, state.Status)
	assert.Equal(t, "welcome", state.CurrentStep)
	assert.Equal(t, 0, state.CurrentRound)
	assert.Equal(t, 5, state.TotalRounds)
}

func TestGetStateUnknownSession(t *testing.T) {
	env := newTestEnv(5)

	_, err := env.sessions.GetState(env.ctx(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestAdvanceWalksQuestionSequence(t *testing.T) {
	env := newTestEnv(2)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	wantSteps := []string{"email", "name", "zip_code", "position_type", "work_preference", "salary_range"}
	for _, want := range wantSteps {
		advanced, err := env.sessions.Advance(env.ctx(), started.SessionId)
		require.NoError(t, err)
		assert.Equal(t, want, advanced.CurrentStep)
		assert.Equal(t, 0, advanced.CurrentRound)
	}
}

func TestAdvanceConjointRounds(t *testing.T) {
	env := newTestEnv(3)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	// Walk up to the conjoint step.
	for i := 0; i < len(constant.SurveyQuestions)-1; i++ {
		advanced, err := env.sessions.Advance(env.ctx(), started.SessionId)
		require.NoError(t, err)
		if advanced.CurrentStep == constant.ConjointStepId {
			assert.Equal(t, 1, advanced.CurrentRound, "round initializes to 1 on conjoint entry")
			break
		}
	}

	// Rounds 2 and 3 burn through without moving the step pointer.
	for wantRound := 2; wantRound <= 3; wantRound++ {
		advanced, err := env.sessions.Advance(env.ctx(), started.SessionId)
		require.NoError(t, err)
		assert.Equal(t, constant.ConjointStepId, advanced.CurrentStep)
		assert.Equal(t, wantRound, advanced.CurrentRound)
	}

	// Rounds exhausted: the next advance moves past conjoint and completes.
	advanced, err := env.sessions.Advance(env.ctx(), started.SessionId)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusCompleted, advanced.Status)

	state, err := env.sessions.GetState(env.ctx(), started.SessionId)
	require.NoError(t, err)
	require.NotNil(t, state.CompletedAt)
}

func TestAdvanceOnTerminalSession(t *testing.T) {
	env := newTestEnv(5)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	require.NoError(t, env.sessions.Abandon(env.ctx(), started.SessionId))

	_, err = env.sessions.Advance(env.ctx(), started.SessionId)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindState))
}

func TestCompleteIsIdempotent(t *testing.T) {
	env := newTestEnv(5)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	require.NoError(t, env.sessions.Complete(env.ctx(), started.SessionId))
	first, err := env.sessions.GetState(env.ctx(), started.SessionId)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)

	// A second complete keeps status and timestamp exactly as they were.
	require.NoError(t, env.sessions.Complete(env.ctx(), started.SessionId))
	second, err := env.sessions.GetState(env.ctx(), started.SessionId)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusCompleted, second.Status)
	assert.Equal(t, first.CompletedAt, second.CompletedAt)
}

func TestAbandonDoesNotOverrideCompleted(t *testing.T) {
	env := newTestEnv(5)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	require.NoError(t, env.sessions.Complete(env.ctx(), started.SessionId))
	require.NoError(t, env.sessions.Abandon(env.ctx(), started.SessionId))

	state, err := env.sessions.GetState(env.ctx(), started.SessionId)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusCompleted, state.Status)
}

func TestLinkParticipantCreateOrGet(t *testing.T) {
	env := newTestEnv(5)
	first, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)
	second, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{})
	require.NoError(t, err)

	p1, err := env.sessions.LinkParticipant(env.ctx(), first.SessionId, "jo@example.com", "Jo", "")
	require.NoError(t, err)
	p2, err := env.sessions.LinkParticipant(env.ctx(), second.SessionId, "jo@example.com", "", "60647")
	require.NoError(t, err)

	assert.Equal(t, p1.Id, p2.Id, "same email resolves to one participant")
	assert.Equal(t, "60647", p2.ZipCode)
}

func TestInterpolate(t *testing.T) {
	data := map[string]string{
		"assistant_name": "Jill",
		"name":           "Jo",
	}
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"fills known tokens", "Hi {name}, I'm {assistant_name}.", "Hi Jo, I'm Jill."},
		{"no tokens", "Plain text.", "Plain text."},
		{"unknown token leaves template untouched", "Hi {name}, from {company_name}.", "Hi {name}, from {company_name}."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interpolate(tt.template, data))
		})
	}
}

func TestGetCurrentQuestionUsesParticipantName(t *testing.T) {
	env := newTestEnv(5)
	started, err := env.sessions.Start(env.ctx(), &dto.StartSessionRequest{
		ParticipantEmail: "jo@example.com",
		ParticipantName:  "Jo",
	})
	require.NoError(t, err)

	question, err := env.sessions.GetCurrentQuestion(env.ctx(), started.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "welcome", question.Id)
	assert.NotEmpty(t, question.Message)
}
