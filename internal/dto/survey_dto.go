package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionRequest struct {
	ParticipantEmail string `json:"participant_email" validate:"omitempty,email"`
	ParticipantName  string `json:"participant_name"`
}

type StartSessionResponse struct {
	SessionId uuid.UUID        `json:"session_id"`
	Status    string           `json:"status"`
	Question  QuestionResponse `json:"question"`
}

type QuestionOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type QuestionResponse struct {
	Id       string                   `json:"id"`
	Type     string                   `json:"type"`
	Message  string                   `json:"message"`
	Options  []QuestionOptionResponse `json:"options,omitempty"`
	Required bool                     `json:"required"`
}

type SessionStateResponse struct {
	SessionId    uuid.UUID  `json:"session_id"`
	Status       string     `json:"status"`
	CurrentStep  string     `json:"current_step"`
	CurrentRound int        `json:"current_round"`
	TotalRounds  int        `json:"total_rounds"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type SubmitResponseRequest struct {
	Id         uuid.UUID
	QuestionId string `json:"question_id" validate:"required"`
	Input      string `json:"input" validate:"required"`
}

type SubmitResponseResponse struct {
	QuestionId      string `json:"question_id"`
	NormalizedValue string `json:"normalized_value"`
}

type AdvanceResponse struct {
	Status       string            `json:"status"`
	CurrentStep  string            `json:"current_step"`
	CurrentRound int               `json:"current_round"`
	Question     *QuestionResponse `json:"question,omitempty"`
}
