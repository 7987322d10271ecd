package dto

import (
	"time"

	"github.com/google/uuid"
)

type CardResponse struct {
	CardLabel    string            `json:"card_label"`
	Attributes   map[string]string `json:"attributes"`
	RenderedText string            `json:"rendered_text"`
	RoundNumber  int               `json:"round_number"`
}

type RoundCardsResponse struct {
	RoundNumber int          `json:"round_number"`
	TotalRounds int          `json:"total_rounds"`
	CardA       CardResponse `json:"card_a"`
	CardB       CardResponse `json:"card_b"`
}

type RecordChoiceRequest struct {
	Id             uuid.UUID
	RoundNumber    int    `json:"round_number" validate:"required,min=1"`
	Choice         string `json:"choice" validate:"required,oneof=A B"`
	ResponseTimeMs int    `json:"response_time_ms" validate:"min=0"`
}

type RecordChoiceResponse struct {
	RoundNumber      int       `json:"round_number"`
	Choice           string    `json:"choice"`
	Timestamp        time.Time `json:"timestamp"`
	ConjointComplete bool      `json:"conjoint_complete"`
}

type ChoiceResult struct {
	RoundNumber    int       `json:"round_number"`
	Choice         string    `json:"choice"`
	ResponseTimeMs int       `json:"response_time_ms"`
	Timestamp      time.Time `json:"timestamp"`
}

type SessionResultsResponse struct {
	SessionId   uuid.UUID      `json:"session_id"`
	TotalRounds int            `json:"total_rounds"`
	Choices     []ChoiceResult `json:"choices"`
}
