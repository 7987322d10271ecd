package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionTypeText     = "text"
	QuestionTypeChoice   = "choice"
	QuestionTypeNumber   = "number"
	QuestionTypeInfo     = "info"
	QuestionTypeConjoint = "conjoint"
)

// SurveyResponse stores one answer to a questionnaire step.
// Immutable after write.
type SurveyResponse struct {
	Id              uuid.UUID
	SessionId       uuid.UUID
	QuestionId      string
	QuestionType    string
	RawInput        string
	NormalizedValue string
	Timestamp       time.Time
}
