package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusStarted   = "started"
	SessionStatusCompleted = "completed"
	SessionStatusAbandoned = "abandoned"
)

// SurveySession tracks one participant's progress through the questionnaire
// and the conjoint rounds. The session seed drives all randomization for the
// participant, so re-fetching a round always reproduces the same cards.
type SurveySession struct {
	Id            uuid.UUID
	ParticipantId *uuid.UUID
	SessionSeed   string
	Status        string
	StartedAt     time.Time
	CompletedAt   *time.Time
	CurrentStep   string
	CurrentRound  int
}

// IsTerminal reports whether the session reached a final state. Terminal
// sessions accept no further step or round changes.
func (s *SurveySession) IsTerminal() bool {
	return s.Status == SessionStatusCompleted || s.Status == SessionStatusAbandoned
}
