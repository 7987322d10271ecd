package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConjointChoice records a participant's A/B decision for one round.
// Write-once: the core dataset for analysis, never updated or deleted.
type ConjointChoice struct {
	Id             uuid.UUID
	SessionId      uuid.UUID
	RoundNumber    int
	Choice         string
	ResponseTimeMs int
	Timestamp      time.Time
}
