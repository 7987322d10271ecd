package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	CardLabelA = "A"
	CardLabelB = "B"
)

// JobCard is one side of a pairwise comparison: an assignment of exactly one
// level per catalog attribute, stored to guarantee exposure tracking.
// Cards are never mutated after creation.
type JobCard struct {
	Id           uuid.UUID
	SessionId    uuid.UUID
	CardLabel    string
	Attributes   map[string]string
	RenderedText string
	RoundNumber  int
	CreatedAt    time.Time
}
