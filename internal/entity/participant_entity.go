package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participant identifies a survey taker by email. Sessions may start anonymous
// and get linked once the email step is answered.
type Participant struct {
	Id        uuid.UUID
	Email     string
	Name      string
	ZipCode   string
	CreatedAt time.Time
}
