package model

import (
	"time"

	"github.com/google/uuid"
)

// ConjointChoice rows are write-once. The compound unique index backstops the
// application-level duplicate check against concurrent submissions.
type ConjointChoice struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_choice_session_round"`
	RoundNumber    int       `gorm:"not null;uniqueIndex:idx_choice_session_round"`
	Choice         string    `gorm:"type:varchar(1);not null"`
	ResponseTimeMs int       `gorm:"not null"`
	Timestamp      time.Time `gorm:"not null"`
}

func (ConjointChoice) TableName() string {
	return "conjoint_choices"
}
