package model

import (
	"time"

	"github.com/google/uuid"
)

type SurveySession struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ParticipantId *uuid.UUID `gorm:"type:uuid;index"` // nullable until the email step links one
	SessionSeed   string     `gorm:"type:varchar(64);not null"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	StartedAt     time.Time  `gorm:"not null"`
	CompletedAt   *time.Time
	CurrentStep   string `gorm:"type:varchar(50);not null"`
	CurrentRound  int    `gorm:"not null;default:0"`
}

func (SurveySession) TableName() string {
	return "survey_sessions"
}
