package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JobCard struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_card_session_round_label"`
	CardLabel    string         `gorm:"type:varchar(1);not null;uniqueIndex:idx_card_session_round_label"`
	Attributes   datatypes.JSON `gorm:"type:jsonb;not null"` // attribute_key -> level_id
	RenderedText string         `gorm:"type:text;not null"`
	RoundNumber  int            `gorm:"not null;uniqueIndex:idx_card_session_round_label"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (JobCard) TableName() string {
	return "generated_job_cards"
}
