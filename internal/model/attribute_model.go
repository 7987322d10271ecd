package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JobAttribute struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key         string         `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayName string         `gorm:"type:text;not null"`
	Levels      datatypes.JSON `gorm:"type:jsonb;not null"` // ordered [{level_id, display_text}]
	Position    int            `gorm:"not null;index"`      // catalog display order
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (JobAttribute) TableName() string {
	return "job_attributes"
}
