package model

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255)"`
	ZipCode   string    `gorm:"type:varchar(10)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Participant) TableName() string {
	return "participants"
}
