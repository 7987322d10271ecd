package model

import (
	"time"

	"github.com/google/uuid"
)

type SurveyResponse struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_response_session_question"`
	QuestionId      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_response_session_question"`
	QuestionType    string    `gorm:"type:varchar(20);not null"`
	RawInput        string    `gorm:"type:text;not null"`
	NormalizedValue string    `gorm:"type:text;not null"`
	Timestamp       time.Time `gorm:"not null"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}
