package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters rows belonging to one survey session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByRoundNumber filters by conjoint round.
type ByRoundNumber struct {
	Round int
}

func (s ByRoundNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("round_number = ?", s.Round)
}

// ByCardLabel filters by A/B side.
type ByCardLabel struct {
	Label string
}

func (s ByCardLabel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("card_label = ?", s.Label)
}

// ByAttributeKey filters catalog attributes by key.
type ByAttributeKey struct {
	Key string
}

func (s ByAttributeKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key = ?", s.Key)
}

// ByQuestionID filters responses by questionnaire step.
type ByQuestionID struct {
	QuestionID string
}

func (s ByQuestionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_id = ?", s.QuestionID)
}

// ByEmail filters participants by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByStatus filters sessions by lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
