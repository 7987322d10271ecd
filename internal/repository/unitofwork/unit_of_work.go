package unitofwork

import (
	"context"

	"conjoint-survey-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AttributeRepository() contract.AttributeRepository
	SessionRepository() contract.SessionRepository
	CardRepository() contract.CardRepository
	ChoiceRepository() contract.ChoiceRepository
	ResponseRepository() contract.ResponseRepository
	ParticipantRepository() contract.ParticipantRepository
}
