package memory

import (
	"context"
	"sync"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/repository/contract"
	"conjoint-survey-be/internal/repository/unitofwork"
)

// Store is an in-memory document store backing the repository contracts.
// It mirrors the unique-index behavior of the SQL schema so service logic
// can be exercised without a database.
type Store struct {
	mu           sync.RWMutex
	attributes   []*entity.Attribute
	sessions     []*entity.SurveySession
	cards        []*entity.JobCard
	choices      []*entity.ConjointChoice
	responses    []*entity.SurveyResponse
	participants []*entity.Participant
}

func NewStore() *Store {
	return &Store{}
}

// Factory returns a unitofwork.RepositoryFactory backed by this store.
func (s *Store) Factory() unitofwork.RepositoryFactory {
	return &factory{store: s}
}

type factory struct {
	store *Store
}

func (f *factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork is non-transactional; Begin/Commit/Rollback are no-ops so the
// service flows stay identical between the memory and gorm backends.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) AttributeRepository() contract.AttributeRepository {
	return &AttributeRepository{store: u.store}
}

func (u *unitOfWork) SessionRepository() contract.SessionRepository {
	return &SessionRepository{store: u.store}
}

func (u *unitOfWork) CardRepository() contract.CardRepository {
	return &CardRepository{store: u.store}
}

func (u *unitOfWork) ChoiceRepository() contract.ChoiceRepository {
	return &ChoiceRepository{store: u.store}
}

func (u *unitOfWork) ResponseRepository() contract.ResponseRepository {
	return &ResponseRepository{store: u.store}
}

func (u *unitOfWork) ParticipantRepository() contract.ParticipantRepository {
	return &ParticipantRepository{store: u.store}
}
