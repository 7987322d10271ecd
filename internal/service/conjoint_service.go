package service

import (
	"context"
	"time"

	"conjoint-survey-be/internal/config"
	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/pkg/logger"
	"conjoint-survey-be/internal/repository/specification"
	"conjoint-survey-be/internal/repository/unitofwork"
	"conjoint-survey-be/pkg/conjoint/card"
	"conjoint-survey-be/pkg/conjoint/strategy"

	"github.com/google/uuid"
)

type IConjointService interface {
	GetRoundCards(ctx context.Context, sessionId uuid.UUID, roundNumber int) (*dto.RoundCardsResponse, error)
	RecordChoice(ctx context.Context, req *dto.RecordChoiceRequest) (*dto.RecordChoiceResponse, error)
	GetSessionResults(ctx context.Context, sessionId uuid.UUID) (*dto.SessionResultsResponse, error)
}

type conjointService struct {
	uowFactory       unitofwork.RepositoryFactory
	attributeService IAttributeService
	strategy         strategy.Strategy
	cfg              *config.Config
	logger           logger.ILogger
}

func NewConjointService(
	uowFactory unitofwork.RepositoryFactory,
	attributeService IAttributeService,
	cfg *config.Config,
	log logger.ILogger,
) IConjointService {
	return &conjointService{
		uowFactory:       uowFactory,
		attributeService: attributeService,
		strategy: strategy.New(cfg.Survey.StrategyName, strategy.Options{
			MinDifferences: cfg.Survey.MinDifferences,
		}),
		cfg:    cfg,
		logger: log,
	}
}

// GetRoundCards returns the A/B pair for a round, generating and storing it
// on first access. Stored cards always win over regeneration, so a round's
// cards never change once a participant has seen them.
func (s *conjointService) GetRoundCards(ctx context.Context, sessionId uuid.UUID, roundNumber int) (*dto.RoundCardsResponse, error) {
	if roundNumber < 1 || roundNumber > s.cfg.Survey.ConjointRounds {
		return nil, apperrors.State("round %d is outside 1..%d", roundNumber, s.cfg.Survey.ConjointRounds)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NotFound("session %s not found", sessionId)
	}

	cards, err := uow.CardRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByRoundNumber{Round: roundNumber},
	)
	if err != nil {
		return nil, err
	}

	var cardA, cardB *entity.JobCard
	if len(cards) == 2 {
		for _, c := range cards {
			switch c.CardLabel {
			case entity.CardLabelA:
				cardA = c
			case entity.CardLabelB:
				cardB = c
			}
		}
	}

	if cardA == nil || cardB == nil {
		attributes, err := s.attributeService.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		factory := card.NewFactory(s.strategy, attributes)

		cardA, cardB, err = factory.CreateAndSavePair(ctx, uow.CardRepository(), sessionId, roundNumber, session.SessionSeed)
		if apperrors.IsKind(err, apperrors.KindDuplicateWrite) {
			// A concurrent request generated the pair first; use the stored one.
			cardA, cardB, err = s.findStoredPair(ctx, uow, sessionId, roundNumber)
		}
		if err != nil {
			return nil, err
		}
		s.logger.Info("CONJOINT", "Generated card pair", map[string]interface{}{
			"session_id": sessionId,
			"round":      roundNumber,
		})
	}

	return &dto.RoundCardsResponse{
		RoundNumber: roundNumber,
		TotalRounds: s.cfg.Survey.ConjointRounds,
		CardA:       toCardResponse(cardA),
		CardB:       toCardResponse(cardB),
	}, nil
}

func (s *conjointService) findStoredPair(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, roundNumber int) (*entity.JobCard, *entity.JobCard, error) {
	cardA, err := uow.CardRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByRoundNumber{Round: roundNumber},
		specification.ByCardLabel{Label: entity.CardLabelA},
	)
	if err != nil {
		return nil, nil, err
	}
	cardB, err := uow.CardRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByRoundNumber{Round: roundNumber},
		specification.ByCardLabel{Label: entity.CardLabelB},
	)
	if err != nil {
		return nil, nil, err
	}
	if cardA == nil || cardB == nil {
		return nil, nil, apperrors.StoreUnavailable("card pair incomplete after duplicate write", nil)
	}
	return cardA, cardB, nil
}

// RecordChoice persists a round decision exactly once. A repeat submission
// for the same round is benign and returns the stored record.
func (s *conjointService) RecordChoice(ctx context.Context, req *dto.RecordChoiceRequest) (*dto.RecordChoiceResponse, error) {
	if req.Choice != entity.CardLabelA && req.Choice != entity.CardLabelB {
		return nil, apperrors.Validation("choice must be A or B, got %q", req.Choice)
	}
	if req.RoundNumber < 1 || req.RoundNumber > s.cfg.Survey.ConjointRounds {
		return nil, apperrors.State("round %d is outside 1..%d", req.RoundNumber, s.cfg.Survey.ConjointRounds)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NotFound("session %s not found", req.Id)
	}

	repo := uow.ChoiceRepository()
	existing, err := repo.FindOne(ctx,
		specification.BySessionID{SessionID: req.Id},
		specification.ByRoundNumber{Round: req.RoundNumber},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.choiceResponse(existing), nil
	}

	choice := &entity.ConjointChoice{
		Id:             uuid.New(),
		SessionId:      req.Id,
		RoundNumber:    req.RoundNumber,
		Choice:         req.Choice,
		ResponseTimeMs: req.ResponseTimeMs,
		Timestamp:      time.Now(),
	}
	err = repo.Create(ctx, choice)
	if apperrors.IsKind(err, apperrors.KindDuplicateWrite) {
		// Lost the insert race; the stored choice is authoritative.
		stored, findErr := repo.FindOne(ctx,
			specification.BySessionID{SessionID: req.Id},
			specification.ByRoundNumber{Round: req.RoundNumber},
		)
		if findErr != nil || stored == nil {
			return nil, err
		}
		return s.choiceResponse(stored), nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("CONJOINT", "Recorded choice", map[string]interface{}{
		"session_id": req.Id,
		"round":      req.RoundNumber,
		"choice":     req.Choice,
	})
	return s.choiceResponse(choice), nil
}

func (s *conjointService) choiceResponse(choice *entity.ConjointChoice) *dto.RecordChoiceResponse {
	return &dto.RecordChoiceResponse{
		RoundNumber:      choice.RoundNumber,
		Choice:           choice.Choice,
		Timestamp:        choice.Timestamp,
		ConjointComplete: choice.RoundNumber >= s.cfg.Survey.ConjointRounds,
	}
}

func (s *conjointService) GetSessionResults(ctx context.Context, sessionId uuid.UUID) (*dto.SessionResultsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NotFound("session %s not found", sessionId)
	}

	choices, err := uow.ChoiceRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "round_number"},
	)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ChoiceResult, len(choices))
	for i, choice := range choices {
		results[i] = dto.ChoiceResult{
			RoundNumber:    choice.RoundNumber,
			Choice:         choice.Choice,
			ResponseTimeMs: choice.ResponseTimeMs,
			Timestamp:      choice.Timestamp,
		}
	}
	return &dto.SessionResultsResponse{
		SessionId:   sessionId,
		TotalRounds: s.cfg.Survey.ConjointRounds,
		Choices:     results,
	}, nil
}

func toCardResponse(c *entity.JobCard) dto.CardResponse {
	return dto.CardResponse{
		CardLabel:    c.CardLabel,
		Attributes:   c.Attributes,
		RenderedText: c.RenderedText,
		RoundNumber:  c.RoundNumber,
	}
}
