package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/pkg/logger"
	"conjoint-survey-be/internal/repository/specification"
	"conjoint-survey-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IResponseService interface {
	Submit(ctx context.Context, req *dto.SubmitResponseRequest) (*dto.SubmitResponseResponse, error)
	GetAll(ctx context.Context, sessionId uuid.UUID) (map[string]string, error)
}

type responseService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionService ISessionService
	logger         logger.ILogger
}

func NewResponseService(uowFactory unitofwork.RepositoryFactory, sessionService ISessionService, log logger.ILogger) IResponseService {
	return &responseService{
		uowFactory:     uowFactory,
		sessionService: sessionService,
		logger:         log,
	}
}

// Submit validates, normalizes and stores an answer. Responses are immutable:
// a second submission for the same question returns the stored answer
// unchanged. Answering the email step links (or creates) the participant.
func (s *responseService) Submit(ctx context.Context, req *dto.SubmitResponseRequest) (*dto.SubmitResponseResponse, error) {
	question := questionById(req.QuestionId)
	if question == nil {
		return nil, apperrors.Validation("unknown question %s", req.QuestionId)
	}
	if err := validateResponse(req.QuestionId, req.Input); err != nil {
		return nil, err
	}
	normalized := normalizeResponse(req.QuestionId, req.Input)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ResponseRepository()

	existing, err := repo.FindOne(ctx,
		specification.BySessionID{SessionID: req.Id},
		specification.ByQuestionID{QuestionID: req.QuestionId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.SubmitResponseResponse{
			QuestionId:      existing.QuestionId,
			NormalizedValue: existing.NormalizedValue,
		}, nil
	}

	response := &entity.SurveyResponse{
		Id:              uuid.New(),
		SessionId:       req.Id,
		QuestionId:      req.QuestionId,
		QuestionType:    question.Type,
		RawInput:        req.Input,
		NormalizedValue: normalized,
		Timestamp:       time.Now(),
	}
	err = repo.Create(ctx, response)
	if apperrors.IsKind(err, apperrors.KindDuplicateWrite) {
		// Concurrent duplicate submit; the first write wins.
		stored, findErr := repo.FindOne(ctx,
			specification.BySessionID{SessionID: req.Id},
			specification.ByQuestionID{QuestionID: req.QuestionId},
		)
		if findErr != nil || stored == nil {
			return nil, err
		}
		return &dto.SubmitResponseResponse{
			QuestionId:      stored.QuestionId,
			NormalizedValue: stored.NormalizedValue,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.afterSubmit(ctx, req.Id, req.QuestionId, normalized); err != nil {
		return nil, err
	}
	return &dto.SubmitResponseResponse{
		QuestionId:      response.QuestionId,
		NormalizedValue: response.NormalizedValue,
	}, nil
}

// afterSubmit handles the steps with side effects: email links the
// participant, zip_code backfills the linked participant's zip.
func (s *responseService) afterSubmit(ctx context.Context, sessionId uuid.UUID, questionId, normalized string) error {
	switch questionId {
	case "email":
		name := ""
		if stored, err := s.lookup(ctx, sessionId, "name"); err != nil {
			return err
		} else if stored != nil {
			name = stored.NormalizedValue
		}
		_, err := s.sessionService.LinkParticipant(ctx, sessionId, normalized, name, "")
		return err
	case "zip_code":
		stored, err := s.lookup(ctx, sessionId, "email")
		if err != nil || stored == nil {
			return err
		}
		_, err = s.sessionService.LinkParticipant(ctx, sessionId, stored.NormalizedValue, "", normalized)
		return err
	}
	return nil
}

func (s *responseService) lookup(ctx context.Context, sessionId uuid.UUID, questionId string) (*entity.SurveyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ResponseRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByQuestionID{QuestionID: questionId},
	)
}

func (s *responseService) GetAll(ctx context.Context, sessionId uuid.UUID) (map[string]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	responses, err := uow.ResponseRepository().FindAll(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(responses))
	for _, response := range responses {
		result[response.QuestionId] = response.NormalizedValue
	}
	return result, nil
}

func validateResponse(questionId, rawInput string) error {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return apperrors.Validation("response cannot be empty")
	}

	switch questionId {
	case "email":
		if !strings.Contains(rawInput, "@") || !strings.Contains(rawInput, ".") {
			return apperrors.Validation("please enter a valid email address")
		}
	case "zip_code":
		if len(digitsOf(rawInput)) < 5 {
			return apperrors.Validation("please enter a valid zip code")
		}
	case "name":
		if len(trimmed) < 2 {
			return apperrors.Validation("please enter your name")
		}
	}
	return nil
}

func normalizeResponse(questionId, rawInput string) string {
	normalized := strings.TrimSpace(rawInput)

	switch questionId {
	case "email":
		normalized = strings.ToLower(normalized)
	case "zip_code":
		digits := digitsOf(normalized)
		if len(digits) > 5 {
			digits = digits[:5]
		}
		normalized = digits
	case "name":
		normalized = titleCase(normalized)
	}
	return normalized
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
