package service

import (
	"context"
	"regexp"
	"time"

	"conjoint-survey-be/internal/config"
	"conjoint-survey-be/internal/constant"
	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/pkg/logger"
	"conjoint-survey-be/internal/repository/specification"
	"conjoint-survey-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISessionService interface {
	Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	GetState(ctx context.Context, id uuid.UUID) (*dto.SessionStateResponse, error)
	GetCurrentQuestion(ctx context.Context, id uuid.UUID) (*dto.QuestionResponse, error)
	Advance(ctx context.Context, id uuid.UUID) (*dto.AdvanceResponse, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Abandon(ctx context.Context, id uuid.UUID) error
	LinkParticipant(ctx context.Context, sessionId uuid.UUID, email, name, zipCode string) (*entity.Participant, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
	logger     logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, log logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		cfg:        cfg,
		logger:     log,
	}
}

func (s *sessionService) Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var participantId *uuid.UUID
	if req.ParticipantEmail != "" {
		participant, err := s.createOrGetParticipant(ctx, uow, req.ParticipantEmail, req.ParticipantName, "")
		if err != nil {
			return nil, err
		}
		participantId = &participant.Id
	}

	session := &entity.SurveySession{
		Id:            uuid.New(),
		ParticipantId: participantId,
		SessionSeed:   uuid.New().String(),
		Status:        entity.SessionStatusStarted,
		StartedAt:     time.Now(),
		CurrentStep:   constant.SurveyQuestions[0].Id,
		CurrentRound:  0,
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("SESSION", "Session started", map[string]interface{}{"session_id": session.Id})

	question, err := s.formatQuestion(ctx, uow, session, &constant.SurveyQuestions[0])
	if err != nil {
		return nil, err
	}
	return &dto.StartSessionResponse{
		SessionId: session.Id,
		Status:    session.Status,
		Question:  *question,
	}, nil
}

func (s *sessionService) GetState(ctx context.Context, id uuid.UUID) (*dto.SessionStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findSession(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return &dto.SessionStateResponse{
		SessionId:    session.Id,
		Status:       session.Status,
		CurrentStep:  session.CurrentStep,
		CurrentRound: session.CurrentRound,
		TotalRounds:  s.cfg.Survey.ConjointRounds,
		StartedAt:    session.StartedAt,
		CompletedAt:  session.CompletedAt,
	}, nil
}

func (s *sessionService) GetCurrentQuestion(ctx context.Context, id uuid.UUID) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findSession(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	question := questionById(session.CurrentStep)
	if question == nil {
		return nil, apperrors.State("session %s has no current question", id)
	}
	return s.formatQuestion(ctx, uow, session, question)
}

// Advance moves the session one step forward. On the conjoint step it burns
// through rounds first; only once rounds are exhausted does the step pointer
// move. Advancing past the final step completes the session.
func (s *sessionService) Advance(ctx context.Context, id uuid.UUID) (*dto.AdvanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findSession(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if session.IsTerminal() {
		return nil, apperrors.State("session %s is %s and cannot advance", id, session.Status)
	}

	if session.CurrentStep == constant.ConjointStepId && session.CurrentRound < s.cfg.Survey.ConjointRounds {
		session.CurrentRound++
		if err := uow.SessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
		question, err := s.formatQuestion(ctx, uow, session, questionById(constant.ConjointStepId))
		if err != nil {
			return nil, err
		}
		return &dto.AdvanceResponse{
			Status:       session.Status,
			CurrentStep:  session.CurrentStep,
			CurrentRound: session.CurrentRound,
			Question:     question,
		}, nil
	}

	currentIdx := questionIndex(session.CurrentStep)
	if currentIdx < 0 {
		return nil, apperrors.State("session %s is on unknown step %s", id, session.CurrentStep)
	}

	if currentIdx >= len(constant.SurveyQuestions)-1 {
		now := time.Now()
		session.Status = entity.SessionStatusCompleted
		session.CompletedAt = &now
		if err := uow.SessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
		s.logger.Info("SESSION", "Session completed", map[string]interface{}{"session_id": id})
		return &dto.AdvanceResponse{
			Status:       session.Status,
			CurrentStep:  session.CurrentStep,
			CurrentRound: session.CurrentRound,
		}, nil
	}

	next := &constant.SurveyQuestions[currentIdx+1]
	session.CurrentStep = next.Id
	if next.Id == constant.ConjointStepId {
		session.CurrentRound = 1
	} else {
		session.CurrentRound = 0
	}
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	question, err := s.formatQuestion(ctx, uow, session, next)
	if err != nil {
		return nil, err
	}
	return &dto.AdvanceResponse{
		Status:       session.Status,
		CurrentStep:  session.CurrentStep,
		CurrentRound: session.CurrentRound,
		Question:     question,
	}, nil
}

func (s *sessionService) Complete(ctx context.Context, id uuid.UUID) error {
	return s.finish(ctx, id, entity.SessionStatusCompleted)
}

func (s *sessionService) Abandon(ctx context.Context, id uuid.UUID) error {
	return s.finish(ctx, id, entity.SessionStatusAbandoned)
}

// finish is a one-way transition: terminal sessions stay exactly as they are,
// including their original completed_at.
func (s *sessionService) finish(ctx context.Context, id uuid.UUID, status string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findSession(ctx, uow, id)
	if err != nil {
		return err
	}
	if session.IsTerminal() {
		return nil
	}

	now := time.Now()
	session.Status = status
	session.CompletedAt = &now
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}
	s.logger.Info("SESSION", "Session finished", map[string]interface{}{"session_id": id, "status": status})
	return nil
}

func (s *sessionService) LinkParticipant(ctx context.Context, sessionId uuid.UUID, email, name, zipCode string) (*entity.Participant, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}

	participant, err := s.createOrGetParticipant(ctx, uow, email, name, zipCode)
	if err != nil {
		return nil, err
	}

	changed := false
	if name != "" && participant.Name != name {
		participant.Name = name
		changed = true
	}
	if zipCode != "" && participant.ZipCode != zipCode {
		participant.ZipCode = zipCode
		changed = true
	}
	if changed {
		if err := uow.ParticipantRepository().Update(ctx, participant); err != nil {
			return nil, err
		}
	}

	if session.ParticipantId == nil || *session.ParticipantId != participant.Id {
		session.ParticipantId = &participant.Id
		if err := uow.SessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
	}
	return participant, nil
}

func (s *sessionService) createOrGetParticipant(ctx context.Context, uow unitofwork.UnitOfWork, email, name, zipCode string) (*entity.Participant, error) {
	repo := uow.ParticipantRepository()
	existing, err := repo.FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	participant := &entity.Participant{
		Id:        uuid.New(),
		Email:     email,
		Name:      name,
		ZipCode:   zipCode,
		CreatedAt: time.Now(),
	}
	err = repo.Create(ctx, participant)
	if apperrors.IsKind(err, apperrors.KindDuplicateWrite) {
		// Lost a concurrent create-or-get race; the winner's row is ours.
		return repo.FindOne(ctx, specification.ByEmail{Email: email})
	}
	if err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *sessionService) findSession(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.SurveySession, error) {
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NotFound("session %s not found", id)
	}
	return session, nil
}

// formatQuestion interpolates {placeholder} tokens from branding, the linked
// participant's name, and normalized responses keyed by question id. If any
// referenced key is missing the template is returned untouched rather than
// partially filled.
func (s *sessionService) formatQuestion(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.SurveySession, question *constant.Question) (*dto.QuestionResponse, error) {
	data := map[string]string{
		"assistant_name": s.cfg.Branding.AssistantName,
		"company_name":   s.cfg.Branding.CompanyName,
		"name":           "there",
	}

	if session.ParticipantId != nil {
		participant, err := uow.ParticipantRepository().FindOne(ctx, specification.ByID{ID: *session.ParticipantId})
		if err != nil {
			return nil, err
		}
		if participant != nil && participant.Name != "" {
			data["name"] = participant.Name
		}
	}

	responses, err := uow.ResponseRepository().FindAll(ctx, specification.BySessionID{SessionID: session.Id})
	if err != nil {
		return nil, err
	}
	for _, response := range responses {
		data[response.QuestionId] = response.NormalizedValue
	}

	options := make([]dto.QuestionOptionResponse, len(question.Options))
	for i, option := range question.Options {
		options[i] = dto.QuestionOptionResponse{Value: option.Value, Label: option.Label}
	}
	return &dto.QuestionResponse{
		Id:       question.Id,
		Type:     question.Type,
		Message:  interpolate(question.Message, data),
		Options:  options,
		Required: question.Type != entity.QuestionTypeInfo && question.Type != entity.QuestionTypeConjoint,
	}, nil
}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// interpolate fills {token} placeholders all-or-nothing: one unknown token
// leaves the whole template unmodified.
func interpolate(template string, data map[string]string) string {
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if _, ok := data[match[1]]; !ok {
			return template
		}
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		return data[token[1:len(token)-1]]
	})
}

func questionById(id string) *constant.Question {
	for i := range constant.SurveyQuestions {
		if constant.SurveyQuestions[i].Id == id {
			return &constant.SurveyQuestions[i]
		}
	}
	return nil
}

func questionIndex(id string) int {
	for i := range constant.SurveyQuestions {
		if constant.SurveyQuestions[i].Id == id {
			return i
		}
	}
	return -1
}
