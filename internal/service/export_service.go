package service

import (
	"bytes"
	"context"

	"conjoint-survey-be/internal/dto"
	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/pkg/apperrors"
	"conjoint-survey-be/internal/pkg/logger"
	"conjoint-survey-be/internal/repository/specification"
	"conjoint-survey-be/internal/repository/unitofwork"
	"conjoint-survey-be/pkg/export"

	"github.com/google/uuid"
)

// ExportResult is an encoded dataset ready to serve as a download.
type ExportResult struct {
	Data          []byte
	ContentType   string
	FileExtension string
	RowCount      int
	SkippedCount  int
}

type IExportService interface {
	ExportData(ctx context.Context, req *dto.ExportDataRequest) (*ExportResult, error)
	Summary(ctx context.Context, sessionIds []string) (*dto.ExportSummaryResponse, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewExportService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IExportService {
	return &exportService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// ExportData flattens stored choices and cards into the requested format.
// Scoping to specific sessions is optional; the default is the whole
// experiment.
func (s *exportService) ExportData(ctx context.Context, req *dto.ExportDataRequest) (*ExportResult, error) {
	encoder, err := export.NewEncoder(req.Format)
	if err != nil {
		return nil, err
	}

	choices, cards, err := s.loadDataset(ctx, req.SessionIds)
	if err != nil {
		return nil, err
	}

	ds := export.Flatten(choices, cards)
	if ds.Skipped > 0 {
		s.logger.Warn("EXPORT", "Choices skipped for missing cards", map[string]interface{}{
			"skipped": ds.Skipped,
			"rows":    len(ds.Rows),
		})
	}

	var buf bytes.Buffer
	if err := encoder.Encode(&buf, ds); err != nil {
		return nil, err
	}
	return &ExportResult{
		Data:          buf.Bytes(),
		ContentType:   encoder.ContentType(),
		FileExtension: encoder.FileExtension(),
		RowCount:      len(ds.Rows),
		SkippedCount:  ds.Skipped,
	}, nil
}

func (s *exportService) Summary(ctx context.Context, sessionIds []string) (*dto.ExportSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ids, err := parseSessionIds(sessionIds)
	if err != nil {
		return nil, err
	}

	var sessions []*entity.SurveySession
	var choices []*entity.ConjointChoice
	if len(ids) == 0 {
		sessions, err = uow.SessionRepository().FindAll(ctx)
		if err != nil {
			return nil, err
		}
		choices, err = uow.ChoiceRepository().FindAll(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		for _, id := range ids {
			session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: id})
			if err != nil {
				return nil, err
			}
			if session == nil {
				continue
			}
			sessions = append(sessions, session)

			sessionChoices, err := uow.ChoiceRepository().FindAll(ctx, specification.BySessionID{SessionID: id})
			if err != nil {
				return nil, err
			}
			choices = append(choices, sessionChoices...)
		}
	}

	summary := export.Summarize(sessions, choices)
	return &dto.ExportSummaryResponse{
		TotalSessions:      summary.TotalSessions,
		CompletedSessions:  summary.CompletedSessions,
		CompletionRate:     summary.CompletionRate,
		TotalChoices:       summary.TotalChoices,
		ChoiceDistribution: summary.ChoiceDistribution,
		ResponseTimeStats: map[string]float64{
			"min":     summary.ResponseTime.Min,
			"mean":    summary.ResponseTime.Mean,
			"max":     summary.ResponseTime.Max,
			"median":  summary.ResponseTime.Median,
			"std_dev": summary.ResponseTime.StdDev,
		},
	}, nil
}

func (s *exportService) loadDataset(ctx context.Context, sessionIds []string) ([]*entity.ConjointChoice, []*entity.JobCard, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ids, err := parseSessionIds(sessionIds)
	if err != nil {
		return nil, nil, err
	}

	if len(ids) == 0 {
		choices, err := uow.ChoiceRepository().FindAll(ctx, specification.OrderBy{Field: "round_number"})
		if err != nil {
			return nil, nil, err
		}
		cards, err := uow.CardRepository().FindAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		return choices, cards, nil
	}

	var choices []*entity.ConjointChoice
	var cards []*entity.JobCard
	for _, id := range ids {
		sessionChoices, err := uow.ChoiceRepository().FindAll(ctx,
			specification.BySessionID{SessionID: id},
			specification.OrderBy{Field: "round_number"},
		)
		if err != nil {
			return nil, nil, err
		}
		choices = append(choices, sessionChoices...)

		sessionCards, err := uow.CardRepository().FindAll(ctx, specification.BySessionID{SessionID: id})
		if err != nil {
			return nil, nil, err
		}
		cards = append(cards, sessionCards...)
	}
	return choices, cards, nil
}

func parseSessionIds(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, apperrors.Validation("invalid session id %q", value)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
