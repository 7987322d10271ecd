package mapper

import (
	"encoding/json"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/internal/model"

	"gorm.io/datatypes"
)

type SurveyMapper struct{}

func NewSurveyMapper() *SurveyMapper {
	return &SurveyMapper{}
}

func (m *SurveyMapper) AttributeToEntity(a *model.JobAttribute) *entity.Attribute {
	if a == nil {
		return nil
	}
	var levels []entity.AttributeLevel
	// Levels column is written by us; a decode failure leaves an empty set
	// rather than poisoning every catalog read.
	_ = json.Unmarshal(a.Levels, &levels)
	return &entity.Attribute{
		Id:          a.Id,
		Key:         a.Key,
		DisplayName: a.DisplayName,
		Levels:      levels,
		Position:    a.Position,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *SurveyMapper) AttributeToModel(a *entity.Attribute) *model.JobAttribute {
	if a == nil {
		return nil
	}
	raw, _ := json.Marshal(a.Levels)
	return &model.JobAttribute{
		Id:          a.Id,
		Key:         a.Key,
		DisplayName: a.DisplayName,
		Levels:      datatypes.JSON(raw),
		Position:    a.Position,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *SurveyMapper) SessionToEntity(s *model.SurveySession) *entity.SurveySession {
	if s == nil {
		return nil
	}
	return &entity.SurveySession{
		Id:            s.Id,
		ParticipantId: s.ParticipantId,
		SessionSeed:   s.SessionSeed,
		Status:        s.Status,
		StartedAt:     s.StartedAt,
		CompletedAt:   s.CompletedAt,
		CurrentStep:   s.CurrentStep,
		CurrentRound:  s.CurrentRound,
	}
}

func (m *SurveyMapper) SessionToModel(s *entity.SurveySession) *model.SurveySession {
	if s == nil {
		return nil
	}
	return &model.SurveySession{
		Id:            s.Id,
		ParticipantId: s.ParticipantId,
		SessionSeed:   s.SessionSeed,
		Status:        s.Status,
		StartedAt:     s.StartedAt,
		CompletedAt:   s.CompletedAt,
		CurrentStep:   s.CurrentStep,
		CurrentRound:  s.CurrentRound,
	}
}

func (m *SurveyMapper) CardToEntity(c *model.JobCard) *entity.JobCard {
	if c == nil {
		return nil
	}
	attrs := map[string]string{}
	_ = json.Unmarshal(c.Attributes, &attrs)
	return &entity.JobCard{
		Id:           c.Id,
		SessionId:    c.SessionId,
		CardLabel:    c.CardLabel,
		Attributes:   attrs,
		RenderedText: c.RenderedText,
		RoundNumber:  c.RoundNumber,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *SurveyMapper) CardToModel(c *entity.JobCard) *model.JobCard {
	if c == nil {
		return nil
	}
	raw, _ := json.Marshal(c.Attributes)
	return &model.JobCard{
		Id:           c.Id,
		SessionId:    c.SessionId,
		CardLabel:    c.CardLabel,
		Attributes:   datatypes.JSON(raw),
		RenderedText: c.RenderedText,
		RoundNumber:  c.RoundNumber,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *SurveyMapper) ChoiceToEntity(c *model.ConjointChoice) *entity.ConjointChoice {
	if c == nil {
		return nil
	}
	return &entity.ConjointChoice{
		Id:             c.Id,
		SessionId:      c.SessionId,
		RoundNumber:    c.RoundNumber,
		Choice:         c.Choice,
		ResponseTimeMs: c.ResponseTimeMs,
		Timestamp:      c.Timestamp,
	}
}

func (m *SurveyMapper) ChoiceToModel(c *entity.ConjointChoice) *model.ConjointChoice {
	if c == nil {
		return nil
	}
	return &model.ConjointChoice{
		Id:             c.Id,
		SessionId:      c.SessionId,
		RoundNumber:    c.RoundNumber,
		Choice:         c.Choice,
		ResponseTimeMs: c.ResponseTimeMs,
		Timestamp:      c.Timestamp,
	}
}

func (m *SurveyMapper) ResponseToEntity(r *model.SurveyResponse) *entity.SurveyResponse {
	if r == nil {
		return nil
	}
	return &entity.SurveyResponse{
		Id:              r.Id,
		SessionId:       r.SessionId,
		QuestionId:      r.QuestionId,
		QuestionType:    r.QuestionType,
		RawInput:        r.RawInput,
		NormalizedValue: r.NormalizedValue,
		Timestamp:       r.Timestamp,
	}
}

func (m *SurveyMapper) ResponseToModel(r *entity.SurveyResponse) *model.SurveyResponse {
	if r == nil {
		return nil
	}
	return &model.SurveyResponse{
		Id:              r.Id,
		SessionId:       r.SessionId,
		QuestionId:      r.QuestionId,
		QuestionType:    r.QuestionType,
		RawInput:        r.RawInput,
		NormalizedValue: r.NormalizedValue,
		Timestamp:       r.Timestamp,
	}
}

func (m *SurveyMapper) ParticipantToEntity(p *model.Participant) *entity.Participant {
	if p == nil {
		return nil
	}
	return &entity.Participant{
		Id:        p.Id,
		Email:     p.Email,
		Name:      p.Name,
		ZipCode:   p.ZipCode,
		CreatedAt: p.CreatedAt,
	}
}

func (m *SurveyMapper) ParticipantToModel(p *entity.Participant) *model.Participant {
	if p == nil {
		return nil
	}
	return &model.Participant{
		Id:        p.Id,
		Email:     p.Email,
		Name:      p.Name,
		ZipCode:   p.ZipCode,
		CreatedAt: p.CreatedAt,
	}
}
