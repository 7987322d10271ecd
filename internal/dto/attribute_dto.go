package dto

import (
	"github.com/google/uuid"
)

type AttributeLevelPayload struct {
	LevelId     string `json:"level_id" validate:"required"`
	DisplayText string `json:"display_text" validate:"required"`
}

type CreateAttributeRequest struct {
	Key         string                  `json:"key" validate:"required"`
	DisplayName string                  `json:"display_name" validate:"required"`
	Levels      []AttributeLevelPayload `json:"levels" validate:"required,min=2,dive"`
	Position    int                     `json:"position" validate:"min=0"`
}

type CreateAttributeResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateLevelsRequest struct {
	Key    string
	Levels []AttributeLevelPayload `json:"levels" validate:"required,min=2,dive"`
}

type AttributeResponse struct {
	Id          uuid.UUID               `json:"id"`
	Key         string                  `json:"key"`
	DisplayName string                  `json:"display_name"`
	Levels      []AttributeLevelPayload `json:"levels"`
	Position    int                     `json:"position"`
}

type AttributeStatisticsResponse struct {
	TotalAttributes   int `json:"total_attributes"`
	TotalLevels       int `json:"total_levels"`
	TotalCombinations int `json:"total_combinations"`
}
