package dto

type ExportDataRequest struct {
	Format     string   `json:"format" validate:"omitempty,oneof=csv json r xlsx"`
	SessionIds []string `json:"session_ids" validate:"omitempty,dive,uuid"`
}

type ExportSummaryResponse struct {
	TotalSessions      int                `json:"total_sessions"`
	CompletedSessions  int                `json:"completed_sessions"`
	CompletionRate     float64            `json:"completion_rate"`
	TotalChoices       int                `json:"total_choices"`
	SkippedChoices     int                `json:"skipped_choices"`
	ChoiceDistribution map[string]int     `json:"choice_distribution"`
	ResponseTimeStats  map[string]float64 `json:"response_time_stats"`
}
