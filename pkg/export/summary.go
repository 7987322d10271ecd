package export

import (
	"github.com/montanaflynn/stats"

	"conjoint-survey-be/internal/entity"
)

// ResponseTimeStats summarizes choice latency in milliseconds.
type ResponseTimeStats struct {
	Min    float64 `json:"min"`
	Mean   float64 `json:"mean"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// Summary aggregates the experiment's headline numbers for the admin view.
type Summary struct {
	TotalSessions      int               `json:"total_sessions"`
	CompletedSessions  int               `json:"completed_sessions"`
	CompletionRate     float64           `json:"completion_rate"`
	TotalChoices       int               `json:"total_choices"`
	ChoiceDistribution map[string]int    `json:"choice_distribution"`
	ResponseTime       ResponseTimeStats `json:"response_time_stats"`
}

// Summarize computes summary statistics over sessions and choices. Empty
// inputs yield zero-valued stats rather than errors.
func Summarize(sessions []*entity.SurveySession, choices []*entity.ConjointChoice) *Summary {
	summary := &Summary{
		TotalSessions:      len(sessions),
		TotalChoices:       len(choices),
		ChoiceDistribution: map[string]int{},
	}

	for _, session := range sessions {
		if session.Status == entity.SessionStatusCompleted {
			summary.CompletedSessions++
		}
	}
	if summary.TotalSessions > 0 {
		summary.CompletionRate = float64(summary.CompletedSessions) / float64(summary.TotalSessions)
	}

	times := make(stats.Float64Data, 0, len(choices))
	for _, choice := range choices {
		summary.ChoiceDistribution[choice.Choice]++
		times = append(times, float64(choice.ResponseTimeMs))
	}
	if len(times) == 0 {
		return summary
	}

	// stats errors only on empty input, which is guarded above.
	summary.ResponseTime.Min, _ = stats.Min(times)
	summary.ResponseTime.Mean, _ = stats.Mean(times)
	summary.ResponseTime.Max, _ = stats.Max(times)
	summary.ResponseTime.Median, _ = stats.Median(times)
	summary.ResponseTime.StdDev, _ = stats.StandardDeviation(times)
	return summary
}
