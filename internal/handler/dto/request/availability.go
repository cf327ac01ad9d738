package request

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type SearchAvailabilityRequest struct {
	DurationMinutes int        `form:"duration_minutes" binding:"required,min=1"`
	From            *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	LookaheadDays   int        `form:"lookahead_days" binding:"omitempty,min=1,max=90"`
	MaxResults      int        `form:"max_results" binding:"omitempty,min=1,max=50"`
}

func (r SearchAvailabilityRequest) ToInput() queries.SlotSearchInput {
	input := queries.SlotSearchInput{
		Duration:   time.Duration(r.DurationMinutes) * time.Minute,
		MaxResults: r.MaxResults,
	}
	if r.From != nil {
		input.From = *r.From
	}
	if r.LookaheadDays > 0 {
		input.Lookahead = time.Duration(r.LookaheadDays) * 24 * time.Hour
	}
	return input
}
