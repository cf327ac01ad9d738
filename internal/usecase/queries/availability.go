package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
)

// BusySource is the read-only free/busy query on the calendar store.
// A source failure is propagated, not treated as an empty calendar:
// suggesting slots while blind to real conflicts risks double-booking.
type BusySource interface {
	QueryBusy(ctx context.Context, from, to time.Time) ([]availability.BusyInterval, error)
}

type SlotSearchInput struct {
	Duration   time.Duration
	From       time.Time
	Lookahead  time.Duration
	MaxResults int
}

type AvailabilityQueries interface {
	Search(ctx context.Context, in SlotSearchInput) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	busy  BusySource
	hours availability.BusinessHours
	clock clock.Clock
}

func NewAvailabilityQueries(busy BusySource, hours availability.BusinessHours, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		busy:  busy,
		hours: hours,
		clock: clock,
	}
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, in SlotSearchInput) ([]SlotView, error) {
	from := in.From
	if from.IsZero() {
		from = q.clock.Now()
	}

	req := availability.SearchRequest{
		Duration:   in.Duration,
		From:       from,
		Lookahead:  in.Lookahead,
		MaxResults: in.MaxResults,
		Hours:      q.hours,
	}.Normalized()

	// Fail fast on malformed input before touching the calendar store.
	if err := req.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSearch)
	}

	busy, err := q.busy.QueryBusy(ctx, req.From, req.From.Add(req.Lookahead))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBusyQueryFailed)
	}

	slots, err := availability.FindSlots(req, busy)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSearch)
	}

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{Start: s.Start, End: s.End}
	}
	return views, nil
}
