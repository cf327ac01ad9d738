package gateway

import (
	"context"
	"slices"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var (
	ErrBusyQuery   = errs.New("free/busy query failed")
	ErrEventRecord = errs.New("calendar record failed")
)

// GoogleCalendar serves both calendar-facing ports: the read-only free/busy
// query feeding the availability search, and the event write finalizing a
// booking.
type GoogleCalendar struct {
	svc        *calendar.Service
	calendarID string
}

// NewGoogleCalendar builds the client. Extra options are appended after the
// token source, so tests can override the endpoint and authentication.
func NewGoogleCalendar(ctx context.Context, cfg config.GoogleConfig, opts ...option.ClientOption) (*GoogleCalendar, error) {
	clientOpts := append(
		[]option.ClientOption{option.WithTokenSource(googleTokenSource(ctx, cfg))},
		opts...,
	)
	svc, err := calendar.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build calendar service")
	}
	return &GoogleCalendar{svc: svc, calendarID: cfg.CalendarID}, nil
}

func (g *GoogleCalendar) QueryBusy(ctx context.Context, from, to time.Time) ([]availability.BusyInterval, error) {
	req := &calendar.FreeBusyRequest{
		TimeMin:  from.Format(time.RFC3339),
		TimeMax:  to.Format(time.RFC3339),
		TimeZone: from.Location().String(),
		Items:    []*calendar.FreeBusyRequestItem{{Id: g.calendarID}},
	}

	resp, err := g.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, errs.Mark(err, ErrBusyQuery)
	}

	cal, ok := resp.Calendars[g.calendarID]
	if !ok {
		return nil, errs.Mark(errs.New("calendar missing from free/busy response"), ErrBusyQuery)
	}

	intervals := make([]availability.BusyInterval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "malformed busy period start"), ErrBusyQuery)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "malformed busy period end"), ErrBusyQuery)
		}
		interval, err := availability.NewBusyInterval(start, end)
		if err != nil {
			return nil, errs.Mark(err, ErrBusyQuery)
		}
		intervals = append(intervals, interval)
	}

	slices.SortFunc(intervals, func(a, b availability.BusyInterval) int {
		return a.Start().Compare(b.Start())
	})
	return intervals, nil
}

func (g *GoogleCalendar) RecordEvent(ctx context.Context, summary string, start, end time.Time, description string) (string, error) {
	event := &calendar.Event{
		Summary:     summary,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", errs.Mark(err, ErrEventRecord)
	}
	return created.Id, nil
}
