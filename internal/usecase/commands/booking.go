package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"

	"github.com/google/uuid"
)

// ResourceProvider creates the joinable meeting session. One remote call;
// idempotency on retry is not guaranteed, so the coordinator never retries.
type ResourceProvider interface {
	CreateResource(ctx context.Context, topic string, start time.Time, duration time.Duration) (*ResourceSnapshot, error)
}

// Notifier delivers the confirmation message to the requester.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

// CalendarWriter records the booked event on the primary calendar and
// returns the record id.
type CalendarWriter interface {
	RecordEvent(ctx context.Context, summary string, start, end time.Time, description string) (string, error)
}

// BookingRecorder persists one BookingRecord per execution. Best effort: a
// recording failure never changes the returned result.
type BookingRecorder interface {
	Save(ctx context.Context, rec *BookingRecord) error
}

type BookingCommands interface {
	Execute(ctx context.Context, req booking.Request) *booking.Result
}

type bookingUseCaseImpl struct {
	provider ResourceProvider
	notifier Notifier
	calendar CalendarWriter
	recorder BookingRecorder
	cfg      config.BookingConfig
	clock    clock.Clock
}

func NewBookingCommands(
	provider ResourceProvider,
	notifier Notifier,
	calendar CalendarWriter,
	recorder BookingRecorder,
	cfg config.BookingConfig,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		provider: provider,
		notifier: notifier,
		calendar: calendar,
		recorder: recorder,
		cfg:      cfg,
		clock:    clock,
	}
}

// Execute runs one booking workflow: resource creation strictly first, then
// notification and calendar recording concurrently. Collaborator failures are
// captured per step inside the result, never raised; the caller decides how
// to react to partial failure. No compensation: a created resource stays in
// place even if both finalization steps fail.
func (u *bookingUseCaseImpl) Execute(ctx context.Context, req booking.Request) *booking.Result {
	result := &booking.Result{
		Notification:   booking.NewSkipped(),
		CalendarRecord: booking.NewSkipped(),
	}

	snap, err := u.createResource(ctx, req)
	if err != nil {
		result.Resource = booking.NewResourceFailure(failureReason(err))
		slog.Warn("resource creation failed, finalization skipped",
			"topic", req.Topic(), "reason", result.Resource.Reason)
		u.record(ctx, req, result)
		return result
	}
	result.Resource = booking.NewResourceSuccess(snap.ID, snap.JoinURL, snap.Start, snap.Duration)

	u.finalize(ctx, req, snap, result)
	u.record(ctx, req, result)
	return result
}

func (u *bookingUseCaseImpl) createResource(ctx context.Context, req booking.Request) (*ResourceSnapshot, error) {
	rctx, cancel := context.WithTimeout(ctx, u.cfg.ResourceTimeout)
	defer cancel()
	return u.provider.CreateResource(rctx, req.Topic(), req.Slot().Start, req.Slot().Duration())
}

// finalize fans out the two independent finalization actions and joins on
// both. Each runs under its own timeout; a failure or timeout on one branch
// must not cancel or alter the other, so no error short-circuiting here.
func (u *bookingUseCaseImpl) finalize(ctx context.Context, req booking.Request, snap *ResourceSnapshot, result *booking.Result) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		nctx, cancel := context.WithTimeout(ctx, u.cfg.NotifyTimeout)
		defer cancel()

		subject, body := confirmationMessage(req, snap)
		if err := u.notifier.Notify(nctx, req.RequesterEmail(), subject, body); err != nil {
			result.Notification = booking.NewFailure(failureReason(err))
			return
		}
		result.Notification = booking.NewSuccess("confirmation sent to " + req.RequesterEmail())
	}()

	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, u.cfg.RecordTimeout)
		defer cancel()

		description := eventDescription(req, snap)
		eventID, err := u.calendar.RecordEvent(cctx, req.Topic(), req.Slot().Start, req.Slot().End, description)
		if err != nil {
			result.CalendarRecord = booking.NewFailure(failureReason(err))
			return
		}
		result.CalendarRecord = booking.NewSuccess(eventID)
	}()

	wg.Wait()
}

func (u *bookingUseCaseImpl) record(ctx context.Context, req booking.Request, result *booking.Result) {
	rec := &BookingRecord{
		ID:                 uuid.New(),
		Topic:              req.Topic(),
		RequesterName:      req.RequesterName(),
		RequesterEmail:     req.RequesterEmail(),
		SlotStart:          req.Slot().Start,
		SlotEnd:            req.Slot().End,
		ResourceStatus:     result.Resource.Status.String(),
		NotificationStatus: result.Notification.Status.String(),
		CalendarStatus:     result.CalendarRecord.Status.String(),
		CreatedAt:          u.clock.Now(),
	}
	if result.Resource.Succeeded() {
		rec.ResourceID = &result.Resource.ResourceID
		rec.JoinURL = &result.Resource.JoinURL
	}
	if result.Resource.Failed() {
		rec.ResourceReason = &result.Resource.Reason
	}
	if result.Notification.Failed() {
		rec.NotificationReason = &result.Notification.Reason
	}
	if result.CalendarRecord.Succeeded() {
		rec.CalendarEventID = &result.CalendarRecord.Detail
	}
	if result.CalendarRecord.Failed() {
		rec.CalendarReason = &result.CalendarRecord.Reason
	}

	if err := u.recorder.Save(ctx, rec); err != nil {
		slog.Error("failed to persist booking record", "booking_id", rec.ID, "error", err)
	}
}

func confirmationMessage(req booking.Request, snap *ResourceSnapshot) (subject, body string) {
	subject = "Meeting confirmed: " + req.Topic()
	body = fmt.Sprintf(
		"Hi %s,\n\nYour meeting %q is booked.\n\nWhen: %s (%s)\nJoin: %s\nMeeting ID: %s\n",
		req.RequesterName(),
		req.Topic(),
		snap.Start.Format(time.RFC1123),
		snap.Duration,
		snap.JoinURL,
		snap.ID,
	)
	return subject, body
}

func eventDescription(req booking.Request, snap *ResourceSnapshot) string {
	return fmt.Sprintf("Join: %s\nRequested by: %s", snap.JoinURL, req.RequesterEmail())
}

func failureReason(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return booking.ReasonTimeout
	}
	return err.Error()
}
