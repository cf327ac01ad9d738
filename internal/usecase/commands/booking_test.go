//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"
	"slotbook/tests/common/builder"
	commandsmock "slotbook/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	provider *commandsmock.MockResourceProvider
	notifier *commandsmock.MockNotifier
	calendar *commandsmock.MockCalendarWriter
	recorder *commandsmock.MockBookingRecorder
	uc       commands.BookingCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		provider: commandsmock.NewMockResourceProvider(ctrl),
		notifier: commandsmock.NewMockNotifier(ctrl),
		calendar: commandsmock.NewMockCalendarWriter(ctrl),
		recorder: commandsmock.NewMockBookingRecorder(ctrl),
	}
	cfg := config.BookingConfig{
		ResourceTimeout: 200 * time.Millisecond,
		NotifyTimeout:   200 * time.Millisecond,
		RecordTimeout:   200 * time.Millisecond,
	}
	f.uc = commands.NewBookingCommands(
		f.provider, f.notifier, f.calendar, f.recorder,
		cfg, clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
	)
	return f
}

func testRequest(t *testing.T) booking.Request {
	t.Helper()
	req, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	return req
}

func snapshotFor(req booking.Request) *commands.ResourceSnapshot {
	return &commands.ResourceSnapshot{
		ID:       "85123456789",
		JoinURL:  "https://zoom.example/j/85123456789",
		Start:    req.Slot().Start,
		Duration: req.Slot().Duration(),
	}
}

func TestExecute_FullSuccess(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	snap := snapshotFor(req)

	created := f.provider.EXPECT().
		CreateResource(gomock.Any(), req.Topic(), req.Slot().Start, req.Slot().Duration()).
		Return(snap, nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), req.RequesterEmail(), gomock.Any(), gomock.Any()).
		Return(nil).
		After(created)
	f.calendar.EXPECT().
		RecordEvent(gomock.Any(), req.Topic(), req.Slot().Start, req.Slot().End, gomock.Any()).
		Return("evt-42", nil).
		After(created)

	var saved *commands.BookingRecord
	f.recorder.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *commands.BookingRecord) error {
			saved = rec
			return nil
		})

	result := f.uc.Execute(context.Background(), req)

	require.NotNil(t, result)
	assert.True(t, result.FullySucceeded())
	assert.Equal(t, snap.ID, result.Resource.ResourceID)
	assert.Equal(t, snap.JoinURL, result.Resource.JoinURL)
	assert.Equal(t, "evt-42", result.CalendarRecord.Detail)

	require.NotNil(t, saved)
	assert.Equal(t, booking.StepSucceeded.String(), saved.ResourceStatus)
	assert.Equal(t, booking.StepSucceeded.String(), saved.NotificationStatus)
	assert.Equal(t, booking.StepSucceeded.String(), saved.CalendarStatus)
	require.NotNil(t, saved.CalendarEventID)
	assert.Equal(t, "evt-42", *saved.CalendarEventID)
}

func TestExecute_ResourceFailureSkipsFinalization(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.provider.EXPECT().
		CreateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("zoom create meeting returned 429"))
	// no notifier or calendar expectations: the branches must never run
	f.recorder.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result := f.uc.Execute(context.Background(), req)

	assert.False(t, result.ResourceCreated())
	assert.Contains(t, result.Resource.Reason, "429")
	assert.Equal(t, booking.StepSkipped, result.Notification.Status)
	assert.Equal(t, booking.StepSkipped, result.CalendarRecord.Status)
	assert.Equal(t, []string{booking.StageResource}, result.FailedStages())
}

func TestExecute_NotificationFailureIsIsolated(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	snap := snapshotFor(req)

	f.provider.EXPECT().
		CreateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(snap, nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp relay refused"))
	f.calendar.EXPECT().
		RecordEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("evt-7", nil)

	var saved *commands.BookingRecord
	f.recorder.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *commands.BookingRecord) error {
			saved = rec
			return nil
		})

	result := f.uc.Execute(context.Background(), req)

	// one branch failing leaves the other untouched
	assert.True(t, result.ResourceCreated())
	assert.True(t, result.Notification.Failed())
	assert.Equal(t, "smtp relay refused", result.Notification.Reason)
	assert.True(t, result.CalendarRecord.Succeeded())
	assert.Equal(t, []string{booking.StageNotification}, result.FailedStages())

	require.NotNil(t, saved)
	require.NotNil(t, saved.NotificationReason)
	assert.Equal(t, "smtp relay refused", *saved.NotificationReason)
	require.NotNil(t, saved.ResourceID)
	assert.Equal(t, snap.ID, *saved.ResourceID)
}

func TestExecute_CalendarFailureIsIsolated(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	snap := snapshotFor(req)

	f.provider.EXPECT().
		CreateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(snap, nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.calendar.EXPECT().
		RecordEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("calendar quota exceeded"))
	f.recorder.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result := f.uc.Execute(context.Background(), req)

	assert.True(t, result.ResourceCreated())
	assert.True(t, result.Notification.Succeeded())
	assert.True(t, result.CalendarRecord.Failed())
	assert.Equal(t, []string{booking.StageCalendarRecord}, result.FailedStages())
}

func TestExecute_TimeoutReportedAsTimeout(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)

	f.provider.EXPECT().
		CreateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ time.Time, _ time.Duration) (*commands.ResourceSnapshot, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	f.recorder.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result := f.uc.Execute(context.Background(), req)

	assert.False(t, result.ResourceCreated())
	assert.Equal(t, booking.ReasonTimeout, result.Resource.Reason)
}

func TestExecute_BranchTimeoutDoesNotCancelSibling(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	snap := snapshotFor(req)

	f.provider.EXPECT().
		CreateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(snap, nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _, _ string) error {
			<-ctx.Done()
			return ctx.Err()
		})
	f.calendar.EXPECT().
		RecordEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("evt-9", nil)
	f.recorder.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result := f.uc.Execute(context.Background(), req)

	assert.Equal(t, booking.ReasonTimeout, result.Notification.Reason)
	assert.True(t, result.CalendarRecord.Succeeded())
}

func TestExecute_RecorderFailureDoesNotChangeResult(t *testing.T) {
	f := newFixture(t)
	req := testRequest(t)
	snap := snapshotFor(req)

	f.provider.EXPECT().
		CreateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(snap, nil)
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.calendar.EXPECT().
		RecordEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("evt-1", nil)
	f.recorder.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	result := f.uc.Execute(context.Background(), req)

	assert.True(t, result.FullySucceeded())
}
