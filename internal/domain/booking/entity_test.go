//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Quarterly planning", actual.Topic())
		assert.Equal(t, "Taro Yamada", actual.RequesterName())
		assert.Equal(t, "taro@example.com", actual.RequesterEmail())
		assert.False(t, actual.Slot().IsZero())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero slot",
				mutate: func(b *builder.BookingBuilder) { b.SlotStart = time.Time{}; b.SlotEnd = time.Time{} },
				errIs:  booking.ErrEmptySlot,
			},
			{
				name:   "equal start and end",
				mutate: func(b *builder.BookingBuilder) { b.SlotEnd = b.SlotStart },
				errIs:  booking.ErrSlotNotAligned,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.SlotStart, b.SlotEnd = b.SlotEnd, b.SlotStart },
				errIs:  booking.ErrSlotNotAligned,
			},
			{
				name:   "blank requester name",
				mutate: func(b *builder.BookingBuilder) { b.RequesterName = "   " },
				errIs:  booking.ErrEmptyName,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.BookingBuilder) { b.RequesterEmail = "not-an-address" },
				errIs:  booking.ErrInvalidEmail,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.BookingBuilder) { b.RequesterEmail = "" },
				errIs:  booking.ErrInvalidEmail,
			},
			{
				name:   "blank topic",
				mutate: func(b *builder.BookingBuilder) { b.Topic = "" },
				errIs:  booking.ErrEmptyTopic,
			},
			{
				name:   "trimmed fields pass",
				mutate: func(b *builder.BookingBuilder) { b.RequesterName = "  Taro  "; b.Topic = " Sync " },
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().With(tc.mutate)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResult(t *testing.T) {
	t.Run("failed stages in workflow order", func(t *testing.T) {
		r := &booking.Result{
			Resource:       booking.NewResourceSuccess("123", "https://example.com/j/123", builder.NewBookingBuilder().SlotStart, 0),
			Notification:   booking.NewFailure("smtp down"),
			CalendarRecord: booking.NewFailure("quota exceeded"),
		}

		assert.True(t, r.ResourceCreated())
		assert.False(t, r.FullySucceeded())
		assert.Equal(t, []string{booking.StageNotification, booking.StageCalendarRecord}, r.FailedStages())
	})

	t.Run("skipped stages are not failures", func(t *testing.T) {
		r := &booking.Result{
			Resource:       booking.NewResourceFailure("timeout"),
			Notification:   booking.NewSkipped(),
			CalendarRecord: booking.NewSkipped(),
		}

		assert.False(t, r.ResourceCreated())
		assert.Equal(t, []string{booking.StageResource}, r.FailedStages())
	})

	t.Run("fully succeeded", func(t *testing.T) {
		r := &booking.Result{
			Resource:       booking.NewResourceSuccess("123", "https://example.com/j/123", builder.NewBookingBuilder().SlotStart, 0),
			Notification:   booking.NewSuccess("sent"),
			CalendarRecord: booking.NewSuccess("evt-1"),
		}

		assert.True(t, r.FullySucceeded())
		assert.Empty(t, r.FailedStages())
	})
}
