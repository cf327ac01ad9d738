package availability

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRequest  = errors.New("invalid search request")
	ErrInvalidInterval = errors.New("invalid busy interval")
	ErrInvalidHours    = errors.New("invalid business hours")
)

const (
	DefaultLookahead  = 7 * 24 * time.Hour
	DefaultMaxResults = 5
)

// BusyInterval is a half-open [start, end) range already occupied on the calendar.
type BusyInterval struct {
	start time.Time
	end   time.Time
}

func NewBusyInterval(start, end time.Time) (BusyInterval, error) {
	if !start.Before(end) {
		return BusyInterval{}, fmt.Errorf("%w: start must be before end", ErrInvalidInterval)
	}
	return BusyInterval{start: start, end: end}, nil
}

func (b BusyInterval) Start() time.Time {
	return b.start
}

func (b BusyInterval) End() time.Time {
	return b.end
}

// Overlaps reports whether the interval intersects [start, end), half-open on both sides.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.end) && end.After(b.start)
}

type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: time of day %02d:%02d out of range", ErrInvalidHours, hour, minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func (t TimeOfDay) Hour() int {
	return t.hour
}

func (t TimeOfDay) Minute() int {
	return t.minute
}

func (t TimeOfDay) minutes() int {
	return t.hour*60 + t.minute
}

// on projects the time of day onto day's calendar date, in day's zone.
func (t TimeOfDay) on(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, 0, 0, day.Location())
}

// BusinessHours is the weekday/open/close policy a slot must fit into.
// Open and close are wall-clock times, recomputed per calendar day in the
// search zone, so a DST transition mid-search shifts the absolute offsets
// but never the local opening hours.
type BusinessHours struct {
	days  map[time.Weekday]struct{}
	open  TimeOfDay
	close TimeOfDay
}

func NewBusinessHours(days []time.Weekday, open, closing TimeOfDay) (BusinessHours, error) {
	if len(days) == 0 {
		return BusinessHours{}, fmt.Errorf("%w: at least one weekday required", ErrInvalidHours)
	}
	if open.minutes() >= closing.minutes() {
		return BusinessHours{}, fmt.Errorf("%w: open must be before close", ErrInvalidHours)
	}
	set := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return BusinessHours{days: set, open: open, close: closing}, nil
}

// DefaultBusinessHours is Mon-Fri 08:00-17:00.
func DefaultBusinessHours() BusinessHours {
	h, _ := NewBusinessHours(
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		TimeOfDay{hour: 8},
		TimeOfDay{hour: 17},
	)
	return h
}

func (h BusinessHours) IsZero() bool {
	return h.days == nil
}

func (h BusinessHours) Allows(d time.Weekday) bool {
	_, ok := h.days[d]
	return ok
}

func (h BusinessHours) Open() TimeOfDay {
	return h.open
}

func (h BusinessHours) Close() TimeOfDay {
	return h.close
}

// OpenOn returns the opening instant on day's calendar date.
func (h BusinessHours) OpenOn(day time.Time) time.Time {
	return h.open.on(day)
}

// CloseOn returns the closing instant on day's calendar date.
func (h BusinessHours) CloseOn(day time.Time) time.Time {
	return h.close.on(day)
}

// Slot is a candidate interval of the requested duration, conflict-free and
// inside business hours. Start and End carry the zone of the search origin.
type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

func (s Slot) IsZero() bool {
	return s.Start.IsZero() || s.End.IsZero()
}

type SearchRequest struct {
	Duration   time.Duration
	From       time.Time
	Lookahead  time.Duration
	MaxResults int
	Hours      BusinessHours
}

// Normalized fills in the defaults for unset optional fields.
func (r SearchRequest) Normalized() SearchRequest {
	if r.Lookahead == 0 {
		r.Lookahead = DefaultLookahead
	}
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
	if r.Hours.IsZero() {
		r.Hours = DefaultBusinessHours()
	}
	return r
}

func (r SearchRequest) Validate() error {
	if r.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidRequest)
	}
	if r.Lookahead <= 0 {
		return fmt.Errorf("%w: lookahead must be positive", ErrInvalidRequest)
	}
	if r.MaxResults <= 0 {
		return fmt.Errorf("%w: max results must be positive", ErrInvalidRequest)
	}
	if r.From.IsZero() {
		return fmt.Errorf("%w: search origin required", ErrInvalidRequest)
	}
	return nil
}
