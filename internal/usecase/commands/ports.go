package commands

import (
	"time"

	"github.com/google/uuid"
)

// ResourceSnapshot is the provider's view of the created meeting resource,
// consumed by both finalization actions.
type ResourceSnapshot struct {
	ID       string
	JoinURL  string
	Start    time.Time
	Duration time.Duration
}

// BookingRecord is the write-side row persisted per workflow execution.
type BookingRecord struct {
	ID                 uuid.UUID
	Topic              string
	RequesterName      string
	RequesterEmail     string
	SlotStart          time.Time
	SlotEnd            time.Time
	ResourceStatus     string
	ResourceID         *string
	JoinURL            *string
	ResourceReason     *string
	NotificationStatus string
	NotificationReason *string
	CalendarStatus     string
	CalendarEventID    *string
	CalendarReason     *string
	CreatedAt          time.Time
}
