package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView represents one bookable candidate on the read side.
type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingView represents read-optimized workflow execution data.
type BookingView struct {
	ID                 uuid.UUID `json:"id"`
	Topic              string    `json:"topic"`
	RequesterName      string    `json:"requester_name"`
	RequesterEmail     string    `json:"requester_email"`
	SlotStart          time.Time `json:"slot_start"`
	SlotEnd            time.Time `json:"slot_end"`
	ResourceStatus     string    `json:"resource_status"`
	ResourceID         *string   `json:"resource_id,omitempty"`
	JoinURL            *string   `json:"join_url,omitempty"`
	ResourceReason     *string   `json:"resource_reason,omitempty"`
	NotificationStatus string    `json:"notification_status"`
	NotificationReason *string   `json:"notification_reason,omitempty"`
	CalendarStatus     string    `json:"calendar_status"`
	CalendarEventID    *string   `json:"calendar_event_id,omitempty"`
	CalendarReason     *string   `json:"calendar_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// BookingListItem is the trimmed list row for history pages.
type BookingListItem struct {
	ID             uuid.UUID `json:"id"`
	Topic          string    `json:"topic"`
	RequesterEmail string    `json:"requester_email"`
	SlotStart      time.Time `json:"slot_start"`
	SlotEnd        time.Time `json:"slot_end"`
	ResourceStatus string    `json:"resource_status"`
	CreatedAt      time.Time `json:"created_at"`
}
