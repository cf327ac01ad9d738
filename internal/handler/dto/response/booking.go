package response

import (
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type StepOutcomeResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type ResourceOutcomeResponse struct {
	Status          string     `json:"status"`
	Detail          string     `json:"detail,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	ResourceID      string     `json:"resource_id,omitempty"`
	JoinURL         string     `json:"join_url,omitempty"`
	Start           *time.Time `json:"start,omitempty"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
}

type BookingResponse struct {
	Resource       ResourceOutcomeResponse `json:"resource"`
	Notification   StepOutcomeResponse     `json:"notification"`
	CalendarRecord StepOutcomeResponse     `json:"calendar_record"`
	FullySucceeded bool                    `json:"fully_succeeded"`
	FailedStages   []string                `json:"failed_stages,omitempty"`
}

func FromResult(result *booking.Result) BookingResponse {
	resource := ResourceOutcomeResponse{
		Status: result.Resource.Status.String(),
		Detail: result.Resource.Detail,
		Reason: result.Resource.Reason,
	}
	if result.ResourceCreated() {
		resource.ResourceID = result.Resource.ResourceID
		resource.JoinURL = result.Resource.JoinURL
		start := result.Resource.Start
		resource.Start = &start
		resource.DurationMinutes = int(result.Resource.Duration.Minutes())
	}

	return BookingResponse{
		Resource:       resource,
		Notification:   fromOutcome(result.Notification),
		CalendarRecord: fromOutcome(result.CalendarRecord),
		FullySucceeded: result.FullySucceeded(),
		FailedStages:   result.FailedStages(),
	}
}

func fromOutcome(o booking.Outcome) StepOutcomeResponse {
	return StepOutcomeResponse{
		Status: o.Status.String(),
		Detail: o.Detail,
		Reason: o.Reason,
	}
}

type BookingHistoryResponse struct {
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

func FromBookingView(v *queries.BookingView) *BookingHistoryResponse {
	return &BookingHistoryResponse{
		ID:                 v.ID,
		Topic:              v.Topic,
		RequesterName:      v.RequesterName,
		RequesterEmail:     v.RequesterEmail,
		SlotStart:          v.SlotStart,
		SlotEnd:            v.SlotEnd,
		ResourceStatus:     v.ResourceStatus,
		ResourceID:         v.ResourceID,
		JoinURL:            v.JoinURL,
		ResourceReason:     v.ResourceReason,
		NotificationStatus: v.NotificationStatus,
		NotificationReason: v.NotificationReason,
		CalendarStatus:     v.CalendarStatus,
		CalendarEventID:    v.CalendarEventID,
		CalendarReason:     v.CalendarReason,
		CreatedAt:          v.CreatedAt,
	}
}

type BookingListResponse struct {
	ID             uuid.UUID `json:"id"`
	Topic          string    `json:"topic"`
	RequesterEmail string    `json:"requester_email"`
	SlotStart      time.Time `json:"slot_start"`
	SlotEnd        time.Time `json:"slot_end"`
	ResourceStatus string    `json:"resource_status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:             item.ID,
		Topic:          item.Topic,
		RequesterEmail: item.RequesterEmail,
		SlotStart:      item.SlotStart,
		SlotEnd:        item.SlotEnd,
		ResourceStatus: item.ResourceStatus,
		CreatedAt:      item.CreatedAt,
	}
}
