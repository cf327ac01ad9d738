package request

import (
	"strings"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
)

type CreateBookingRequest struct {
	SlotStart      time.Time `json:"slot_start" binding:"required"`
	SlotEnd        time.Time `json:"slot_end" binding:"required"`
	RequesterName  string    `json:"requester_name" binding:"required"`
	RequesterEmail string    `json:"requester_email" binding:"required"`
	Topic          string    `json:"topic" binding:"required"`
}

func (r CreateBookingRequest) ToDomain() (booking.Request, error) {
	slot := availability.Slot{Start: r.SlotStart, End: r.SlotEnd}
	return booking.NewRequest(
		slot,
		strings.TrimSpace(r.RequesterName),
		strings.TrimSpace(r.RequesterEmail),
		strings.TrimSpace(r.Topic),
	)
}
