//go:build unit || e2e

package builder

import (
	"time"

	"slotbook/internal/domain/availability"
	dombooking "slotbook/internal/domain/booking"
	reqdto "slotbook/internal/handler/dto/request"
)

type BookingBuilder struct {
	SlotStart      time.Time
	SlotEnd        time.Time
	RequesterName  string
	RequesterEmail string
	Topic          string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		SlotStart:      start,
		SlotEnd:        start.Add(30 * time.Minute),
		RequesterName:  "Taro Yamada",
		RequesterEmail: "taro@example.com",
		Topic:          "Quarterly planning",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (dombooking.Request, error) {
	slot := availability.Slot{Start: b.SlotStart, End: b.SlotEnd}
	return dombooking.NewRequest(slot, b.RequesterName, b.RequesterEmail, b.Topic)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SlotStart:      b.SlotStart,
		SlotEnd:        b.SlotEnd,
		RequesterName:  b.RequesterName,
		RequesterEmail: b.RequesterEmail,
		Topic:          b.Topic,
	}
}
