package response

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type SlotResponse struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

type AvailabilityResponse struct {
	Slots []SlotResponse `json:"slots"`
	Count int            `json:"count"`
}

func FromSlotViews(views []queries.SlotView) AvailabilityResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{
			Start:           v.Start,
			End:             v.End,
			DurationMinutes: int(v.End.Sub(v.Start).Minutes()),
		}
	}
	return AvailabilityResponse{Slots: slots, Count: len(slots)}
}
