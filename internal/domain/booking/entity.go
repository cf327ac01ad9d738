package booking

import (
	"errors"
	"net/mail"
	"strings"

	"slotbook/internal/domain/availability"
)

var (
	ErrEmptySlot      = errors.New("booking slot required")
	ErrEmptyName      = errors.New("requester name required")
	ErrInvalidEmail   = errors.New("invalid requester email")
	ErrEmptyTopic     = errors.New("meeting topic required")
	ErrSlotNotAligned = errors.New("slot end must follow slot start")
)

// Request is one confirmed slot plus requester identity. Immutable once
// constructed; a single workflow execution owns it exclusively.
type Request struct {
	slot           availability.Slot
	requesterName  string
	requesterEmail string
	topic          string
}

func NewRequest(slot availability.Slot, requesterName, requesterEmail, topic string) (Request, error) {
	if slot.IsZero() {
		return Request{}, ErrEmptySlot
	}
	if !slot.Start.Before(slot.End) {
		return Request{}, ErrSlotNotAligned
	}

	requesterName = strings.TrimSpace(requesterName)
	if requesterName == "" {
		return Request{}, ErrEmptyName
	}

	requesterEmail = strings.TrimSpace(requesterEmail)
	if _, err := mail.ParseAddress(requesterEmail); err != nil {
		return Request{}, ErrInvalidEmail
	}

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Request{}, ErrEmptyTopic
	}

	return Request{
		slot:           slot,
		requesterName:  requesterName,
		requesterEmail: requesterEmail,
		topic:          topic,
	}, nil
}

func (r Request) Slot() availability.Slot { return r.slot }
func (r Request) RequesterName() string   { return r.requesterName }
func (r Request) RequesterEmail() string  { return r.requesterEmail }
func (r Request) Topic() string           { return r.topic }

// Result is the write-once record of one workflow execution. The coordinator
// constructs it, returns it once, and never mutates it afterward.
type Result struct {
	Resource       ResourceOutcome
	Notification   Outcome
	CalendarRecord Outcome
}

func (r *Result) ResourceCreated() bool {
	return r.Resource.Succeeded()
}

func (r *Result) FullySucceeded() bool {
	return r.Resource.Succeeded() && r.Notification.Succeeded() && r.CalendarRecord.Succeeded()
}

// FailedStages lists the stages that failed, in workflow order. Skipped
// stages are not failures.
func (r *Result) FailedStages() []string {
	var stages []string
	if r.Resource.Failed() {
		stages = append(stages, StageResource)
	}
	if r.Notification.Failed() {
		stages = append(stages, StageNotification)
	}
	if r.CalendarRecord.Failed() {
		stages = append(stages, StageCalendarRecord)
	}
	return stages
}
