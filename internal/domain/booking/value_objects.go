package booking

import "time"

// Outcome is the terminal status of one workflow step.
type Outcome struct {
	Status StepStatus
	Detail string
	Reason string
}

func NewSuccess(detail string) Outcome {
	return Outcome{Status: StepSucceeded, Detail: detail}
}

func NewFailure(reason string) Outcome {
	return Outcome{Status: StepFailed, Reason: reason}
}

func NewSkipped() Outcome {
	return Outcome{Status: StepSkipped}
}

func (o Outcome) Succeeded() bool {
	return o.Status == StepSucceeded
}

func (o Outcome) Failed() bool {
	return o.Status == StepFailed
}

// ResourceOutcome carries the created resource's coordinates on top of the
// step status. ID and JoinURL stay populated on partial downstream failure so
// the caller always learns a resource exists.
type ResourceOutcome struct {
	Outcome
	ResourceID string
	JoinURL    string
	Start      time.Time
	Duration   time.Duration
}

func NewResourceSuccess(resourceID, joinURL string, start time.Time, duration time.Duration) ResourceOutcome {
	return ResourceOutcome{
		Outcome:    NewSuccess("resource " + resourceID + " created"),
		ResourceID: resourceID,
		JoinURL:    joinURL,
		Start:      start,
		Duration:   duration,
	}
}

func NewResourceFailure(reason string) ResourceOutcome {
	return ResourceOutcome{Outcome: NewFailure(reason)}
}
