package booking

type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

func (s StepStatus) String() string {
	return string(s)
}

func (s StepStatus) IsValid() bool {
	switch s {
	case StepSucceeded, StepFailed, StepSkipped:
		return true
	default:
		return false
	}
}

// Stage names as reported in a Result.
const (
	StageResource       = "resource"
	StageNotification   = "notification"
	StageCalendarRecord = "calendar_record"
)

// ReasonTimeout is the failure reason recorded when a stage exceeded its
// deadline. Timeouts are outcomes, not a distinct error class.
const ReasonTimeout = "timeout"
