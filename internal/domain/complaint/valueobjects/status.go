package valueobjects

import "fmt"

// Status represents the lifecycle state of a complaint.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// statusTransitions defines the allowed lifecycle moves. A closed complaint
// can be reopened into in_progress when follow-up work is needed.
var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusResolved, StatusClosed},
	StatusInProgress: {StatusResolved, StatusClosed},
	StatusResolved:   {StatusInProgress, StatusClosed},
	StatusClosed:     {StatusInProgress},
}

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", value)
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
// Setting the current status again is always permitted as a no-op.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the active handling flow.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// AllStatuses returns every valid status value.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved, StatusClosed}
}
