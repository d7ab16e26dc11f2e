package assignment

type Status string

const (
	StatusAssigned  Status = "assigned"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusAbsent    Status = "absent"
)

// DefaultCancelReason is stored when a cancellation carries no reason.
const DefaultCancelReason = "Cancelled by administrator"

var transitions = map[Status][]Status{
	StatusAssigned: {StatusCompleted, StatusCancelled, StatusAbsent},
}

// ParseStatus accepts only the four persisted values.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusAssigned, StatusCompleted, StatusCancelled, StatusAbsent:
		return st, true
	}
	return "", false
}

// CanTransition reports whether from may move to to. Only assigned has
// outgoing transitions.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
