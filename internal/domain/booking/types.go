package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// allowedTransitions encodes the only status moves the back office may make.
// completed and cancelled are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Duration is the rental length in hours. Pricing treats 4 hours as the
// canonical unit; every other duration is a linear multiple of it.
type Duration int

var validDurations = []Duration{3, 4, 5, 6, 8}

func (d Duration) IsValid() bool {
	for _, v := range validDurations {
		if d == v {
			return true
		}
	}
	return false
}

func (d Duration) Hours() int {
	return int(d)
}

func NewDuration(hours int) (Duration, error) {
	d := Duration(hours)
	if !d.IsValid() {
		return 0, ErrInvalidDuration
	}
	return d, nil
}

func ValidDurations() []Duration {
	return validDurations
}
