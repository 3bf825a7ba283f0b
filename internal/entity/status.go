package entity

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Cancellation is modeled as deletion of the order, not a status value, so
// the whole lifecycle is pending -> completed.
var validNext = map[Status]map[Status]bool{
	StatusPending:   {StatusCompleted: true},
	StatusCompleted: {},
}

func (s Status) Valid() bool {
	_, ok := validNext[s]
	return ok
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}
