package booking

import "fmt"

// NotFoundError signals an absent booking or worker.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidTransitionError signals a status change outside the transition graph
// or one the acting role may not perform.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %q to %q", e.From, e.To)
}

// ValidationError signals malformed or out-of-range booking input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}
