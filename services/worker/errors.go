package worker

import "fmt"

// NotFoundError signals an absent worker profile.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("worker %s not found", e.ID)
}

// AlreadyExistsError signals a second profile for the same user account.
type AlreadyExistsError struct{}

func (e AlreadyExistsError) Error() string {
	return "this account already has a worker profile"
}

// ForbiddenError signals an actor editing a profile they do not own.
type ForbiddenError struct{}

func (e ForbiddenError) Error() string {
	return "not allowed to modify this worker profile"
}

// ValidationError signals malformed or inconsistent profile input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}
