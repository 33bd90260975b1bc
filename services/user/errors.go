package user

import "fmt"

// AlreadyExistsError signals a duplicate phone or email at signup.
type AlreadyExistsError struct {
	Field string
}

func (e AlreadyExistsError) Error() string {
	return fmt.Sprintf("an account with this %s already exists", e.Field)
}

// UnauthorizedError signals bad credentials or a missing account at login.
type UnauthorizedError struct{}

func (e UnauthorizedError) Error() string {
	return "invalid phone number or password"
}

// ValidationError signals malformed or out-of-range signup input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// NotFoundError signals an absent user.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.ID)
}
