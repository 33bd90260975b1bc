package review

import "fmt"

// AlreadyReviewedError signals a second review attempt on the same booking.
type AlreadyReviewedError struct {
	BookingID string
}

func (e AlreadyReviewedError) Error() string {
	return fmt.Sprintf("booking %s has already been reviewed", e.BookingID)
}

// NotFoundError signals an absent booking.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// ValidationError signals out-of-range or ineligible review input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}
