package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingExpire = "booking:expire"

// BookingExpiryPayload identifies the booking to check once its date passes.
type BookingExpiryPayload struct {
	BookingID string `json:"bookingId"`
}

// NewBookingExpiryTask builds a deferred expiry task fired at the given time.
func NewBookingExpiryTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(BookingExpiryPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
