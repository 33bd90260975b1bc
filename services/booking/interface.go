package booking

import (
	bookingRepo "mazdoor/database/repository/booking"
	workerRepo "mazdoor/database/repository/worker"
	"mazdoor/models"

	"github.com/hibiken/asynq"
)

// CreateRequest carries the validated booking-creation fields.
type CreateRequest struct {
	CustomerID    string
	WorkerID      string `json:"workerId" binding:"required"`
	Service       string `json:"service" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TimeSlot      string `json:"timeSlot" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// BookingService manages the booking lifecycle.
type BookingService interface {
	Create(req CreateRequest) (*models.Booking, error)
	TransitionStatus(bookingID, newStatus, actorID, actorRole string, finalPrice *float64) (*models.Booking, error)
	ListForCustomer(customerID string) ([]models.Booking, error)
	ListForWorker(workerUserID string) ([]models.Booking, error)
	// ExpireBooking cancels a booking that is still awaiting service after
	// its date has passed. Invoked by the background worker; idempotent.
	ExpireBooking(bookingID string) error
}

// DefaultBookingService is the production implementation. TaskClient is
// optional; when nil, no expiry task is scheduled.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	WorkerRepo workerRepo.WorkerRepository
	TaskClient *asynq.Client
}
