package bookingRepo

import "mazdoor/models"

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByCustomer(customerID string) ([]models.Booking, error)
	ListByWorker(workerID string) ([]models.Booking, error)
	// ApplyTransition atomically moves a booking from fromStatus to
	// newStatus, appending the timeline event and optionally setting the
	// final price. It reports whether the compare-and-set matched; a false
	// return means the booking was not in fromStatus at write time.
	ApplyTransition(bookingID, fromStatus, newStatus string, event models.TimelineEvent, finalPrice *float64) (bool, error)
}
