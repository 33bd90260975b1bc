package reviewRepo

import "mazdoor/models"

// RatingAggregate is the result of a full recompute over a worker's reviews.
type RatingAggregate struct {
	Average float64
	Count   int
}

// ReviewRepository defines data access for reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByBookingID(bookingID string) (*models.Review, error)
	ListByWorker(workerID string) ([]models.Review, error)
	// AggregateForWorker computes the mean rating and review count over all
	// reviews for the worker in a single statement.
	AggregateForWorker(workerID string) (RatingAggregate, error)
}
