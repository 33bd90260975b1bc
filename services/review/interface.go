package review

import (
	bookingRepo "mazdoor/database/repository/booking"
	reviewRepo "mazdoor/database/repository/review"
	workerRepo "mazdoor/database/repository/worker"
	"mazdoor/models"
)

// SubmitRequest carries the validated review fields.
type SubmitRequest struct {
	CustomerID string
	BookingID  string `json:"bookingId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Text       string `json:"text"`
}

// ReviewService handles review submission and rating aggregation.
type ReviewService interface {
	Submit(req SubmitRequest) (*models.Review, error)
	ListForWorker(workerID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
	WorkerRepo  workerRepo.WorkerRepository
}
