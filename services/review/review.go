package review

import (
	"errors"
	"fmt"
	"math"

	reviewRepo "mazdoor/database/repository/review"
	"mazdoor/models"
	"mazdoor/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit persists a review for a completed booking and recomputes the
// worker's aggregate rating from the full review set. The recompute is a
// single aggregate statement followed by one combined write of rating and
// reviewCount, so it is idempotent and replayable.
func (s *DefaultReviewService) Submit(req SubmitRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ValidationError{Reason: "rating must be an integer between 1 and 5"}
	}

	bk, err := s.BookingRepo.GetByID(req.BookingID)
	if err != nil {
		utils.GetLogger().Error("Submit: booking lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to submit review, please try again")
	}
	if bk == nil {
		return nil, NotFoundError{ID: req.BookingID}
	}
	if bk.CustomerID != req.CustomerID {
		return nil, NotFoundError{ID: req.BookingID}
	}
	if bk.Status != models.BookingCompleted {
		return nil, ValidationError{Reason: "only completed bookings can be reviewed"}
	}

	existing, err := s.Repo.GetByBookingID(req.BookingID)
	if err != nil {
		utils.GetLogger().Error("Submit: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("failed to submit review, please try again")
	}
	if existing != nil {
		return nil, AlreadyReviewedError{BookingID: req.BookingID}
	}

	rv := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  bk.ID,
		WorkerID:   bk.WorkerID,
		CustomerID: bk.CustomerID,
		Rating:     req.Rating,
		Text:       req.Text,
	}

	if err := s.Repo.Create(rv); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			// The unique index caught a concurrent double-submit.
			return nil, AlreadyReviewedError{BookingID: req.BookingID}
		}
		utils.GetLogger().Error("Submit: failed to persist review", zap.Error(err))
		return nil, fmt.Errorf("failed to submit review, please try again")
	}

	if err := s.recomputeWorkerRating(bk.WorkerID); err != nil {
		utils.GetLogger().Error("Submit: rating recompute failed",
			zap.String("workerId", bk.WorkerID), zap.Error(err))
		return nil, fmt.Errorf("review saved but rating update failed, please retry")
	}

	return rv, nil
}

// recomputeWorkerRating aggregates mean and count over all of the worker's
// reviews and writes both derived values in a single update.
func (s *DefaultReviewService) recomputeWorkerRating(workerID string) error {
	agg, err := s.Repo.AggregateForWorker(workerID)
	if err != nil {
		return err
	}
	rating := RoundRating(agg.Average)
	return s.WorkerRepo.SetRating(workerID, rating, agg.Count)
}

// RoundRating rounds a mean rating to one decimal place.
func RoundRating(mean float64) float64 {
	return math.Round(mean*10) / 10
}

// ListForWorker returns all reviews for a worker, newest first.
func (s *DefaultReviewService) ListForWorker(workerID string) ([]models.Review, error) {
	return s.Repo.ListByWorker(workerID)
}
