package booking

import (
	"fmt"
	"time"

	"mazdoor/config"
	"mazdoor/models"
	"mazdoor/services/tasks"
	"mazdoor/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Create validates the request, quotes a price, and persists a pending
// booking with its first timeline event. A deferred expiry task is scheduled
// for the end of the booking date.
func (s *DefaultBookingService) Create(req CreateRequest) (*models.Booking, error) {
	if !utils.ValidTimeSlot(req.TimeSlot) {
		return nil, ValidationError{Reason: fmt.Sprintf("unknown time slot %q", req.TimeSlot)}
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, ValidationError{Reason: fmt.Sprintf("unknown payment method %q", req.PaymentMethod)}
	}

	bookingDate, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return nil, ValidationError{Reason: "date must be in YYYY-MM-DD format"}
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	horizon := config.AppConfig.BookingHorizonDays
	if horizon <= 0 {
		horizon = 30
	}
	if bookingDate.Before(today) {
		return nil, ValidationError{Reason: "booking date must not be in the past"}
	}
	if bookingDate.After(today.AddDate(0, 0, horizon)) {
		return nil, ValidationError{Reason: fmt.Sprintf("booking date must be within %d days", horizon)}
	}

	worker, err := s.WorkerRepo.GetByID(req.WorkerID)
	if err != nil {
		utils.GetLogger().Error("Create: worker lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking, please try again")
	}
	if worker == nil {
		return nil, NotFoundError{Kind: "worker", ID: req.WorkerID}
	}

	estimate := EstimatePrice(worker, req.Service)

	bk := &models.Booking{
		ID:             uuid.New().String(),
		CustomerID:     req.CustomerID,
		WorkerID:       req.WorkerID,
		Service:        req.Service,
		Date:           req.Date,
		TimeSlot:       req.TimeSlot,
		Address:        req.Address,
		Status:         models.BookingPending,
		EstimatedPrice: estimate,
		PlatformFee:    ComputePlatformFee(estimate),
		PaymentMethod:  req.PaymentMethod,
		Timeline: []models.TimelineEvent{
			{Event: "Booking created", Timestamp: time.Now()},
		},
	}

	if err := s.Repo.Create(bk); err != nil {
		utils.GetLogger().Error("Create: failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking, please try again")
	}

	s.scheduleExpiry(bk.ID, bookingDate)

	return bk, nil
}

// scheduleExpiry enqueues a deferred task that cancels the booking if it is
// still awaiting service once its date has passed.
func (s *DefaultBookingService) scheduleExpiry(bookingID string, bookingDate time.Time) {
	if s.TaskClient == nil {
		return
	}
	fireAt := bookingDate.AddDate(0, 0, 1) // midnight after the booking date
	task, opts, err := tasks.NewBookingExpiryTask(bookingID, fireAt)
	if err != nil {
		utils.GetLogger().Warn("scheduleExpiry: failed to build task", zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("scheduleExpiry: failed to enqueue task",
			zap.String("bookingId", bookingID), zap.Error(err))
	}
}

// TransitionStatus applies one edge of the status graph on behalf of an
// actor. The final price may only be set on the edge into completed. The
// repository write is a compare-and-set on the current status, so a racing
// transition surfaces as InvalidTransition rather than silently overwriting.
func (s *DefaultBookingService) TransitionStatus(bookingID, newStatus, actorID, actorRole string, finalPrice *float64) (*models.Booking, error) {
	bk, err := s.Repo.GetByID(bookingID)
	if err != nil {
		utils.GetLogger().Error("TransitionStatus: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update booking, please try again")
	}
	if bk == nil {
		return nil, NotFoundError{Kind: "booking", ID: bookingID}
	}

	if err := s.authorizeActor(bk, actorID, actorRole); err != nil {
		return nil, err
	}

	if !ValidTransition(bk.Status, newStatus) || !allowedForRole(bk.Status, newStatus, actorRole) {
		return nil, InvalidTransitionError{From: bk.Status, To: newStatus}
	}
	if finalPrice != nil && newStatus != models.BookingCompleted {
		return nil, ValidationError{Reason: "finalPrice may only be set when completing a booking"}
	}
	if finalPrice != nil && *finalPrice < 0 {
		return nil, ValidationError{Reason: "finalPrice must not be negative"}
	}

	event := models.TimelineEvent{Event: newStatus, Timestamp: time.Now()}
	applied, err := s.Repo.ApplyTransition(bookingID, bk.Status, newStatus, event, finalPrice)
	if err != nil {
		utils.GetLogger().Error("TransitionStatus: write failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update booking, please try again")
	}
	if !applied {
		// Lost the race: the booking left bk.Status between read and write.
		return nil, InvalidTransitionError{From: bk.Status, To: newStatus}
	}

	if newStatus == models.BookingCompleted {
		if err := s.WorkerRepo.IncrementJobsCompleted(bk.WorkerID); err != nil {
			utils.GetLogger().Warn("TransitionStatus: failed to bump jobsCompleted",
				zap.String("workerId", bk.WorkerID), zap.Error(err))
		}
	}

	updated, err := s.Repo.GetByID(bookingID)
	if err != nil || updated == nil {
		utils.GetLogger().Error("TransitionStatus: re-fetch failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update booking, please try again")
	}
	return updated, nil
}

// authorizeActor checks that the actor is a party to the booking. Admins may
// act on any booking; a worker actor is matched through their profile.
func (s *DefaultBookingService) authorizeActor(bk *models.Booking, actorID, actorRole string) error {
	switch actorRole {
	case models.RoleAdmin:
		return nil
	case models.RoleCustomer:
		if bk.CustomerID == actorID {
			return nil
		}
	case models.RoleWorker:
		profile, err := s.WorkerRepo.GetByUserID(actorID)
		if err != nil {
			utils.GetLogger().Error("authorizeActor: profile lookup failed", zap.Error(err))
			return fmt.Errorf("failed to update booking, please try again")
		}
		if profile != nil && profile.ID == bk.WorkerID {
			return nil
		}
	}
	return NotFoundError{Kind: "booking", ID: bk.ID}
}

// ListForCustomer returns the customer's bookings, most recent first.
func (s *DefaultBookingService) ListForCustomer(customerID string) ([]models.Booking, error) {
	return s.Repo.ListByCustomer(customerID)
}

// ListForWorker returns the bookings addressed to the worker owned by the
// given user account, most recent first.
func (s *DefaultBookingService) ListForWorker(workerUserID string) ([]models.Booking, error) {
	profile, err := s.WorkerRepo.GetByUserID(workerUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, NotFoundError{Kind: "worker profile for user", ID: workerUserID}
	}
	return s.Repo.ListByWorker(profile.ID)
}

// ExpireBooking cancels a booking still pending or confirmed after its date.
// Bookings that moved on are left untouched; the CAS makes retries harmless.
func (s *DefaultBookingService) ExpireBooking(bookingID string) error {
	bk, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if bk == nil {
		return nil
	}
	if bk.Status != models.BookingPending && bk.Status != models.BookingConfirmed {
		return nil
	}

	event := models.TimelineEvent{Event: "Expired", Timestamp: time.Now()}
	applied, err := s.Repo.ApplyTransition(bookingID, bk.Status, models.BookingCancelled, event, nil)
	if err != nil {
		return err
	}
	if applied {
		utils.GetLogger().Info("ExpireBooking: cancelled stale booking",
			zap.String("bookingId", bookingID), zap.String("was", bk.Status))
	}
	return nil
}
