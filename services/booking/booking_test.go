package booking

import (
	"fmt"
	"testing"
	"time"

	workerRepo "mazdoor/database/repository/worker"
	"mazdoor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByWorker(workerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.WorkerID == workerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ApplyTransition(bookingID, fromStatus, newStatus string, event models.TimelineEvent, finalPrice *float64) (bool, error) {
	b, ok := r.bookings[bookingID]
	if !ok || b.Status != fromStatus {
		return false, nil
	}
	b.Status = newStatus
	b.Timeline = append(b.Timeline, event)
	if finalPrice != nil {
		v := *finalPrice
		b.FinalPrice = &v
	}
	b.UpdatedAt = time.Now()
	return true, nil
}

// fakeWorkerRepo is an in-memory WorkerRepository.
type fakeWorkerRepo struct {
	workers       map[string]*models.WorkerProfile
	jobsCompleted map[string]int
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{
		workers:       make(map[string]*models.WorkerProfile),
		jobsCompleted: make(map[string]int),
	}
}

func (r *fakeWorkerRepo) Create(p *models.WorkerProfile) error {
	cp := *p
	r.workers[p.ID] = &cp
	return nil
}

func (r *fakeWorkerRepo) Update(p *models.WorkerProfile) error {
	if _, ok := r.workers[p.ID]; !ok {
		return fmt.Errorf("worker profile %s not found", p.ID)
	}
	cp := *p
	r.workers[p.ID] = &cp
	return nil
}

func (r *fakeWorkerRepo) GetByID(id string) (*models.WorkerProfile, error) {
	p, ok := r.workers[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeWorkerRepo) GetByUserID(userID string) (*models.WorkerProfile, error) {
	for _, p := range r.workers {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWorkerRepo) List(criteria workerRepo.ListCriteria) ([]models.WorkerProfile, error) {
	var out []models.WorkerProfile
	for _, p := range r.workers {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeWorkerRepo) SetRating(workerID string, rating float64, reviewCount int) error {
	p, ok := r.workers[workerID]
	if !ok {
		return fmt.Errorf("worker profile %s not found", workerID)
	}
	p.Rating = rating
	p.ReviewCount = reviewCount
	return nil
}

func (r *fakeWorkerRepo) IncrementJobsCompleted(workerID string) error {
	r.jobsCompleted[workerID]++
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeWorkerRepo) {
	bookings := newFakeBookingRepo()
	workers := newFakeWorkerRepo()
	workers.Create(&models.WorkerProfile{
		ID:       "w1",
		UserID:   "worker-user-1",
		Name:     "Ahmed Raza",
		Category: "electrician",
		PriceMin: 500,
		PriceMax: 2000,
		Services: []models.ServiceOffering{
			{ID: "svc-fan", Name: "Fan installation", PriceMin: 800, PriceMax: 1500},
		},
		Location: "Lahore",
	})
	svc := &DefaultBookingService{Repo: bookings, WorkerRepo: workers}
	return svc, bookings, workers
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		CustomerID:    "cust-1",
		WorkerID:      "w1",
		Service:       "svc-fan",
		Date:          time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		TimeSlot:      "10:00-12:00",
		Address:       "House 12, Gulberg III, Lahore",
		PaymentMethod: models.PaymentCash,
	}
}

func TestCreate_Success(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, bk.Status)
	assert.Equal(t, 800.0, bk.EstimatedPrice.Min)
	assert.Equal(t, 1500.0, bk.EstimatedPrice.Max)
	assert.Equal(t, 80.0, bk.PlatformFee) // 10% of the estimated minimum
	require.Len(t, bk.Timeline, 1)
	assert.Equal(t, "Booking created", bk.Timeline[0].Event)
	assert.Nil(t, bk.FinalPrice)
}

func TestCreate_FallsBackToWorkerPriceRange(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.Service = "general repair work"

	bk, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, 500.0, bk.EstimatedPrice.Min)
	assert.Equal(t, 2000.0, bk.EstimatedPrice.Max)
	assert.Equal(t, 50.0, bk.PlatformFee)
}

func TestCreate_EstimateOrderingAndFee(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	assert.LessOrEqual(t, bk.EstimatedPrice.Min, bk.EstimatedPrice.Max)
	assert.GreaterOrEqual(t, bk.PlatformFee, 0.0)
}

func TestCreate_RejectsPastDate(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := svc.Create(req)
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestCreate_RejectsBeyondHorizon(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.Date = time.Now().AddDate(0, 0, 45).Format("2006-01-02")

	_, err := svc.Create(req)
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestCreate_RejectsUnknownTimeSlot(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.TimeSlot = "02:00-04:00"

	_, err := svc.Create(req)
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestCreate_RejectsUnknownPaymentMethod(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.PaymentMethod = "bitcoin"

	_, err := svc.Create(req)
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestCreate_UnknownWorker(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.WorkerID = "nope"

	_, err := svc.Create(req)
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestTransitionStatus_FullLifecycle(t *testing.T) {
	svc, _, workers := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	bk, err = svc.TransitionStatus(bk.ID, models.BookingConfirmed, "worker-user-1", models.RoleWorker, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, bk.Status)

	bk, err = svc.TransitionStatus(bk.ID, models.BookingInProgress, "worker-user-1", models.RoleWorker, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingInProgress, bk.Status)

	final := 1200.0
	bk, err = svc.TransitionStatus(bk.ID, models.BookingCompleted, "worker-user-1", models.RoleWorker, &final)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, bk.Status)
	require.NotNil(t, bk.FinalPrice)
	assert.Equal(t, 1200.0, *bk.FinalPrice)
	assert.Equal(t, 1, workers.jobsCompleted["w1"])

	// Timeline: created + three transitions, in order.
	require.Len(t, bk.Timeline, 4)
	assert.Equal(t, "Booking created", bk.Timeline[0].Event)
	assert.Equal(t, models.BookingConfirmed, bk.Timeline[1].Event)
	assert.Equal(t, models.BookingInProgress, bk.Timeline[2].Event)
	assert.Equal(t, models.BookingCompleted, bk.Timeline[3].Event)
}

func TestTransitionStatus_RejectsSkippingStates(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	_, err = svc.TransitionStatus(bk.ID, models.BookingCompleted, "worker-user-1", models.RoleWorker, nil)
	var invalid InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestTransitionStatus_TerminalStateIsImmutable(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	for _, next := range []string{models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted} {
		_, err = svc.TransitionStatus(bk.ID, next, "worker-user-1", models.RoleWorker, nil)
		require.NoError(t, err)
	}

	_, err = svc.TransitionStatus(bk.ID, models.BookingInProgress, "worker-user-1", models.RoleWorker, nil)
	var invalid InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestTransitionStatus_FinalPriceOnlyOnCompletion(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	final := 900.0
	_, err = svc.TransitionStatus(bk.ID, models.BookingConfirmed, "worker-user-1", models.RoleWorker, &final)
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestTransitionStatus_CustomerCannotConfirm(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	_, err = svc.TransitionStatus(bk.ID, models.BookingConfirmed, "cust-1", models.RoleCustomer, nil)
	var invalid InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestTransitionStatus_CustomerMayCancelPending(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	bk, err = svc.TransitionStatus(bk.ID, models.BookingCancelled, "cust-1", models.RoleCustomer, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, bk.Status)
}

func TestTransitionStatus_DisputeResolutionIsAdminOnly(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	for _, next := range []string{models.BookingConfirmed, models.BookingInProgress} {
		_, err = svc.TransitionStatus(bk.ID, next, "worker-user-1", models.RoleWorker, nil)
		require.NoError(t, err)
	}
	_, err = svc.TransitionStatus(bk.ID, models.BookingDisputed, "cust-1", models.RoleCustomer, nil)
	require.NoError(t, err)

	_, err = svc.TransitionStatus(bk.ID, models.BookingCompleted, "worker-user-1", models.RoleWorker, nil)
	var invalid InvalidTransitionError
	require.ErrorAs(t, err, &invalid)

	bk, err = svc.TransitionStatus(bk.ID, models.BookingCompleted, "admin-1", models.RoleAdmin, nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, bk.Status)
}

func TestTransitionStatus_StrangerCannotTouchBooking(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	_, err = svc.TransitionStatus(bk.ID, models.BookingCancelled, "someone-else", models.RoleCustomer, nil)
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestTransitionStatus_UnknownBooking(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.TransitionStatus("missing", models.BookingConfirmed, "worker-user-1", models.RoleWorker, nil)
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestExpireBooking_CancelsPending(t *testing.T) {
	svc, bookings, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ExpireBooking(bk.ID))
	stored, _ := bookings.GetByID(bk.ID)
	assert.Equal(t, models.BookingCancelled, stored.Status)
	assert.Equal(t, "Expired", stored.Timeline[len(stored.Timeline)-1].Event)
}

func TestExpireBooking_LeavesCompletedAlone(t *testing.T) {
	svc, bookings, _ := newTestService()

	bk, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	for _, next := range []string{models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted} {
		_, err = svc.TransitionStatus(bk.ID, next, "worker-user-1", models.RoleWorker, nil)
		require.NoError(t, err)
	}

	require.NoError(t, svc.ExpireBooking(bk.ID))
	stored, _ := bookings.GetByID(bk.ID)
	assert.Equal(t, models.BookingCompleted, stored.Status)
}

func TestExpireBooking_UnknownBookingIsNoop(t *testing.T) {
	svc, _, _ := newTestService()
	require.NoError(t, svc.ExpireBooking("missing"))
}
