package review

import (
	"fmt"
	"testing"
	"time"

	reviewRepo "mazdoor/database/repository/review"
	workerRepo "mazdoor/database/repository/worker"
	"mazdoor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReviewRepo stores reviews in memory and computes aggregates from the
// full set, mirroring the Mongo pipeline.
type fakeReviewRepo struct {
	reviews []models.Review
}

func (r *fakeReviewRepo) Create(rv *models.Review) error {
	for _, existing := range r.reviews {
		if existing.BookingID == rv.BookingID {
			return reviewRepo.ErrDuplicateReview
		}
	}
	rv.CreatedAt = time.Now()
	r.reviews = append(r.reviews, *rv)
	return nil
}

func (r *fakeReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	for i := range r.reviews {
		if r.reviews[i].BookingID == bookingID {
			cp := r.reviews[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) ListByWorker(workerID string) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.WorkerID == workerID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) AggregateForWorker(workerID string) (reviewRepo.RatingAggregate, error) {
	var sum, count int
	for _, rv := range r.reviews {
		if rv.WorkerID == workerID {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return reviewRepo.RatingAggregate{}, nil
	}
	return reviewRepo.RatingAggregate{
		Average: float64(sum) / float64(count),
		Count:   count,
	}, nil
}

// fakeBookingStore holds bookings keyed by id.
type fakeBookingStore struct {
	bookings map[string]*models.Booking
}

func (r *fakeBookingStore) Create(b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingStore) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingStore) ListByCustomer(string) ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingStore) ListByWorker(string) ([]models.Booking, error)  { return nil, nil }

func (r *fakeBookingStore) ApplyTransition(bookingID, fromStatus, newStatus string, event models.TimelineEvent, finalPrice *float64) (bool, error) {
	return false, nil
}

// fakeWorkerStore records the last SetRating write per worker.
type fakeWorkerStore struct {
	ratings map[string]reviewRepo.RatingAggregate
}

func (r *fakeWorkerStore) Create(*models.WorkerProfile) error { return nil }
func (r *fakeWorkerStore) Update(*models.WorkerProfile) error { return nil }
func (r *fakeWorkerStore) GetByID(string) (*models.WorkerProfile, error) {
	return nil, nil
}
func (r *fakeWorkerStore) GetByUserID(string) (*models.WorkerProfile, error) { return nil, nil }
func (r *fakeWorkerStore) List(workerRepo.ListCriteria) ([]models.WorkerProfile, error) {
	return nil, nil
}

func (r *fakeWorkerStore) SetRating(workerID string, rating float64, reviewCount int) error {
	r.ratings[workerID] = reviewRepo.RatingAggregate{Average: rating, Count: reviewCount}
	return nil
}

func (r *fakeWorkerStore) IncrementJobsCompleted(string) error { return nil }

func newTestService() (*DefaultReviewService, *fakeReviewRepo, *fakeBookingStore, *fakeWorkerStore) {
	reviews := &fakeReviewRepo{}
	bookings := &fakeBookingStore{bookings: make(map[string]*models.Booking)}
	workers := &fakeWorkerStore{ratings: make(map[string]reviewRepo.RatingAggregate)}
	svc := &DefaultReviewService{Repo: reviews, BookingRepo: bookings, WorkerRepo: workers}
	return svc, reviews, bookings, workers
}

func completedBooking(id, customerID, workerID string) *models.Booking {
	return &models.Booking{
		ID:         id,
		CustomerID: customerID,
		WorkerID:   workerID,
		Status:     models.BookingCompleted,
	}
}

func TestSubmit_Success(t *testing.T) {
	svc, _, bookings, workers := newTestService()
	bookings.Create(completedBooking("b1", "cust-1", "w1"))

	rv, err := svc.Submit(SubmitRequest{CustomerID: "cust-1", BookingID: "b1", Rating: 5, Text: "Bohat acha kaam"})
	require.NoError(t, err)
	assert.Equal(t, "w1", rv.WorkerID)
	assert.Equal(t, 5, rv.Rating)

	agg := workers.ratings["w1"]
	assert.Equal(t, 5.0, agg.Average)
	assert.Equal(t, 1, agg.Count)
}

func TestSubmit_RecomputesMeanOverAllReviews(t *testing.T) {
	svc, _, bookings, workers := newTestService()

	ratings := []int{5, 4, 4}
	for i, r := range ratings {
		id := fmt.Sprintf("b%d", i)
		bookings.Create(completedBooking(id, "cust-1", "w1"))
		_, err := svc.Submit(SubmitRequest{CustomerID: "cust-1", BookingID: id, Rating: r})
		require.NoError(t, err)
	}

	agg := workers.ratings["w1"]
	// mean(5,4,4) = 4.333..., rounded to one decimal.
	assert.Equal(t, 4.3, agg.Average)
	assert.Equal(t, 3, agg.Count)
}

func TestSubmit_RatingOutOfRange(t *testing.T) {
	svc, _, bookings, _ := newTestService()
	bookings.Create(completedBooking("b1", "cust-1", "w1"))

	for _, bad := range []int{0, 6, -1} {
		_, err := svc.Submit(SubmitRequest{CustomerID: "cust-1", BookingID: "b1", Rating: bad})
		var invalid ValidationError
		require.ErrorAs(t, err, &invalid)
	}
}

func TestSubmit_BookingNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Submit(SubmitRequest{CustomerID: "cust-1", BookingID: "missing", Rating: 4})
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSubmit_BookingBelongsToAnotherCustomer(t *testing.T) {
	svc, _, bookings, _ := newTestService()
	bookings.Create(completedBooking("b1", "cust-1", "w1"))

	_, err := svc.Submit(SubmitRequest{CustomerID: "cust-2", BookingID: "b1", Rating: 4})
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSubmit_BookingNotCompleted(t *testing.T) {
	svc, _, bookings, _ := newTestService()
	bk := completedBooking("b1", "cust-1", "w1")
	bk.Status = models.BookingInProgress
	bookings.Create(bk)

	_, err := svc.Submit(SubmitRequest{CustomerID: "cust-1", BookingID: "b1", Rating: 4})
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestSubmit_SecondReviewFails(t *testing.T) {
	svc, _, bookings, workers := newTestService()
	bookings.Create(completedBooking("b1", "cust-1", "w1"))

	_, err := svc.Submit(SubmitRequest{CustomerID: "cust-1", BookingID: "b1", Rating: 5})
	require.NoError(t, err)

	_, err = svc.Submit(SubmitRequest{CustomerID: "cust-1", BookingID: "b1", Rating: 1})
	var reviewed AlreadyReviewedError
	require.ErrorAs(t, err, &reviewed)

	// The failed second submit must not disturb the aggregate.
	agg := workers.ratings["w1"]
	assert.Equal(t, 5.0, agg.Average)
	assert.Equal(t, 1, agg.Count)
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.3, RoundRating(4.3333))
	assert.Equal(t, 4.7, RoundRating(4.6666))
	assert.Equal(t, 5.0, RoundRating(5))
	assert.Equal(t, 0.0, RoundRating(0))
}
