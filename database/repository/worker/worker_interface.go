package workerRepo

import "mazdoor/models"

// ListCriteria narrows the worker list at the datastore level. Finer
// filtering and sorting happens in the worker service.
type ListCriteria struct {
	Category string
	Location string
}

// WorkerRepository defines data access for worker profiles.
type WorkerRepository interface {
	Create(profile *models.WorkerProfile) error
	Update(profile *models.WorkerProfile) error
	GetByID(id string) (*models.WorkerProfile, error)
	GetByUserID(userID string) (*models.WorkerProfile, error)
	List(criteria ListCriteria) ([]models.WorkerProfile, error)
	// SetRating writes the derived rating/reviewCount pair in a single
	// update so the two values can never be observed out of sync.
	SetRating(workerID string, rating float64, reviewCount int) error
	IncrementJobsCompleted(workerID string) error
}
