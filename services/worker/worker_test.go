package worker

import (
	"fmt"
	"testing"

	workerRepo "mazdoor/database/repository/worker"
	"mazdoor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorkerRepo is an in-memory WorkerRepository.
type fakeWorkerRepo struct {
	workers map[string]*models.WorkerProfile
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[string]*models.WorkerProfile)}
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
	if p, ok := r.workers[workerID]; ok {
		p.JobsCompleted++
	}
	return nil
}

func validProfileRequest() CreateRequest {
	return CreateRequest{
		UserID:   "user-1",
		Name:     "Ahmed Raza",
		Category: "electrician",
		PriceMin: 500,
		PriceMax: 2000,
		Location: "Lahore",
	}
}

func TestProfileCreate_Success(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}

	profile, err := svc.Create(validProfileRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, 0.0, profile.Rating)
	assert.Equal(t, 0, profile.ReviewCount)
	assert.False(t, profile.Verification.CNIC)
}

func TestProfileCreate_InvertedPriceBand(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}

	req := validProfileRequest()
	req.PriceMin = 3000
	req.PriceMax = 1000
	_, err := svc.Create(req)
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestProfileCreate_SecondProfileForSameUser(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}

	_, err := svc.Create(validProfileRequest())
	require.NoError(t, err)

	_, err = svc.Create(validProfileRequest())
	var exists AlreadyExistsError
	require.ErrorAs(t, err, &exists)
}

func TestProfileUpdate_OwnerOnly(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}
	profile, err := svc.Create(validProfileRequest())
	require.NoError(t, err)

	bio := "15 saal ka tajurba"
	_, err = svc.Update(profile.ID, "someone-else", models.RoleWorker, UpdateRequest{Bio: &bio})
	var forbidden ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	updated, err := svc.Update(profile.ID, "user-1", models.RoleWorker, UpdateRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
}

func TestProfileUpdate_VerificationFlagsAreAdminOnly(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}
	profile, err := svc.Create(validProfileRequest())
	require.NoError(t, err)

	yes := true
	_, err = svc.Update(profile.ID, "user-1", models.RoleWorker, UpdateRequest{
		Verification: &VerificationUpdate{CNIC: &yes},
	})
	var forbidden ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	updated, err := svc.Update(profile.ID, "admin-1", models.RoleAdmin, UpdateRequest{
		Verification: &VerificationUpdate{CNIC: &yes},
	})
	require.NoError(t, err)
	assert.True(t, updated.Verification.CNIC)
}

func TestProfileUpdate_RejectsInvertedBandAfterPatch(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}
	profile, err := svc.Create(validProfileRequest())
	require.NoError(t, err)

	newMin := 5000.0
	_, err = svc.Update(profile.ID, "user-1", models.RoleWorker, UpdateRequest{PriceMin: &newMin})
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestUploadDocument_UnknownKind(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}

	_, err := svc.UploadDocument("w1", "user-1", models.RoleWorker, "passport", "/tmp/doc.jpg")
	var invalid ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestUploadDocument_StorageNotConfigured(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}

	_, err := svc.UploadDocument("w1", "user-1", models.RoleWorker, DocCNIC, "/tmp/doc.jpg")
	require.Error(t, err)
}

func TestProfileGet_NotFound(t *testing.T) {
	svc := &DefaultWorkerService{Repo: newFakeWorkerRepo()}

	_, err := svc.GetByID("missing")
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
}
