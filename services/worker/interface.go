package worker

import (
	workerRepo "mazdoor/database/repository/worker"
	"mazdoor/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-redis/redis/v8"
)

// CreateRequest carries the validated profile-creation fields.
type CreateRequest struct {
	UserID          string
	Name            string
	Category        string                   `json:"category" binding:"required"`
	Bio             string                   `json:"bio"`
	ExperienceYears int                      `json:"experienceYears"`
	PriceMin        float64                  `json:"priceMin" binding:"required"`
	PriceMax        float64                  `json:"priceMax" binding:"required"`
	Specialties     []string                 `json:"specialties"`
	Services        []models.ServiceOffering `json:"services"`
	Location        string                   `json:"location" binding:"required"`
	AvailableToday  bool                     `json:"availableToday"`
}

// VerificationUpdate flips background-check flags. Admin only.
type VerificationUpdate struct {
	CNIC   *bool `json:"cnic"`
	Police *bool `json:"police"`
	Skill  *bool `json:"skill"`
}

// UpdateRequest carries partial profile updates. Nil fields are left alone.
// Rating and reviewCount are deliberately absent: they belong to the review
// aggregator. Verification is honored only when the actor is an admin.
type UpdateRequest struct {
	Verification    *VerificationUpdate       `json:"verification"`
	Bio             *string                   `json:"bio"`
	Category        *string                   `json:"category"`
	ExperienceYears *int                      `json:"experienceYears"`
	PriceMin        *float64                  `json:"priceMin"`
	PriceMax        *float64                  `json:"priceMax"`
	Specialties     *[]string                 `json:"specialties"`
	Services        *[]models.ServiceOffering `json:"services"`
	Location        *string                   `json:"location"`
	AvailableToday  *bool                     `json:"availableToday"`
}

// ListQuery is the filter/sort input for the worker list. All filters are
// optional and conjunctive.
type ListQuery struct {
	Category       string
	Location       string
	AvailableToday bool
	MinRating      float64
	PriceMin       float64
	PriceMax       float64
	Query          string
	SortBy         string
}

// WorkerService manages worker profiles and the read-side list projection.
type WorkerService interface {
	Create(req CreateRequest) (*models.WorkerProfile, error)
	GetByID(id string) (*models.WorkerProfile, error)
	Update(id, actorID, actorRole string, req UpdateRequest) (*models.WorkerProfile, error)
	List(q ListQuery) ([]models.WorkerProfile, error)
	UploadDocument(id, actorID, actorRole, kind, localFilePath string) (*models.WorkerProfile, error)
}

// DefaultWorkerService is the production implementation. Cache and Cloudinary
// are optional; when nil the service works uncached and rejects uploads.
type DefaultWorkerService struct {
	Repo       workerRepo.WorkerRepository
	Cache      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}
