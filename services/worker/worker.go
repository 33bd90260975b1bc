package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mazdoor/models"
	"mazdoor/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates and persists a new worker profile for the given user.
func (s *DefaultWorkerService) Create(req CreateRequest) (*models.WorkerProfile, error) {
	if req.PriceMin > req.PriceMax {
		return nil, ValidationError{Reason: "priceMin must not exceed priceMax"}
	}
	if req.PriceMin < 0 {
		return nil, ValidationError{Reason: "prices must not be negative"}
	}
	for _, svc := range req.Services {
		if svc.PriceMin > svc.PriceMax {
			return nil, ValidationError{Reason: fmt.Sprintf("service %q: priceMin must not exceed priceMax", svc.Name)}
		}
	}

	existing, err := s.Repo.GetByUserID(req.UserID)
	if err != nil {
		utils.GetLogger().Error("Create: profile lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create worker profile, please try again")
	}
	if existing != nil {
		return nil, AlreadyExistsError{}
	}

	profile := &models.WorkerProfile{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		Name:            req.Name,
		Category:        req.Category,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		PriceMin:        req.PriceMin,
		PriceMax:        req.PriceMax,
		Specialties:     req.Specialties,
		Services:        req.Services,
		Location:        req.Location,
		AvailableToday:  req.AvailableToday,
	}

	if err := s.Repo.Create(profile); err != nil {
		utils.GetLogger().Error("Create: failed to persist profile", zap.Error(err))
		return nil, fmt.Errorf("failed to create worker profile, please try again")
	}
	return profile, nil
}

// GetByID fetches a worker profile, serving from the Redis cache when warm.
func (s *DefaultWorkerService) GetByID(id string) (*models.WorkerProfile, error) {
	if cached := s.cacheGet(id); cached != nil {
		return cached, nil
	}

	profile, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch worker profile")
	}
	if profile == nil {
		return nil, NotFoundError{ID: id}
	}

	s.cacheSet(profile)
	return profile, nil
}

// Update applies a partial update. Only the owning worker or an admin may
// modify a profile.
func (s *DefaultWorkerService) Update(id, actorID, actorRole string, req UpdateRequest) (*models.WorkerProfile, error) {
	profile, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Update: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update worker profile, please try again")
	}
	if profile == nil {
		return nil, NotFoundError{ID: id}
	}
	if actorRole != models.RoleAdmin && profile.UserID != actorID {
		return nil, ForbiddenError{}
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Category != nil {
		profile.Category = *req.Category
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.PriceMin != nil {
		profile.PriceMin = *req.PriceMin
	}
	if req.PriceMax != nil {
		profile.PriceMax = *req.PriceMax
	}
	if req.Specialties != nil {
		profile.Specialties = *req.Specialties
	}
	if req.Services != nil {
		profile.Services = *req.Services
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.AvailableToday != nil {
		profile.AvailableToday = *req.AvailableToday
	}
	if req.Verification != nil {
		if actorRole != models.RoleAdmin {
			return nil, ForbiddenError{}
		}
		if req.Verification.CNIC != nil {
			profile.Verification.CNIC = *req.Verification.CNIC
		}
		if req.Verification.Police != nil {
			profile.Verification.Police = *req.Verification.Police
		}
		if req.Verification.Skill != nil {
			profile.Verification.Skill = *req.Verification.Skill
		}
	}

	if profile.PriceMin > profile.PriceMax {
		return nil, ValidationError{Reason: "priceMin must not exceed priceMax"}
	}

	if err := s.Repo.Update(profile); err != nil {
		utils.GetLogger().Error("Update: write failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update worker profile, please try again")
	}

	s.cacheInvalidate(id)
	return profile, nil
}

func (s *DefaultWorkerService) cacheGet(id string) *models.WorkerProfile {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, utils.WorkerCachePrefix+id).Result()
	if err != nil {
		return nil
	}
	var profile models.WorkerProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil
	}
	return &profile
}

func (s *DefaultWorkerService) cacheSet(profile *models.WorkerProfile) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, utils.WorkerCachePrefix+profile.ID, data, utils.WorkerCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("cacheSet: failed to cache worker profile", zap.Error(err))
	}
}

func (s *DefaultWorkerService) cacheInvalidate(id string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, utils.WorkerCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("cacheInvalidate: failed to drop cached profile", zap.Error(err))
	}
}
