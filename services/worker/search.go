package worker

import (
	"fmt"
	"sort"
	"strings"

	workerRepo "mazdoor/database/repository/worker"
	"mazdoor/models"
	"mazdoor/utils"

	"go.uber.org/zap"
)

// Sort keys accepted by the worker list.
const (
	SortByRating     = "rating"
	SortByJobs       = "jobs"
	SortByPriceLow   = "price-low"
	SortByPriceHigh  = "price-high"
	SortByExperience = "experience"
)

// List fetches candidate profiles from the store and applies the remaining
// filters and the sort in memory. Filters are conjunctive; the sort is stable
// so equal keys keep the fetch order and identical queries return identical
// results.
func (s *DefaultWorkerService) List(q ListQuery) ([]models.WorkerProfile, error) {
	profiles, err := s.Repo.List(workerRepo.ListCriteria{
		Category: q.Category,
		Location: q.Location,
	})
	if err != nil {
		utils.GetLogger().Error("List: repository query failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list workers")
	}

	filtered := FilterWorkers(profiles, q)
	SortWorkers(filtered, q.SortBy)
	return filtered, nil
}

// FilterWorkers applies the in-memory filters of q to the given profiles.
// Category and location are matched again so the function is usable on any
// profile slice, not just pre-narrowed store results.
func FilterWorkers(profiles []models.WorkerProfile, q ListQuery) []models.WorkerProfile {
	out := make([]models.WorkerProfile, 0, len(profiles))
	needle := strings.ToLower(strings.TrimSpace(q.Query))

	for _, p := range profiles {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(q.Location)) {
			continue
		}
		if q.AvailableToday && !p.AvailableToday {
			continue
		}
		if q.MinRating > 0 && p.Rating < q.MinRating {
			continue
		}
		if q.PriceMin > 0 && p.PriceMax < q.PriceMin {
			continue
		}
		if q.PriceMax > 0 && p.PriceMin > q.PriceMax {
			continue
		}
		if needle != "" && !matchesFreeText(&p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesFreeText reports whether the lowercase needle occurs in the
// worker's name, specialties or location.
func matchesFreeText(p *models.WorkerProfile, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Location), needle) {
		return true
	}
	for _, sp := range p.Specialties {
		if strings.Contains(strings.ToLower(sp), needle) {
			return true
		}
	}
	return false
}

// SortWorkers orders profiles in place by the given key. Unknown or empty
// keys fall back to rating, highest first.
func SortWorkers(profiles []models.WorkerProfile, sortBy string) {
	var less func(a, b *models.WorkerProfile) bool

	switch sortBy {
	case SortByJobs:
		less = func(a, b *models.WorkerProfile) bool { return a.JobsCompleted > b.JobsCompleted }
	case SortByPriceLow:
		less = func(a, b *models.WorkerProfile) bool { return a.PriceMin < b.PriceMin }
	case SortByPriceHigh:
		less = func(a, b *models.WorkerProfile) bool { return a.PriceMax > b.PriceMax }
	case SortByExperience:
		less = func(a, b *models.WorkerProfile) bool { return a.ExperienceYears > b.ExperienceYears }
	default:
		less = func(a, b *models.WorkerProfile) bool { return a.Rating > b.Rating }
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return less(&profiles[i], &profiles[j])
	})
}
