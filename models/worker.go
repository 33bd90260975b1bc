package models

import "time"

// ServiceOffering is a single entry in a worker's service catalogue with its
// own price band, e.g. "Fan installation" for an electrician.
type ServiceOffering struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	PriceMin float64 `bson:"priceMin" json:"priceMin"`
	PriceMax float64 `bson:"priceMax" json:"priceMax"`
}

// Verification holds the worker's background-check flags. The document URLs
// are set on upload; the booleans are flipped only by an admin once the
// document has been reviewed.
type Verification struct {
	CNIC         bool   `bson:"cnic" json:"cnic"`
	Police       bool   `bson:"police" json:"police"`
	Skill        bool   `bson:"skill" json:"skill"`
	CNICDocURL   string `bson:"cnicDocUrl,omitempty" json:"cnicDocUrl,omitempty"`
	PoliceDocURL string `bson:"policeDocUrl,omitempty" json:"policeDocUrl,omitempty"`
	SkillDocURL  string `bson:"skillDocUrl,omitempty" json:"skillDocUrl,omitempty"`
}

// WorkerProfile is the public trade profile of a user with role "worker".
// Rating and ReviewCount are derived values: they are recomputed by the
// review service from the full review set and are never written directly
// by clients.
type WorkerProfile struct {
	ID              string            `bson:"id" json:"id"`
	UserID          string            `bson:"userId" json:"userId"`
	Name            string            `bson:"name" json:"name"`
	Category        string            `bson:"category" json:"category"`
	Bio             string            `bson:"bio,omitempty" json:"bio,omitempty"`
	ExperienceYears int               `bson:"experienceYears" json:"experienceYears"`
	PriceMin        float64           `bson:"priceMin" json:"priceMin"`
	PriceMax        float64           `bson:"priceMax" json:"priceMax"`
	Specialties     []string          `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Services        []ServiceOffering `bson:"services,omitempty" json:"services,omitempty"`
	Location        string            `bson:"location" json:"location"`
	AvailableToday  bool              `bson:"availableToday" json:"availableToday"`
	Verification    Verification      `bson:"verification" json:"verification"`
	Rating          float64           `bson:"rating" json:"rating"`
	ReviewCount     int               `bson:"reviewCount" json:"reviewCount"`
	JobsCompleted   int               `bson:"jobsCompleted" json:"jobsCompleted"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// FindService returns the catalogue entry matching the given service id or
// name (case-sensitive id match first, then name), or nil if none matches.
func (w *WorkerProfile) FindService(service string) *ServiceOffering {
	for i := range w.Services {
		if w.Services[i].ID == service {
			return &w.Services[i]
		}
	}
	for i := range w.Services {
		if w.Services[i].Name == service {
			return &w.Services[i]
		}
	}
	return nil
}
