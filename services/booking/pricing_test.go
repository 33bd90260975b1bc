package booking

import (
	"testing"

	"mazdoor/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePrice_MatchesCatalogueByIDAndName(t *testing.T) {
	w := &models.WorkerProfile{
		PriceMin: 500,
		PriceMax: 3000,
		Services: []models.ServiceOffering{
			{ID: "svc-wiring", Name: "House wiring", PriceMin: 1500, PriceMax: 3000},
			{ID: "svc-fan", Name: "Fan installation", PriceMin: 800, PriceMax: 1500},
		},
	}

	byID := EstimatePrice(w, "svc-fan")
	assert.Equal(t, models.PriceRange{Min: 800, Max: 1500}, byID)

	byName := EstimatePrice(w, "House wiring")
	assert.Equal(t, models.PriceRange{Min: 1500, Max: 3000}, byName)

	fallback := EstimatePrice(w, "something bespoke")
	assert.Equal(t, models.PriceRange{Min: 500, Max: 3000}, fallback)
}

func TestComputePlatformFee(t *testing.T) {
	assert.Equal(t, 80.0, ComputePlatformFee(models.PriceRange{Min: 800, Max: 1500}))
	assert.Equal(t, 0.0, ComputePlatformFee(models.PriceRange{Min: 0, Max: 500}))
	// Rounded to whole rupees.
	assert.Equal(t, 85.0, ComputePlatformFee(models.PriceRange{Min: 849, Max: 900}))
}
