package booking

import (
	"math"

	"mazdoor/config"
	"mazdoor/models"
)

// EstimatePrice derives the quoted price band for a booking. If the named
// service matches an entry in the worker's catalogue, that entry's band is
// used; otherwise the worker's overall price range stands in.
func EstimatePrice(worker *models.WorkerProfile, service string) models.PriceRange {
	if offering := worker.FindService(service); offering != nil {
		return models.PriceRange{Min: offering.PriceMin, Max: offering.PriceMax}
	}
	return models.PriceRange{Min: worker.PriceMin, Max: worker.PriceMax}
}

// ComputePlatformFee returns the marketplace cut for a booking: a fixed
// percentage of the estimated minimum, rounded to whole rupees and never
// negative.
func ComputePlatformFee(estimate models.PriceRange) float64 {
	percent := config.AppConfig.PlatformFeePercent
	if percent <= 0 {
		percent = 10
	}
	fee := math.Round(estimate.Min * percent / 100)
	if fee < 0 {
		return 0
	}
	return fee
}
