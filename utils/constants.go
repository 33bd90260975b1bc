// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// WorkerCachePrefix is the prefix for cached worker profile documents.
const WorkerCachePrefix = "worker:"

// WorkerCacheTTL is the time-to-live for cached worker profiles.
const WorkerCacheTTL = 5 * time.Minute

// TimeSlots is the fixed set of bookable slots. Booking requests must name
// one of these exactly.
var TimeSlots = []string{
	"08:00-10:00",
	"10:00-12:00",
	"12:00-14:00",
	"14:00-16:00",
	"16:00-18:00",
	"18:00-20:00",
}

// ValidTimeSlot reports whether slot is one of the enumerated time slots.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
