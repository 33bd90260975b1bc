package models

import "time"

// Booking statuses.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in-progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
	BookingDisputed   = "disputed"
)

// Payment methods accepted at settlement. All are settled off-platform.
const (
	PaymentCash      = "cash"
	PaymentJazzCash  = "jazzcash"
	PaymentEasypaisa = "easypaisa"
)

// PriceRange is an estimated price band in PKR.
type PriceRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// TimelineEvent is one entry in a booking's append-only audit trail.
type TimelineEvent struct {
	Event     string    `bson:"event" json:"event"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Booking represents one service engagement between a customer and a worker.
// Timeline is append-only: events are added on creation and on every status
// transition, never edited or reordered.
type Booking struct {
	ID             string          `bson:"id" json:"id"`
	CustomerID     string          `bson:"customerId" json:"customerId"`
	WorkerID       string          `bson:"workerId" json:"workerId"`
	Service        string          `bson:"service" json:"service"`
	Date           string          `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot       string          `bson:"timeSlot" json:"timeSlot"`
	Address        string          `bson:"address" json:"address"`
	Status         string          `bson:"status" json:"status"`
	EstimatedPrice PriceRange      `bson:"estimatedPrice" json:"estimatedPrice"`
	FinalPrice     *float64        `bson:"finalPrice,omitempty" json:"finalPrice,omitempty"`
	PlatformFee    float64         `bson:"platformFee" json:"platformFee"`
	PaymentMethod  string          `bson:"paymentMethod" json:"paymentMethod"`
	Timeline       []TimelineEvent `bson:"timeline" json:"timeline"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentJazzCash || m == PaymentEasypaisa
}

// Terminal reports whether a booking status admits no further transitions
// by non-admin actors.
func Terminal(status string) bool {
	return status == BookingCompleted || status == BookingCancelled
}
