package models

import "time"

// Review is a customer's one-time rating of a completed booking. Exactly one
// review may exist per booking; submitting it triggers a full recompute of
// the worker's aggregate rating and review count.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	WorkerID   string    `bson:"workerId" json:"workerId"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	Rating     int       `bson:"rating" json:"rating"` // integer 1..5
	Text       string    `bson:"text,omitempty" json:"text,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
