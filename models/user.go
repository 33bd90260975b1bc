package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
	RoleAdmin    = "admin"
)

// User represents an account on the platform. A user with role "worker"
// additionally owns a WorkerProfile document.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	IsVerified   bool      `bson:"isVerified" json:"isVerified"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r string) bool {
	return r == RoleCustomer || r == RoleWorker || r == RoleAdmin
}
