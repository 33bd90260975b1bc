package user

import (
	userRepo "mazdoor/database/repository/user"
	"mazdoor/models"
)

// AuthResponse is returned on successful signup or login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// SignupRequest carries the validated signup fields.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// UserService defines identity operations.
type UserService interface {
	Signup(req SignupRequest) (*AuthResponse, error)
	Login(phone, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
