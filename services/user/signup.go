package user

import (
	"fmt"

	"mazdoor/models"
	"mazdoor/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Signup validates the request, rejects duplicate phone/email, hashes the
// password and persists the account. Hashing is an explicit step here, not a
// side effect of a generic save.
func (s *DefaultUserService) Signup(req SignupRequest) (*AuthResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, ValidationError{Reason: fmt.Sprintf("unknown role %q", req.Role)}
	}

	existing, err := s.Repo.GetByPhone(req.Phone)
	if err != nil {
		utils.GetLogger().Error("Signup: phone lookup failed", zap.Error(err))
		return nil, fmt.Errorf("signup failed, please try again")
	}
	if existing != nil {
		return nil, AlreadyExistsError{Field: "phone"}
	}

	if req.Email != "" {
		existing, err = s.Repo.GetByEmail(req.Email)
		if err != nil {
			utils.GetLogger().Error("Signup: email lookup failed", zap.Error(err))
			return nil, fmt.Errorf("signup failed, please try again")
		}
		if existing != nil {
			return nil, AlreadyExistsError{Field: "email"}
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("signup failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
	}

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Signup: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("signup failed, please try again")
	}

	return s.issueToken(&userObj)
}
