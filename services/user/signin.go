package user

import (
	"context"
	"fmt"
	"time"

	"mazdoor/models"
	"mazdoor/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long an issued session token stays valid.
const tokenDuration = 7 * 24 * time.Hour

// Login authenticates by phone and password and issues a fresh token.
func (s *DefaultUserService) Login(phone, password string) (*AuthResponse, error) {
	userObj, err := s.Repo.GetByPhone(phone)
	if err != nil {
		utils.GetLogger().Error("Login: phone lookup failed", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if userObj == nil {
		return nil, UnauthorizedError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userObj.PasswordHash), []byte(password)); err != nil {
		return nil, UnauthorizedError{}
	}

	return s.issueToken(userObj)
}

// GetByID returns the user record for an authenticated subject.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	userObj, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user")
	}
	if userObj == nil {
		return nil, NotFoundError{ID: id}
	}
	return userObj, nil
}

// issueToken signs a JWT for the user and caches its hash so the auth
// middleware can validate without a database round trip.
func (s *DefaultUserService) issueToken(userObj *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userObj.ID, userObj.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Best effort: a cache miss just means the middleware re-validates the JWT.
	if authCache := utils.AuthCacheClient; authCache != nil {
		cacheKey := utils.AuthCachePrefix + userObj.ID
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := authCache.Set(ctx, cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.Name,
		Phone: userObj.Phone,
		Email: userObj.Email,
		Role:  userObj.Role,
	}, nil
}
