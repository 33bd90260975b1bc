package handlers

import (
	"errors"
	"net/http"

	"mazdoor/services/user"
	"mazdoor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the signup/login/me endpoints.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// SignupHandler registers a new account and returns a session token.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.Service.Signup(req)
	if err != nil {
		var exists user.AlreadyExistsError
		var invalid user.ValidationError
		switch {
		case errors.As(err, &exists), errors.As(err, &invalid):
			utils.JSONFail(c, http.StatusBadRequest, err.Error())
		default:
			getLogger(c).Error("signup failed", zap.Error(err))
			utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, resp)
}

// LoginHandler authenticates by phone and password.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.Service.Login(req.Phone, req.Password)
	if err != nil {
		var unauthorized user.UnauthorizedError
		if errors.As(err, &unauthorized) {
			utils.JSONFail(c, http.StatusUnauthorized, err.Error())
			return
		}
		getLogger(c).Error("login failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, resp)
}

// MeHandler returns the authenticated user's record.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID, _ := actor(c)
	if userID == "" {
		utils.JSONFail(c, http.StatusUnauthorized, "Insufficient authorization")
		return
	}

	userObj, err := h.Service.GetByID(userID)
	if err != nil {
		var notFound user.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONFail(c, http.StatusNotFound, err.Error())
			return
		}
		getLogger(c).Error("me lookup failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, userObj)
}
