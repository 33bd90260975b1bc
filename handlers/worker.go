package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"mazdoor/services/user"
	"mazdoor/services/worker"
	"mazdoor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkerHandler serves the worker profile and list endpoints.
type WorkerHandler struct {
	Service worker.WorkerService
	Users   user.UserService
}

// NewWorkerHandler creates a new WorkerHandler instance.
func NewWorkerHandler(svc worker.WorkerService, users user.UserService) *WorkerHandler {
	return &WorkerHandler{Service: svc, Users: users}
}

func (h *WorkerHandler) failFromServiceError(c *gin.Context, err error) {
	var notFound worker.NotFoundError
	var exists worker.AlreadyExistsError
	var invalid worker.ValidationError
	var forbidden worker.ForbiddenError
	switch {
	case errors.As(err, &notFound):
		utils.JSONFail(c, http.StatusNotFound, err.Error())
	case errors.As(err, &forbidden):
		utils.JSONFail(c, http.StatusForbidden, err.Error())
	case errors.As(err, &exists), errors.As(err, &invalid):
		utils.JSONFail(c, http.StatusBadRequest, err.Error())
	default:
		getLogger(c).Error("worker endpoint failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
	}
}

// CreateHandler creates the authenticated worker's profile.
func (h *WorkerHandler) CreateHandler(c *gin.Context) {
	userID, _ := actor(c)

	var req worker.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.UserID = userID

	// The profile carries the account's display name.
	userObj, err := h.Users.GetByID(userID)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	req.Name = userObj.Name

	profile, err := h.Service.Create(req)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, profile)
}

// GetByIDHandler fetches a single worker profile.
func (h *WorkerHandler) GetByIDHandler(c *gin.Context) {
	profile, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}

// UpdateHandler applies a partial update to a worker profile.
func (h *WorkerHandler) UpdateHandler(c *gin.Context) {
	actorID, actorRole := actor(c)

	var req worker.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	profile, err := h.Service.Update(c.Param("id"), actorID, actorRole, req)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}

// ListHandler returns the filtered, sorted worker list.
func (h *WorkerHandler) ListHandler(c *gin.Context) {
	q := worker.ListQuery{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Query:    c.Query("q"),
		SortBy:   c.Query("sortBy"),
	}
	q.AvailableToday = c.Query("availableToday") == "true"
	if v := c.Query("minRating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONFail(c, http.StatusBadRequest, "minRating must be a number")
			return
		}
		q.MinRating = f
	}
	if v := c.Query("priceMin"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONFail(c, http.StatusBadRequest, "priceMin must be a number")
			return
		}
		q.PriceMin = f
	}
	if v := c.Query("priceMax"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.JSONFail(c, http.StatusBadRequest, "priceMax must be a number")
			return
		}
		q.PriceMax = f
	}

	profiles, err := h.Service.List(q)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profiles)
}

// UploadDocumentHandler accepts a multipart verification document and stores
// it against the profile.
func (h *WorkerHandler) UploadDocumentHandler(c *gin.Context) {
	actorID, actorRole := actor(c)
	kind := c.PostForm("kind")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "file not provided")
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		getLogger(c).Error("failed to buffer upload", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "failed to process upload")
		return
	}
	defer os.Remove(tempFilePath)

	profile, err := h.Service.UploadDocument(c.Param("id"), actorID, actorRole, kind, tempFilePath)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}
