package handlers

import (
	"errors"
	"net/http"

	"mazdoor/services/review"
	"mazdoor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// SubmitHandler records a review for a completed booking.
func (h *ReviewHandler) SubmitHandler(c *gin.Context) {
	customerID, _ := actor(c)

	var req review.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.CustomerID = customerID

	rv, err := h.Service.Submit(req)
	if err != nil {
		var notFound review.NotFoundError
		var reviewed review.AlreadyReviewedError
		var invalid review.ValidationError
		switch {
		case errors.As(err, &notFound):
			utils.JSONFail(c, http.StatusNotFound, err.Error())
		case errors.As(err, &reviewed), errors.As(err, &invalid):
			utils.JSONFail(c, http.StatusBadRequest, err.Error())
		default:
			getLogger(c).Error("review submit failed", zap.Error(err))
			utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, rv)
}

// ListForWorkerHandler returns all reviews for a worker, newest first.
func (h *ReviewHandler) ListForWorkerHandler(c *gin.Context) {
	reviews, err := h.Service.ListForWorker(c.Param("workerId"))
	if err != nil {
		getLogger(c).Error("review list failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}
