package handlers

import (
	"errors"
	"net/http"

	"mazdoor/services/booking"
	"mazdoor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) failFromServiceError(c *gin.Context, err error) {
	var notFound booking.NotFoundError
	var invalidTransition booking.InvalidTransitionError
	var invalid booking.ValidationError
	switch {
	case errors.As(err, &notFound):
		utils.JSONFail(c, http.StatusNotFound, err.Error())
	case errors.As(err, &invalidTransition), errors.As(err, &invalid):
		utils.JSONFail(c, http.StatusBadRequest, err.Error())
	default:
		getLogger(c).Error("booking endpoint failed", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, err.Error())
	}
}

// CreateHandler creates a pending booking for the authenticated customer.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	customerID, _ := actor(c)

	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.CustomerID = customerID

	bk, err := h.Service.Create(req)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, bk)
}

// ListCustomerHandler returns the authenticated customer's bookings.
func (h *BookingHandler) ListCustomerHandler(c *gin.Context) {
	customerID, _ := actor(c)
	bookings, err := h.Service.ListForCustomer(customerID)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// ListWorkerHandler returns the bookings addressed to the authenticated worker.
func (h *BookingHandler) ListWorkerHandler(c *gin.Context) {
	workerUserID, _ := actor(c)
	bookings, err := h.Service.ListForWorker(workerUserID)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// UpdateStatusHandler applies one status transition to a booking.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	actorID, actorRole := actor(c)

	var req struct {
		Status     string   `json:"status" binding:"required"`
		FinalPrice *float64 `json:"finalPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONFail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	bk, err := h.Service.TransitionStatus(c.Param("id"), req.Status, actorID, actorRole, req.FinalPrice)
	if err != nil {
		h.failFromServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bk)
}
