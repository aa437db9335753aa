package handlers

import (
	"errors"
	"net/http"

	"medibook/middleware"
	"medibook/models"
	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking admission and confirmation endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// GetBookings lists the bookings for the queried email. The verified
// identity must match the queried email; anything else is forbidden.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing email query parameter", "")
		return
	}
	if middleware.ClaimedEmail(c) != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		return
	}

	bookings, err := h.Service.GetBookingsByEmail(email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID fetches one booking.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")

	b, err := h.Service.GetBookingByID(id)
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", id)
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
	default:
		c.JSON(http.StatusOK, b)
	}
}

// CreateBooking admits a new booking. A duplicate (date, treatment, email)
// triple is not an error status: the response carries success=false and the
// conflicting record.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	result, err := h.Service.SubmitBooking(c.Request.Context(), &b)
	switch {
	case errors.Is(err, booking.ErrInvalidBooking):
		utils.JSONError(c, http.StatusBadRequest, "Booking is missing required fields", "")
	case errors.Is(err, booking.ErrUnknownTreatment):
		utils.JSONError(c, http.StatusBadRequest, "Unknown treatment", b.TreatmentName)
	case err != nil:
		h.Logger.Error("booking submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
	default:
		c.JSON(http.StatusOK, result)
	}
}

// ConfirmPayment marks the booking paid, records the payment, and queues the
// confirmation email.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	id := c.Param("id")

	var info models.PaymentInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment payload", err.Error())
		return
	}

	result, err := h.Service.ConfirmPayment(c.Request.Context(), id, info)
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", id)
	case err != nil:
		h.Logger.Error("payment confirmation failed", zap.String("bookingID", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to confirm payment", err.Error())
	default:
		c.JSON(http.StatusOK, result)
	}
}
