package handlers

import (
	"net/http"
	"time"

	serviceRepo "medibook/database/repository/service"
	"medibook/services/availability"
	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the treatment catalogue and the availability view.
type ServiceHandler struct {
	Repo           serviceRepo.ServiceRepository
	BookingService booking.BookingService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(repo serviceRepo.ServiceRepository, bookingService booking.BookingService) *ServiceHandler {
	return &ServiceHandler{Repo: repo, BookingService: bookingService}
}

// GetServices returns the full treatment catalogue.
func (h *ServiceHandler) GetServices(c *gin.Context) {
	services, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailable returns every service with the slots still open on the
// queried date. An absent date defaults to today in the portal's display
// format; the engine itself treats dates as opaque keys.
func (h *ServiceHandler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(availability.DateFormat)
	}

	services, err := h.BookingService.GetAvailability(date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}
