package handlers

import (
	"github.com/gin-gonic/gin"

	"medibook/services/user"
)

// HandlerBundle aggregates every route handler plus the services the route
// middleware needs, so route registration takes a single dependency.
type HandlerBundle struct {
	UserService user.UserService

	// Public endpoints.
	GetNavItemsHandler  gin.HandlerFunc
	GetServicesHandler  gin.HandlerFunc
	GetAvailableHandler gin.HandlerFunc
	UpsertUserHandler   gin.HandlerFunc

	// User and admin endpoints.
	GetAllUsersHandler  gin.HandlerFunc
	CheckAdminHandler   gin.HandlerFunc
	PromoteAdminHandler gin.HandlerFunc

	// Booking endpoints.
	GetBookingsHandler    gin.HandlerFunc
	GetBookingByIDHandler gin.HandlerFunc
	CreateBookingHandler  gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntentHandler gin.HandlerFunc
}
