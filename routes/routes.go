package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hello from MediBook"})
	})
}

// RegisterPublicRoutes registers the unauthenticated catalogue endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/nav", hb.GetNavItemsHandler)
	r.GET("/api/services", hb.GetServicesHandler)
	r.GET("/api/services/available", hb.GetAvailableHandler)
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		// Sign-in path: upsert identity claims and receive a token.
		api.PUT("/:email", hb.UpsertUserHandler)

		// Protected routes (Require Authentication)
		auth := api.Group("")
		auth.Use(middleware.JWTAuthMiddleware())
		auth.GET("/admin/:email", hb.CheckAdminHandler)
		auth.PUT("/admin/:email", hb.PromoteAdminHandler)

		admin := auth.Group("")
		admin.Use(middleware.AdminAuthMiddleware(hb.UserService))
		admin.GET("", hb.GetAllUsersHandler)
	}
}

// RegisterBookingRoutes sets up the admission and confirmation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)

		auth := api.Group("")
		auth.Use(middleware.JWTAuthMiddleware())
		auth.GET("", hb.GetBookingsHandler)
		auth.GET("/:id", hb.GetBookingByIDHandler)
		auth.PATCH("/:id", hb.ConfirmPaymentHandler)
	}
}

// RegisterPaymentRoutes sets up the payment-intent endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/intent", hb.CreatePaymentIntentHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
