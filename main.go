package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	bookingRepoPkg "medibook/database/repository/booking"
	navRepoPkg "medibook/database/repository/nav"
	paymentRepoPkg "medibook/database/repository/payment"
	serviceRepoPkg "medibook/database/repository/service"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/services/notification"
	"medibook/services/payment"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	navRepo := navRepoPkg.NewMongoNavRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// outbound email queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEmailQueueDB,
	})
	dispatcher, err := notification.NewAsynqDispatcher(asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize email dispatcher: %v", err)
	}
	mailer := notification.NewGomailMailer()
	emailWorker := cron.InitEmailWorker(mailer)

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Services: serviceRepo,
		Payments: paymentRepo,
		Notifier: dispatcher,
	}
	intentService := payment.NewStripeIntentService()

	// handlers.
	navHandler := handlers.NewNavHandler(navRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, bookingService)
	userHandler := handlers.NewUserHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	paymentHandler := handlers.NewPaymentHandler(intentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService: userService,

		GetNavItemsHandler:  navHandler.GetNavItems,
		GetServicesHandler:  serviceHandler.GetServices,
		GetAvailableHandler: serviceHandler.GetAvailable,
		UpsertUserHandler:   userHandler.UpsertUser,

		GetAllUsersHandler:  userHandler.GetAllUsers,
		CheckAdminHandler:   userHandler.CheckAdmin,
		PromoteAdminHandler: userHandler.PromoteAdmin,

		GetBookingsHandler:    bookingHandler.GetBookings,
		GetBookingByIDHandler: bookingHandler.GetBookingByID,
		CreateBookingHandler:  bookingHandler.CreateBooking,
		ConfirmPaymentHandler: bookingHandler.ConfirmPayment,

		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntent,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	emailWorker.Shutdown()
	if err := asynqClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close email queue client: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
