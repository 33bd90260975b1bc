// File: mazdoor/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mazdoor/config"
	"mazdoor/cron"
	"mazdoor/database"
	bookingRepoPkg "mazdoor/database/repository/booking"
	reviewRepoPkg "mazdoor/database/repository/review"
	userRepoPkg "mazdoor/database/repository/user"
	workerRepoPkg "mazdoor/database/repository/worker"
	"mazdoor/handlers"
	"mazdoor/middleware"
	"mazdoor/routes"
	"mazdoor/services/booking"
	"mazdoor/services/review"
	"mazdoor/services/user"
	"mazdoor/services/worker"
	"mazdoor/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: document storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// deferred task client for booking expiry.
	taskClient := asynq.NewClient(cron.RedisOpt())
	defer taskClient.Close()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	workerService := &worker.DefaultWorkerService{
		Repo:       workerRepo,
		Cache:      utils.GetCacheClient(),
		Cloudinary: cld,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		WorkerRepo: workerRepo,
		TaskClient: taskClient,
	}
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
		WorkerRepo:  workerRepo,
	}

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		Worker:  handlers.NewWorkerHandler(workerService, userService),
		Booking: handlers.NewBookingHandler(bookingService),
		Review:  handlers.NewReviewHandler(reviewService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// background expiry worker + health monitor.
	expiryWorker := cron.InitExpiryWorker(bookingService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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

	expiryWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
