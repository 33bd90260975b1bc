package routes

import (
	"net/http"
	"time"

	"mazdoor/handlers"
	"mazdoor/middleware"
	"mazdoor/models"
	"mazdoor/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Worker  *handlers.WorkerHandler
	Booking *handlers.BookingHandler
	Review  *handlers.ReviewHandler
}

// RegisterAuthRoutes registers the identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/auth")
	{
		api.POST("/signup", hb.Auth.SignupHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterWorkerRoutes registers worker profile endpoints. Reads are public;
// writes require an authenticated worker (or admin for moderation).
func RegisterWorkerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/workers")
	{
		api.GET("", hb.Worker.ListHandler)
		api.GET("/:id", hb.Worker.GetByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", middleware.RequireRole(models.RoleWorker), hb.Worker.CreateHandler)
		protected.PATCH("/:id", middleware.RequireRole(models.RoleWorker, models.RoleAdmin), hb.Worker.UpdateHandler)
		protected.POST("/:id/documents", middleware.RequireRole(models.RoleWorker, models.RoleAdmin), hb.Worker.UploadDocumentHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.Booking.CreateHandler)
		api.GET("/customer", middleware.RequireRole(models.RoleCustomer), hb.Booking.ListCustomerHandler)
		api.GET("/worker", middleware.RequireRole(models.RoleWorker), hb.Booking.ListWorkerHandler)
		api.PATCH("/:id/status", hb.Booking.UpdateStatusHandler)
	}
}

// RegisterReviewRoutes registers review endpoints. Listing is public.
func RegisterReviewRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/reviews")
	{
		api.GET("/worker/:workerId", hb.Review.ListForWorkerHandler)
		api.POST("", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleCustomer), hb.Review.SubmitHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterWorkerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterHealthRoute(r)
}
