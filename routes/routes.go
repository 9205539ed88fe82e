package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"homeservice-backend/bookings"
	"homeservice-backend/config"
	"homeservice-backend/controllers"
	"homeservice-backend/utils"
)

func SetupRouter(db *gorm.DB, log *zap.Logger, bookingSvc *bookings.Service) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(log))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authController := &controllers.AuthController{DB: db, Log: log}
	serviceController := &controllers.ServiceController{DB: db, Log: log}
	bookingController := &controllers.BookingController{Bookings: bookingSvc, Log: log}

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	{
		// Service catalog routes (public, no update/delete surface)
		services := api.Group("/services")
		{
			services.GET("", serviceController.GetServices)
			services.POST("", serviceController.CreateService)
		}

		// Booking routes: authentication is optional. An anonymous
		// caller gets public mode, a token scopes visibility and
		// ownership to that user.
		bookingRoutes := api.Group("/bookings")
		bookingRoutes.Use(utils.OptionalAuthMiddleware())
		{
			bookingRoutes.GET("", bookingController.GetBookings)
			bookingRoutes.POST("", bookingController.CreateBooking)
			bookingRoutes.GET("/:id", bookingController.GetBooking)
			bookingRoutes.PUT("/:id", bookingController.UpdateBooking)
			bookingRoutes.DELETE("/:id", bookingController.DeleteBooking)
		}
	}

	return r
}

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}
