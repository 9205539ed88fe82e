package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"homeservice-backend/bookings"
	"homeservice-backend/config"
	"homeservice-backend/models"
	"homeservice-backend/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	log, cleanup := config.NewLogger()
	defer cleanup()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
	); err != nil {
		log.Fatal("auto-migration failed", zap.Error(err))
	}

	if os.Getenv("SEED_SERVICES") == "true" {
		n, err := models.SeedServices(db)
		if err != nil {
			log.Fatal("catalog seeding failed", zap.Error(err))
		}
		if n > 0 {
			log.Info("seeded service catalog", zap.Int("services", n))
		}
	}

	notifier := bookings.NewTwilioNotifier(log)
	bookingSvc := bookings.NewService(db, log, notifier)

	audit := bookings.NewOrphanAudit(db, log)
	audit.Sweep()
	audit.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db, log, bookingSvc)
	printRoutes(r)

	log.Info("server listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
