package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"sweepminder/internal/database"
	"sweepminder/internal/handlers"
	"sweepminder/internal/logger"
	"sweepminder/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// This is our main function - the entry point of our application
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	zlog, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	// Start the notification worker. Without VAPID keys the API still
	// works, there is just nothing to push with.
	push := services.NewPushService()
	if push.Configured() {
		worker := services.NewNotificationWorker(database.Repo(), push, zlog)
		go worker.Run(context.Background())
	} else {
		log.Println("VAPID keys not set, notification worker disabled. Generate them with: npx web-push generate-vapid-keys")
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure trusted proxies
	router.SetTrustedProxies([]string{"127.0.0.1"})

	// The PWA is served from another origin
	router.Use(cors.Default())

	// Basic routes
	router.GET("/", handlers.HomeHandler)
	router.GET("/health", handlers.HealthHandler)
	router.GET("/api/vapid-public-key", handlers.VapidPublicKeyHandler)

	// Everything else is scoped to the calling device's user
	api := router.Group("/api")
	api.Use(handlers.DeviceMiddleware())
	{
		api.POST("/subscribe", handlers.Subscribe)

		api.GET("/schedules", handlers.GetSchedules)
		api.POST("/schedules", handlers.CreateSchedule)
		api.DELETE("/schedules/:id", handlers.DeleteSchedule)

		api.GET("/exceptions", handlers.GetExceptions)
		api.POST("/exceptions", handlers.CreateException)
		api.DELETE("/exceptions/:id", handlers.DeleteException)

		api.GET("/reminders", handlers.GetReminders)
		api.PUT("/reminders", handlers.UpdateReminders)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start the server
	fmt.Printf("Server starting on port %s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
