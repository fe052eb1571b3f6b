package handlers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// handleError provides a consistent way to handle and log errors
func handleError(c *gin.Context, status int, message string, err error) {
	log.Printf("Error: %v", err)
	c.JSON(status, gin.H{"error": message})
}

// HomeHandler handles requests to the root path "/"
func HomeHandler(c *gin.Context) {
	c.String(http.StatusOK, "SweepMinder API")
}

// HealthHandler is a simple health check endpoint
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// VapidPublicKeyHandler serves the key browsers need to subscribe to push
func VapidPublicKeyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": os.Getenv("VAPID_PUBLIC_KEY")})
}
