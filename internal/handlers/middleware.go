package handlers

import (
	"log"
	"net/http"

	"sweepminder/internal/database"
	"sweepminder/internal/utils"

	"github.com/gin-gonic/gin"
)

// DeviceMiddleware resolves the caller's user from the X-Device-ID header,
// creating the user on first contact. There is no other authentication: the
// token is opaque and client-generated, and everything a user owns hangs
// off the row it maps to.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader("X-Device-ID")
		if deviceID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Device ID required in X-Device-ID header"})
			return
		}

		user, created, err := database.Repo().GetOrCreateUser(deviceID)
		if err != nil {
			log.Printf("Error: Failed to resolve device %s: %v", deviceID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve device"})
			return
		}
		if created {
			log.Printf("New device registered: user %d from %s", user.ID, utils.GetRealClientIP(c))
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}

// userID pulls the user resolved by DeviceMiddleware out of the context
func userID(c *gin.Context) uint {
	return c.GetUint("user_id")
}
