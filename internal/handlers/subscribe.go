package handlers

import (
	"fmt"
	"net/http"

	"sweepminder/internal/database"
	"sweepminder/internal/models"

	"github.com/gin-gonic/gin"
)

// Subscribe stores the browser's push subscription for the current user.
// Re-subscribing with an endpoint the user already registered refreshes its
// keys instead of duplicating it.
func Subscribe(c *gin.Context) {
	var request models.SubscribeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid subscription object: %s", err.Error())})
		return
	}

	if err := database.Repo().SaveSubscription(userID(c), request); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to save subscription", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subscription saved"})
}
