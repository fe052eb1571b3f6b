package handlers

import (
	"fmt"
	"net/http"

	"sweepminder/internal/database"
	"sweepminder/internal/models"

	"github.com/gin-gonic/gin"
)

// GetReminders returns the user's reminder times, creating the defaults
// (20:00 night before, 07:00 morning of) on first read.
func GetReminders(c *gin.Context) {
	setting, err := database.Repo().RemindersForUser(userID(c))
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to get reminders", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"night_before": setting.NightBefore,
		"morning_of":   setting.MorningOf,
	})
}

// UpdateReminders replaces both reminder times together
func UpdateReminders(c *gin.Context) {
	var request models.UpdateRemindersRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid input: %s", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.Repo().UpdateReminders(userID(c), request.NightBefore, request.MorningOf); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to update reminders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
