package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sweepminder/internal/database"
	"sweepminder/internal/models"

	"github.com/gin-gonic/gin"
)

// GetExceptions lists the current user's date exceptions
func GetExceptions(c *gin.Context) {
	exceptions, err := database.Repo().ExceptionsForUser(userID(c))
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to get exceptions", err)
		return
	}
	c.JSON(http.StatusOK, exceptions)
}

// CreateException records a cancelled or moved sweeping date
func CreateException(c *gin.Context) {
	var request models.CreateExceptionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid input: %s", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exception := models.Exception{
		UserID:      userID(c),
		Date:        request.Date,
		MovedToDate: request.MovedToDate,
		Reason:      request.Reason,
		CreatedAt:   time.Now(),
	}

	if err := database.Repo().CreateException(&exception); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to create exception", err)
		return
	}

	c.JSON(http.StatusCreated, exception)
}

// DeleteException removes one of the current user's exceptions
func DeleteException(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exception id"})
		return
	}

	if err := database.Repo().DeleteException(userID(c), uint(id)); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to delete exception", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
