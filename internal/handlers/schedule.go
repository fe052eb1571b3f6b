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

// GetSchedules lists the current user's schedules
func GetSchedules(c *gin.Context) {
	schedules, err := database.Repo().SchedulesForUser(userID(c))
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to get schedules", err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// CreateSchedule handles the creation of a new recurring schedule.
// Malformed rules (empty week pattern, day of week outside 0-6, bad times)
// are rejected here and never reach the occurrence resolver.
func CreateSchedule(c *gin.Context) {
	var request models.CreateScheduleRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid input: %s", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	schedule := models.Schedule{
		UserID:      userID(c),
		Label:       request.Label,
		DayOfWeek:   *request.DayOfWeek,
		WeekPattern: models.IntList(request.WeekPattern),
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Active:      active,
		CreatedAt:   time.Now(),
	}

	if err := database.Repo().CreateSchedule(&schedule); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to create schedule", err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// DeleteSchedule removes one of the current user's schedules
func DeleteSchedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule id"})
		return
	}

	if err := database.Repo().DeleteSchedule(userID(c), uint(id)); err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to delete schedule", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
