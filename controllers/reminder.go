package controllers

import (
	"net/http"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetReminderLogs lists the most recent reminder attempts. Admin only.
func GetReminderLogs(c *gin.Context) {
	var logs []models.ReminderLog
	if err := config.DB.Order("sent_at DESC").Limit(100).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": logs})
}
