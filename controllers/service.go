// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name     string  `json:"name" binding:"required"`
	Duration float64 `json:"duration" binding:"required,gt=0"` // in hours, one decimal place
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name     *string  `json:"name"`
	Duration *float64 `json:"duration"`
}

// CreateService adds a catalog service. Admin only.
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:     input.Name,
		Duration: quantizeDuration(input.Duration),
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the full service catalog
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("id").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	service, ok := findService(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service. Admin only.
func UpdateService(c *gin.Context) {
	service, ok := findService(c)
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Duration must be positive")
			return
		}
		service.Duration = quantizeDuration(*input.Duration)
	}

	if err := config.DB.Save(service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service from the catalog. Admin only. Existing
// entries keep running; the association rows are removed with the service.
func DeleteService(c *gin.Context) {
	service, ok := findService(c)
	if !ok {
		return
	}

	if err := config.DB.Select("Entries").Delete(service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}

func findService(c *gin.Context) (*models.Service, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return nil, false
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &service, true
}

// quantizeDuration clamps a duration to one decimal place of hours, the
// resolution the catalog stores.
func quantizeDuration(hours float64) float64 {
	return float64(int(hours*10+0.5)) / 10
}
