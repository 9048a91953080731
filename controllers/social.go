package controllers

import (
	"errors"
	"net/http"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateSocialsInput defines the expected JSON structure for updating the
// authenticated user's social profile. Fields map explicitly, one by one;
// nothing is assigned by reflection.
type UpdateSocialsInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Viber       *string `json:"viber"`
	WhatsApp    *string `json:"whatsapp"`
	Instagram   *string `json:"instagram"`
	Telegram    *string `json:"telegram"`
	YouTube     *string `json:"youtube"`
	Website     *string `json:"website"`
	VK          *string `json:"vk"`
	About       *string `json:"about"`
}

// GetMySocials retrieves the authenticated user's social profile, creating
// an empty one on first access.
func GetMySocials(c *gin.Context) {
	socials, ok := loadOrCreateSocials(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, socials)
}

// UpdateMySocials updates the authenticated user's social profile
func UpdateMySocials(c *gin.Context) {
	socials, ok := loadOrCreateSocials(c)
	if !ok {
		return
	}

	var input UpdateSocialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FirstName != nil {
		socials.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		socials.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		socials.PhoneNumber = *input.PhoneNumber
	}
	if input.Viber != nil {
		socials.Viber = *input.Viber
	}
	if input.WhatsApp != nil {
		socials.WhatsApp = *input.WhatsApp
	}
	if input.Instagram != nil {
		socials.Instagram = *input.Instagram
	}
	if input.Telegram != nil {
		socials.Telegram = *input.Telegram
	}
	if input.YouTube != nil {
		socials.YouTube = *input.YouTube
	}
	if input.Website != nil {
		socials.Website = *input.Website
	}
	if input.VK != nil {
		socials.VK = *input.VK
	}
	if input.About != nil {
		socials.About = *input.About
	}

	if err := config.DB.Save(socials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update social profile")
		return
	}
	c.JSON(http.StatusOK, socials)
}

func loadOrCreateSocials(c *gin.Context) (*models.SocialMedia, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, false
	}

	var socials models.SocialMedia
	err := config.DB.First(&socials, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		socials = models.SocialMedia{UserID: userID, Avatar: "default.jpg"}
		if err := config.DB.Create(&socials).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create social profile")
			return nil, false
		}
		return &socials, true
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return &socials, true
}
