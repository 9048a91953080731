package controllers

import (
	"errors"
	"net/http"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUserInput defines the expected JSON structure for creating a user
type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=2,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Admin    bool   `json:"admin"`
}

// UpdateUserInput defines the expected JSON structure for updating a user
type UpdateUserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Admin    *bool   `json:"admin"`
}

// CreateUser adds an account. Admin only; there is no self-registration.
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.User
	result := config.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username or email already taken")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password, // Hashed in BeforeCreate hook
		Admin:    input.Admin,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUsers lists all accounts
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("registered_on").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser retrieves one account by ID
func GetUser(c *gin.Context) {
	user, ok := findUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser updates an account with explicit field mapping. Admin only.
func UpdateUser(c *gin.Context) {
	user, ok := findUser(c)
	if !ok {
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Admin != nil {
		user.Admin = *input.Admin
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account and, via cascade, its entries, posts and
// social profile. Admin only.
func DeleteUser(c *gin.Context) {
	user, ok := findUser(c)
	if !ok {
		return
	}

	if err := config.DB.Select("Entries", "Posts", "Socials").Delete(user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserEntries lists a user's entries, newest first
func GetUserEntries(c *gin.Context) {
	user, ok := findUser(c)
	if !ok {
		return
	}

	var entries []models.Entry
	if err := config.DB.Preload("Services").
		Where("user_id = ?", user.ID).
		Order("date DESC, time DESC").
		Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entriesJSON(entries)})
}

// GetUserSocials retrieves a user's social profile
func GetUserSocials(c *gin.Context) {
	user, ok := findUser(c)
	if !ok {
		return
	}

	var socials models.SocialMedia
	if err := config.DB.First(&socials, "user_id = ?", user.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Social profile not found")
		return
	}
	c.JSON(http.StatusOK, socials)
}

func findUser(c *gin.Context) (*models.User, bool) {
	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return nil, false
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &user, true
}
