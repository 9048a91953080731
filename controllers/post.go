package controllers

import (
	"net/http"
	"strconv"

	"nailstudio-backend/config"
	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

// Posts are managed outside this API; the endpoints here are read-only.

// GetPosts lists blog posts, newest first
func GetPosts(c *gin.Context) {
	var posts []models.Post
	if err := config.DB.Order("posted_on DESC").Find(&posts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost retrieves one post by ID
func GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid post ID format")
		return
	}

	var post models.Post
	if err := config.DB.First(&post, id).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}
