package controllers

import (
	"net/http"
	"time"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/services"
	"ethno-platform-api/utils"

	"github.com/gin-gonic/gin"
)

// GetStories lists approved stories for the public site.
func GetStories(c *gin.Context) {
	var stories []models.Story
	query := services.ApprovedOnly(config.DB.Model(&models.Story{})).
		Order("create_at DESC")

	if community := c.Query("community"); community != "" {
		query = query.Where("community = ?", community)
	}

	if err := query.Find(&stories).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Story not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stories": stories,
		"total":   len(stories),
	})
}

// GetStory returns one approved story by slug.
func GetStory(c *gin.Context) {
	var story models.Story
	err := services.ApprovedOnly(config.DB.Model(&models.Story{})).
		Where("slug = ?", c.Param("slug")).
		First(&story).Error
	if err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Story not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": story})
}

type storyRequest struct {
	Title      string  `json:"title" binding:"required"`
	Author     string  `json:"author" binding:"required"`
	Community  string  `json:"community" binding:"required"`
	Body       string  `json:"body" binding:"required"`
	CoverImage *string `json:"cover_image"`
}

// CreateStory adds a pending story (authenticated contributors).
func CreateStory(c *gin.Context) {
	var req storyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	now := time.Now()
	story := models.Story{
		Title:      utils.SanitizeInput(req.Title),
		Slug:       utils.Slugify(req.Title),
		Author:     utils.SanitizeInput(req.Author),
		Community:  utils.SanitizeInput(req.Community),
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Status:     utils.StatusPending,
		CreateAt:   &now,
		UpdateAt:   &now,
	}

	if story.Slug == "" {
		utils.RespondError(c, utils.ValidationError("Story title must contain letters or digits"))
		return
	}

	if err := config.DB.Create(&story).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Story not found"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"story": story})
}
