package controllers

import (
	"log"
	"net/http"
	"time"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/services"
	"ethno-platform-api/utils"

	"github.com/gin-gonic/gin"
)

// GetCommunities lists active community profiles with research counts.
func GetCommunities(c *gin.Context) {
	var communities []models.Community
	err := config.DB.
		Where("is_active = ? AND delete_at IS NULL", true).
		Order("name ASC").
		Find(&communities).Error
	if err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Community not found"))
		return
	}

	counts, err := services.ResearchCountsByCommunity()
	if err != nil {
		// Counts are cosmetic; serve the listing without them.
		log.Printf("Warning: failed to load research counts: %v", err)
		counts = map[string]int64{}
	}
	for i := range communities {
		communities[i].ResearchCount = counts[communities[i].Name]
	}

	c.JSON(http.StatusOK, gin.H{
		"communities": communities,
		"total":       len(communities),
	})
}

// GetCommunity returns one community profile by slug.
func GetCommunity(c *gin.Context) {
	var community models.Community
	err := config.DB.
		Where("slug = ? AND is_active = ? AND delete_at IS NULL", c.Param("slug"), true).
		First(&community).Error
	if err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Community not found"))
		return
	}

	count, err := services.ResearchCountForCommunity(community.Name)
	if err != nil {
		log.Printf("Warning: failed to load research count for %s: %v", community.Name, err)
	}
	community.ResearchCount = count

	c.JSON(http.StatusOK, gin.H{"community": community})
}

type communityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Region      *string `json:"region"`
	Population  *int    `json:"population"`
	CoverImage  *string `json:"cover_image"`
}

// CreateCommunity adds a community profile (admin only).
func CreateCommunity(c *gin.Context) {
	var req communityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	now := time.Now()
	community := models.Community{
		Name:        utils.SanitizeInput(req.Name),
		Slug:        utils.Slugify(req.Name),
		Description: utils.SanitizeInput(req.Description),
		Region:      req.Region,
		Population:  req.Population,
		CoverImage:  req.CoverImage,
		IsActive:    true,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if community.Slug == "" {
		utils.RespondError(c, utils.ValidationError("Community name must contain letters or digits"))
		return
	}

	if err := config.DB.Create(&community).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Community not found"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"community": community})
}

// UpdateCommunity edits a community profile (admin only).
func UpdateCommunity(c *gin.Context) {
	var community models.Community
	err := config.DB.
		Where("slug = ? AND delete_at IS NULL", c.Param("slug")).
		First(&community).Error
	if err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Community not found"))
		return
	}

	type communityUpdateRequest struct {
		Description *string `json:"description"`
		Region      *string `json:"region"`
		Population  *int    `json:"population"`
		CoverImage  *string `json:"cover_image"`
		IsActive    *bool   `json:"is_active"`
	}

	var req communityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	now := time.Now()
	updates := map[string]interface{}{"update_at": now}
	if req.Description != nil {
		updates["description"] = utils.SanitizeInput(*req.Description)
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.Population != nil {
		updates["population"] = *req.Population
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&community).Updates(updates).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Community not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"community": community})
}
