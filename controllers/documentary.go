package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/services"
	"ethno-platform-api/utils"

	"github.com/gin-gonic/gin"
)

type documentaryUploadForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Community   string `form:"community" binding:"required"`
	Duration    *int   `form:"duration_seconds"`
}

// UploadDocumentary accepts a thumbnail and a video and creates a pending
// documentary record referencing both.
func UploadDocumentary(c *gin.Context) {
	var form documentaryUploadForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	thumbHeader, err := c.FormFile("thumbnail")
	if err != nil {
		utils.RespondError(c, utils.ValidationError("A thumbnail image is required"))
		return
	}
	videoHeader, err := c.FormFile("video")
	if err != nil {
		utils.RespondError(c, utils.ValidationError("A video file is required"))
		return
	}

	if !utils.IsAllowedImageType(utils.FileMimeType(thumbHeader)) {
		utils.RespondError(c, utils.ValidationError("Thumbnail must be an image"))
		return
	}
	if thumbHeader.Size > utils.MaxImageSize {
		utils.RespondError(c, utils.ValidationError("Thumbnail exceeds the 10MB size limit"))
		return
	}
	if !utils.IsAllowedVideoType(utils.FileMimeType(videoHeader)) {
		utils.RespondError(c, utils.ValidationError("Video file type is not allowed"))
		return
	}
	if thumbHeader.Size+videoHeader.Size > utils.MaxCombinedSize {
		utils.RespondError(c, utils.ValidationError("Combined upload exceeds the 5GB size limit"))
		return
	}

	uploaderID := c.GetInt("userID")

	thumbRel, thumbFull, err := storeUpload(c, thumbHeader, "documentaries", &uploaderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	videoRel, videoFull, err := storeUpload(c, videoHeader, "documentaries", &uploaderID)
	if err != nil {
		if cleanupErr := utils.RemoveStoredFile(thumbFull); cleanupErr != nil {
			log.Printf("Warning: failed to remove orphaned upload %s: %v", thumbFull, cleanupErr)
		}
		utils.RespondError(c, err)
		return
	}

	now := time.Now()
	documentary := models.Documentary{
		Title:           utils.SanitizeInput(form.Title),
		Slug:            utils.Slugify(form.Title),
		Description:     utils.SanitizeInput(form.Description),
		Community:       utils.SanitizeInput(form.Community),
		ThumbnailPath:   thumbRel,
		VideoPath:       videoRel,
		DurationSeconds: form.Duration,
		Status:          utils.StatusPending,
		UploadedBy:      uploaderID,
		CreateAt:        &now,
		UpdateAt:        &now,
	}

	if err := config.DB.Create(&documentary).Error; err != nil {
		for _, path := range []string{thumbFull, videoFull} {
			if cleanupErr := utils.RemoveStoredFile(path); cleanupErr != nil {
				log.Printf("Warning: failed to remove orphaned upload %s: %v", path, cleanupErr)
			}
		}
		utils.RespondError(c, utils.WrapDBError(err, "Documentary not found"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Documentary uploaded and pending review",
		"documentary": documentary,
	})
}

// GetDocumentaries lists approved documentaries for public display.
func GetDocumentaries(c *gin.Context) {
	var documentaries []models.Documentary
	query := services.ApprovedOnly(config.DB.Model(&models.Documentary{})).
		Order("create_at DESC")

	if community := c.Query("community"); community != "" {
		query = query.Where("community = ?", community)
	}

	if err := query.Find(&documentaries).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Documentary not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documentaries": documentaries,
		"total":         len(documentaries),
	})
}

// GetAdminDocumentaries lists every documentary regardless of status.
func GetAdminDocumentaries(c *gin.Context) {
	var documentaries []models.Documentary
	err := config.DB.Preload("Uploader").
		Order("create_at DESC").
		Find(&documentaries).Error
	if err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Documentary not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documentaries": documentaries,
		"total":         len(documentaries),
	})
}

// UpdateDocumentaryStatus transitions one documentary to a review decision.
func UpdateDocumentaryStatus(c *gin.Context) {
	documentaryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, utils.NotFoundError("Documentary not found"))
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	documentary, err := services.NewReviewService(config.DB).TransitionDocumentary(documentaryID, services.ReviewDecision{
		Status:     req.Status,
		Comments:   req.Comments,
		ReviewerID: c.GetInt("userID"),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Status updated",
		"documentary": documentary,
	})
}
