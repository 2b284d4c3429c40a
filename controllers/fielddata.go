package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/services"
	"ethno-platform-api/utils"

	"github.com/gin-gonic/gin"
)

type fieldDataSubmitForm struct {
	Type           string `form:"type" binding:"required"`
	CollectorName  string `form:"collector_name" binding:"required"`
	CollectorEmail string `form:"collector_email" binding:"required"`
	Community      string `form:"community" binding:"required"`
	Description    string `form:"description" binding:"required"`
	DatasetSize    string `form:"dataset_size"`
}

// SubmitFieldData accepts one field dataset file with collection metadata.
func SubmitFieldData(c *gin.Context) {
	var form fieldDataSubmitForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	if !utils.ValidateEmail(form.CollectorEmail) {
		utils.RespondError(c, utils.ValidationError("Invalid collector email"))
		return
	}

	dataType := strings.ToLower(strings.TrimSpace(form.Type))
	switch dataType {
	case models.ResearchTypeDataset, models.ResearchTypeSurvey,
		models.ResearchTypeFieldNote, models.ResearchTypeInterview, models.ResearchTypePhoto:
	default:
		utils.RespondError(c, utils.ValidationError("Invalid field data type"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, utils.ValidationError("A file attachment is required"))
		return
	}

	mimeType := utils.FileMimeType(fileHeader)
	if !utils.IsAllowedDatasetType(mimeType) && !utils.IsAllowedMediaType(mimeType) {
		utils.RespondError(c, utils.ValidationError("File type is not allowed for field data"))
		return
	}
	if fileHeader.Size > utils.MaxDatasetSize {
		utils.RespondError(c, utils.ValidationError("Dataset exceeds the 1GB size limit"))
		return
	}

	relPath, fullPath, err := storeUpload(c, fileHeader, "field-data", nil)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	now := time.Now()
	fieldData := models.FieldData{
		Type:           dataType,
		CollectorName:  utils.SanitizeInput(form.CollectorName),
		CollectorEmail: utils.SanitizeInput(form.CollectorEmail),
		Community:      utils.SanitizeInput(form.Community),
		Description:    utils.SanitizeInput(form.Description),
		FilePath:       relPath,
		Status:         utils.StatusPending,
		CreateAt:       &now,
		UpdateAt:       &now,
	}
	if datasetSize := utils.SanitizeInput(form.DatasetSize); datasetSize != "" {
		fieldData.DatasetSize = &datasetSize
	}

	if err := config.DB.Create(&fieldData).Error; err != nil {
		if cleanupErr := utils.RemoveStoredFile(fullPath); cleanupErr != nil {
			log.Printf("Warning: failed to remove orphaned upload %s: %v", fullPath, cleanupErr)
		}
		utils.RespondError(c, utils.WrapDBError(err, "Field data not found"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Field data received and pending review",
		"field_data": fieldData,
	})
}

// GetPublicFieldData lists approved field datasets.
func GetPublicFieldData(c *gin.Context) {
	var fieldData []models.FieldData
	query := services.ApprovedOnly(config.DB.Model(&models.FieldData{})).
		Order("create_at DESC")

	if community := c.Query("community"); community != "" {
		query = query.Where("community = ?", community)
	}

	if err := query.Find(&fieldData).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Field data not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"field_data": fieldData,
		"total":      len(fieldData),
	})
}

// GetAdminFieldData lists every field dataset regardless of status.
func GetAdminFieldData(c *gin.Context) {
	var fieldData []models.FieldData
	if err := config.DB.Order("create_at DESC").Find(&fieldData).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Field data not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"field_data": fieldData,
		"total":      len(fieldData),
	})
}

// UpdateFieldDataStatus transitions one field dataset to a review decision.
func UpdateFieldDataStatus(c *gin.Context) {
	fieldDataID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, utils.NotFoundError("Field data not found"))
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	fieldData, err := services.NewReviewService(config.DB).TransitionFieldData(fieldDataID, services.ReviewDecision{
		Status:     req.Status,
		Comments:   req.Comments,
		ReviewerID: c.GetInt("userID"),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Status updated",
		"field_data": fieldData,
	})
}
