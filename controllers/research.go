package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/services"
	"ethno-platform-api/utils"

	"github.com/gin-gonic/gin"
)

type researchSubmitForm struct {
	SubmitterName  string `form:"submitter_name" binding:"required"`
	SubmitterRef   string `form:"submitter_id" binding:"required"`
	SubmitterEmail string `form:"submitter_email" binding:"required"`
	Program        string `form:"program" binding:"required"`
	Batch          string `form:"batch"`
	Mentor         string `form:"mentor"`
	Title          string `form:"title" binding:"required"`
	Abstract       string `form:"abstract" binding:"required"`
	Community      string `form:"community" binding:"required"`
	Type           string `form:"type" binding:"required"`
	Keywords       string `form:"keywords"`
	DatasetSize    string `form:"dataset_size"`
}

// validateResearchFile applies the MIME and size rules for the submission's
// content kind. Runs before anything is written to disk.
func validateResearchFile(researchType string, header *multipart.FileHeader) error {
	mimeType := utils.FileMimeType(header)

	switch researchType {
	case models.ResearchTypeThesis, models.ResearchTypePublication,
		models.ResearchTypePatent, models.ResearchTypeDocument:
		if !utils.IsAllowedDocumentType(mimeType) {
			return utils.ValidationError("Only PDF, DOC and DOCX files are allowed for this submission type")
		}
		if header.Size > utils.MaxDocumentSize {
			return utils.ValidationError("Document exceeds the 50MB size limit")
		}
	case models.ResearchTypeDataset, models.ResearchTypeSurvey, models.ResearchTypeFieldNote:
		if !utils.IsAllowedDatasetType(mimeType) {
			return utils.ValidationError("File type is not allowed for dataset submissions")
		}
		if header.Size > utils.MaxDatasetSize {
			return utils.ValidationError("Dataset exceeds the 1GB size limit")
		}
	case models.ResearchTypePhoto, models.ResearchTypeInterview:
		if !utils.IsAllowedMediaType(mimeType) {
			return utils.ValidationError("File type is not allowed for media submissions")
		}
		if header.Size > utils.MaxMediaSize {
			return utils.ValidationError("Media file exceeds the 1GB size limit")
		}
	default:
		return utils.ValidationError("Invalid submission type")
	}

	return nil
}

// storeUpload writes a multipart file under UPLOAD_PATH/<subdir> with a
// generated filename and records it in file_uploads. Returns the relative
// path stored on records and the absolute path for cleanup.
func storeUpload(c *gin.Context, header *multipart.FileHeader, subdir string, uploadedBy *int) (string, string, error) {
	dir, err := utils.UploadDir(subdir)
	if err != nil {
		return "", "", utils.InternalError("Failed to prepare upload directory", err)
	}

	storedName := utils.GenerateStoredName(header.Filename)
	fullPath := filepath.Join(dir, storedName)

	if err := c.SaveUploadedFile(header, fullPath); err != nil {
		return "", "", utils.InternalError("Failed to store uploaded file", err)
	}

	relPath := filepath.ToSlash(filepath.Join(subdir, storedName))

	now := time.Now()
	record := models.FileUpload{
		OriginalName: header.Filename,
		StoredPath:   relPath,
		FileSize:     header.Size,
		MimeType:     utils.FileMimeType(header),
		IsPublic:     true,
		UploadedBy:   uploadedBy,
		UploadedAt:   now,
		CreateAt:     now,
		UpdateAt:     now,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		// Bookkeeping only; the owning record still references the file.
		log.Printf("Warning: failed to record file upload %s: %v", relPath, err)
	}

	return relPath, fullPath, nil
}

// SubmitResearch accepts a new submission with exactly one attached file and
// persists it with status pending.
func SubmitResearch(c *gin.Context) {
	var form researchSubmitForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	if !utils.ValidateEmail(form.SubmitterEmail) {
		utils.RespondError(c, utils.ValidationError("Invalid submitter email"))
		return
	}

	researchType := strings.ToLower(strings.TrimSpace(form.Type))
	if !models.IsValidResearchType(researchType) {
		utils.RespondError(c, utils.ValidationError(fmt.Sprintf("Invalid submission type '%s'", form.Type)))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, utils.ValidationError("A file attachment is required"))
		return
	}

	if err := validateResearchFile(researchType, fileHeader); err != nil {
		utils.RespondError(c, err)
		return
	}

	relPath, fullPath, err := storeUpload(c, fileHeader, "research", nil)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	now := time.Now()
	research := models.Research{
		Type:           researchType,
		SubmitterName:  utils.SanitizeInput(form.SubmitterName),
		SubmitterRef:   utils.SanitizeInput(form.SubmitterRef),
		SubmitterEmail: utils.SanitizeInput(form.SubmitterEmail),
		Program:        utils.SanitizeInput(form.Program),
		Title:          utils.SanitizeInput(form.Title),
		Abstract:       utils.SanitizeInput(form.Abstract),
		Community:      utils.SanitizeInput(form.Community),
		FilePath:       relPath,
		Status:         utils.StatusPending,
		CreateAt:       &now,
		UpdateAt:       &now,
	}
	if batch := utils.SanitizeInput(form.Batch); batch != "" {
		research.Batch = &batch
	}
	if mentor := utils.SanitizeInput(form.Mentor); mentor != "" {
		research.Mentor = &mentor
	}
	if keywords := utils.SanitizeInput(form.Keywords); keywords != "" {
		research.Keywords = &keywords
	}
	if datasetSize := utils.SanitizeInput(form.DatasetSize); datasetSize != "" {
		research.DatasetSize = &datasetSize
	}

	if err := config.DB.Create(&research).Error; err != nil {
		// Do not leave an orphaned file behind a failed insert.
		if cleanupErr := utils.RemoveStoredFile(fullPath); cleanupErr != nil {
			log.Printf("Warning: failed to remove orphaned upload %s: %v", fullPath, cleanupErr)
		}
		utils.RespondError(c, utils.WrapDBError(err, "Research not found"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Submission received and pending review",
		"research": research,
	})
}

// GetPublicResearch lists approved submissions for unauthenticated display.
func GetPublicResearch(c *gin.Context) {
	var research []models.Research
	query := services.PublicResearchQuery(
		config.DB.Model(&models.Research{}),
		c.Query("type"),
		c.Query("community"),
	)

	if err := query.Find(&research).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Research not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"research": research,
		"total":    len(research),
	})
}
