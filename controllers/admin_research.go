package controllers

import (
	"net/http"
	"strconv"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/services"
	"ethno-platform-api/utils"

	"github.com/gin-gonic/gin"
)

type statusUpdateRequest struct {
	Status   string `json:"status" binding:"required"`
	Comments string `json:"comments"`
}

// GetAdminResearch lists every submission regardless of status.
func GetAdminResearch(c *gin.Context) {
	query := config.DB.Model(&models.Research{}).Order("create_at DESC")

	if status := c.Query("status"); status != "" {
		canonical, err := utils.CanonicalStatus(status)
		if err != nil {
			utils.RespondError(c, utils.ValidationError(err.Error()))
			return
		}
		query = query.Where("status = ?", canonical)
	}

	var research []models.Research
	if err := query.Preload("Reviewer").Find(&research).Error; err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Research not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"research": research,
		"total":    len(research),
	})
}

// UpdateResearchStatus transitions one submission to a review decision.
func UpdateResearchStatus(c *gin.Context) {
	researchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, utils.NotFoundError("Research not found"))
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	reviewerID := c.GetInt("userID")

	research, err := services.NewReviewService(config.DB).TransitionResearch(researchID, services.ReviewDecision{
		Status:     req.Status,
		Comments:   req.Comments,
		ReviewerID: reviewerID,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Status updated",
		"research": research,
	})
}

// GetResearchStats returns per-status submission counts for the admin dashboard.
func GetResearchStats(c *gin.Context) {
	type statusCount struct {
		Status string `json:"status"`
		Total  int64  `json:"total"`
	}

	var rows []statusCount
	err := config.DB.Model(&models.Research{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, utils.WrapDBError(err, "Research not found"))
		return
	}

	counts := gin.H{
		utils.StatusPending:  int64(0),
		utils.StatusApproved: int64(0),
		utils.StatusRejected: int64(0),
		utils.StatusRevision: int64(0),
	}
	var total int64
	for _, row := range rows {
		counts[row.Status] = row.Total
		total += row.Total
	}

	c.JSON(http.StatusOK, gin.H{
		"by_status": counts,
		"total":     total,
	})
}
