package services

import (
	"fmt"
	"log"
	"time"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/utils"

	"gorm.io/gorm"
)

// ReviewService applies review decisions. It exclusively owns the status,
// rejection reason and reviewer fields of reviewable records; nothing else is
// ever touched by a transition.
type ReviewService struct {
	db   *gorm.DB
	mail func(to []string, subject, html string) error
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db, mail: config.SendMail}
}

// ReviewDecision is one reviewer action against a pending record.
type ReviewDecision struct {
	Status     string
	Comments   string
	ReviewerID int
}

func (d *ReviewDecision) canonicalStatus() (string, error) {
	status, err := utils.CanonicalStatus(d.Status)
	if err != nil {
		return "", utils.ValidationError(err.Error())
	}
	if !utils.IsReviewTarget(status) {
		return "", utils.ValidationError(fmt.Sprintf("'%s' is not a valid review decision", status))
	}
	return status, nil
}

// reviewUpdates builds the column set a transition is allowed to write.
// Re-applying the same decision overwrites with identical values, so the
// operation is idempotent.
func reviewUpdates(status, comments string, reviewerID int, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{
		"status":      status,
		"reviewer_id": reviewerID,
		"reviewed_at": now,
		"update_at":   now,
	}
	if comments != "" {
		updates["rejection_reason"] = comments
	}
	return updates
}

// TransitionResearch moves a research record to the decided status and
// notifies the submitter. The notification is best effort; a mail failure
// never fails the transition.
func (s *ReviewService) TransitionResearch(researchID int, decision ReviewDecision) (*models.Research, error) {
	status, err := decision.canonicalStatus()
	if err != nil {
		return nil, err
	}

	var research models.Research
	if err := s.db.Where("research_id = ?", researchID).First(&research).Error; err != nil {
		return nil, utils.WrapDBError(err, "Research not found")
	}

	now := time.Now()
	updates := reviewUpdates(status, decision.Comments, decision.ReviewerID, now)
	if err := s.db.Model(&research).Updates(updates).Error; err != nil {
		return nil, utils.WrapDBError(err, "Research not found")
	}

	research.Status = status
	research.ReviewerID = &decision.ReviewerID
	research.ReviewedAt = &now
	research.UpdateAt = &now
	if decision.Comments != "" {
		comments := decision.Comments
		research.RejectionReason = &comments
	}

	s.notify(research.SubmitterEmail, research.Title, status, decision.Comments)

	return &research, nil
}

// TransitionDocumentary applies a review decision to a documentary.
func (s *ReviewService) TransitionDocumentary(documentaryID int, decision ReviewDecision) (*models.Documentary, error) {
	status, err := decision.canonicalStatus()
	if err != nil {
		return nil, err
	}

	var documentary models.Documentary
	if err := s.db.Preload("Uploader").
		Where("documentary_id = ?", documentaryID).
		First(&documentary).Error; err != nil {
		return nil, utils.WrapDBError(err, "Documentary not found")
	}

	now := time.Now()
	updates := reviewUpdates(status, decision.Comments, decision.ReviewerID, now)
	if err := s.db.Model(&documentary).Updates(updates).Error; err != nil {
		return nil, utils.WrapDBError(err, "Documentary not found")
	}

	documentary.Status = status
	documentary.ReviewerID = &decision.ReviewerID
	documentary.ReviewedAt = &now
	documentary.UpdateAt = &now
	if decision.Comments != "" {
		comments := decision.Comments
		documentary.RejectionReason = &comments
	}

	if documentary.Uploader != nil {
		s.notify(documentary.Uploader.Email, documentary.Title, status, decision.Comments)
	}

	return &documentary, nil
}

// TransitionFieldData applies a review decision to a field dataset.
func (s *ReviewService) TransitionFieldData(fieldDataID int, decision ReviewDecision) (*models.FieldData, error) {
	status, err := decision.canonicalStatus()
	if err != nil {
		return nil, err
	}

	var fieldData models.FieldData
	if err := s.db.Where("field_data_id = ?", fieldDataID).First(&fieldData).Error; err != nil {
		return nil, utils.WrapDBError(err, "Field data not found")
	}

	now := time.Now()
	updates := reviewUpdates(status, decision.Comments, decision.ReviewerID, now)
	if err := s.db.Model(&fieldData).Updates(updates).Error; err != nil {
		return nil, utils.WrapDBError(err, "Field data not found")
	}

	fieldData.Status = status
	fieldData.ReviewerID = &decision.ReviewerID
	fieldData.ReviewedAt = &now
	fieldData.UpdateAt = &now
	if decision.Comments != "" {
		comments := decision.Comments
		fieldData.RejectionReason = &comments
	}

	s.notify(fieldData.CollectorEmail, fieldData.Description, status, decision.Comments)

	return &fieldData, nil
}

func (s *ReviewService) notify(email, title, status, comments string) {
	if email == "" || s.mail == nil {
		return
	}

	subject := fmt.Sprintf("Your submission has been %s", status)
	body := fmt.Sprintf("<p>Your submission <strong>%s</strong> was marked <strong>%s</strong>.</p>", title, status)
	if comments != "" {
		body += fmt.Sprintf("<p>Reviewer comments: %s</p>", comments)
	}

	if err := s.mail([]string{email}, subject, body); err != nil {
		log.Printf("Failed to send review notification to %s: %v", email, err)
	}
}
