package models

import (
	"time"
)

// Research represents one piece of submitted academic work moving through review.
// Submitter-supplied fields are immutable after creation; the review workflow
// exclusively owns Status, RejectionReason, ReviewerID and ReviewedAt.
type Research struct {
	ResearchID      int        `gorm:"primaryKey;column:research_id" json:"research_id"`
	Type            string     `gorm:"column:type" json:"type"`
	SubmitterName   string     `gorm:"column:submitter_name" json:"submitter_name"`
	SubmitterRef    string     `gorm:"column:submitter_ref" json:"submitter_ref"`
	SubmitterEmail  string     `gorm:"column:submitter_email" json:"submitter_email"`
	Program         string     `gorm:"column:program" json:"program"`
	Batch           *string    `gorm:"column:batch" json:"batch,omitempty"`
	Mentor          *string    `gorm:"column:mentor" json:"mentor,omitempty"`
	Title           string     `gorm:"column:title" json:"title"`
	Abstract        string     `gorm:"column:abstract" json:"abstract"`
	Community       string     `gorm:"column:community" json:"community"`
	Keywords        *string    `gorm:"column:keywords" json:"keywords,omitempty"`
	DatasetSize     *string    `gorm:"column:dataset_size" json:"dataset_size,omitempty"`
	FilePath        string     `gorm:"column:file_path" json:"file_path"`
	Status          string     `gorm:"column:status;default:pending" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	ReviewerID      *int       `gorm:"column:reviewer_id" json:"reviewer_id,omitempty"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreateAt        *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// Research content kinds accepted by the intake endpoint.
const (
	ResearchTypeThesis      = "thesis"
	ResearchTypePublication = "publication"
	ResearchTypePatent      = "patent"
	ResearchTypeDataset     = "dataset"
	ResearchTypeInterview   = "interview"
	ResearchTypePhoto       = "photo"
	ResearchTypeSurvey      = "survey"
	ResearchTypeFieldNote   = "field_note"
	ResearchTypeDocument    = "document"
)

var researchTypes = map[string]bool{
	ResearchTypeThesis:      true,
	ResearchTypePublication: true,
	ResearchTypePatent:      true,
	ResearchTypeDataset:     true,
	ResearchTypeInterview:   true,
	ResearchTypePhoto:       true,
	ResearchTypeSurvey:      true,
	ResearchTypeFieldNote:   true,
	ResearchTypeDocument:    true,
}

// IsValidResearchType reports whether t is one of the accepted content kinds.
func IsValidResearchType(t string) bool {
	return researchTypes[t]
}

// TableName overrides
func (Research) TableName() string {
	return "research"
}
