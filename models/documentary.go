package models

import "time"

// Documentary pairs a video with its thumbnail, both stored on local disk.
type Documentary struct {
	DocumentaryID   int        `gorm:"primaryKey;column:documentary_id" json:"documentary_id"`
	Title           string     `gorm:"column:title" json:"title"`
	Slug            string     `gorm:"column:slug;unique" json:"slug"`
	Description     string     `gorm:"column:description" json:"description"`
	Community       string     `gorm:"column:community" json:"community"`
	ThumbnailPath   string     `gorm:"column:thumbnail_path" json:"thumbnail_path"`
	VideoPath       string     `gorm:"column:video_path" json:"video_path"`
	DurationSeconds *int       `gorm:"column:duration_seconds" json:"duration_seconds,omitempty"`
	Status          string     `gorm:"column:status;default:pending" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	ReviewerID      *int       `gorm:"column:reviewer_id" json:"reviewer_id,omitempty"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	UploadedBy      int        `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreateAt        *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Uploader *User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

// TableName overrides
func (Documentary) TableName() string {
	return "documentaries"
}
