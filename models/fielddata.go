package models

import "time"

// FieldData is a submitted field dataset (survey exports, recordings, notes).
type FieldData struct {
	FieldDataID     int        `gorm:"primaryKey;column:field_data_id" json:"field_data_id"`
	Type            string     `gorm:"column:type" json:"type"`
	CollectorName   string     `gorm:"column:collector_name" json:"collector_name"`
	CollectorEmail  string     `gorm:"column:collector_email" json:"collector_email"`
	Community       string     `gorm:"column:community" json:"community"`
	Description     string     `gorm:"column:description" json:"description"`
	FilePath        string     `gorm:"column:file_path" json:"file_path"`
	DatasetSize     *string    `gorm:"column:dataset_size" json:"dataset_size,omitempty"`
	Status          string     `gorm:"column:status;default:pending" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	ReviewerID      *int       `gorm:"column:reviewer_id" json:"reviewer_id,omitempty"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreateAt        *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at"`
}

// TableName overrides
func (FieldData) TableName() string {
	return "field_data"
}
