package models

import "time"

// FileUpload represents the file_uploads bookkeeping table. One row per file
// written under the upload directory, regardless of which record references it.
type FileUpload struct {
	FileID       int        `gorm:"primaryKey;column:file_id" json:"file_id"`
	OriginalName string     `gorm:"column:original_name" json:"original_name"`
	StoredPath   string     `gorm:"column:stored_path" json:"stored_path"`
	FileSize     int64      `gorm:"column:file_size" json:"file_size"`
	MimeType     string     `gorm:"column:mime_type" json:"mime_type"`
	IsPublic     bool       `gorm:"column:is_public" json:"is_public"`
	UploadedBy   *int       `gorm:"column:uploaded_by" json:"uploaded_by,omitempty"`
	UploadedAt   time.Time  `gorm:"column:uploaded_at" json:"uploaded_at"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (FileUpload) TableName() string {
	return "file_uploads"
}
