package models

import "time"

// Story is a narrative piece shown on the public site once approved.
type Story struct {
	StoryID    int        `gorm:"primaryKey;column:story_id" json:"story_id"`
	Title      string     `gorm:"column:title" json:"title"`
	Slug       string     `gorm:"column:slug;unique" json:"slug"`
	Author     string     `gorm:"column:author" json:"author"`
	Community  string     `gorm:"column:community" json:"community"`
	Body       string     `gorm:"column:body" json:"body"`
	CoverImage *string    `gorm:"column:cover_image" json:"cover_image,omitempty"`
	Status     string     `gorm:"column:status;default:pending" json:"status"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
}

// TableName overrides
func (Story) TableName() string {
	return "stories"
}
