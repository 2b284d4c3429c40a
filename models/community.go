package models

import "time"

// Community is a public profile page for one documented community.
type Community struct {
	CommunityID   int        `gorm:"primaryKey;column:community_id" json:"community_id"`
	Name          string     `gorm:"column:name" json:"name"`
	Slug          string     `gorm:"column:slug;unique" json:"slug"`
	Description   string     `gorm:"column:description" json:"description"`
	Region        *string    `gorm:"column:region" json:"region,omitempty"`
	Population    *int       `gorm:"column:population" json:"population,omitempty"`
	CoverImage    *string    `gorm:"column:cover_image" json:"cover_image,omitempty"`
	IsActive      bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Computed on read, not persisted.
	ResearchCount int64 `gorm:"-" json:"research_count"`
}

// TableName overrides
func (Community) TableName() string {
	return "communities"
}
