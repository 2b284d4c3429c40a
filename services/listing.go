package services

import (
	"strings"

	"ethno-platform-api/utils"

	"gorm.io/gorm"
)

// ApprovedOnly is the single public-visibility scope. Every public listing
// route must go through it; no route applies its own status filter.
func ApprovedOnly(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", utils.StatusApproved)
}

// PublicResearchQuery builds the public research listing query: approved
// records only, optionally narrowed by type and community, newest first.
func PublicResearchQuery(db *gorm.DB, researchType, community string) *gorm.DB {
	query := ApprovedOnly(db)

	if t := strings.TrimSpace(researchType); t != "" {
		query = query.Where("type = ?", t)
	}
	if cm := strings.TrimSpace(community); cm != "" {
		query = query.Where("community = ?", cm)
	}

	return query.Order("create_at DESC")
}
