// Seeding script for a fresh install: roles, the default admin account and a
// couple of community profiles. Safe to re-run; existing rows are skipped.
package main

import (
	"errors"

	"ethno-platform-api/config"
	"ethno-platform-api/models"
	"ethno-platform-api/utils"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	seedRoles()
	seedAdmin()
	seedCommunities()

	log.Println("Seeding completed!")
}

func seedRoles() {
	roles := map[int]string{
		models.RoleMember:   "member",
		models.RoleReviewer: "reviewer",
		models.RoleAdmin:    "admin",
	}

	for roleID, name := range roles {
		var existing models.Role
		err := config.DB.Where("role_id = ?", roleID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check role %s: %v", name, err)
		}

		now := time.Now()
		role := models.Role{RoleID: roleID, Role: name, CreateAt: &now, UpdateAt: &now}
		if err := config.DB.Create(&role).Error; err != nil {
			log.Fatalf("Failed to create role %s: %v", name, err)
		}
		log.Printf("Created role %s\n", name)
	}
}

func seedAdmin() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@university.edu"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Admin %s already exists, skipping\n", email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now()
	admin := models.User{
		Name:     "Platform Admin",
		Email:    email,
		Password: hashed,
		RoleID:   models.RoleAdmin,
		CreateAt: &now,
		UpdateAt: &now,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user %s\n", email)
}

func seedCommunities() {
	region := "Chittagong Hill Tracts"
	samples := []models.Community{
		{
			Name:        "Mro",
			Description: "Community profile for the Mro people.",
			Region:      &region,
		},
		{
			Name:        "Khumi",
			Description: "Community profile for the Khumi people.",
			Region:      &region,
		},
	}

	for _, sample := range samples {
		slug := utils.Slugify(sample.Name)

		var existing models.Community
		err := config.DB.Where("slug = ?", slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check community %s: %v", sample.Name, err)
		}

		now := time.Now()
		sample.Slug = slug
		sample.IsActive = true
		sample.CreateAt = &now
		sample.UpdateAt = &now
		if err := config.DB.Create(&sample).Error; err != nil {
			log.Fatalf("Failed to create community %s: %v", sample.Name, err)
		}
		log.Printf("Created community %s\n", sample.Name)
	}
}
