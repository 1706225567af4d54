package main

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"civicfix/internal/config"
	"civicfix/internal/models"
)

// Idempotent dev seed: ensures the test account exists with a known password
// and creates one sample report if it is missing.
func main() {
	config.InitDB()
	db := config.DB

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash seed password: %v", err)
	}

	var user models.User
	err = db.Where("email = ?", "test@test.com").First(&user).Error
	switch {
	case err == nil:
		user.PasswordHash = string(hash)
		user.DisplayName = "Test User"
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("could not update test user: %v", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Email:        "test@test.com",
			PasswordHash: string(hash),
			DisplayName:  "Test User",
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("could not create test user: %v", err)
		}
	default:
		log.Fatalf("could not look up test user: %v", err)
	}

	var existing models.Report
	err = db.Where("description = ?", "Seeded pothole").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		report := models.Report{
			IssueType:   models.IssuePothole,
			Description: "Seeded pothole",
			Latitude:    40.7128,
			Longitude:   -74.006,
			Severity:    2,
			Status:      models.StatusReported,
		}
		if err := db.Create(&report).Error; err != nil {
			log.Fatalf("could not create sample report: %v", err)
		}
	} else if err != nil {
		log.Fatalf("could not look up sample report: %v", err)
	}

	log.Println("✅ Seed complete")
}
