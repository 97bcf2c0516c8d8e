package main

import (
	"log"
	"os"
	"time"

	"applicant-portal-be/internal/model"
	"applicant-portal-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds one known applicant plus their profile document so the portal has
// something to show on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedApplicant(db)
	log.Println("Success: Seed data applied.")
}

func seedApplicant(db *gorm.DB) {
	email := "applicant@example.com"

	var existing model.Applicant
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Skip: Applicant %s already exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash seed password: %v", err)
	}

	applicant := model.Applicant{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  "Jane Doe",
		Status:       "active",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(&applicant).Error; err != nil {
		log.Fatalf("Error: Failed to create seed applicant: %v", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := model.Document{
		Collection: "users",
		DocId:      applicant.Id.String(),
		Payload: datatypes.JSONMap{
			"contactId":              "42",
			"contactName":            "Jane Doe",
			"salesforceEmail":        email,
			"createdAt":              now,
			"lastLogin":              now,
			"applicationStatus":      "Initial Screening",
			"questionnaireCompleted": false,
			"questionnaireGraded":    false,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatalf("Error: Failed to create seed profile: %v", err)
	}

	log.Printf("Seeded applicant %s (contact 42)", email)
}
