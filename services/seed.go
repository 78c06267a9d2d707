package services

import (
	"log"
	"os"

	"auto_frota_go/models"

	"gorm.io/gorm"
)

// SeedAdminFromEnv creates the initial operator account from environment
// variables. Only runs if ADMIN_EMAIL and ADMIN_PASSWORD are set and no user
// with that email exists yet.
func SeedAdminFromEnv(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	// Skip if env vars not set
	if email == "" || password == "" {
		return nil
	}

	if name == "" {
		name = "Administrador"
	}

	var existingUser models.User
	if err := db.Where("email = ?", email).First(&existingUser).Error; err == nil {
		log.Printf("[SEED] User with email %s already exists, skipping admin seed", email)
		return nil
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}

	if err := db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Created admin user %s", email)
	return nil
}
