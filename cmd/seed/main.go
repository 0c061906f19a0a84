package main

import (
	"log"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Development seed: an admin and an employee account, both with
// password "password123". Re-running is a no-op for existing emails.
func main() {
	cfg := config.Load()
	database.Init(cfg)

	seedUser("admin@legal.com", "Admin", "User", models.RoleAdmin)
	seedUser("employee@legal.com", "John", "Doe", models.RoleEmployee)
}

func seedUser(email, firstName, lastName string, role models.UserRole) {
	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("%s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Could not hash password: %v", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		IsActive:     true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Fatalf("Could not seed %s: %v", email, err)
	}
	log.Printf("Seeded %s (%s)", email, role)
}
