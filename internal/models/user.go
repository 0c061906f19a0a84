package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleEmployee UserRole = "EMPLOYEE"
)

// User represents a law-firm staff account
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FirstName    string    `gorm:"size:100;not null" json:"firstName"`
	LastName     string    `gorm:"size:100;not null" json:"lastName"`
	Role         UserRole  `gorm:"size:20;not null;default:EMPLOYEE" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func IsValidUserRole(role string) bool {
	return role == string(RoleAdmin) || role == string(RoleEmployee)
}
