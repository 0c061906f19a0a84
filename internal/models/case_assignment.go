package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseAssignment links a user to a case. The composite unique index keeps
// one assignment per (case, user) pair.
type CaseAssignment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CaseID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_case_user" json:"caseId"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_case_user" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate hook to generate UUID
func (a *CaseAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
