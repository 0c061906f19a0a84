package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseStatus string

const (
	CaseStatusOpen          CaseStatus = "OPEN"
	CaseStatusInProgress    CaseStatus = "IN_PROGRESS"
	CaseStatusUnderReview   CaseStatus = "UNDER_REVIEW"
	CaseStatusPendingClient CaseStatus = "PENDING_CLIENT"
	CaseStatusSettled       CaseStatus = "SETTLED"
	CaseStatusClosed        CaseStatus = "CLOSED"
	CaseStatusArchived      CaseStatus = "ARCHIVED"
)

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Case represents a tracked legal matter
type Case struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	CaseNumber  string     `gorm:"size:100;uniqueIndex;not null" json:"caseNumber"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	ClientName  string     `gorm:"size:255;not null" json:"clientName"`
	Status      CaseStatus `gorm:"size:20;not null;default:OPEN;index" json:"status"`
	Priority    Priority   `gorm:"size:20;not null;default:MEDIUM" json:"priority"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	ManagerID   *string    `gorm:"type:uuid;index" json:"managerId,omitempty"`
	Manager     *User      `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Assignments []CaseAssignment `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
	Documents   []Document       `gorm:"foreignKey:CaseID;constraint:OnDelete:SET NULL" json:"documents,omitempty"`
	Tasks       []CaseTask       `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

func IsValidCaseStatus(status string) bool {
	switch CaseStatus(status) {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusUnderReview,
		CaseStatusPendingClient, CaseStatusSettled, CaseStatusClosed, CaseStatusArchived:
		return true
	}
	return false
}

func IsValidPriority(priority string) bool {
	switch Priority(priority) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}
