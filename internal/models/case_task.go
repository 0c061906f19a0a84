package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "TO_DO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusBlocked    TaskStatus = "BLOCKED"
)

// CaseTask is a unit of work scoped to exactly one case
type CaseTask struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  *string    `gorm:"type:text" json:"description,omitempty"`
	Status       TaskStatus `gorm:"size:20;not null;default:TO_DO;index" json:"status"`
	Priority     Priority   `gorm:"size:20;not null;default:MEDIUM" json:"priority"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	CaseID       string     `gorm:"type:uuid;not null;index" json:"caseId"`
	Case         *Case      `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	AssignedToID *string    `gorm:"type:uuid;index" json:"assignedToId,omitempty"`
	AssignedTo   *User      `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	CreatorID    string     `gorm:"type:uuid;not null" json:"creatorId"`
	CreatedBy    User       `gorm:"foreignKey:CreatorID" json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BeforeCreate hook to generate UUID
func (t *CaseTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

func IsValidTaskStatus(status string) bool {
	switch TaskStatus(status) {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone, TaskStatusBlocked:
		return true
	}
	return false
}
