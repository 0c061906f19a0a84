package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	DocumentTypePDF      DocumentType = "PDF"
	DocumentTypeImage    DocumentType = "IMAGE"
	DocumentTypeVideo    DocumentType = "VIDEO"
	DocumentTypeAudio    DocumentType = "AUDIO"
	DocumentTypeDocument DocumentType = "DOCUMENT"
	DocumentTypeOther    DocumentType = "OTHER"
)

// Document is a stored file, optionally attached to a case
type Document struct {
	ID           string       `gorm:"type:uuid;primaryKey" json:"id"`
	FileName     string       `gorm:"size:255;not null" json:"fileName"`
	OriginalName string       `gorm:"size:255;not null" json:"originalName"`
	FilePath     string       `gorm:"size:500;not null" json:"-"`
	FileSize     int64        `gorm:"not null" json:"fileSize"`
	MimeType     string       `gorm:"size:100;not null" json:"mimeType"`
	DocumentType DocumentType `gorm:"size:20;not null;index" json:"documentType"`
	Description  *string      `gorm:"type:text" json:"description,omitempty"`
	CaseID       *string      `gorm:"type:uuid;index" json:"caseId,omitempty"`
	Case         *Case        `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	UploadedByID string       `gorm:"type:uuid;not null;index" json:"uploadedById"`
	UploadedBy   User         `gorm:"foreignKey:UploadedByID" json:"uploadedBy"`
	UploadedAt   time.Time    `gorm:"autoCreateTime" json:"uploadedAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// BeforeCreate hook to generate UUID
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
