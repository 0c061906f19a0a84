package documents

import (
	"log"

	"lawfirm-backend/internal/auth"
	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"
	"lawfirm-backend/internal/pagination"
	"lawfirm-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// loadDocument re-reads a document with its relations after a write.
func loadDocument(id string) (*models.Document, error) {
	var doc models.Document
	err := database.DB.
		Preload("UploadedBy").
		Preload("Case").
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// POST /api/documents/upload
func UploadDocumentHandler(store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
		}

		caseID := c.FormValue("caseId")
		description := c.FormValue("description")

		if caseID != "" {
			var kase models.Case
			if err := database.DB.First(&kase, "id = ?", caseID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Case not found")
			}
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		src, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not read uploaded file")
		}
		defer src.Close()

		fileName, relPath, size, err := store.Save(src, fileHeader.Filename)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not store uploaded file")
		}

		doc := models.Document{
			FileName:     fileName,
			OriginalName: fileHeader.Filename,
			FilePath:     relPath,
			FileSize:     size,
			MimeType:     mimeType,
			DocumentType: storage.ClassifyMime(mimeType),
			UploadedByID: auth.UserID(c),
		}
		if caseID != "" {
			doc.CaseID = &caseID
		}
		if description != "" {
			doc.Description = &description
		}

		if err := database.DB.Create(&doc).Error; err != nil {
			// roll the stored file back so no orphan bytes accumulate
			if rmErr := store.Remove(relPath); rmErr != nil {
				log.Printf("could not remove stored file %s after failed insert: %v", relPath, rmErr)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save document")
		}

		created, err := loadDocument(doc.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load created document")
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// GET /api/documents
func ListDocumentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := pagination.Parse(c)

		dbq := database.DB.Model(&models.Document{})

		if caseID := c.Query("caseId"); caseID != "" {
			dbq = dbq.Where("case_id = ?", caseID)
		}
		if docType := c.Query("documentType"); docType != "" {
			dbq = dbq.Where("document_type = ?", docType)
		}

		// Employees only see their own uploads, whatever filter they sent.
		uploadedByID := c.Query("uploadedById")
		if auth.Role(c) == models.RoleEmployee {
			uploadedByID = auth.UserID(c)
		}
		if uploadedByID != "" {
			dbq = dbq.Where("uploaded_by_id = ?", uploadedByID)
		}

		var total int64
		if err := dbq.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list documents")
		}

		var list []models.Document
		if err := dbq.
			Preload("UploadedBy").
			Preload("Case").
			Order("uploaded_at DESC").
			Offset(page.Skip).Limit(page.Take).
			Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list documents")
		}

		return c.JSON(fiber.Map{
			"data":       list,
			"pagination": page.Page(total),
		})
	}
}

// GET /api/documents/:id
func GetDocumentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := loadDocument(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		return c.JSON(doc)
	}
}

// GET /api/documents/:id/download
func DownloadDocumentHandler(store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var doc models.Document
		if err := database.DB.First(&doc, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}

		if !store.Exists(doc.FilePath) {
			return fiber.NewError(fiber.StatusNotFound, "File not found on server")
		}

		c.Set(fiber.HeaderContentType, doc.MimeType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.OriginalName+`"`)
		return c.SendFile(store.AbsPath(doc.FilePath))
	}
}

// DELETE /api/documents/:id
func DeleteDocumentHandler(store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var doc models.Document
		if err := database.DB.First(&doc, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}

		// best effort: a backing file that is already gone is fine
		if err := store.Remove(doc.FilePath); err != nil {
			log.Printf("could not remove file %s: %v", doc.FilePath, err)
		}

		if err := database.DB.Delete(&doc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete document")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
