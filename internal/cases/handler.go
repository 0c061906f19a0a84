package cases

import (
	"strings"
	"time"

	"lawfirm-backend/internal/auth"
	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"
	"lawfirm-backend/internal/pagination"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateCaseRequest struct {
	CaseNumber  string  `json:"caseNumber"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ClientName  string  `json:"clientName"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	StartDate   *string `json:"startDate"`
	DueDate     *string `json:"dueDate"`
}

type UpdateCaseRequest struct {
	CaseNumber  *string `json:"caseNumber"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ClientName  *string `json:"clientName"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	StartDate   *string `json:"startDate"`
	DueDate     *string `json:"dueDate"`
}

func parseDate(s string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// loadCase re-reads a case with its direct relations after a write.
func loadCase(id string) (*models.Case, error) {
	var kase models.Case
	err := database.DB.
		Preload("Manager").
		Preload("Assignments.User").
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at DESC")
		}).
		Preload("Documents.UploadedBy").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Tasks.AssignedTo").
		Preload("Tasks.CreatedBy").
		First(&kase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &kase, nil
}

// scopeForCaller restricts the query to cases the caller may see.
// Employees only see cases they are assigned to or manage; any
// caller-supplied userId filter is overridden for them.
func scopeForCaller(c *fiber.Ctx, dbq *gorm.DB) *gorm.DB {
	userID := c.Query("userId")
	if auth.Role(c) == models.RoleEmployee {
		userID = auth.UserID(c)
	}
	if userID == "" {
		return dbq
	}
	assigned := database.DB.Model(&models.CaseAssignment{}).
		Select("case_id").
		Where("user_id = ?", userID)
	return dbq.Where("id IN (?) OR manager_id = ?", assigned, userID)
}

// POST /api/cases
func CreateCaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.CaseNumber = strings.TrimSpace(body.CaseNumber)
		body.Title = strings.TrimSpace(body.Title)
		body.ClientName = strings.TrimSpace(body.ClientName)

		if body.CaseNumber == "" || body.Title == "" || body.ClientName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Case number, title and client name are required")
		}

		managerID := auth.UserID(c)
		kase := models.Case{
			CaseNumber:  body.CaseNumber,
			Title:       body.Title,
			Description: body.Description,
			ClientName:  body.ClientName,
			Status:      models.CaseStatusOpen,
			Priority:    models.PriorityMedium,
			ManagerID:   &managerID,
		}

		if body.Status != nil {
			if !models.IsValidCaseStatus(*body.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid case status")
			}
			kase.Status = models.CaseStatus(*body.Status)
		}
		if body.Priority != nil {
			if !models.IsValidPriority(*body.Priority) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid priority")
			}
			kase.Priority = models.Priority(*body.Priority)
		}
		if body.StartDate != nil && *body.StartDate != "" {
			d, err := parseDate(*body.StartDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Start date must be 'YYYY-MM-DD'")
			}
			kase.StartDate = d
		}
		if body.DueDate != nil && *body.DueDate != "" {
			d, err := parseDate(*body.DueDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Due date must be 'YYYY-MM-DD'")
			}
			kase.DueDate = d
		}

		if err := database.DB.Create(&kase).Error; err != nil {
			if database.IsDuplicateKey(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Case number already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create case")
		}

		created, err := loadCase(kase.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load created case")
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// GET /api/cases
func ListCasesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := pagination.Parse(c)

		dbq := database.DB.Model(&models.Case{})

		if status := c.Query("status"); status != "" {
			if !models.IsValidCaseStatus(status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
			}
			dbq = dbq.Where("status = ?", status)
		}
		if managerID := c.Query("managerId"); managerID != "" {
			dbq = dbq.Where("manager_id = ?", managerID)
		}
		if search := c.Query("search"); search != "" {
			pattern := "%" + search + "%"
			dbq = dbq.Where("title ILIKE ? OR case_number ILIKE ? OR client_name ILIKE ?", pattern, pattern, pattern)
		}
		dbq = scopeForCaller(c, dbq)

		var total int64
		if err := dbq.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list cases")
		}

		var list []models.Case
		if err := dbq.
			Preload("Manager").
			Preload("Assignments.User").
			Preload("Documents").
			Preload("Tasks.AssignedTo").
			Order("created_at DESC").
			Offset(page.Skip).Limit(page.Take).
			Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list cases")
		}

		return c.JSON(fiber.Map{
			"data":       list,
			"pagination": page.Page(total),
		})
	}
}

// GET /api/cases/:id
func GetCaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kase, err := loadCase(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Case not found")
		}
		return c.JSON(kase)
	}
}

// PUT /api/cases/:id
func UpdateCaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var kase models.Case
		if err := database.DB.First(&kase, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Case not found")
		}

		var body UpdateCaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.CaseNumber != nil {
			number := strings.TrimSpace(*body.CaseNumber)
			if number == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Case number cannot be empty")
			}
			kase.CaseNumber = number
		}
		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title cannot be empty")
			}
			kase.Title = title
		}
		if body.Description != nil {
			kase.Description = body.Description
		}
		if body.ClientName != nil {
			name := strings.TrimSpace(*body.ClientName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Client name cannot be empty")
			}
			kase.ClientName = name
		}
		if body.Status != nil {
			if !models.IsValidCaseStatus(*body.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid case status")
			}
			kase.Status = models.CaseStatus(*body.Status)
		}
		if body.Priority != nil {
			if !models.IsValidPriority(*body.Priority) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid priority")
			}
			kase.Priority = models.Priority(*body.Priority)
		}
		if body.StartDate != nil {
			if *body.StartDate == "" {
				kase.StartDate = nil
			} else {
				d, err := parseDate(*body.StartDate)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Start date must be 'YYYY-MM-DD'")
				}
				kase.StartDate = d
			}
		}
		if body.DueDate != nil {
			if *body.DueDate == "" {
				kase.DueDate = nil
			} else {
				d, err := parseDate(*body.DueDate)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Due date must be 'YYYY-MM-DD'")
				}
				kase.DueDate = d
			}
		}

		if err := database.DB.Save(&kase).Error; err != nil {
			if database.IsDuplicateKey(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Case number already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update case")
		}

		updated, err := loadCase(kase.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load updated case")
		}
		return c.JSON(updated)
	}
}

// DELETE /api/cases/:id
func DeleteCaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var kase models.Case
		if err := database.DB.First(&kase, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Case not found")
		}

		if err := database.DB.Delete(&kase).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete case")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
