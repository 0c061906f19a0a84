package tasks

import (
	"strings"
	"time"

	"lawfirm-backend/internal/auth"
	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"
	"lawfirm-backend/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

type CreateTaskRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
	Priority     *string `json:"priority"`
	DueDate      *string `json:"dueDate"`
	CaseID       string  `json:"caseId"`
	AssignedToID *string `json:"assignedToId"`
}

type UpdateTaskRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
	Priority     *string `json:"priority"`
	DueDate      *string `json:"dueDate"`
	AssignedToID *string `json:"assignedToId"`
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

// loadTask re-reads a task with its direct relations after a write.
func loadTask(id string) (*models.CaseTask, error) {
	var task models.CaseTask
	err := database.DB.
		Preload("AssignedTo").
		Preload("CreatedBy").
		Preload("Case").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// POST /api/tasks
func CreateTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTaskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" || body.CaseID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title and caseId are required")
		}

		var kase models.Case
		if err := database.DB.First(&kase, "id = ?", body.CaseID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Case not found")
		}

		task := models.CaseTask{
			Title:       body.Title,
			Description: body.Description,
			Status:      models.TaskStatusToDo,
			Priority:    models.PriorityMedium,
			CaseID:      body.CaseID,
			CreatorID:   auth.UserID(c),
		}

		if body.Status != nil {
			if !models.IsValidTaskStatus(*body.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid task status")
			}
			task.Status = models.TaskStatus(*body.Status)
		}
		if body.Priority != nil {
			if !models.IsValidPriority(*body.Priority) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid priority")
			}
			task.Priority = models.Priority(*body.Priority)
		}
		if body.DueDate != nil && *body.DueDate != "" {
			d, err := parseDate(*body.DueDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Due date must be 'YYYY-MM-DD'")
			}
			task.DueDate = d
		}
		if body.AssignedToID != nil && *body.AssignedToID != "" {
			var assignee models.User
			if err := database.DB.First(&assignee, "id = ?", *body.AssignedToID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Assignee not found")
			}
			task.AssignedToID = body.AssignedToID
		}

		if err := database.DB.Create(&task).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create task")
		}

		created, err := loadTask(task.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load created task")
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// GET /api/tasks
func ListTasksHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := pagination.Parse(c)

		dbq := database.DB.Model(&models.CaseTask{})

		if caseID := c.Query("caseId"); caseID != "" {
			dbq = dbq.Where("case_id = ?", caseID)
		}
		if status := c.Query("status"); status != "" {
			if !models.IsValidTaskStatus(status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
			}
			dbq = dbq.Where("status = ?", status)
		}

		// Employees only see their own tasks, whatever filter they sent.
		assignedToID := c.Query("assignedToId")
		if auth.Role(c) == models.RoleEmployee {
			assignedToID = auth.UserID(c)
		}
		if assignedToID != "" {
			dbq = dbq.Where("assigned_to_id = ?", assignedToID)
		}

		var total int64
		if err := dbq.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list tasks")
		}

		var list []models.CaseTask
		if err := dbq.
			Preload("AssignedTo").
			Preload("CreatedBy").
			Preload("Case").
			Order("created_at DESC").
			Offset(page.Skip).Limit(page.Take).
			Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list tasks")
		}

		return c.JSON(fiber.Map{
			"data":       list,
			"pagination": page.Page(total),
		})
	}
}

// GET /api/tasks/:id
func GetTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		task, err := loadTask(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return c.JSON(task)
	}
}

// PUT /api/tasks/:id
func UpdateTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var task models.CaseTask
		if err := database.DB.First(&task, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}

		var body UpdateTaskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title cannot be empty")
			}
			task.Title = title
		}
		if body.Description != nil {
			task.Description = body.Description
		}
		if body.Status != nil {
			if !models.IsValidTaskStatus(*body.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid task status")
			}
			task.Status = models.TaskStatus(*body.Status)
		}
		if body.Priority != nil {
			if !models.IsValidPriority(*body.Priority) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid priority")
			}
			task.Priority = models.Priority(*body.Priority)
		}
		if body.DueDate != nil {
			if *body.DueDate == "" {
				task.DueDate = nil
			} else {
				d, err := parseDate(*body.DueDate)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Due date must be 'YYYY-MM-DD'")
				}
				task.DueDate = d
			}
		}
		if body.AssignedToID != nil {
			if *body.AssignedToID == "" {
				task.AssignedToID = nil
			} else {
				var assignee models.User
				if err := database.DB.First(&assignee, "id = ?", *body.AssignedToID).Error; err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Assignee not found")
				}
				task.AssignedToID = body.AssignedToID
			}
		}

		if err := database.DB.Save(&task).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update task")
		}

		updated, err := loadTask(task.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load updated task")
		}
		return c.JSON(updated)
	}
}

// DELETE /api/tasks/:id
func DeleteTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var task models.CaseTask
		if err := database.DB.First(&task, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}

		if err := database.DB.Delete(&task).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete task")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
