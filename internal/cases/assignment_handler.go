package cases

import (
	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AssignCaseRequest struct {
	UserID string `json:"userId"`
}

// POST /api/cases/:id/assign
func AssignCaseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		caseID := c.Params("id")

		var kase models.Case
		if err := database.DB.First(&kase, "id = ?", caseID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Case not found")
		}

		var body AssignCaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.UserID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "userId is required")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", body.UserID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "User not found")
		}

		var existing int64
		database.DB.Model(&models.CaseAssignment{}).
			Where("case_id = ? AND user_id = ?", caseID, body.UserID).
			Count(&existing)
		if existing > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "User is already assigned to this case")
		}

		assignment := models.CaseAssignment{
			CaseID: caseID,
			UserID: body.UserID,
		}
		if err := database.DB.Create(&assignment).Error; err != nil {
			if database.IsDuplicateKey(err) {
				return fiber.NewError(fiber.StatusBadRequest, "User is already assigned to this case")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not assign case")
		}

		assignment.User = user
		return c.Status(fiber.StatusCreated).JSON(assignment)
	}
}

// DELETE /api/cases/:id/assign/:userId
func RemoveAssignmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.
			Where("case_id = ? AND user_id = ?", c.Params("id"), c.Params("userId")).
			Delete(&models.CaseAssignment{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not remove assignment")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
