package users

import (
	"strings"

	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"
	"lawfirm-backend/internal/pagination"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	FullName  string          `json:"fullName"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"isActive"`
	CreatedAt string          `json:"createdAt"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := pagination.Parse(c)

		dbq := database.DB.Model(&models.User{})
		if role := c.Query("role"); role != "" {
			if !models.IsValidUserRole(role) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid role filter")
			}
			dbq = dbq.Where("role = ?", role)
		}

		var total int64
		if err := dbq.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users")
		}

		var list []models.User
		if err := dbq.Order("created_at DESC").
			Offset(page.Skip).Limit(page.Take).
			Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users")
		}

		res := make([]UserResponse, 0, len(list))
		for i := range list {
			res = append(res, toUserResponse(&list[i]))
		}

		return c.JSON(fiber.Map{
			"data":       res,
			"pagination": page.Page(total),
		})
	}
}

// GET /api/users/:id
func GetUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return c.JSON(toUserResponse(&user))
	}
}

// POST /api/users
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.FirstName = strings.TrimSpace(body.FirstName)
		body.LastName = strings.TrimSpace(body.LastName)

		if body.Email == "" || body.FirstName == "" || body.LastName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email, first name and last name are required")
		}
		if len(body.Password) < 6 {
			return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 6 characters")
		}
		if !models.IsValidUserRole(body.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid role")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		user := models.User{
			Email:        body.Email,
			PasswordHash: string(hash),
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			Role:         models.UserRole(body.Role),
			IsActive:     true,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			if database.IsDuplicateKey(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Email already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create user")
		}

		return c.Status(fiber.StatusCreated).JSON(toUserResponse(&user))
	}
}
