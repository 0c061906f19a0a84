package auth

import (
	"strings"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
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
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
		}

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}

		if !user.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "Account is inactive")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not issue token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  toUserResponse(&user),
		})
	}
}

// POST /api/auth/register
func RegisterHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
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

		role := models.RoleEmployee
		if body.Role != "" {
			if !models.IsValidUserRole(body.Role) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid role")
			}
			role = models.UserRole(body.Role)
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
			Role:         role,
			IsActive:     true,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			if database.IsDuplicateKey(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Email already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Registration failed")
		}

		return c.Status(fiber.StatusCreated).JSON(toUserResponse(&user))
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.First(&user, "id = ?", UserID(c)).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "User not found")
		}
		return c.JSON(toUserResponse(&user))
	}
}
