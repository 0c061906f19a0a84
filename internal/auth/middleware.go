package auth

import (
	"strings"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUserIDKey    = "user_id"
	CtxUserEmailKey = "user_email"
	CtxUserRoleKey  = "user_role"
)

// JWTMiddleware authenticates the bearer token and resolves it to an
// active user. Any failed step terminates the request with 401.
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header")
		}

		claims, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", claims.Subject).Error; err != nil || !user.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token or user not found")
		}

		c.Locals(CtxUserIDKey, user.ID)
		c.Locals(CtxUserEmailKey, user.Email)
		c.Locals(CtxUserRoleKey, user.Role)

		return c.Next()
	}
}

// RequireRole runs after JWTMiddleware and rejects callers whose role is
// not in the allowed set.
func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Insufficient permissions")
	}
}

// UserID returns the authenticated user's id attached by JWTMiddleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxUserIDKey).(string)
	return id
}

// Role returns the authenticated user's role attached by JWTMiddleware.
func Role(c *fiber.Ctx) models.UserRole {
	role, _ := c.Locals(CtxUserRoleKey).(models.UserRole)
	return role
}
