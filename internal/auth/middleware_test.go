package auth

import (
	"net/http/httptest"
	"testing"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func newProtectedApp() *fiber.App {
	cfg := &config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Use(JWTMiddleware(cfg))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestJWTMiddlewareMalformedHeader(t *testing.T) {
	app := newProtectedApp()

	for _, header := range []string{"token-without-scheme", "Basic dXNlcjpwYXNz"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.StatusCode)
		}
	}
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func newRoleApp(role models.UserRole, allowed ...models.UserRole) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(CtxUserRoleKey, role)
		return c.Next()
	})
	app.Use(RequireRole(allowed...))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestRequireRoleAllows(t *testing.T) {
	app := newRoleApp(models.RoleAdmin, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRoleRejects(t *testing.T) {
	app := newRoleApp(models.RoleEmployee, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	app := fiber.New()
	app.Use(RequireRole(models.RoleAdmin))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
