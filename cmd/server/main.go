package main

import (
	"log"
	"strings"

	"lawfirm-backend/internal/auth"
	"lawfirm-backend/internal/cases"
	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/database"
	"lawfirm-backend/internal/documents"
	"lawfirm-backend/internal/models"
	"lawfirm-backend/internal/reports"
	"lawfirm-backend/internal/storage"
	"lawfirm-backend/internal/tasks"
	"lawfirm-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // uploads are capped at 100 MiB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"message": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Legal case management backend is running"})
	})
	app.Get("/health", healthHandler)

	api := app.Group("/api")
	api.Get("/health", healthHandler)

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/register", auth.RegisterHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Cases
	protected.Post("/cases", cases.CreateCaseHandler())
	protected.Get("/cases", cases.ListCasesHandler())
	protected.Get("/cases/:id", cases.GetCaseHandler())
	protected.Put("/cases/:id", cases.UpdateCaseHandler())
	protected.Delete("/cases/:id", cases.DeleteCaseHandler())
	protected.Post("/cases/:id/assign", cases.AssignCaseHandler())
	protected.Delete("/cases/:id/assign/:userId", cases.RemoveAssignmentHandler())

	// Documents
	protected.Post("/documents/upload", documents.UploadDocumentHandler(store))
	protected.Get("/documents", documents.ListDocumentsHandler())
	protected.Get("/documents/:id", documents.GetDocumentHandler())
	protected.Get("/documents/:id/download", documents.DownloadDocumentHandler(store))
	protected.Delete("/documents/:id", documents.DeleteDocumentHandler(store))

	// Tasks
	protected.Post("/tasks", tasks.CreateTaskHandler())
	protected.Get("/tasks", tasks.ListTasksHandler())
	protected.Get("/tasks/:id", tasks.GetTaskHandler())
	protected.Put("/tasks/:id", tasks.UpdateTaskHandler())
	protected.Delete("/tasks/:id", tasks.DeleteTaskHandler())

	// Admin-only user management
	adminRoutes := protected.Group("/users")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Post("/", users.CreateUserHandler())
	adminRoutes.Get("/", users.ListUsersHandler())
	adminRoutes.Get("/:id", users.GetUserHandler())

	// Admin-only reporting
	reportRoutes := protected.Group("/reports")
	reportRoutes.Use(auth.RequireRole(models.RoleAdmin))
	reportRoutes.Get("/cases.xlsx", reports.ExportCasesHandler())

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}

func healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
