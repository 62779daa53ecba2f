// Package server assembles the fiber application: repository selection,
// service and handler wiring, middleware and the health endpoint.
package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inventory/internal/config"
	"inventory/internal/handlers"
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
)

// New builds the fiber app from the given configuration. With a database
// DSN the products live in PostgreSQL; without one they live in memory.
func New(cfg *config.Config) (*fiber.App, error) {
	var productRepo repositories.ProductRepository
	if cfg.DatabaseDSN != "" {
		db, err := OpenDatabase(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		productRepo = repositories.NewGORMProductRepository(db)
	} else {
		log.Println("DATABASE_DSN not set, using in-memory product repository")
		productRepo = repositories.NewMemoryProductRepository()
	}

	productService := services.NewProductService(productRepo)
	productHandler := handlers.NewProductHandler(productService)

	return NewWithHandler(productHandler), nil
}

// NewWithHandler builds the fiber app around an already-wired product
// handler. Tests use it to inject a handler backed by sqlite or the
// in-memory repository.
func NewWithHandler(productHandler *handlers.ProductHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New())

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// OpenDatabase opens the PostgreSQL connection with error translation
// enabled, so uniqueness violations surface as gorm.ErrDuplicatedKey.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the products table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}
