package main

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyforge/skyforge/config"
	"github.com/skyforge/skyforge/internal/api/v1/handlers"
	v1 "github.com/skyforge/skyforge/internal/api/v1/routes"
	"github.com/skyforge/skyforge/internal/compute"
	"github.com/skyforge/skyforge/internal/logger"
	"github.com/skyforge/skyforge/internal/services"
)

func main() {
	config.LoadEnv()
	logger.InitializeAndConfigure()

	factories := compute.NewFactoryRegistry()
	director := services.NewDirector()
	provisioner := services.NewProvisioner(factories)
	construction := services.NewConstructionService(director, factories)
	templates := services.NewTemplateService(services.NewPrototypeRegistry(), director, factories)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// API v1 routes
	v1.Register(app, &v1.Handlers{
		Provision:    handlers.NewProvisionHandler(provisioner),
		Construction: handlers.NewConstructionHandler(construction),
		Templates:    handlers.NewTemplateHandler(templates),
	})

	port := config.GetEnv("API_PORT", "8080")
	logger.Infof("starting skyforge API on port %s", port)
	logger.Fatal(app.Listen(":" + port))
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
