package v1

import (
	"github.com/skyforge/skyforge/internal/api/v1/handlers"
	"github.com/skyforge/skyforge/internal/api/v1/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the v1 handler set for route registration
type Handlers struct {
	Provision    *handlers.ProvisionHandler
	Construction *handlers.ConstructionHandler
	Templates    *handlers.TemplateHandler
}

// SetupRoutes configures all the v1 routes
func SetupRoutes(router fiber.Router, h *Handlers) {
	// Resource family provisioning
	resources := router.Group("/resources")
	resources.Post("/family", h.Provision.CreateFamily)

	// Provider discovery
	providers := router.Group("/providers")
	providers.Get("/", h.Provision.ListProviders)
	providers.Get("/:provider/configurations", h.Construction.GetConfigurations)

	// Catalog-driven VM construction
	vms := router.Group("/vms")
	vms.Post("/build", h.Construction.BuildVM)
	vms.Post("/validate", h.Construction.ValidateConfiguration)

	// Template registry
	templates := router.Group("/templates")
	templates.Post("/", h.Templates.RegisterTemplate)
	templates.Get("/", h.Templates.ListTemplates)
	templates.Post("/from-vm", h.Templates.CreateFromVM)
	templates.Get("/:name", h.Templates.GetTemplate)
	templates.Delete("/:name", h.Templates.DeleteTemplate)
	templates.Post("/:name/instantiate", h.Templates.InstantiateTemplate)
}

// Register registers the v1 routes
func Register(app *fiber.App, h *Handlers) {
	app.Use(middleware.Logger())

	// API v1 routes
	v1Group := app.Group("/api/v1")
	SetupRoutes(v1Group, h)
}
