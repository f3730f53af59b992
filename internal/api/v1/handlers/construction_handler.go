package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyforge/skyforge/internal/services"
	"github.com/skyforge/skyforge/internal/types"
)

// ConstructionHandler handles HTTP requests for catalog-driven VM builds
type ConstructionHandler struct {
	construction *services.ConstructionService
}

// NewConstructionHandler creates a new construction handler instance
func NewConstructionHandler(construction *services.ConstructionService) *ConstructionHandler {
	return &ConstructionHandler{construction: construction}
}

// BuildVM handles the request to build a complete VM from the catalog
func (h *ConstructionHandler) BuildVM(c *fiber.Ctx) error {
	var req types.BuildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	spec, resources, err := h.construction.BuildVM(&req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(types.BuildResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.BuildResponse{
		Success:          true,
		VMSpecification:  spec,
		CreatedResources: resources,
	})
}

// ValidateConfiguration handles the dry-run validation request
func (h *ConstructionHandler) ValidateConfiguration(c *fiber.Ctx) error {
	var req types.ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	return c.JSON(h.construction.ValidateConfiguration(&req))
}

// GetConfigurations handles the catalog discovery request for one provider
func (h *ConstructionHandler) GetConfigurations(c *fiber.Ctx) error {
	provider := types.Provider(c.Params("provider"))

	configurations, err := h.construction.AvailableConfigurations(provider)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(configurations)
}
