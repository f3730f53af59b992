// Package handlers contains the Fiber HTTP handlers for the v1 API
package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skyforge/skyforge/internal/services"
	"github.com/skyforge/skyforge/internal/types"
)

// ProvisionHandler handles HTTP requests for resource family provisioning
type ProvisionHandler struct {
	provisioner *services.Provisioner
}

// NewProvisionHandler creates a new provision handler instance
func NewProvisionHandler(provisioner *services.Provisioner) *ProvisionHandler {
	return &ProvisionHandler{provisioner: provisioner}
}

// CreateFamily handles the request to provision a coherent resource family
func (h *ProvisionHandler) CreateFamily(c *fiber.Ctx) error {
	var req types.FamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	provider := types.Provider(strings.ToLower(req.Provider)).DisplayName()

	resources, err := h.provisioner.ProvisionFamily(&req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(types.FamilyResponse{
			Success:  false,
			Provider: provider,
			Error:    err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.FamilyResponse{
		Success:   true,
		Provider:  provider,
		Resources: resources,
	})
}

// ListProviders handles the request for the supported provider names
func (h *ProvisionHandler) ListProviders(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"providers": h.provisioner.SupportedProviders(),
	})
}
