package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyforge/skyforge/internal/services"
	"github.com/skyforge/skyforge/internal/types"
)

// TemplateHandler handles HTTP requests for template operations
type TemplateHandler struct {
	templates *services.TemplateService
}

// NewTemplateHandler creates a new template handler instance
func NewTemplateHandler(templates *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// RegisterTemplate handles the request to register a new template
func (h *TemplateHandler) RegisterTemplate(c *fiber.Ctx) error {
	var req types.RegisterTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	info, err := h.templates.RegisterTemplate(&req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.Success(info))
}

// ListTemplates handles the request to list templates with statistics.
// The optional category query parameter filters the listing.
func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.templates.ListTemplates(c.Query("category")))
}

// GetTemplate handles the request for one template's full details
func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	details, err := h.templates.GetTemplateDetails(c.Params("name"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(details)
}

// DeleteTemplate handles the request to remove a template
func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.templates.DeleteTemplate(c.Params("name")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(types.Success(fiber.Map{"deleted": c.Params("name")}))
}

// InstantiateTemplate handles the request to create a VM from a template
func (h *TemplateHandler) InstantiateTemplate(c *fiber.Ctx) error {
	var req types.CreateFromTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	spec, resources, err := h.templates.CreateFromTemplate(c.Params("name"), &req)
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

// CreateFromVM handles the request to derive a template from an existing VM
func (h *TemplateHandler) CreateFromVM(c *fiber.Ctx) error {
	var req types.CreateTemplateFromVMRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	info, err := h.templates.CreateTemplateFromExistingVM(req.TemplateName, req.Description, req.VMSpecification)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.Success(info))
}
