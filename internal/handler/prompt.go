package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/makeasinger/briefgen/internal/model"
	"github.com/makeasinger/briefgen/internal/service"
	"github.com/makeasinger/briefgen/pkg/response"
)

type PromptHandler struct {
	service   *service.PromptService
	validator *validator.Validate
}

func NewPromptHandler(svc *service.PromptService, v *validator.Validate) *PromptHandler {
	return &PromptHandler{
		service:   svc,
		validator: v,
	}
}

// Generate handles POST /api/prompt/generate
func (h *PromptHandler) Generate(c *fiber.Ctx) error {
	var req model.FormInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Generate(c.UserContext(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Batch handles POST /api/prompt/batch
func (h *PromptHandler) Batch(c *fiber.Ctx) error {
	var req model.BatchGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.GenerateBatch(c.UserContext(), req.Items)
	switch {
	case errors.Is(err, service.ErrEmptyBatch):
		return response.ValidationError(c, err.Error(), nil)
	case errors.Is(err, service.ErrBatchTooLarge):
		return response.BatchTooLarge(c, err.Error())
	case err != nil:
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Style handles POST /api/style/optimize
func (h *PromptHandler) Style(c *fiber.Ctx) error {
	var req model.FormInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.OptimizeStyle(c.UserContext(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Defaults handles GET /api/form/defaults
func (h *PromptHandler) Defaults(c *fiber.Ctx) error {
	return response.OK(c, h.service.Defaults())
}
