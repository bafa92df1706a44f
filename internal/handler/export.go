package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/makeasinger/briefgen/internal/model"
	"github.com/makeasinger/briefgen/internal/service"
	"github.com/makeasinger/briefgen/pkg/response"
)

type ExportHandler struct {
	service   *service.ExportService
	validator *validator.Validate
}

func NewExportHandler(svc *service.ExportService, v *validator.Validate) *ExportHandler {
	return &ExportHandler{
		service:   svc,
		validator: v,
	}
}

// JSON handles POST /api/export/json
func (h *ExportHandler) JSON(c *fiber.Ctx) error {
	var req model.FormInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	data, err := h.service.JSONBytes(c.UserContext(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.Attachment(c, service.ExportJSONFilename, fiber.MIMEApplicationJSONCharsetUTF8, data)
}

// Text handles POST /api/export/txt
func (h *ExportHandler) Text(c *fiber.Ctx) error {
	var req model.FormInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	text, err := h.service.Text(c.UserContext(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.Attachment(c, service.ExportTextFilename, fiber.MIMETextPlainCharsetUTF8, []byte(text))
}
