package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/makeasinger/briefgen/internal/model"
	"github.com/makeasinger/briefgen/internal/service"
	"github.com/makeasinger/briefgen/pkg/response"
)

type LyricsHandler struct {
	service   *service.PromptService
	validator *validator.Validate
}

func NewLyricsHandler(svc *service.PromptService, v *validator.Validate) *LyricsHandler {
	return &LyricsHandler{
		service:   svc,
		validator: v,
	}
}

// Validate handles POST /api/lyrics/validate
func (h *LyricsHandler) Validate(c *fiber.Ctx) error {
	var req model.LyricsValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.ValidateLyrics(c.UserContext(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}
