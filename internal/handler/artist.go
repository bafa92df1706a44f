package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/makeasinger/briefgen/internal/model"
	"github.com/makeasinger/briefgen/internal/service"
	"github.com/makeasinger/briefgen/pkg/response"
)

type ArtistHandler struct {
	service   *service.PromptService
	validator *validator.Validate
}

func NewArtistHandler(svc *service.PromptService, v *validator.Validate) *ArtistHandler {
	return &ArtistHandler{
		service:   svc,
		validator: v,
	}
}

// Similar handles POST /api/artist/similar
func (h *ArtistHandler) Similar(c *fiber.Ctx) error {
	var req model.SimilarNameRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	result, err := h.service.Similar(c.UserContext(), &req)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}
