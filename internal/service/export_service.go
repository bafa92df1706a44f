package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/makeasinger/briefgen/internal/model"
)

// Suggested download names
const (
	ExportJSONFilename = "brief_suno.json"
	ExportTextFilename = "brief_suno.txt"
)

// ExportService packages generations for download
type ExportService struct {
	prompts *PromptService
	now     func() time.Time
}

func NewExportService(prompts *PromptService) *ExportService {
	return &ExportService{
		prompts: prompts,
		now:     time.Now,
	}
}

// JSON pairs the normalized form snapshot with the final document
func (s *ExportService) JSON(ctx context.Context, form *model.FormInput) (*model.ExportPayload, error) {
	res, err := s.prompts.Build(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	return &model.ExportPayload{
		ID:        uuid.New().String(),
		CreatedAt: s.now().UTC(),
		Data: model.ExportData{
			FormInput:        res.Input,
			ReferenceSimilar: res.DerivedName,
		},
		PromptFinal: res.Prompt,
		Missing:     res.Missing,
		Warnings:    res.Warnings,
	}, nil
}

// JSONBytes is JSON marshaled with two-space indentation
func (s *ExportService) JSONBytes(ctx context.Context, form *model.FormInput) ([]byte, error) {
	payload, err := s.JSON(ctx, form)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return data, nil
}

// Text is the document alone
func (s *ExportService) Text(ctx context.Context, form *model.FormInput) (string, error) {
	res, err := s.prompts.Build(ctx, form)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}
	return res.Prompt, nil
}
