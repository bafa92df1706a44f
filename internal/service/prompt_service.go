package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/makeasinger/briefgen/internal/artist"
	"github.com/makeasinger/briefgen/internal/lyrics"
	"github.com/makeasinger/briefgen/internal/model"
	"github.com/makeasinger/briefgen/internal/prompt"
	"github.com/makeasinger/briefgen/internal/style"
)

var (
	ErrEmptyBatch    = errors.New("batch is empty")
	ErrBatchTooLarge = errors.New("batch too large")
)

// MaxBatchItems caps a single batch request.
const MaxBatchItems = 50

// PromptService runs the prompt pipeline for handlers, the CLI and the
// preview hub
type PromptService struct {
	builder    *prompt.Builder
	names      artist.NameGenerator
	validator  *lyrics.Validator
	logger     *zap.Logger
	batchLimit int
	level      model.StyleLevel
}

// NewPromptService creates a prompt service. Nil collaborators fall back to
// the package defaults; batchLimit bounds batch concurrency.
func NewPromptService(names artist.NameGenerator, validator *lyrics.Validator, optimizer *style.Optimizer, logger *zap.Logger, batchLimit int) *PromptService {
	if names == nil {
		names = artist.NewGenerator(nil)
	}
	if validator == nil {
		validator = lyrics.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if batchLimit <= 0 {
		batchLimit = 1
	}
	return &PromptService{
		builder:    prompt.NewBuilder(names, validator, optimizer),
		names:      names,
		validator:  validator,
		logger:     logger,
		batchLimit: batchLimit,
		level:      model.StyleLevelOptimized,
	}
}

// WithDefaultLevel sets the style level used when a form leaves it empty
func (s *PromptService) WithDefaultLevel(level model.StyleLevel) *PromptService {
	if level.Valid() {
		s.level = level
	}
	return s
}

// Generate builds the prompt document for one form snapshot
func (s *PromptService) Generate(ctx context.Context, form *model.FormInput) (*model.GenerateResponse, error) {
	res, err := s.build(ctx, form)
	if err != nil {
		return nil, err
	}
	return toResponse(res), nil
}

// GenerateBatch builds every item concurrently; results keep request order
func (s *PromptService) GenerateBatch(ctx context.Context, items []model.FormInput) (*model.BatchGenerateResponse, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(items) > MaxBatchItems {
		return nil, fmt.Errorf("%w: %d items, max %d", ErrBatchTooLarge, len(items), MaxBatchItems)
	}

	results := make([]model.GenerateResponse, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)

	for i := range items {
		i := i
		g.Go(func() error {
			res, err := s.build(gctx, &items[i])
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = *toResponse(res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("Batch generated", zap.Int("items", len(items)))
	return &model.BatchGenerateResponse{Results: results}, nil
}

// Build exposes the full pipeline result, used by exports
func (s *PromptService) Build(ctx context.Context, form *model.FormInput) (prompt.Result, error) {
	return s.build(ctx, form)
}

// Similar derives count stand-in names for name
func (s *PromptService) Similar(ctx context.Context, req *model.SimilarNameRequest) (*model.SimilarNameResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp := &model.SimilarNameResponse{
		Name:    req.Name,
		Similar: s.names.Similar(req.Name),
	}
	for i := 1; i < req.Count; i++ {
		resp.Variants = append(resp.Variants, s.names.Similar(req.Name))
	}
	return resp, nil
}

// ValidateLyrics scans lyrics without building a prompt
func (s *PromptService) ValidateLyrics(ctx context.Context, req *model.LyricsValidateRequest) (*model.LyricsValidateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := s.validator.Validate(req.Lyrics)
	s.logger.Debug("Lyrics validated", zap.Bool("valid", res.IsValid), zap.Int("warnings", len(res.Warnings)))
	return &model.LyricsValidateResponse{IsValid: res.IsValid, Warnings: res.Warnings}, nil
}

// OptimizeStyle returns only the style descriptor for a form
func (s *PromptService) OptimizeStyle(ctx context.Context, form *model.FormInput) (*model.StyleOptimizeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := s.withLevel(form)
	descriptor, derived := s.builder.Style(f)
	return &model.StyleOptimizeResponse{
		Style:       descriptor,
		Level:       f.Normalized().StyleLevel,
		DerivedName: derived,
	}, nil
}

// Defaults returns the values of a freshly reset form
func (s *PromptService) Defaults() model.FormInput {
	d := model.DefaultFormInput()
	d.StyleLevel = s.level
	return d
}

func (s *PromptService) build(ctx context.Context, form *model.FormInput) (prompt.Result, error) {
	if form == nil {
		return prompt.Result{}, errors.New("form is required")
	}
	if err := ctx.Err(); err != nil {
		return prompt.Result{}, err
	}

	res := s.builder.Build(s.withLevel(form))

	s.logger.Debug("Prompt generated",
		zap.String("level", string(res.Input.StyleLevel)),
		zap.Int("missing", len(res.Missing)),
		zap.Int("warnings", len(res.Warnings)),
		zap.Bool("reference", res.DerivedName != ""))
	return res, nil
}

func (s *PromptService) withLevel(form *model.FormInput) model.FormInput {
	f := *form
	if f.StyleLevel == "" {
		f.StyleLevel = s.level
	}
	return f
}

func toResponse(res prompt.Result) *model.GenerateResponse {
	return &model.GenerateResponse{
		Prompt:      res.Prompt,
		Missing:     res.Missing,
		Warnings:    res.Warnings,
		Status:      prompt.Status(res),
		DerivedName: res.DerivedName,
		Style:       res.Style,
	}
}
