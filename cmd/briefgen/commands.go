package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/makeasinger/briefgen/internal/artist"
	"github.com/makeasinger/briefgen/internal/model"
	"github.com/makeasinger/briefgen/internal/service"
)

var (
	formFile   string
	level      string
	format     string
	outFile    string
	count      int
	lyricsFile string
)

// errInvalidLyrics makes validate-lyrics exit non-zero
var errInvalidLyrics = errors.New("lyrics have warnings")

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the brief for a form file",
	Example: `  briefgen generate -f form.yaml
  briefgen generate -f form.json --level detailed --format json -o brief_suno.json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var similarCmd = &cobra.Command{
	Use:   "similar NAME",
	Short: "Derive stand-in names for a reference artist",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilar,
}

var validateCmd = &cobra.Command{
	Use:   "validate-lyrics",
	Short: "Check lyrics for text that should not be sung",
	Args:  cobra.NoArgs,
	RunE:  runValidateLyrics,
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print a reset form as YAML",
	Args:  cobra.NoArgs,
	RunE:  runDefaults,
}

func newPromptService() *service.PromptService {
	var names *artist.Generator
	if seed != 0 {
		names = artist.NewSeededGenerator(seed)
	} else {
		names = artist.NewGenerator(nil)
	}
	return service.NewPromptService(names, nil, nil, logger, 1)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	form, err := loadForm(formFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if level != "" {
		l := model.StyleLevel(level)
		if !l.Valid() {
			return fmt.Errorf("invalid level %q", level)
		}
		form.StyleLevel = l
	}

	prompts := newPromptService()
	ctx := cmdContext(cmd)

	var out []byte
	switch format {
	case "txt":
		resp, err := prompts.Generate(ctx, form)
		if err != nil {
			return err
		}
		logger.Info("Generated", zap.String("status", resp.Status))
		fmt.Fprintln(cmd.ErrOrStderr(), resp.Status)
		out = []byte(resp.Prompt + "\n")
	case "json":
		out, err = service.NewExportService(prompts).JSONBytes(ctx, form)
		if err != nil {
			return err
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown format %q (want txt or json)", format)
	}

	return writeOutput(cmd, outFile, out)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	resp, err := newPromptService().Similar(cmdContext(cmd), &model.SimilarNameRequest{Name: args[0], Count: count})
	if err != nil {
		return err
	}
	if resp.Similar == "" {
		return fmt.Errorf("name is empty")
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Similar)
	for _, v := range resp.Variants {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func runValidateLyrics(cmd *cobra.Command, args []string) error {
	data, err := readInput(lyricsFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	resp, err := newPromptService().ValidateLyrics(cmdContext(cmd), &model.LyricsValidateRequest{Lyrics: string(data)})
	if err != nil {
		return err
	}

	if resp.IsValid {
		fmt.Fprintln(cmd.OutOrStdout(), "OK: nenhum aviso.")
		return nil
	}
	for _, w := range resp.Warnings {
		fmt.Fprintln(cmd.OutOrStdout(), w.String())
	}
	return fmt.Errorf("%w: %d", errInvalidLyrics, len(resp.Warnings))
}

func runDefaults(cmd *cobra.Command, args []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(model.DefaultFormInput()); err != nil {
		return fmt.Errorf("failed to encode defaults: %w", err)
	}
	return enc.Close()
}

// loadForm decodes a YAML or JSON form. YAML is a superset of the JSON we accept.
func loadForm(path string, stdin io.Reader) (*model.FormInput, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}

	var form model.FormInput
	if err := yaml.Unmarshal(data, &form); err != nil {
		if jsonErr := json.Unmarshal(data, &form); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse form %s: %w", path, err)
		}
	}
	return &form, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Wrote output", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
