// Command briefgen renders Suno briefs from form files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	seed    uint64

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "briefgen",
	Short: "Build Suno composition briefs from a form",
	Long: `briefgen turns a song form (YAML or JSON) into the Portuguese brief that is
pasted into a chat assistant, together with a Suno style line.

Lyrics supplied in the form are checked for production terms, stage directions
and text inside [Instrumental] sections.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for similar names (0 = random)")

	generateCmd.Flags().StringVarP(&formFile, "file", "f", "", "Form file (YAML or JSON, - for stdin)")
	generateCmd.Flags().StringVar(&level, "level", "", "Style level: minimal, optimized or detailed")
	generateCmd.Flags().StringVar(&format, "format", "txt", "Output format: txt or json")
	generateCmd.Flags().StringVarP(&outFile, "output", "o", "", "Write to file instead of stdout")
	_ = generateCmd.MarkFlagRequired("file")

	similarCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of names")

	validateCmd.Flags().StringVarP(&lyricsFile, "file", "f", "", "Lyrics file (- for stdin)")
	_ = validateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(generateCmd, similarCmd, validateCmd, defaultsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
