package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/config"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/ui"
)

// Global flags shared by every subcommand.
var (
	verbose      bool
	sequenceFlag string
	logFilePath  string
)

var logLevel = new(slog.LevelVar)

var rootCmd = &cobra.Command{
	Use:   "lgo",
	Short: "lgo - LGO Deterministic Gap Predictor",
	Long: `lgo predicts the next candidate after an arbitrarily large decimal value
using the fixed LGO closed-form gap formula.

Features:
  - Deterministic gap pipeline (base heuristic, residue delta, density correction)
  - Arbitrary-length decimal arithmetic on plain digit strings
  - Fixed-position terminal dashboard with deviation scanner
  - Append-only sequence file shared across runs
  - MCP server exposing the predictor to AI tools`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&sequenceFlag, "sequence", "s", "", "sequence file path (default lgo_sequence.txt)")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "", "append structured logs to this file")
}

// setupLogging installs the default logger: text on stderr so diagnostics
// never land inside the dashboard, optionally fanned out to a JSON file.
func setupLogging() error {
	logLevel.Set(slog.LevelWarn)
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}

	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	if logFilePath == "" {
		slog.SetDefault(slog.New(stderrHandler))
		return nil
	}

	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	// the file handler logs everything regardless of the stderr level
	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(slogmulti.Fanout(stderrHandler, fileHandler)))
	return nil
}

// resolveSettings layers the config file, environment, and flags into the
// effective settings. flagInterval applies only for commands that poll.
func resolveSettings(flagInterval time.Duration) (config.Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Settings{}, err
	}
	return config.Resolve(cfg, sequenceFlag, flagInterval), nil
}
