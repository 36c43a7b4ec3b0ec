package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/config"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/ui"
)

var (
	configSetSequence string
	configSetInterval time.Duration
	configReset       bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the saved settings",
	Long: `Show the configuration file and the effective settings, or persist new
defaults. Environment variables and flags still override the file on every
run.`,
	Example: `  lgo config
  lgo config --set-sequence /var/lib/lgo/lgo_sequence.txt
  lgo config --set-interval 250ms
  lgo config --reset`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configSetSequence, "set-sequence", "", "persist a sequence file path")
	configCmd.Flags().DurationVar(&configSetInterval, "set-interval", 0, "persist a poll interval")
	configCmd.Flags().BoolVar(&configReset, "reset", false, "restore the default settings")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configReset {
		if err := config.Save(&config.Config{}); err != nil {
			return fmt.Errorf("resetting configuration: %w", err)
		}
		ui.PrintOK("configuration reset to defaults")
		return nil
	}

	if configSetSequence != "" || configSetInterval > 0 {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if configSetSequence != "" {
			cfg.SequenceFile = configSetSequence
		}
		if configSetInterval > 0 {
			cfg.PollIntervalMS = int(configSetInterval / time.Millisecond)
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}
		ui.PrintOK("configuration saved to " + config.Path())
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	settings := config.Resolve(cfg, sequenceFlag, 0)

	fmt.Printf("Config file: %s\n", config.Path())
	fmt.Printf("  sequence_file:    %s\n", orUnset(cfg.SequenceFile))
	fmt.Printf("  poll_interval_ms: %s\n", orUnsetMS(cfg.PollIntervalMS))
	fmt.Println()
	fmt.Println("Effective settings (file + environment + flags):")
	fmt.Printf("  Sequence file: %s\n", settings.SequenceFile)
	fmt.Printf("  Poll interval: %s\n", settings.PollInterval)
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func orUnsetMS(n int) string {
	if n <= 0 {
		return "(not set)"
	}
	return fmt.Sprintf("%d", n)
}
