package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/sequence"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/ui"
)

var (
	sequenceTailN    int
	sequenceResetYes bool
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Inspect or reset the stored sequence",
	Long: `Inspect the append-only sequence file the predictor writes to, or erase it
to start over.`,
}

var sequenceLastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the last stored value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		v, err := store.Load()
		if err != nil {
			return err
		}
		if v == "" {
			ui.PrintWarn(fmt.Sprintf("sequence file %s is empty", store.Path()))
			return nil
		}
		fmt.Println(v)
		return nil
	},
}

var sequenceTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print the most recent values, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		values, err := store.Tail(sequenceTailN)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

var sequencePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved sequence file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		fmt.Println(store.Path())
		return nil
	},
}

var sequenceCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of stored values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		n, err := store.Count()
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	},
}

var sequenceResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all stored values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		if !sequenceResetYes {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Erase all stored values in %s", store.Path()),
				IsConfirm: true,
			}
			result, err := prompt.Run()
			if err != nil || strings.ToLower(result) != "y" {
				fmt.Println("\nReset cancelled")
				return nil
			}
		}

		if err := store.Reset(); err != nil {
			return err
		}
		ui.PrintOK("sequence reset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sequenceCmd)
	sequenceCmd.AddCommand(sequenceLastCmd)
	sequenceCmd.AddCommand(sequenceTailCmd)
	sequenceCmd.AddCommand(sequencePathCmd)
	sequenceCmd.AddCommand(sequenceCountCmd)
	sequenceCmd.AddCommand(sequenceResetCmd)

	sequenceTailCmd.Flags().IntVarP(&sequenceTailN, "lines", "n", 10, "number of values to show")
	sequenceResetCmd.Flags().BoolVarP(&sequenceResetYes, "yes", "y", false, "skip the confirmation prompt")
}

// openStore resolves the effective settings and opens the store.
func openStore() (*sequence.Store, error) {
	settings, err := resolveSettings(0)
	if err != nil {
		return nil, err
	}
	return sequence.New(settings.SequenceFile), nil
}
