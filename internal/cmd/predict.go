package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/predictor"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/sequence"
)

var (
	predictSteps  int
	predictLast   bool
	predictAppend bool
	predictJSON   bool
)

var predictCmd = &cobra.Command{
	Use:   "predict [value]",
	Short: "Predict candidates without the interactive dashboard",
	Long: `Run one or more prediction steps from an explicit value, or from the last
stored value with --last. Each step prints the full metric breakdown; with
--json it emits one JSON record per line instead.

The sequence file is untouched unless --append is given.`,
	Example: `  lgo predict 9999999967
  lgo predict --last --steps 5 --append
  lgo predict 999999999999991 --steps 10 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().IntVar(&predictSteps, "steps", 1, "number of successive predictions")
	predictCmd.Flags().BoolVar(&predictLast, "last", false, "start from the last stored value")
	predictCmd.Flags().BoolVar(&predictAppend, "append", false, "append each candidate to the sequence file")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "emit one JSON record per step")
}

func runPredict(cmd *cobra.Command, args []string) error {
	if predictSteps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}

	settings, err := resolveSettings(0)
	if err != nil {
		return err
	}
	store := sequence.New(settings.SequenceFile)

	current, err := predictStart(args, store)
	if err != nil {
		return err
	}

	pred := predictor.New()
	enc := json.NewEncoder(os.Stdout)
	for i := 1; i <= predictSteps; i++ {
		res, err := pred.Predict(current)
		if err != nil {
			return err
		}
		if predictAppend {
			if err := store.Append(res.Next); err != nil {
				return err
			}
		}
		if predictJSON {
			if err := enc.Encode(res.Record(int64(i))); err != nil {
				return err
			}
		} else {
			printStep(i, res)
		}
		current = res.Next
	}
	return nil
}

// predictStart picks the starting value from the positional argument or the
// store.
func predictStart(args []string, store *sequence.Store) (string, error) {
	if predictLast {
		if len(args) > 0 {
			return "", fmt.Errorf("--last and an explicit value are mutually exclusive")
		}
		v, err := store.Load()
		if err != nil {
			return "", err
		}
		if v == "" {
			return "", fmt.Errorf("sequence file %s is empty, nothing to continue from", store.Path())
		}
		return v, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("provide a value or use --last")
	}
	return strings.TrimSpace(args[0]), nil
}

func printStep(step int, res predictor.Result) {
	m := res.Metrics
	if step > 1 {
		fmt.Println()
	}
	fmt.Printf("[%d] %s (%d digits)\n", step, res.Value, m.Digits)
	fmt.Printf("    Base Gap Heuristic:   %d\n", m.BaseGap)
	fmt.Printf("    Density Correction G: %d\n", m.Density)
	fmt.Printf("    Residue Delta:        %d  (%s)\n", m.Delta, m.Class)
	fmt.Printf("    Final Gap:            %d\n", res.Gap)
	fmt.Printf("    PNT Ratio:            %.6f\n", m.Ratio)
	fmt.Printf("    Next Candidate:       %s\n", res.Next)
}
