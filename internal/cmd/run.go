package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/dashboard"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/menu"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/predictor"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/sequence"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/session"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/ui"
)

var runInterval time.Duration

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive predictor",
	Long: `Run the menu-driven prediction loop.

Pick a starting value (last stored value, a preset, or manual entry), then
watch the dashboard advance one prediction per poll interval. Press 's' to
stop the loop and return to the menu; quit from the menu to exit.`,
	Example: `  lgo run
  lgo run --sequence /var/lib/lgo/lgo_sequence.txt --interval 250ms`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().DurationVar(&runInterval, "interval", 0, "delay between steps (default 100ms)")
}

func runRun(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(runInterval)
	if err != nil {
		return err
	}

	pred := predictor.New()
	store := sequence.New(settings.SequenceFile)

	// the terminated banner reports the step count of the last loop, the
	// counter starts over with every menu selection
	var lastSteps int64
	for {
		start, ok := menu.Choose(store)
		if !ok {
			break
		}

		sess, err := session.New(pred, store, start)
		if err != nil {
			ui.PrintError(err.Error())
			continue
		}

		r := dashboard.New(os.Stdout, ui.Enabled(), pred.Constants())
		terminated, err := runSession(sess, r, settings.PollInterval)
		if err != nil {
			ui.PrintError(err.Error())
		}

		summary := sess.Summary()
		lastSteps = summary.Steps
		slog.Debug("session finished", "component", "run",
			"start", summary.Start, "steps", summary.Steps, "final", summary.Final)

		if terminated {
			break
		}
	}

	fmt.Printf("--- Program Terminated. Total Predictions: %d ---\n", lastSteps)
	return nil
}

// runSession drives one prediction loop until the stop key, a signal, or a
// failed step. terminated reports that a signal ended the loop, in which
// case the menu must not reopen.
func runSession(sess *session.Session, r *dashboard.Renderer, interval time.Duration) (terminated bool, err error) {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	restore, err := ui.NotifyStopKey(ctx, cancel)
	if err != nil {
		return false, err
	}
	defer restore()

	if ui.Enabled() {
		ui.HideCursor(os.Stdout)
		defer ui.ShowCursor(os.Stdout)
	}

	r.Frame()
	for {
		res, err := sess.Advance()
		if err != nil {
			r.Stop()
			return false, err
		}
		r.Step(sess.Steps(), res)

		select {
		case <-ctx.Done():
			r.Stop()
			return sigCtx.Err() != nil, nil
		case <-time.After(interval):
		}
	}
}
