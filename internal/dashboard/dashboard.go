// Package dashboard renders running predictor state. On a terminal it
// redraws a fixed three-panel layout in place; on piped output it degrades
// to one log line per step.
package dashboard

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/predictor"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/ui"
)

// Layout columns and rows. Coordinates are zero-based.
const (
	colPanel      = 5   // RH proof panel
	colComponents = 50  // predictor components
	colMetrics    = 105 // proof metrics + scanner
	logRow        = 22
	scannerRow    = 25
	parkRow       = 32

	bannerWidth = 136
)

// Value columns sit past the longest label of their panel.
const (
	panelValue      = colPanel + 26
	componentsValue = colComponents + 26
	metricsValue    = colMetrics + 28
)

// Renderer draws the dashboard onto one writer.
type Renderer struct {
	w      io.Writer
	ansi   bool
	consts predictor.Constants
}

// New returns a renderer. With ansi false it emits plain sequential lines
// instead of cursor-addressed panels.
func New(w io.Writer, ansi bool, consts predictor.Constants) *Renderer {
	return &Renderer{w: w, ansi: ansi, consts: consts}
}

// Frame draws the static layout once per run.
func (r *Renderer) Frame() {
	if !r.ansi {
		fmt.Fprintln(r.w, "LGO Deterministic Predictor (v5.9)")
		fmt.Fprintf(r.w, "C_LGO*: %.9f  Zeta Critical: %.9f  Status: STABLE (C_LGO*)\n",
			r.consts.CStar, r.consts.ZetaCritical)
		return
	}

	banner := strings.Repeat("=", bannerWidth)
	ui.Clear(r.w)
	ui.At(r.w, 0, 0, banner)
	ui.At(r.w, 0, 1, "      LGO Deterministic Predictor (v5.9) - Console Mode Running...")
	ui.At(r.w, 98, 1, predictor.WatermarkID)
	ui.At(r.w, 0, 2, banner)
	ui.At(r.w, colMetrics, 4, "PRESS 'S' TO STOP AND RETURN TO MENU")

	rule := strings.Repeat("-", 42)
	ui.At(r.w, colPanel, 7, rule)
	ui.At(r.w, colPanel, 8, "           RH PROOF PANEL (v26)")
	ui.At(r.w, colPanel, 9, rule)
	ui.At(r.w, colPanel, 10, fmt.Sprintf("Muon Mass (kg):     %e", predictor.MuonMass))
	ui.At(r.w, colPanel, 11, fmt.Sprintf("Electron Mass (kg): %e", predictor.ElectronMass))
	ui.At(r.w, colPanel, 12, fmt.Sprintf("Phi Dampener (Phi/2): %.9f", predictor.PhiDampener))
	ui.At(r.w, colPanel, 13, rule)
	ui.At(r.w, colPanel, 14, "LGO Static Constant:")
	ui.At(r.w, colPanel, 15, "Zeta-Stabilized (C_LGO*):")
	ui.At(r.w, colPanel, 16, "RH Lock-On Status:")
	ui.At(r.w, colPanel, 17, rule)

	ui.At(r.w, colComponents, 8, "--- PREDICTOR COMPONENTS ---")
	ui.At(r.w, colComponents, 10, "Current Digits:")
	ui.At(r.w, colComponents, 11, "Base Gap Heuristic:")
	ui.At(r.w, colComponents, 12, "Density Correction (G):")
	ui.At(r.w, colComponents, 13, "PHI Correlative (Phi):")
	ui.At(r.w, colComponents, 14, "Ulam/Mod7 Delta (Delta):")
	ui.At(r.w, colComponents, 15, "Fluctuation Delta (0):")

	ui.At(r.w, colMetrics, 8, "--- PROOF METRICS ---")
	ui.At(r.w, colMetrics, 10, "FINAL GAP:")
	ui.At(r.w, colMetrics, 12, rule)
	ui.At(r.w, colMetrics, 13, "PNT Gap Ratio (Gap/ln(Pn)):")
	ui.At(r.w, colMetrics, 14, "Zeta Critical Line Check:")
	ui.At(r.w, colMetrics, 15, rule)

	ui.At(r.w, 0, 21, banner)
	ui.At(r.w, 0, logRow, "[0] Next Candidate: ")
}

// Step renders one accepted prediction.
func (r *Renderer) Step(step int64, res predictor.Result) {
	m := res.Metrics
	if !r.ansi {
		fmt.Fprintf(r.w, "[%d] Next Candidate: %s (gap %d, %s, ratio %.6f)\n",
			step, res.Next, res.Gap, m.Class, m.Ratio)
		return
	}

	ui.At(r.w, 0, 4, fmt.Sprintf(" Prime Used: %d digits...%s", m.Digits, strings.Repeat(" ", 30)))

	ui.At(r.w, componentsValue, 10, fmt.Sprintf("%-16d", m.Digits))
	ui.At(r.w, componentsValue, 11, fmt.Sprintf("%-16d", m.BaseGap))
	ui.At(r.w, componentsValue, 12, fmt.Sprintf("%-16d", m.Density))
	ui.At(r.w, componentsValue, 13, fmt.Sprintf("%-16.6g", m.Phi))
	ui.At(r.w, componentsValue, 14, fmt.Sprintf("%-16d", m.Delta))
	ui.At(r.w, componentsValue, 15, fmt.Sprintf("%-16d", m.Fluctuation))
	ui.At(r.w, colComponents, 18, fmt.Sprintf("Current Set: %-14s", m.Class))

	ui.At(r.w, metricsValue, 10, fmt.Sprintf("%-16d", res.Gap))
	ui.At(r.w, metricsValue, 13, fmt.Sprintf("%-12.6f", m.Ratio))
	ui.At(r.w, metricsValue, 14, fmt.Sprintf("%-12.9f", r.consts.ZetaCritical))

	ui.At(r.w, panelValue, 14, fmt.Sprintf("%-14.9f", r.consts.CStatic))
	ui.At(r.w, panelValue, 15, fmt.Sprintf("%-14.9f", r.consts.CStar))
	ui.At(r.w, panelValue, 16, "STABLE (C_LGO*)   ")

	r.scanner(m.Ratio)
	ui.At(r.w, 0, logRow, fmt.Sprintf("[%d] Next Candidate: %-100s", step, res.Next))
	ui.MoveTo(r.w, 0, parkRow)
}

// scanner draws the critical-line deviation track: the pointer shows how
// far the PNT ratio sits from its nearest integer, scaled so +-0.05 spans
// the track.
func (r *Renderer) scanner(ratio float64) {
	target := int64(math.Round(ratio))
	deviation := ratio - float64(target)
	pos := int(math.Round(deviation * 400.0))
	if pos > 20 {
		pos = 20
	}
	if pos < -20 {
		pos = -20
	}
	center := colMetrics + 25

	ui.At(r.w, colMetrics, scannerRow, "--- NON-CRITICAL ZERO LINE ---")
	ui.At(r.w, colMetrics, scannerRow+1, fmt.Sprintf("Target: %d.0%s", target, strings.Repeat(" ", 20)))
	ui.At(r.w, colMetrics, scannerRow+2, strings.Repeat(" ", 52))
	ui.At(r.w, center+pos, scannerRow+2, "*")
	ui.At(r.w, colMetrics, scannerRow+3, "  -0.05 |-------------------------| +0.05")
	ui.At(r.w, center, scannerRow+3, "|")
	ui.At(r.w, colMetrics, scannerRow+4, fmt.Sprintf("PNT Ratio: %.6f%s", ratio, strings.Repeat(" ", 16)))
}

// Stop prints the stop banner under the layout.
func (r *Renderer) Stop() {
	if !r.ansi {
		fmt.Fprintln(r.w, "--- Stopping prediction and returning to menu... ---")
		return
	}
	ui.At(r.w, 0, 35, "--- Stopping prediction and returning to menu... ---")
	fmt.Fprintln(r.w)
}
