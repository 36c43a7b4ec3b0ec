// Package predictor implements the deterministic gap pipeline: a digit-count
// base heuristic, residue-class corrections mod 12 and mod 7, and a
// logarithmic density term scaled by the derived constant block. All
// heuristic arithmetic is float64 and reproduces the published formulas
// exactly, quirks included; value arithmetic stays exact in decimal strings.
package predictor

import (
	"math"
	"math/big"
	"strconv"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/bigdec"
)

// Metrics is the per-step breakdown of a prediction.
type Metrics struct {
	Digits      int
	BaseGap     int64
	Density     int64   // rounded density correction G
	Phi         float64 // un-rounded correlative term behind G
	Delta       int64   // mod-12 offset plus scaled mod-7 offset
	Fluctuation int64   // reserved term, zero in this parameter set
	FinalGap    int64
	Class       ResidueClass
	Ratio       float64 // finalGap / ln(value), 0 when the ln is not positive
}

// Result is one prediction step.
type Result struct {
	Value   string // the input value
	Gap     int64
	Next    string
	Metrics Metrics
}

// Predictor computes gaps against a fixed constant block.
type Predictor struct {
	consts Constants
}

// New returns a Predictor over the default constant block.
func New() *Predictor {
	return &Predictor{consts: defaultConstants}
}

// Constants returns the block the predictor was built with.
func (p *Predictor) Constants() Constants {
	return p.consts
}

// Predict runs the full pipeline for one step. It is a pure function of its
// input: same value, same Result, always. Returns bigdec.ErrInvalidNumber
// if s is not a decimal string.
func (p *Predictor) Predict(s string) (Result, error) {
	if err := bigdec.Check(s); err != nil {
		return Result{}, err
	}
	class, err := Classify(s)
	if err != nil {
		return Result{}, err
	}
	mod7, err := bigdec.Mod(s, 7)
	if err != nil {
		return Result{}, err
	}

	d := len(s)
	baseGap := forceEven(int64(math.Round(float64(d)*float64(d)/50.0)) + 2)

	phi := lnApprox(s) * p.consts.LnCStar / p.consts.CStar
	density := int64(math.Round(phi))

	delta := delta12[class] + int64(math.Round(float64(delta7[mod7])*Pi/10.0))

	finalGap := forceEven(baseGap + delta + density)

	var ratio float64
	if ln := lnPrecise(s); ln > 0 {
		ratio = float64(finalGap) / ln
	}

	return Result{
		Value: s,
		Gap:   finalGap,
		Next:  bigdec.Add(s, finalGap),
		Metrics: Metrics{
			Digits:   d,
			BaseGap:  baseGap,
			Density:  density,
			Phi:      phi,
			Delta:    delta,
			FinalGap: finalGap,
			Class:    class,
			Ratio:    ratio,
		},
	}, nil
}

// forceEven bumps odd gaps to the next even value and floors the result
// at 2.
func forceEven(g int64) int64 {
	if g%2 != 0 {
		g++
	}
	if g < 2 {
		return 2
	}
	return g
}

// lnApprox estimates ln(s) from the digit count plus the log of the leading
// prefix, taken verbatim as an integer of up to ten digits. The estimate
// over-counts; the published gap values depend on this exact form, so it
// must not be normalized into a true logarithm.
func lnApprox(s string) float64 {
	d := len(s)
	n := d
	if n > 10 {
		n = 10
	}
	prefix, _ := strconv.ParseFloat(s[:n], 64)
	return math.Log(10.0)*float64(d-1) + math.Log(prefix)
}

// lnPrecise computes ln(s) through a mantissa/exponent split so values far
// beyond the float64 range still reduce to a finite logarithm.
func lnPrecise(s string) float64 {
	f, _, err := big.ParseFloat(s, 10, 64, big.ToNearestEven)
	if err != nil {
		return 0
	}
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return math.Log(m) + float64(exp)*math.Ln2
}
