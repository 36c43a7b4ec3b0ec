package predictor

import "github.com/ras2045/LGO-Deterministic-Predictor-v26/pkg/schema"

// Record flattens the result into its exported schema form.
func (r Result) Record(step int64) schema.StepRecord {
	return schema.StepRecord{
		Step:     step,
		Value:    r.Value,
		Digits:   r.Metrics.Digits,
		BaseGap:  r.Metrics.BaseGap,
		Density:  r.Metrics.Density,
		Delta:    r.Metrics.Delta,
		FinalGap: r.Gap,
		Class:    r.Metrics.Class.String(),
		Ratio:    r.Metrics.Ratio,
		Next:     r.Next,
	}
}
