// Package schema defines the machine-readable record types shared by the
// CLI's JSON output and the MCP tool payloads.
package schema

// StepRecord is one prediction step.
type StepRecord struct {
	Step     int64   `json:"step"`
	Value    string  `json:"value"` // value the step predicted from
	Digits   int     `json:"digits"`
	BaseGap  int64   `json:"base_gap"`
	Density  int64   `json:"density_g"`
	Delta    int64   `json:"delta"`
	FinalGap int64   `json:"final_gap"`
	Class    string  `json:"residue_class"`
	Ratio    float64 `json:"pnt_ratio"`
	Next     string  `json:"next"`
}

// RunSummary describes a completed prediction run.
type RunSummary struct {
	Start        string `json:"start"`
	Steps        int64  `json:"steps"`
	Final        string `json:"final"`
	SequenceFile string `json:"sequence_file,omitempty"`
}
