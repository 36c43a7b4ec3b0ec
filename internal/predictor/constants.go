package predictor

import "math"

// Physical and mathematical inputs to the constant derivation. E and Pi are
// spelled as literals rather than math.E/math.Pi: the derived float64 values
// are part of the published parameter set and must not drift.
const (
	MuonMass     = 1.8835316e-28
	ElectronMass = 9.1093837e-31
	PhiDampener  = 1.6180339887 / 2.0
	E            = 2.718281828459045
	Pi           = 3.141592653589793
)

// WatermarkID identifies the published parameter set this predictor
// implements.
const WatermarkID = "LGO_PREDICTOR_ID:2025_02_ALPHA_P_07"

// Constants is the derived constant block. It is computed once at package
// init and treated as immutable afterwards.
type Constants struct {
	CStatic      float64 // muon/electron mass ratio, ~206.768
	CStar        float64 // zeta-stabilized coupling constant
	ZetaCritical float64 // C* / (2*Pi^4), the critical line check value
	LnCStar      float64 // cached ln(C*)
}

// DeriveConstants computes the constant block from the physical inputs.
func DeriveConstants() Constants {
	cStatic := MuonMass / ElectronMass
	cStar := cStatic * PhiDampener * (math.Log(cStatic) / math.Log(E*Pi))
	return Constants{
		CStatic:      cStatic,
		CStar:        cStar,
		ZetaCritical: cStar / (2.0 * math.Pow(Pi, 4.0)),
		LnCStar:      math.Log(cStar),
	}
}

var defaultConstants = DeriveConstants()

// DefaultConstants returns the block derived at init.
func DefaultConstants() Constants {
	return defaultConstants
}
