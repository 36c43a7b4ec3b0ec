package predictor

import "github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/bigdec"

// ResidueClass partitions candidate values by residue mod 12. The class
// ordinal indexes the mod-12 correction table, so the iota order is fixed.
type ResidueClass int

const (
	ClassNone ResidueClass = iota
	ClassA
	ClassB
	ClassC
	ClassD
)

// String returns the display label for the class.
func (c ResidueClass) String() string {
	switch c {
	case ClassA:
		return "SET_A"
	case ClassB:
		return "SET_B"
	case ClassC:
		return "SET_C"
	case ClassD:
		return "SET_D"
	default:
		return "SET_UNKNOWN"
	}
}

// Correction tables. delta12 is indexed by class ordinal, delta7 by the
// value mod 7.
var (
	delta12 = [5]int64{0, -2, 2, -1, -6}
	delta7  = [7]int64{0, 3, -1, 0, 1, -1, 0}
)

// Classify maps a decimal value to its residue class: 1, 5, 7, 11 (mod 12)
// give A-D. The literal values "2" and "3" sit outside that partition and
// are pinned to A and B. Everything else is ClassNone.
func Classify(s string) (ResidueClass, error) {
	mod12, err := bigdec.Mod(s, 12)
	if err != nil {
		return ClassNone, err
	}
	switch mod12 {
	case 1:
		return ClassA, nil
	case 5:
		return ClassB, nil
	case 7:
		return ClassC, nil
	case 11:
		return ClassD, nil
	}
	switch s {
	case "2":
		return ClassA, nil
	case "3":
		return ClassB, nil
	}
	return ClassNone, nil
}
