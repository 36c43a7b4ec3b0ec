package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/bigdec"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		value string
		want  ResidueClass
	}{
		{"2", ClassA},  // literal special case
		{"3", ClassB},  // literal special case
		{"13", ClassA}, // 13 mod 12 = 1
		{"5", ClassB},
		{"7", ClassC},
		{"11", ClassD},
		{"12", ClassNone},
		{"24", ClassNone},
		{"9999999967", ClassC},          // mod 12 = 7
		{"999999999999991", ClassC},     // mod 12 = 7
		{"9999999999999999983", ClassD}, // mod 12 = 11
		{"9999999999999999997", ClassA}, // mod 12 = 1
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			got, err := Classify(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyInvalid(t *testing.T) {
	for _, s := range []string{"", "abc", "12x"} {
		_, err := Classify(s)
		assert.ErrorIs(t, err, bigdec.ErrInvalidNumber, "input %q", s)
	}
}

func TestResidueClassString(t *testing.T) {
	assert.Equal(t, "SET_A", ClassA.String())
	assert.Equal(t, "SET_B", ClassB.String())
	assert.Equal(t, "SET_C", ClassC.String())
	assert.Equal(t, "SET_D", ClassD.String())
	assert.Equal(t, "SET_UNKNOWN", ClassNone.String())
}
