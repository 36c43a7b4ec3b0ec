package bigdec

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refAdd computes s + n with math/big for cross-checking.
func refAdd(t *testing.T, s string, n int64) string {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "reference parse failed for %q", s)
	return v.Add(v, big.NewInt(n)).String()
}

func refMod(t *testing.T, s string, m int64) int64 {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "reference parse failed for %q", s)
	return new(big.Int).Mod(v, big.NewInt(m)).Int64()
}

func TestCheck(t *testing.T) {
	valid := []string{"0", "2", "3", "9999999967", "00123", strings.Repeat("9", 100)}
	for _, s := range valid {
		assert.NoError(t, Check(s), "expected %q to be valid", s)
	}

	invalid := []string{"", " ", "12a3", "-5", "1.5", "12 34", "１２３"}
	for _, s := range invalid {
		assert.ErrorIs(t, Check(s), ErrInvalidNumber, "expected %q to be invalid", s)
	}
}

func TestAdd(t *testing.T) {
	cases := []struct {
		value string
		inc   int64
	}{
		{"0", 0},
		{"0", 2},
		{"7", 4},
		{"999", 1},
		{"9999999967", 4},
		{"999999999999991", 20},
		{"9999999999999999997", 96},
		{strings.Repeat("9", 80), 1},
		{"1" + strings.Repeat("0", 50), 999},
	}
	for _, tc := range cases {
		got := Add(tc.value, tc.inc)
		assert.Equal(t, refAdd(t, tc.value, tc.inc), got,
			"Add(%q, %d)", tc.value, tc.inc)
	}
}

func TestAddCarryChains(t *testing.T) {
	// all-nines values of increasing length force a full carry ripple
	for n := 1; n <= 40; n++ {
		s := strings.Repeat("9", n)
		assert.Equal(t, refAdd(t, s, 2), Add(s, 2), "length %d", n)
	}
}

func TestAddPreservesLeadingZeros(t *testing.T) {
	assert.Equal(t, "0999", Add("0997", 2))
	assert.Equal(t, "1000", Add("0999", 1))
}

func TestAddPanics(t *testing.T) {
	assert.Panics(t, func() { Add("10", -1) })
	assert.Panics(t, func() { Add("x10", 1) })
	assert.Panics(t, func() { Add("", 1) })
}

func TestMod(t *testing.T) {
	values := []string{
		"0", "2", "3", "5", "7", "11", "12", "13",
		"9999999967",
		"999999999999991",
		"9999999999999999983",
		"9999999999999999997",
		strings.Repeat("9", 120),
		"1" + strings.Repeat("0", 64) + "7",
	}
	for _, m := range []int64{7, 12} {
		for _, s := range values {
			got, err := Mod(s, m)
			require.NoError(t, err)
			assert.Equal(t, refMod(t, s, m), got, "Mod(%q, %d)", s, m)
			assert.GreaterOrEqual(t, got, int64(0))
			assert.Less(t, got, m)
		}
	}
}

func TestModInvalid(t *testing.T) {
	_, err := Mod("", 12)
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = Mod("12x", 7)
	assert.ErrorIs(t, err, ErrInvalidNumber)

	assert.Panics(t, func() { Mod("5", 0) })
	assert.Panics(t, func() { Mod("5", -12) })
}
