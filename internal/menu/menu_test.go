package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetLabel(t *testing.T) {
	assert.Equal(t, "10 digits  (9999999967)", PresetLabel("9999999967"))
	assert.Equal(t, "19 digits  (9999999999999999983)", PresetLabel("9999999999999999983"))
}

func TestItems(t *testing.T) {
	items := Items("lgo_sequence.txt")
	require.Len(t, items, len(Presets)+3)

	assert.Equal(t, "Load last value from lgo_sequence.txt", items[0])
	for i, p := range Presets {
		assert.Equal(t, PresetLabel(p), items[i+1])
	}
	assert.Equal(t, itemManual, items[len(items)-2])
	assert.Equal(t, itemQuit, items[len(items)-1])
}

func TestDigitsValidator(t *testing.T) {
	assert.NoError(t, DigitsValidator("9999999967"))
	assert.NoError(t, DigitsValidator("  42  ")) // surrounding whitespace is trimmed
	assert.Error(t, DigitsValidator(""))
	assert.Error(t, DigitsValidator("12a"))
	assert.Error(t, DigitsValidator(42)) // non-string answers are rejected
}
