package mcp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/predictor"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/sequence"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(filepath.Join(t.TempDir(), "lgo_sequence.txt"))
}

// resultText unwraps the MCP content array down to the text payload.
func resultText(t *testing.T, result interface{}) string {
	t.Helper()
	resultMap := result.(map[string]any)
	content := resultMap["content"].([]map[string]any)
	return content[0]["text"].(string)
}

func TestPredictNext(t *testing.T) {
	server := newTestServer(t)

	t.Run("ten digit reference value", func(t *testing.T) {
		result, rpcErr := server.handlePredictNext(PredictNextInput{Value: "9999999967"})
		require.Nil(t, rpcErr)
		require.NotNil(t, result)

		text := resultText(t, result)
		t.Logf("Result: %s", text)

		assert.Contains(t, text, "10 digits")
		assert.Contains(t, text, "SET_C")
		assert.Contains(t, text, "Next Candidate: 9999999971")
	})

	t.Run("fifteen digit reference value", func(t *testing.T) {
		result, rpcErr := server.handlePredictNext(PredictNextInput{Value: "999999999999991"})
		require.Nil(t, rpcErr)

		text := resultText(t, result)
		t.Logf("Result: %s", text)

		assert.Contains(t, text, "Next Candidate: 999999999999999")
	})

	t.Run("whitespace around the value is tolerated", func(t *testing.T) {
		result, rpcErr := server.handlePredictNext(PredictNextInput{Value: "  9999999967  "})
		require.Nil(t, rpcErr)

		text := resultText(t, result)
		assert.Contains(t, text, "Next Candidate: 9999999971")
	})

	t.Run("rejects non-digit value", func(t *testing.T) {
		result, rpcErr := server.handlePredictNext(PredictNextInput{Value: "12a34"})
		require.NotNil(t, rpcErr)
		assert.Nil(t, result)
		assert.Equal(t, -32602, rpcErr.Code)
		assert.Contains(t, rpcErr.Message, "invalid value")
	})

	t.Run("rejects empty value", func(t *testing.T) {
		_, rpcErr := server.handlePredictNext(PredictNextInput{Value: ""})
		require.NotNil(t, rpcErr)
		assert.Equal(t, -32602, rpcErr.Code)
	})
}

func TestPredictSeries(t *testing.T) {
	server := newTestServer(t)

	t.Run("default step count is ten", func(t *testing.T) {
		result, rpcErr := server.handlePredictSeries(PredictSeriesInput{Value: "9999999967"})
		require.Nil(t, rpcErr)

		text := resultText(t, result)
		t.Logf("Result: %s", text)

		assert.Contains(t, text, "Predicted 10 step(s)")
		assert.Contains(t, text, `"step": 1`)
		assert.Contains(t, text, `"step": 10`)
	})

	t.Run("series chains each step onto the previous result", func(t *testing.T) {
		result, rpcErr := server.handlePredictSeries(PredictSeriesInput{Value: "9999999967", Steps: 3})
		require.Nil(t, rpcErr)

		text := resultText(t, result)
		t.Logf("Result: %s", text)

		// first step matches the single-shot tool
		assert.Contains(t, text, `"value": "9999999967"`)
		assert.Contains(t, text, `"next": "9999999971"`)
		// second step starts where the first ended
		assert.Contains(t, text, `"value": "9999999971"`)
		assert.NotContains(t, text, `"step": 4`)
		// the summary ties the run together
		assert.Contains(t, text, `"start": "9999999967"`)
		assert.Contains(t, text, `"steps": 3`)
	})

	t.Run("series never touches the sequence file", func(t *testing.T) {
		_, rpcErr := server.handlePredictSeries(PredictSeriesInput{Value: "9999999967", Steps: 5})
		require.Nil(t, rpcErr)

		count, err := server.store.Count()
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("caps oversized requests", func(t *testing.T) {
		_, rpcErr := server.handlePredictSeries(PredictSeriesInput{Value: "9999999967", Steps: maxSeriesSteps + 1})
		require.NotNil(t, rpcErr)
		assert.Equal(t, -32602, rpcErr.Code)
		assert.Contains(t, rpcErr.Message, "steps must be at most")
	})

	t.Run("rejects non-digit value", func(t *testing.T) {
		_, rpcErr := server.handlePredictSeries(PredictSeriesInput{Value: "not-a-number", Steps: 2})
		require.NotNil(t, rpcErr)
		assert.Equal(t, -32602, rpcErr.Code)
	})
}

func TestResidueClass(t *testing.T) {
	server := newTestServer(t)

	t.Run("classifies a mod-12 residue", func(t *testing.T) {
		result, rpcErr := server.handleResidueClass(ResidueClassInput{Value: "9999999967"})
		require.Nil(t, rpcErr)

		text := resultText(t, result)
		t.Logf("Result: %s", text)

		assert.Contains(t, text, "SET_C")
		assert.Contains(t, text, "mod 12:      7")
		assert.Contains(t, text, "mod 7:       6")
	})

	t.Run("literal special cases", func(t *testing.T) {
		result, rpcErr := server.handleResidueClass(ResidueClassInput{Value: "2"})
		require.Nil(t, rpcErr)
		assert.Contains(t, resultText(t, result), "SET_A")

		result, rpcErr = server.handleResidueClass(ResidueClassInput{Value: "3"})
		require.Nil(t, rpcErr)
		assert.Contains(t, resultText(t, result), "SET_B")
	})

	t.Run("unclassified residues report the unknown set", func(t *testing.T) {
		// 12 mod 12 = 0, outside every residue set
		result, rpcErr := server.handleResidueClass(ResidueClassInput{Value: "12"})
		require.Nil(t, rpcErr)
		assert.Contains(t, resultText(t, result), predictor.ClassNone.String())
	})

	t.Run("rejects non-digit value", func(t *testing.T) {
		_, rpcErr := server.handleResidueClass(ResidueClassInput{Value: "9x"})
		require.NotNil(t, rpcErr)
		assert.Equal(t, -32602, rpcErr.Code)
	})
}

func TestSequenceLast(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		server := newTestServer(t)

		result, rpcErr := server.handleSequenceLast()
		require.Nil(t, rpcErr)

		text := resultText(t, result)
		t.Logf("Result: %s", text)

		assert.Contains(t, text, "is empty")
	})

	t.Run("reports the last stored value and count", func(t *testing.T) {
		server := newTestServer(t)
		require.NoError(t, server.store.Append("9999999967"))
		require.NoError(t, server.store.Append("9999999971"))

		result, rpcErr := server.handleSequenceLast()
		require.Nil(t, rpcErr)

		text := resultText(t, result)
		t.Logf("Result: %s", text)

		assert.Contains(t, text, "Last stored value: 9999999971")
		assert.Contains(t, text, "Stored values:     2")
		assert.Contains(t, text, server.store.Path())
	})

	t.Run("unreadable store surfaces an internal error", func(t *testing.T) {
		// a directory as the store path fails on read
		server := &Server{
			pred:  predictor.New(),
			store: sequence.New(t.TempDir()),
		}

		_, rpcErr := server.handleSequenceLast()
		require.NotNil(t, rpcErr)
		assert.Equal(t, -32000, rpcErr.Code)
	})
}
