// Package mcp exposes the predictor to MCP clients over stdio JSON-RPC.
// Every tool is read-only: the server never appends to the sequence file.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/bigdec"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/predictor"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/sequence"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/pkg/schema"
)

// maxSeriesSteps caps predict_series so a bad request cannot spin the
// server.
const maxSeriesSteps = 1000

// Server is the MCP server instance.
type Server struct {
	pred  *predictor.Predictor
	store *sequence.Store
}

// NewServer creates a server reading the sequence file at sequencePath.
func NewServer(sequencePath string) *Server {
	return &Server{
		pred:  predictor.New(),
		store: sequence.New(sequencePath),
	}
}

// Start runs the server over stdio until the client disconnects.
func (s *Server) Start() error {
	fmt.Fprintln(os.Stderr, "LGO predictor MCP server started (stdio mode)")
	fmt.Fprintf(os.Stderr, "Sequence file: %s\n", s.store.Path())
	fmt.Fprintln(os.Stderr, "Available tools: predict_next, predict_series, residue_class, sequence_last")

	return s.runStdioWithSDK(context.Background())
}

// RPCError is an error type used for internal error handling.
type RPCError struct {
	Code    int
	Message string
}

// PredictNextInput is the input schema for the predict_next tool.
type PredictNextInput struct {
	Value string `json:"value" jsonschema:"Decimal value to predict from (digits only, arbitrary length)"`
}

// PredictSeriesInput is the input schema for the predict_series tool.
type PredictSeriesInput struct {
	Value string `json:"value" jsonschema:"Decimal value to start from (digits only, arbitrary length)"`
	Steps int    `json:"steps,omitempty" jsonschema:"Number of successive predictions (1-1000, default 10)"`
}

// ResidueClassInput is the input schema for the residue_class tool.
type ResidueClassInput struct {
	Value string `json:"value" jsonschema:"Decimal value to classify (digits only, arbitrary length)"`
}

// SequenceLastInput is the input schema for the sequence_last tool.
type SequenceLastInput struct {
	// No parameters - reads the configured sequence file
}

// runStdioWithSDK runs a spec-compliant MCP server over stdio using the
// official go-sdk.
func (s *Server) runStdioWithSDK(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "lgo-predictor",
		Version: "1.0.0",
	}, nil)

	// Tool: predict_next
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "predict_next",
		Description: "Predict the next candidate after a decimal value: full metric breakdown (base gap, density correction, residue delta, PNT ratio) plus the candidate itself. Deterministic and side-effect free.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input PredictNextInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, rpcErr := s.handlePredictNext(input)
		if rpcErr != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, fmt.Errorf("%s", rpcErr.Message)
		}
		return nil, result.(map[string]any), nil
	})

	// Tool: predict_series
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "predict_series",
		Description: "Predict a series of successive candidates from a starting value. Returns one JSON record per step. Does not touch the sequence file.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input PredictSeriesInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, rpcErr := s.handlePredictSeries(input)
		if rpcErr != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, fmt.Errorf("%s", rpcErr.Message)
		}
		return nil, result.(map[string]any), nil
	})

	// Tool: residue_class
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "residue_class",
		Description: "Classify a decimal value into its residue set (mod 12 with literal special cases) and report its mod-12 and mod-7 residues.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ResidueClassInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, rpcErr := s.handleResidueClass(input)
		if rpcErr != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, fmt.Errorf("%s", rpcErr.Message)
		}
		return nil, result.(map[string]any), nil
	})

	// Tool: sequence_last
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "sequence_last",
		Description: "Read the last value stored in the sequence file along with the stored count. Read-only.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input SequenceLastInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, rpcErr := s.handleSequenceLast()
		if rpcErr != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, fmt.Errorf("%s", rpcErr.Message)
		}
		return nil, result.(map[string]any), nil
	})

	// Run the server over stdio until the client disconnects
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

// textResult wraps text in an MCP-compliant content array.
func textResult(text string) map[string]any {
	return map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	}
}

// handlePredictNext handles single-step prediction requests.
func (s *Server) handlePredictNext(input PredictNextInput) (interface{}, *RPCError) {
	res, err := s.pred.Predict(strings.TrimSpace(input.Value))
	if err != nil {
		return nil, &RPCError{Code: -32602, Message: fmt.Sprintf("invalid value: %v", err)}
	}

	m := res.Metrics
	text := fmt.Sprintf("Prediction for %s (%d digits):\n\n", res.Value, m.Digits)
	text += fmt.Sprintf("  Base Gap Heuristic:   %d\n", m.BaseGap)
	text += fmt.Sprintf("  Density Correction G: %d\n", m.Density)
	text += fmt.Sprintf("  Residue Delta:        %d\n", m.Delta)
	text += fmt.Sprintf("  Residue Set:          %s\n", m.Class)
	text += fmt.Sprintf("  Final Gap:            %d\n", res.Gap)
	text += fmt.Sprintf("  PNT Ratio:            %.6f\n\n", m.Ratio)
	text += fmt.Sprintf("Next Candidate: %s\n", res.Next)

	return textResult(text), nil
}

// handlePredictSeries handles multi-step prediction requests.
func (s *Server) handlePredictSeries(input PredictSeriesInput) (interface{}, *RPCError) {
	steps := input.Steps
	if steps <= 0 {
		steps = 10
	}
	if steps > maxSeriesSteps {
		return nil, &RPCError{Code: -32602, Message: fmt.Sprintf("steps must be at most %d", maxSeriesSteps)}
	}

	start := strings.TrimSpace(input.Value)
	current := start
	records := make([]schema.StepRecord, 0, steps)
	for i := 0; i < steps; i++ {
		res, err := s.pred.Predict(current)
		if err != nil {
			return nil, &RPCError{Code: -32602, Message: fmt.Sprintf("invalid value: %v", err)}
		}
		records = append(records, res.Record(int64(i+1)))
		current = res.Next
	}

	payload := struct {
		Summary schema.RunSummary   `json:"summary"`
		Steps   []schema.StepRecord `json:"steps"`
	}{
		Summary: schema.RunSummary{Start: start, Steps: int64(steps), Final: current},
		Steps:   records,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, &RPCError{Code: -32000, Message: fmt.Sprintf("failed to encode records: %v", err)}
	}

	text := fmt.Sprintf("Predicted %d step(s), ending at %s:\n\n%s\n", steps, current, data)
	return textResult(text), nil
}

// handleResidueClass handles classification requests.
func (s *Server) handleResidueClass(input ResidueClassInput) (interface{}, *RPCError) {
	v := strings.TrimSpace(input.Value)
	class, err := predictor.Classify(v)
	if err != nil {
		return nil, &RPCError{Code: -32602, Message: fmt.Sprintf("invalid value: %v", err)}
	}

	// residues cannot fail once the value classified
	mod12, _ := bigdec.Mod(v, 12)
	mod7, _ := bigdec.Mod(v, 7)

	text := fmt.Sprintf("Value %s:\n", v)
	text += fmt.Sprintf("  Residue Set: %s\n", class)
	text += fmt.Sprintf("  mod 12:      %d\n", mod12)
	text += fmt.Sprintf("  mod 7:       %d\n", mod7)

	return textResult(text), nil
}

// handleSequenceLast handles sequence inspection requests.
func (s *Server) handleSequenceLast() (interface{}, *RPCError) {
	last, err := s.store.Load()
	if err != nil {
		return nil, &RPCError{Code: -32000, Message: fmt.Sprintf("failed to read sequence: %v", err)}
	}
	if last == "" {
		return textResult(fmt.Sprintf("Sequence file %s is empty.", s.store.Path())), nil
	}

	count, err := s.store.Count()
	if err != nil {
		return nil, &RPCError{Code: -32000, Message: fmt.Sprintf("failed to read sequence: %v", err)}
	}

	text := fmt.Sprintf("Last stored value: %s (%d digits)\n", last, len(last))
	text += fmt.Sprintf("Stored values:     %d\n", count)
	text += fmt.Sprintf("Sequence file:     %s\n", s.store.Path())

	return textResult(text), nil
}
