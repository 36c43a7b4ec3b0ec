// Package session ties one prediction run together: the current value, the
// step counter, and the persistence of every accepted step.
package session

import (
	"fmt"

	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/bigdec"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/predictor"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/internal/sequence"
	"github.com/ras2045/LGO-Deterministic-Predictor-v26/pkg/schema"
)

// Session is a single run of the predictor from a chosen starting value.
// It advances one step at a time; a step only counts once it is persisted.
type Session struct {
	pred    *predictor.Predictor
	store   *sequence.Store
	start   string
	current string
	steps   int64
}

// New validates start and returns a session positioned on it.
func New(pred *predictor.Predictor, store *sequence.Store, start string) (*Session, error) {
	if err := bigdec.Check(start); err != nil {
		return nil, err
	}
	return &Session{pred: pred, store: store, start: start, current: start}, nil
}

// Current returns the value the next step will predict from.
func (s *Session) Current() string {
	return s.current
}

// Steps returns the number of persisted steps so far.
func (s *Session) Steps() int64 {
	return s.steps
}

// Summary reports the run so far.
func (s *Session) Summary() schema.RunSummary {
	return schema.RunSummary{
		Start:        s.start,
		Steps:        s.steps,
		Final:        s.current,
		SequenceFile: s.store.Path(),
	}
}

// Advance predicts from the current value, appends the candidate to the
// store, and moves the session onto it. If persistence fails the session
// does not move and the step is not counted.
func (s *Session) Advance() (predictor.Result, error) {
	res, err := s.pred.Predict(s.current)
	if err != nil {
		return predictor.Result{}, err
	}
	if err := s.store.Append(res.Next); err != nil {
		return predictor.Result{}, fmt.Errorf("persisting step: %w", err)
	}
	s.current = res.Next
	s.steps++
	return res, nil
}
