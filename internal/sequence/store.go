// Package sequence persists predicted values, one per line, in a plain text
// file. A missing file is an empty store, never an error.
package sequence

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ErrUnavailable is wrapped around real I/O failures of the store file, as
// opposed to the file simply not existing yet.
var ErrUnavailable = fmt.Errorf("sequence store unavailable")

// Store appends and reads sequence values at a fixed file path.
type Store struct {
	path string
}

// New returns a Store over path. The file is created lazily on the first
// Append.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// lines returns all non-empty lines in file order. Absent file means no
// lines.
func (s *Store) lines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	// values grow without bound, so allow lines well past the default cap
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, nil
}

// Load returns the last stored value, or "" when the store is empty or the
// file does not exist. Load never modifies the file.
func (s *Store) Load() (string, error) {
	all, err := s.lines()
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "", nil
	}
	return all[len(all)-1], nil
}

// Tail returns up to n most recent values, oldest first.
func (s *Store) Tail(n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	all, err := s.lines()
	if err != nil {
		return nil, err
	}
	if n < len(all) {
		all = all[len(all)-n:]
	}
	return all, nil
}

// Count returns the number of stored values.
func (s *Store) Count() (int, error) {
	all, err := s.lines()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// Append writes v as a new line and syncs the file, so an accepted step
// survives a crash.
func (s *Store) Append(v string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := f.WriteString(v + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Reset truncates the store to empty, creating the file if needed.
func (s *Store) Reset() error {
	if err := os.WriteFile(s.path, nil, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
