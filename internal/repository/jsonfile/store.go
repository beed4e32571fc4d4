// Package jsonfile persists the portfolio and profile documents as flat
// JSON files. Every mutation is a full read-modify-write of the whole
// document under the store mutex, which makes the single-writer assumption
// an enforced invariant instead of an accident of deployment.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// store is the dumb persistence primitive shared by both repositories.
// It performs no validation; malformed or missing files surface as errors
// for the caller to map.
type store struct {
	path string
	mu   sync.Mutex
}

// read deserializes the whole document into v. Callers must hold mu.
func (s *store) read(v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	return nil
}

// write serializes v and rewrites the document wholesale. Callers must
// hold mu.
func (s *store) write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// ensure creates the backing file with the given initial document if it
// does not exist yet. Called once at startup so that first runs do not
// need a pre-seeded data directory.
func (s *store) ensure(initial any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return s.write(initial)
}
