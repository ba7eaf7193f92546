// Package history persists the calculation log of a front-end session as a
// JSON file. The filesystem is an afero.Fs so tests can run in memory.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
)

// maxEntries bounds the stored history; the oldest entries are dropped first.
const maxEntries = 100

// Entry is one successful evaluation.
type Entry struct {
	Expr   string    `json:"expr"`
	Result float64   `json:"result"`
	Time   time.Time `json:"time"`
}

// Store keeps entries in memory and persists them on request.
type Store struct {
	fs      afero.Fs
	path    string
	entries []Entry
}

// Open loads the history at path, starting empty if the file does not exist.
func Open(fs afero.Fs, path string) (*Store, error) {
	s := &Store{fs: fs, path: path}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("corrupt history file %s: %w", path, err)
	}
	return s, nil
}

// Add appends an entry, dropping the oldest ones beyond the size bound.
func (s *Store) Add(e Entry) {
	s.entries = append(s.entries, e)
	if n := len(s.entries) - maxEntries; n > 0 {
		s.entries = append(s.entries[:0], s.entries[n:]...)
	}
}

// Entries returns the stored entries, oldest first.
func (s *Store) Entries() []Entry {
	return s.entries
}

// Persist writes the history to the backing file.
func (s *Store) Persist() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, data, 0o600)
}

// Clear drops all entries and removes the backing file.
func (s *Store) Clear() error {
	s.entries = nil
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
