package store

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/ZaguanLabs/langswap"
)

// fileFormat is the JSON structure written to disk.
type fileFormat struct {
	Version   string            `json:"version"`
	UpdatedAt string            `json:"updated_at"`
	Entries   map[string]string `json:"entries"`
}

// FileStore persists language choices in a single JSON file. A
// missing or unreadable file degrades to an empty store; the CLI uses
// this as the "browser storage" of a local site preview.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file store at path. The file is created on
// first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads a value from the file. Missing or corrupt files report
// absent, never an error.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.read()
	val, ok := entries[key]
	return val, ok
}

// Set writes a value, rewriting the whole file.
func (s *FileStore) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.read()
	entries[key] = value

	out := fileFormat{
		Version:   "1",
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:   entries,
	}

	f, err := os.Create(s.path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return &langswap.StoreError{Message: "creating " + s.path, Cause: err}
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return &langswap.StoreError{Message: "encoding " + s.path, Cause: err}
	}
	return nil
}

// read loads the entry map, treating any failure as an empty store.
func (s *FileStore) read() map[string]string {
	data, err := os.ReadFile(s.path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return make(map[string]string)
	}

	var in fileFormat
	if err := json.Unmarshal(data, &in); err != nil || in.Entries == nil {
		return make(map[string]string)
	}
	return in.Entries
}

// Verify FileStore implements Store
var _ Store = (*FileStore)(nil)
