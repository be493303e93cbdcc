package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pcpart-scraper/models"
)

// JSONWriter persists records as a single newline-free UTF-8 JSON array,
// the shape the query pipeline reads back.
type JSONWriter struct {
	mu   sync.Mutex
	path string
}

// NewJSONWriter prepares a writer for the given path. Intermediate
// directories are created automatically.
func NewJSONWriter(path string) (*JSONWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("json: create output dir: %w", err)
	}
	return &JSONWriter{path: path}, nil
}

// Write serializes all records in one shot, replacing any previous content.
// An empty set still writes a valid empty array.
func (w *JSONWriter) Write(records []*models.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if records == nil {
		records = []*models.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("json: encode records: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("json: write %q: %w", w.path, err)
	}
	return nil
}

// Close is a no-op; Write leaves nothing open.
func (w *JSONWriter) Close() error { return nil }
