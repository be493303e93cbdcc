package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"pcpart-scraper/models"
)

// csvColumns is the fixed column set of persisted datasets. Attributes
// outside it are JSON-only.
var csvColumns = []string{
	"name", "price", "rating", "compatibility", "url", "page", "row_index", "scraped_at",
}

// CSVWriter writes records to a CSV file. It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(csvColumns); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one row per record.
func (c *CSVWriter) Write(records []*models.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range records {
		row := []string{
			rec.Name,
			rec.Price,
			rec.Attributes["rating"],
			rec.Attributes["compatibility"],
			rec.URL,
			strconv.Itoa(rec.SourcePage),
			strconv.Itoa(rec.RowIndex),
			rec.CapturedAt.Format(time.RFC3339),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
