package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"pcpart-scraper/models"
)

// LoadRecords reads a persisted record file. A file holding a single record
// object instead of an array still loads, as a one-element set.
func LoadRecords(path string) ([]*models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	var records []*models.Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var single models.Record
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return []*models.Record{&single}, nil
}

// FindCategoryFiles lists the persisted datasets for one catalog prefix,
// newest first by modification time. Callers usually take the head: the
// newest file is the current snapshot, the rest are history.
func FindCategoryFiles(dir, prefix string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"_*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", dir, err)
	}

	sort.Slice(matches, func(i, j int) bool {
		return modTime(matches[i]).After(modTime(matches[j]))
	})
	return matches, nil
}

// LatestCategoryFile resolves the newest dataset for a prefix, or "" when
// none exists.
func LatestCategoryFile(dir, prefix string) (string, error) {
	files, err := FindCategoryFiles(dir, prefix)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}
	return files[0], nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
