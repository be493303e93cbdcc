package storage

import "pcpart-scraper/models"

// RecordWriter is the interface any storage backend must satisfy.
type RecordWriter interface {
	Write(records []*models.Record) error
	Close() error
}
