package store

import (
	"context"
	"errors"
)

// Package store wraps one document collection behind a small interface so
// handlers stay independent of the Mongo driver. Documents are loosely typed
// on purpose: apart from the handful of fields the gateway inspects, the
// stored shape is whatever the client sent.

// Document is a schemaless record as stored in a collection.
type Document = map[string]any

var (
	// ErrNotFound reports that no document matched the filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate reports a unique-key violation on insert.
	ErrDuplicate = errors.New("duplicate document")
)

// Store is the set of single-shot operations the gateway performs against a
// collection. Every call maps to exactly one database operation.
type Store interface {
	// Insert stores doc and returns the new document's identifier.
	Insert(ctx context.Context, doc Document) (string, error)
	// FindOne returns the first document matching filter, or ErrNotFound.
	FindOne(ctx context.Context, filter Document) (Document, error)
	// Find returns documents matching filter. A zero limit means no limit;
	// skip skips that many matches first. An empty result is a non-nil
	// empty slice.
	Find(ctx context.Context, filter Document, skip, limit int64) ([]Document, error)
	// Count returns the number of documents matching filter.
	Count(ctx context.Context, filter Document) (int64, error)
	// SetFields applies a set-fields update to the first document matching
	// filter and returns how many documents matched (0 or 1). It never
	// inserts.
	SetFields(ctx context.Context, filter, fields Document) (int64, error)
}
