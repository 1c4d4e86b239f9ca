package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// Memory is a map-backed Store used in tests and local development. It
// mirrors the Mongo semantics the gateway relies on: insertion-ordered
// results, equality filters, matched-count on updates, and unique-key
// rejection on insert.
type Memory struct {
	mu     sync.Mutex
	docs   []Document
	unique []string
	nextID int
}

// NewMemory returns an empty Memory store. Any uniqueKeys behave like unique
// indexes: inserting a second document with the same value fails with
// ErrDuplicate.
func NewMemory(uniqueKeys ...string) *Memory {
	return &Memory{unique: uniqueKeys}
}

func (s *Memory) Insert(_ context.Context, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range s.unique {
		v, ok := doc[key]
		if !ok {
			continue
		}
		for _, d := range s.docs {
			if reflect.DeepEqual(d[key], v) {
				return "", ErrDuplicate
			}
		}
	}

	s.nextID++
	id := fmt.Sprintf("%024x", s.nextID)

	stored := Document{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	s.docs = append(s.docs, stored)
	return id, nil
}

func (s *Memory) FindOne(_ context.Context, filter Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if matches(d, filter) {
			return clone(d), nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) Find(_ context.Context, filter Document, skip, limit int64) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Document, 0)
	var seen int64
	for _, d := range s.docs {
		if !matches(d, filter) {
			continue
		}
		seen++
		if seen <= skip {
			continue
		}
		out = append(out, clone(d))
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (s *Memory) Count(_ context.Context, filter Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, d := range s.docs {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

func (s *Memory) SetFields(_ context.Context, filter, fields Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if matches(d, filter) {
			for k, v := range fields {
				d[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func matches(doc, filter Document) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func clone(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
