package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryInsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	id, err := s.Insert(ctx, Document{"email": "ana@x.com", "name": "Ana"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == "" {
		t.Fatal("insert returned empty id")
	}

	doc, err := s.FindOne(ctx, Document{"email": "ana@x.com"})
	if err != nil {
		t.Fatalf("find one: %v", err)
	}
	if doc["name"] != "Ana" {
		t.Fatalf("name = %v, want Ana", doc["name"])
	}

	if _, err := s.FindOne(ctx, Document{"email": "nobody@x.com"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryUniqueKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemory("email")

	if _, err := s.Insert(ctx, Document{"email": "ana@x.com"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := s.Insert(ctx, Document{"email": "ana@x.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
	// A different value is fine.
	if _, err := s.Insert(ctx, Document{"email": "bob@x.com"}); err != nil {
		t.Fatalf("insert second: %v", err)
	}
}

func TestMemoryFindSkipLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	for i := 0; i < 7; i++ {
		if _, err := s.Insert(ctx, Document{"n": i}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	docs, err := s.Find(ctx, Document{}, 5, 5)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
	if docs[0]["n"] != 5 {
		t.Fatalf("first doc n = %v, want 5", docs[0]["n"])
	}

	docs, err = s.Find(ctx, Document{}, 100, 5)
	if err != nil {
		t.Fatalf("find past end: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("len = %d, want 0", len(docs))
	}
	if docs == nil {
		t.Fatal("empty result must be a non-nil slice")
	}
}

func TestMemorySetFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	if _, err := s.Insert(ctx, Document{"email": "ana@x.com", "isAdmin": false}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	matched, err := s.SetFields(ctx, Document{"email": "ana@x.com"}, Document{"isAdmin": true})
	if err != nil {
		t.Fatalf("set fields: %v", err)
	}
	if matched != 1 {
		t.Fatalf("matched = %d, want 1", matched)
	}
	doc, _ := s.FindOne(ctx, Document{"email": "ana@x.com"})
	if doc["isAdmin"] != true {
		t.Fatalf("isAdmin = %v, want true", doc["isAdmin"])
	}

	// Upsert-free: no match means no write and no new document.
	matched, err = s.SetFields(ctx, Document{"email": "nobody@x.com"}, Document{"isAdmin": true})
	if err != nil {
		t.Fatalf("set fields on missing: %v", err)
	}
	if matched != 0 {
		t.Fatalf("matched = %d, want 0", matched)
	}
	if n, _ := s.Count(ctx, Document{}); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestMemoryFindOneReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	if _, err := s.Insert(ctx, Document{"email": "ana@x.com", "name": "Ana"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	doc, _ := s.FindOne(ctx, Document{"email": "ana@x.com"})
	doc["name"] = "mutated"

	again, _ := s.FindOne(ctx, Document{"email": "ana@x.com"})
	if again["name"] != "Ana" {
		t.Fatalf("stored doc was mutated through a returned copy: %v", again["name"])
	}
}
