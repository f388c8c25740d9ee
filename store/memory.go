// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	mcp "github.com/go-mcp/bookmarks"
)

// MemoryStore is an in-memory implementation of mcp.BookmarkStore.
// Bookmark data is lost when the server process stops.
// All operations are thread-safe using sync.RWMutex.
type MemoryStore struct {
	mu        sync.RWMutex
	bookmarks map[int]*mcp.Bookmark
	nextID    int
	now       func() time.Time
}

var _ mcp.BookmarkStore = (*MemoryStore)(nil)

// MemoryOption configures a [MemoryStore].
type MemoryOption func(*MemoryStore)

// WithBookmarks seeds the store. Ids are kept; new bookmarks are numbered
// after the highest seeded id.
func WithBookmarks(bookmarks ...*mcp.Bookmark) MemoryOption {
	return func(s *MemoryStore) {
		for _, b := range bookmarks {
			s.bookmarks[b.ID] = b.Clone()
			s.nextID = max(s.nextID, b.ID+1)
		}
	}
}

// WithMemoryClock sets the time source for creation and read timestamps.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		bookmarks: make(map[int]*mcp.Bookmark),
		nextID:    1,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GetAll returns every bookmark ordered by id.
func (s *MemoryStore) GetAll(ctx context.Context) ([]*mcp.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewStoreError("get all", 0, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.bookmarks))
	for id := range s.bookmarks {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	bookmarks := make([]*mcp.Bookmark, 0, len(ids))
	for _, id := range ids {
		bookmarks = append(bookmarks, s.bookmarks[id].Clone())
	}
	return bookmarks, nil
}

// GetByID returns the bookmark with the given id.
func (s *MemoryStore) GetByID(ctx context.Context, id int) (*mcp.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewStoreError("get", id, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return nil, mcp.BookmarkNotFoundError{ID: id}
	}
	return b.Clone(), nil
}

// Add stores a copy of bookmark under a fresh id.
func (s *MemoryStore) Add(ctx context.Context, bookmark *mcp.Bookmark) (*mcp.Bookmark, error) {
	if bookmark == nil {
		return nil, errors.New("bookmark cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, NewStoreError("add", 0, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := bookmark.Clone()
	b.ID = s.nextID
	s.nextID++
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.now()
	}
	s.bookmarks[b.ID] = b

	return b.Clone(), nil
}

// Update replaces the url and title of an existing bookmark.
func (s *MemoryStore) Update(ctx context.Context, id int, bookmark *mcp.Bookmark) (*mcp.Bookmark, error) {
	if bookmark == nil {
		return nil, errors.New("bookmark cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, NewStoreError("update", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return nil, mcp.BookmarkNotFoundError{ID: id}
	}
	b.URL = bookmark.URL
	b.Title = bookmark.Title

	return b.Clone(), nil
}

// MarkRead stamps the bookmark's read time with the current time.
func (s *MemoryStore) MarkRead(ctx context.Context, id int) (*mcp.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewStoreError("mark read", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return nil, mcp.BookmarkNotFoundError{ID: id}
	}
	now := s.now()
	b.ReadAt = &now

	return b.Clone(), nil
}

// Delete removes the bookmark with the given id.
func (s *MemoryStore) Delete(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, NewStoreError("delete", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarks[id]; !ok {
		return false, nil
	}
	delete(s.bookmarks, id)
	return true, nil
}
