// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package store provides implementations of [mcp.BookmarkStore].
package store

import (
	"fmt"
	"time"

	mcp "github.com/go-mcp/bookmarks"
)

// StoreError represents an error from a bookmark store.
type StoreError struct {
	Operation  string
	BookmarkID int
	Err        error
}

// Error returns the error message.
func (e StoreError) Error() string {
	if e.BookmarkID == 0 {
		return fmt.Sprintf("bookmark store %s operation failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("bookmark store %s operation failed for bookmark %d: %v", e.Operation, e.BookmarkID, e.Err)
}

// Unwrap returns the underlying error.
func (e StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(operation string, id int, err error) StoreError {
	return StoreError{
		Operation:  operation,
		BookmarkID: id,
		Err:        err,
	}
}

// DefaultBookmarks returns the bookmarks a fresh store is seeded with.
func DefaultBookmarks() []*mcp.Bookmark {
	read := time.Date(2023, 2, 12, 0, 0, 0, 0, time.UTC)
	return []*mcp.Bookmark{
		{
			ID:        1,
			URL:       "https://reactjs.org",
			Title:     "React Documentation",
			CreatedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			URL:       "https://typescript-lang.org",
			Title:     "TypeScript Documentation",
			CreatedAt: time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
			ReadAt:    &read,
		},
		{
			ID:        3,
			URL:       "https://developer.mozilla.org",
			Title:     "MDN Web Docs",
			CreatedAt: time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
