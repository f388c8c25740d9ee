// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"time"
)

// Bookmark is a saved link.
type Bookmark struct {
	ID        int        `json:"id"`
	URL       string     `json:"link"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_date"`
}

// Clone returns a deep copy of b.
func (b *Bookmark) Clone() *Bookmark {
	if b == nil {
		return nil
	}
	c := *b
	if b.ReadAt != nil {
		readAt := *b.ReadAt
		c.ReadAt = &readAt
	}
	return &c
}

// BookmarkStore is the persistence contract the dispatcher drives.
//
// Lookups that miss return an error matching [ErrBookmarkNotFound], except
// Delete which reports a miss as false.
type BookmarkStore interface {
	// GetAll returns every stored bookmark.
	GetAll(ctx context.Context) ([]*Bookmark, error)

	// GetByID returns the bookmark with the given id.
	GetByID(ctx context.Context, id int) (*Bookmark, error)

	// Add stores a new bookmark and returns it with its assigned id and creation time.
	Add(ctx context.Context, bookmark *Bookmark) (*Bookmark, error)

	// Update replaces the url and title of the bookmark with the given id.
	Update(ctx context.Context, id int, bookmark *Bookmark) (*Bookmark, error)

	// MarkRead stamps the read time of the bookmark with the given id.
	MarkRead(ctx context.Context, id int) (*Bookmark, error)

	// Delete removes the bookmark with the given id. It reports false if no
	// such bookmark existed.
	Delete(ctx context.Context, id int) (bool, error)
}
