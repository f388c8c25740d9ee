// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"time"

	mcp "github.com/go-mcp/bookmarks"
)

// BookmarkModel is the GORM model of the bookmarks table.
type BookmarkModel struct {
	ID         int        `gorm:"column:id;primaryKey;autoIncrement"`
	Title      string     `gorm:"column:title;not null"`
	URL        string     `gorm:"column:url;not null"`
	CreateDate time.Time  `gorm:"column:create_date;not null"`
	ReadDate   *time.Time `gorm:"column:read_date"`
}

// TableName returns the table name for GORM.
func (BookmarkModel) TableName() string {
	return "bookmarks"
}

// NewBookmarkModel creates a BookmarkModel from a bookmark.
func NewBookmarkModel(b *mcp.Bookmark) *BookmarkModel {
	m := &BookmarkModel{
		ID:         b.ID,
		Title:      b.Title,
		URL:        b.URL,
		CreateDate: b.CreatedAt.UTC(),
	}
	if b.ReadAt != nil {
		readAt := b.ReadAt.UTC()
		m.ReadDate = &readAt
	}
	return m
}

// ToBookmark converts the model back to a bookmark.
func (m *BookmarkModel) ToBookmark() *mcp.Bookmark {
	b := &mcp.Bookmark{
		ID:        m.ID,
		URL:       m.URL,
		Title:     m.Title,
		CreatedAt: m.CreateDate.UTC(),
	}
	if m.ReadDate != nil {
		readAt := m.ReadDate.UTC()
		b.ReadAt = &readAt
	}
	return b
}
