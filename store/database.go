// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	mcp "github.com/go-mcp/bookmarks"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// PostgresDSN builds a postgres:// connection URL. Credentials and the
// database name are escaped, so they may contain any character.
func PostgresDSN(host, user, password, dbname string) string {
	u := &url.URL{
		Scheme:   "postgres",
		Host:     host,
		Path:     "/" + dbname,
		RawQuery: url.Values{"sslmode": {"disable"}}.Encode(),
	}
	switch {
	case password != "":
		u.User = url.UserPassword(user, password)
	case user != "":
		u.User = url.User(user)
	}
	return u.String()
}

// Open connects to the database named by driver and dsn.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return db, nil
}

// DatabaseStore is a database implementation of mcp.BookmarkStore using GORM.
type DatabaseStore struct {
	db          *gorm.DB
	createTable bool
	seed        []*mcp.Bookmark
	now         func() time.Time
}

var _ mcp.BookmarkStore = (*DatabaseStore)(nil)

// DatabaseStoreConfig holds configuration for DatabaseStore.
type DatabaseStoreConfig struct {
	DB          *gorm.DB
	CreateTable bool            // Whether to migrate the bookmarks table on Initialize
	Seed        []*mcp.Bookmark // Inserted on Initialize when the table is empty
}

// NewDatabaseStore creates a new DatabaseStore.
func NewDatabaseStore(config DatabaseStoreConfig) (*DatabaseStore, error) {
	if config.DB == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	return &DatabaseStore{
		db:          config.DB,
		createTable: config.CreateTable,
		seed:        config.Seed,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

// Initialize prepares the database for use.
func (s *DatabaseStore) Initialize(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	if s.createTable {
		if err := db.AutoMigrate(&BookmarkModel{}); err != nil {
			return NewStoreError("initialize", 0, fmt.Errorf("failed to migrate bookmarks table: %w", err))
		}
	}

	if len(s.seed) == 0 {
		return nil
	}

	var count int64
	if err := db.Model(&BookmarkModel{}).Count(&count).Error; err != nil {
		return NewStoreError("initialize", 0, err)
	}
	if count > 0 {
		return nil
	}

	// Ids are left to the database so its sequence stays ahead of the seed.
	models := make([]*BookmarkModel, len(s.seed))
	for i, b := range s.seed {
		models[i] = NewBookmarkModel(b)
		models[i].ID = 0
	}
	if err := db.Create(&models).Error; err != nil {
		return NewStoreError("initialize", 0, fmt.Errorf("failed to seed bookmarks: %w", err))
	}
	return nil
}

// Close cleanly shuts down the database connection.
func (s *DatabaseStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return NewStoreError("close", 0, err)
	}
	return sqlDB.Close()
}

// GetAll returns every bookmark ordered by id.
func (s *DatabaseStore) GetAll(ctx context.Context) ([]*mcp.Bookmark, error) {
	var models []BookmarkModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, NewStoreError("get all", 0, err)
	}

	bookmarks := make([]*mcp.Bookmark, len(models))
	for i := range models {
		bookmarks[i] = models[i].ToBookmark()
	}
	return bookmarks, nil
}

// GetByID returns the bookmark with the given id.
func (s *DatabaseStore) GetByID(ctx context.Context, id int) (*mcp.Bookmark, error) {
	m, err := s.find(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	return m.ToBookmark(), nil
}

// Add inserts bookmark and returns it with the id assigned by the database.
func (s *DatabaseStore) Add(ctx context.Context, bookmark *mcp.Bookmark) (*mcp.Bookmark, error) {
	if bookmark == nil {
		return nil, errors.New("bookmark cannot be nil")
	}

	b := bookmark.Clone()
	b.ID = 0
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.now()
	}

	m := NewBookmarkModel(b)
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, NewStoreError("add", 0, err)
	}
	return m.ToBookmark(), nil
}

// Update replaces the url and title of an existing bookmark.
func (s *DatabaseStore) Update(ctx context.Context, id int, bookmark *mcp.Bookmark) (*mcp.Bookmark, error) {
	if bookmark == nil {
		return nil, errors.New("bookmark cannot be nil")
	}

	m, err := s.find(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(m).Updates(map[string]any{
		"url":   bookmark.URL,
		"title": bookmark.Title,
	}).Error
	if err != nil {
		return nil, NewStoreError("update", id, err)
	}

	m.URL = bookmark.URL
	m.Title = bookmark.Title
	return m.ToBookmark(), nil
}

// MarkRead stamps the bookmark's read time with the current time.
func (s *DatabaseStore) MarkRead(ctx context.Context, id int) (*mcp.Bookmark, error) {
	m, err := s.find(ctx, "mark read", id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.db.WithContext(ctx).Model(m).Update("read_date", now).Error; err != nil {
		return nil, NewStoreError("mark read", id, err)
	}

	m.ReadDate = &now
	return m.ToBookmark(), nil
}

// Delete removes the bookmark with the given id.
func (s *DatabaseStore) Delete(ctx context.Context, id int) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&BookmarkModel{}, id)
	if result.Error != nil {
		return false, NewStoreError("delete", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *DatabaseStore) find(ctx context.Context, op string, id int) (*BookmarkModel, error) {
	var m BookmarkModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mcp.BookmarkNotFoundError{ID: id}
		}
		return nil, NewStoreError(op, id, err)
	}
	return &m, nil
}
