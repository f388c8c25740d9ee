// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgconn"

	mcp "github.com/go-mcp/bookmarks"
)

func newTestDatabaseStore(t *testing.T) *DatabaseStore {
	t.Helper()

	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "bookmarks.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	s, err := NewDatabaseStore(DatabaseStoreConfig{
		DB:          db,
		CreateTable: true,
		Seed:        DefaultBookmarks(),
	})
	if err != nil {
		t.Fatalf("NewDatabaseStore() error = %v", err)
	}
	s.now = func() time.Time { return fixedNow }

	ctx := context.Background()
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(ctx); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func TestNewDatabaseStoreNilDB(t *testing.T) {
	if _, err := NewDatabaseStore(DatabaseStoreConfig{}); err == nil {
		t.Fatal("NewDatabaseStore() with nil DB should fail")
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open("mysql", "dsn"); err == nil {
		t.Fatal("Open() with unsupported driver should fail")
	}
}

func TestDatabaseStoreSeedsOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestDatabaseStore(t)

	// A second Initialize must not duplicate the seed.
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	got, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if diff := cmp.Diff(DefaultBookmarks(), got); diff != "" {
		t.Errorf("GetAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestDatabaseStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestDatabaseStore(t)

	added, err := s.Add(ctx, &mcp.Bookmark{URL: "https://go.dev", Title: "Go"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	want := &mcp.Bookmark{ID: 4, URL: "https://go.dev", Title: "Go", CreatedAt: fixedNow}
	if diff := cmp.Diff(want, added); diff != "" {
		t.Errorf("Add() mismatch (-want +got):\n%s", diff)
	}

	updated, err := s.Update(ctx, added.ID, &mcp.Bookmark{URL: "https://go.dev/doc", Title: "Go docs"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	want.URL, want.Title = "https://go.dev/doc", "Go docs"
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Errorf("Update() mismatch (-want +got):\n%s", diff)
	}

	read, err := s.MarkRead(ctx, added.ID)
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	want.ReadAt = &fixedNow
	if diff := cmp.Diff(want, read); diff != "" {
		t.Errorf("MarkRead() mismatch (-want +got):\n%s", diff)
	}

	got, err := s.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("GetByID() mismatch (-want +got):\n%s", diff)
	}

	ok, err := s.Delete(ctx, added.ID)
	if err != nil || !ok {
		t.Fatalf("Delete() = %v, %v; want true, nil", ok, err)
	}
	ok, err = s.Delete(ctx, added.ID)
	if err != nil || ok {
		t.Fatalf("second Delete() = %v, %v; want false, nil", ok, err)
	}
}

func TestDatabaseStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestDatabaseStore(t)

	tests := map[string]func() error{
		"get": func() error {
			_, err := s.GetByID(ctx, 99)
			return err
		},
		"update": func() error {
			_, err := s.Update(ctx, 99, &mcp.Bookmark{URL: "x"})
			return err
		},
		"mark read": func() error {
			_, err := s.MarkRead(ctx, 99)
			return err
		},
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			err := fn()
			if !errors.Is(err, mcp.ErrBookmarkNotFound) {
				t.Errorf("error = %v, want ErrBookmarkNotFound", err)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	tests := map[string]struct {
		host, user, password, dbname string
	}{
		"plain":            {host: "db", user: "app", password: "secret", dbname: "bookmarks"},
		"with port":        {host: "db:5433", user: "app", password: "secret", dbname: "bookmarks"},
		"spaces and quote": {host: "db", user: "app user", password: "it's a secret", dbname: "bookmarks"},
		"url delimiters":   {host: "db", user: "app", password: "p@ss:w/rd?#%", dbname: "book marks"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dsn := PostgresDSN(tt.host, tt.user, tt.password, tt.dbname)

			cfg, err := pgconn.ParseConfig(dsn)
			if err != nil {
				t.Fatalf("pgconn.ParseConfig(%q) error = %v", dsn, err)
			}
			if cfg.User != tt.user {
				t.Errorf("User = %q, want %q", cfg.User, tt.user)
			}
			if cfg.Password != tt.password {
				t.Errorf("Password = %q, want %q", cfg.Password, tt.password)
			}
			if cfg.Database != tt.dbname {
				t.Errorf("Database = %q, want %q", cfg.Database, tt.dbname)
			}
			if cfg.Host != "db" {
				t.Errorf("Host = %q, want db", cfg.Host)
			}
		})
	}
}

func TestPostgresDSNWithoutPassword(t *testing.T) {
	dsn := PostgresDSN("db", "app", "", "bookmarks")

	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("url.Parse(%q) error = %v", dsn, err)
	}
	if _, set := u.User.Password(); set {
		t.Errorf("PostgresDSN() = %q, want no password", dsn)
	}
	if got := u.User.Username(); got != "app" {
		t.Errorf("Username() = %q, want app", got)
	}
	if got := u.Query().Get("sslmode"); got != "disable" {
		t.Errorf("sslmode = %q, want disable", got)
	}
}
