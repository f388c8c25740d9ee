// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcp "github.com/go-mcp/bookmarks"
	"github.com/go-mcp/bookmarks/auth"
	"github.com/go-mcp/bookmarks/internal/config"
	"github.com/go-mcp/bookmarks/internal/logging"
	"github.com/go-mcp/bookmarks/server"
	"github.com/go-mcp/bookmarks/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Run the MCP server until interrupted.

The bookmark store is selected by store.driver: memory (the default), sqlite
or postgres. Setting auth.jwt_secret requires a bearer token on every request
except the health check.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.HTTP.Addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg, cmd.ErrOrStderr())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides http.addr")
}

func runServer(ctx context.Context, cfg *config.Config, logOut io.Writer) error {
	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	bookmarks, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.InfoContext(ctx, "bookmark store ready", "driver", cfg.Store.Driver, "seeded", cfg.Store.Seed)

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithTaskEvents(cfg.Stream.TaskEvents),
	}
	if cfg.Auth.JWTSecret != "" {
		authenticator, err := auth.NewJWTAuthenticator([]byte(cfg.Auth.JWTSecret))
		if err != nil {
			return err
		}
		opts = append(opts, server.WithAuthenticator(authenticator))
		logger.InfoContext(ctx, "bearer token authentication enabled")
	}

	srv, err := server.New(bookmarks, opts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.ListenAndServe(ctx, cfg.HTTP.Addr)
}

// openStore builds the bookmark store selected by cfg. The returned func
// releases it.
func openStore(ctx context.Context, cfg *config.Config) (mcp.BookmarkStore, func(), error) {
	var seed []*mcp.Bookmark
	if cfg.Store.Seed {
		seed = store.DefaultBookmarks()
	}

	if cfg.Store.Driver == "memory" {
		return store.NewMemoryStore(store.WithBookmarks(seed...)), func() {}, nil
	}

	dsn := cfg.Store.DSN
	if dsn == "" && cfg.Store.Driver == store.DriverPostgres {
		dsn = store.PostgresDSN(cfg.Postgres.Host, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.DB)
	}

	db, err := store.Open(cfg.Store.Driver, dsn)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.NewDatabaseStore(store.DatabaseStoreConfig{
		DB:          db,
		CreateTable: true,
		Seed:        seed,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := s.Initialize(ctx); err != nil {
		s.Close(ctx)
		return nil, nil, err
	}

	closeFn := func() {
		if err := s.Close(context.WithoutCancel(ctx)); err != nil {
			slog.Error("failed to close bookmark store", "error", err)
		}
	}
	return s, closeFn, nil
}
