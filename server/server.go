// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package server assembles the bookmarks MCP server: the task registry, the
// action dispatcher, the event broadcaster and the HTTP handler in front of
// them.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	mcp "github.com/go-mcp/bookmarks"
	"github.com/go-mcp/bookmarks/auth"
	"github.com/go-mcp/bookmarks/internal/telemetry"
	"github.com/go-mcp/bookmarks/server/dispatch"
	"github.com/go-mcp/bookmarks/server/event"
	"github.com/go-mcp/bookmarks/server/handler"
	"github.com/go-mcp/bookmarks/server/task"
)

// shutdownTimeout bounds how long ListenAndServe waits for in-flight requests.
const shutdownTimeout = 10 * time.Second

// Server implements the MCP task orchestration server.
//
// The task registry is owned by the Server: it is created by New and its
// contents are discarded with the Server.
type Server struct {
	registry   *task.Registry
	dispatcher *dispatch.Dispatcher
	stream     *event.Broadcaster
	handler    http.Handler

	logger        *slog.Logger
	tracer        trace.Tracer
	meter         metric.Meter
	authenticator auth.Authenticator
	taskEvents    bool
	registryOpts  []task.Option
}

// New creates a Server dispatching actions against bookmarks.
func New(bookmarks mcp.BookmarkStore, opts ...Option) (*Server, error) {
	if bookmarks == nil {
		return nil, fmt.Errorf("bookmark store is required")
	}

	s := &Server{
		logger: slog.Default(),
		tracer: otel.GetTracerProvider().Tracer(telemetry.ScopeName),
		meter:  otel.GetMeterProvider().Meter(telemetry.ScopeName),
	}
	for _, o := range opts {
		o(s)
	}

	s.stream = event.NewBroadcaster(event.WithLogger(s.logger))

	registryOpts := s.registryOpts
	if s.taskEvents {
		registryOpts = append(registryOpts, task.WithObserver(s.publishTask))
	}
	s.registry = task.NewRegistry(registryOpts...)

	s.dispatcher = dispatch.New(bookmarks, s.registry, s.registry,
		dispatch.WithLogger(s.logger),
		dispatch.WithTracer(s.tracer),
		dispatch.WithMeter(s.meter),
	)

	h, err := handler.New(handler.Config{
		Tasks:      s.registry,
		Artifacts:  s.registry,
		Dispatcher: s.dispatcher,
		Stream:     s.stream,
		Logger:     s.logger,
	})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	h.Register(mux)
	s.handler = handler.Chain(mux,
		handler.Logging(s.logger),
		handler.Tracing(s.tracer),
		handler.Authenticate(s.authenticator, s.logger),
	)

	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Registry returns the task registry owned by the server.
func (s *Server) Registry() *task.Registry {
	return s.registry
}

// Broadcaster returns the event broadcaster owned by the server.
func (s *Server) Broadcaster() *event.Broadcaster {
	return s.stream
}

// ListenAndServe serves on addr until ctx is done, then closes open event
// streams and shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer.RegisterOnShutdown(s.stream.Shutdown)

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	s.stream.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) publishTask(ctx context.Context, t *mcp.Task) {
	n := s.stream.Publish(event.TaskResolved(t))
	s.logger.DebugContext(ctx, "published task event", "task_id", t.ID, "status", t.Status, "streams", n)
}
