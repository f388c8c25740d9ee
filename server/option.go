// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-mcp/bookmarks/auth"
	"github.com/go-mcp/bookmarks/server/task"
)

// Option represents an option for configuring the [Server].
type Option func(*Server)

// WithLogger sets the [*slog.Logger] for the [Server].
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTracer sets the [trace.Tracer] for the [Server].
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Server) {
		s.tracer = tracer
	}
}

// WithMeter sets the [metric.Meter] the [Server] records dispatch metrics on.
func WithMeter(meter metric.Meter) Option {
	return func(s *Server) {
		s.meter = meter
	}
}

// WithAuthenticator requires every request except the health check to
// authenticate with a.
func WithAuthenticator(a auth.Authenticator) Option {
	return func(s *Server) {
		s.authenticator = a
	}
}

// WithTaskEvents publishes a stream event whenever a task is resolved.
func WithTaskEvents(enabled bool) Option {
	return func(s *Server) {
		s.taskEvents = enabled
	}
}

// WithRegistryOptions passes opts to the task registry created by the [Server].
func WithRegistryOptions(opts ...task.Option) Option {
	return func(s *Server) {
		s.registryOpts = append(s.registryOpts, opts...)
	}
}
