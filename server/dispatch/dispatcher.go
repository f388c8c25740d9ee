// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package dispatch routes task actions to the bookmark store and records
// their outcome on the task.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	mcp "github.com/go-mcp/bookmarks"
	"github.com/go-mcp/bookmarks/internal/telemetry"
	"github.com/go-mcp/bookmarks/server/task"
)

// Dispatcher turns a task's action into an artifact and a terminal status.
type Dispatcher struct {
	bookmarks mcp.BookmarkStore
	tasks     task.TaskRegistry
	artifacts task.ArtifactStore

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *telemetry.DispatchMetrics
}

// Option configures a [Dispatcher].
type Option func(*Dispatcher)

// WithLogger sets the logger for the Dispatcher.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithTracer sets the tracer for the Dispatcher.
func WithTracer(tracer trace.Tracer) Option {
	return func(d *Dispatcher) {
		d.tracer = tracer
	}
}

// WithMeter sets the meter the Dispatcher records its metrics on.
func WithMeter(meter metric.Meter) Option {
	return func(d *Dispatcher) {
		d.metrics = telemetry.NewDispatchMetrics(meter)
	}
}

// New creates a Dispatcher driving bookmarks and recording outcomes in
// tasks and artifacts.
func New(bookmarks mcp.BookmarkStore, tasks task.TaskRegistry, artifacts task.ArtifactStore, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		bookmarks: bookmarks,
		tasks:     tasks,
		artifacts: artifacts,
		logger:    slog.Default(),
		tracer:    otel.GetTracerProvider().Tracer(telemetry.ScopeName),
	}
	for _, o := range opts {
		o(d)
	}
	if d.metrics == nil {
		d.metrics = telemetry.NewDispatchMetrics(otel.GetMeterProvider().Meter(telemetry.ScopeName))
	}
	return d
}

// Submit creates a task for req and dispatches it before returning.
// The returned task is completed or failed; an error means the task could
// not be created or recorded at all.
func (d *Dispatcher) Submit(ctx context.Context, req mcp.Request) (*mcp.Task, error) {
	t, err := d.tasks.CreateTask(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return d.Dispatch(ctx, t.ID, t.Request)
}

// Dispatch runs the action of req against the bookmark store, attaches one
// artifact describing the outcome to the task and resolves it.
//
// Action failures, including store errors and panics, are recorded on the
// task and never returned. Dispatch only fails when the task itself cannot
// be updated.
func (d *Dispatcher) Dispatch(ctx context.Context, taskID string, req mcp.Request) (*mcp.Task, error) {
	ctx, span := d.tracer.Start(ctx, "mcp.dispatch.Dispatch",
		trace.WithAttributes(
			attribute.String("mcp.task_id", taskID),
			attribute.String("mcp.action", req.Action),
		))
	defer span.End()

	start := time.Now()
	out := d.run(ctx, taskID, req)
	if !out.success {
		span.SetStatus(codes.Error, out.message())
	}

	if _, err := d.artifacts.CreateArtifact(ctx, taskID, out.typ, out.content); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to record outcome of task %s: %w", taskID, err)
	}
	t, err := d.tasks.CompleteTask(ctx, taskID, out.success)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to complete task %s: %w", taskID, err)
	}

	d.metrics.Record(ctx, req.Action, string(t.Status), time.Since(start))
	d.logger.InfoContext(ctx, "task dispatched",
		"task_id", taskID,
		"action", req.Action,
		"status", t.Status,
		"artifact_type", out.typ,
	)
	return t, nil
}

// run decodes and executes the action, converting every failure into an
// error outcome.
func (d *Dispatcher) run(ctx context.Context, taskID string, req mcp.Request) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "panic while dispatching task",
				"task_id", taskID, "action", req.Action, "panic", r)
			out = internalFailure(fmt.Errorf("%v", r))
		}
	}()

	action, err := mcp.ParseAction(req)
	if err != nil {
		d.logger.WarnContext(ctx, "rejected task action", "task_id", taskID, "action", req.Action, "error", err)
		return failure(err.Error())
	}

	out, err = d.execute(ctx, action)
	if err != nil {
		d.logger.ErrorContext(ctx, "error processing task", "task_id", taskID, "action", action.Name(), "error", err)
		return internalFailure(err)
	}
	return out
}

// execute invokes the handler for a. A returned error is unexpected; known
// failure modes come back as an outcome.
func (d *Dispatcher) execute(ctx context.Context, a mcp.Action) (outcome, error) {
	switch a := a.(type) {
	case mcp.ListBookmarks:
		return d.list(ctx)
	case mcp.GetBookmark:
		return d.get(ctx, a)
	case mcp.CreateBookmark:
		return d.create(ctx, a)
	case mcp.UpdateBookmark:
		return d.update(ctx, a)
	case mcp.MarkBookmarkRead:
		return d.markRead(ctx, a)
	case mcp.DeleteBookmark:
		return d.delete(ctx, a)
	default:
		return failure((&mcp.UnsupportedActionError{Action: a.Name()}).Error()), nil
	}
}

func (d *Dispatcher) list(ctx context.Context) (outcome, error) {
	bookmarks, err := d.bookmarks.GetAll(ctx)
	if err != nil {
		return outcome{}, err
	}
	return success(mcp.ArtifactTypeBookmarksList, mcp.BookmarkListContent(bookmarks)), nil
}

func (d *Dispatcher) get(ctx context.Context, a mcp.GetBookmark) (outcome, error) {
	b, err := d.bookmarks.GetByID(ctx, a.ID)
	switch {
	case errors.Is(err, mcp.ErrBookmarkNotFound) || (err == nil && b == nil):
		return notFound(a.ID), nil
	case err != nil:
		return outcome{}, err
	}
	return success(mcp.ArtifactTypeBookmarkSingle, mcp.BookmarkContent(*b)), nil
}

func (d *Dispatcher) create(ctx context.Context, a mcp.CreateBookmark) (outcome, error) {
	b, err := d.bookmarks.Add(ctx, &mcp.Bookmark{URL: a.URL, Title: a.Title})
	if err != nil {
		return failure("Error creating bookmark: " + err.Error()), nil
	}
	if b == nil {
		return failure("Error creating bookmark: store returned no bookmark"), nil
	}
	return success(mcp.ArtifactTypeBookmarkCreated, mcp.BookmarkContent(*b)), nil
}

func (d *Dispatcher) update(ctx context.Context, a mcp.UpdateBookmark) (outcome, error) {
	existing, err := d.bookmarks.GetByID(ctx, a.ID)
	switch {
	case errors.Is(err, mcp.ErrBookmarkNotFound) || (err == nil && existing == nil):
		return notFound(a.ID), nil
	case err != nil:
		return outcome{}, err
	}

	merged := existing.Clone()
	if a.URL != nil {
		merged.URL = *a.URL
	}
	if a.Title != nil {
		merged.Title = *a.Title
	}

	updated, err := d.bookmarks.Update(ctx, a.ID, merged)
	switch {
	case errors.Is(err, mcp.ErrBookmarkNotFound) || (err == nil && updated == nil):
		return failure(fmt.Sprintf("Failed to update bookmark with ID %d.", a.ID)), nil
	case err != nil:
		return outcome{}, err
	}
	return success(mcp.ArtifactTypeBookmarkUpdated, mcp.BookmarkContent(*updated)), nil
}

func (d *Dispatcher) markRead(ctx context.Context, a mcp.MarkBookmarkRead) (outcome, error) {
	b, err := d.bookmarks.MarkRead(ctx, a.ID)
	switch {
	case errors.Is(err, mcp.ErrBookmarkNotFound) || (err == nil && b == nil):
		return notFound(a.ID), nil
	case err != nil:
		return outcome{}, err
	}
	return success(mcp.ArtifactTypeBookmarkMarkedRead, mcp.BookmarkContent(*b)), nil
}

func (d *Dispatcher) delete(ctx context.Context, a mcp.DeleteBookmark) (outcome, error) {
	ok, err := d.bookmarks.Delete(ctx, a.ID)
	if err != nil {
		return outcome{}, err
	}
	if !ok {
		return failure(fmt.Sprintf("Failed to delete bookmark with ID %d.", a.ID)), nil
	}
	return success(mcp.ArtifactTypeBookmarkDeleted, mcp.AcknowledgementContent{
		Success: true,
		Message: fmt.Sprintf("Bookmark with ID %d deleted successfully.", a.ID),
	}), nil
}
