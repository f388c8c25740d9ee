// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"

	mcp "github.com/go-mcp/bookmarks"
)

// TaskRegistry owns task entities, their status and lifecycle timestamps.
// Implementations hand out snapshots; mutating a returned task never
// affects the registry.
type TaskRegistry interface {
	// CreateTask allocates a fresh task for req in the in_progress state.
	CreateTask(ctx context.Context, req mcp.Request) (*mcp.Task, error)

	// GetTask looks up a task by id.
	// Returns an error matching mcp.ErrTaskNotFound if the task doesn't exist.
	GetTask(ctx context.Context, taskID string) (*mcp.Task, error)

	// CompleteTask resolves a task to completed or failed and refreshes its
	// updated timestamp. Completing an already terminal task overwrites its status.
	CompleteTask(ctx context.Context, taskID string, success bool) (*mcp.Task, error)

	// ListTasks returns every task in creation order.
	ListTasks(ctx context.Context) ([]*mcp.Task, error)
}

// ArtifactStore owns the artifacts attached to each task.
type ArtifactStore interface {
	// CreateArtifact attaches a new artifact to the task and refreshes the
	// task's updated timestamp. Nothing is stored if the task doesn't exist.
	CreateArtifact(ctx context.Context, taskID, typ string, content mcp.Content) (*mcp.Artifact, error)

	// GetArtifact looks up an artifact within its task.
	// Returns an error matching mcp.ErrTaskNotFound or mcp.ErrArtifactNotFound
	// if either id misses.
	GetArtifact(ctx context.Context, taskID, artifactID string) (*mcp.Artifact, error)
}

// Observer is notified with a snapshot of a task after its status changes.
// It runs on the caller's goroutine outside the registry lock.
type Observer func(ctx context.Context, task *mcp.Task)
