// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	mcp "github.com/go-mcp/bookmarks"
)

// Registry is the in-memory TaskRegistry and ArtifactStore.
// Task data is lost when the server process stops.
//
// A single sync.RWMutex guards every task and its artifacts, so artifact
// insertion and completion on the same task never interleave.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]*mcp.Task
	order []string

	now      func() time.Time
	newID    func() string
	observer Observer
}

var (
	_ TaskRegistry  = (*Registry)(nil)
	_ ArtifactStore = (*Registry)(nil)
)

// Option configures a [Registry].
type Option func(*Registry)

// WithClock sets the time source used for task and artifact timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithIDGenerator sets the generator used for task and artifact ids.
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) {
		r.newID = fn
	}
}

// WithObserver registers fn to be called after every status change.
func WithObserver(fn Observer) Option {
	return func(r *Registry) {
		r.observer = fn
	}
}

// NewRegistry creates a new empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tasks: make(map[string]*mcp.Task),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// CreateTask allocates a fresh task for req.
func (r *Registry) CreateTask(ctx context.Context, req mcp.Request) (*mcp.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewRegistryError("create", "", err)
	}

	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	if _, exists := r.tasks[id]; exists {
		return nil, NewRegistryError("create", id, errors.New("duplicate task id"))
	}

	task := &mcp.Task{
		ID:        id,
		Status:    mcp.TaskStatusInProgress,
		Request:   req.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.tasks[id] = task
	r.order = append(r.order, id)

	return task.Clone(), nil
}

// GetTask retrieves a snapshot of the task.
func (r *Registry) GetTask(ctx context.Context, taskID string) (*mcp.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, exists := r.tasks[taskID]
	if !exists {
		return nil, mcp.TaskNotFoundError{TaskID: taskID}
	}

	return task.Clone(), nil
}

// CompleteTask sets the task to completed when success is true and to failed
// otherwise. The last call wins; there is no guard against re-completing a
// terminal task.
func (r *Registry) CompleteTask(ctx context.Context, taskID string, success bool) (*mcp.Task, error) {
	r.mu.Lock()
	task, exists := r.tasks[taskID]
	if !exists {
		r.mu.Unlock()
		return nil, mcp.TaskNotFoundError{TaskID: taskID}
	}
	task.Status = mcp.StatusFor(success)
	task.UpdatedAt = r.now()
	snapshot := task.Clone()
	r.mu.Unlock()

	if r.observer != nil {
		r.observer(ctx, snapshot.Clone())
	}

	return snapshot, nil
}

// ListTasks returns snapshots of every task in creation order.
func (r *Registry) ListTasks(ctx context.Context) ([]*mcp.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*mcp.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, r.tasks[id].Clone())
	}

	return tasks, nil
}

// Count returns the number of tasks held by the registry.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tasks)
}

// CreateArtifact attaches a new artifact to the task.
func (r *Registry) CreateArtifact(ctx context.Context, taskID, typ string, content mcp.Content) (*mcp.Artifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, exists := r.tasks[taskID]
	if !exists {
		return nil, mcp.TaskNotFoundError{TaskID: taskID}
	}
	if typ == "" {
		return nil, NewArtifactValidationError(taskID, errors.New("artifact type cannot be empty"))
	}

	id := r.newID()
	if _, dup := task.Artifacts.Get(id); dup {
		return nil, NewRegistryError("create artifact", taskID, errors.New("duplicate artifact id"))
	}

	now := r.now()
	artifact := &mcp.Artifact{
		ID:        id,
		Type:      typ,
		Content:   mcp.CloneContent(content),
		CreatedAt: now,
	}
	task.Artifacts.Add(artifact)
	task.UpdatedAt = now

	return artifact.Clone(), nil
}

// GetArtifact retrieves an artifact by task and artifact id.
func (r *Registry) GetArtifact(ctx context.Context, taskID, artifactID string) (*mcp.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, exists := r.tasks[taskID]
	if !exists {
		return nil, mcp.TaskNotFoundError{TaskID: taskID}
	}
	artifact, ok := task.Artifacts.Get(artifactID)
	if !ok {
		return nil, mcp.ArtifactNotFoundError{TaskID: taskID, ArtifactID: artifactID}
	}

	return artifact.Clone(), nil
}
