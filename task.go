// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"maps"
	"time"
)

// TaskStatus is the lifecycle state of a [Task].
type TaskStatus string

// Task lifecycle states. A task starts in progress and is resolved to
// completed or failed by dispatch or by an explicit status update.
const (
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// IsTerminal reports whether s is completed or failed.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// StatusFor maps a success flag to its terminal status.
func StatusFor(success bool) TaskStatus {
	if success {
		return TaskStatusCompleted
	}
	return TaskStatusFailed
}

// Request is the immutable input a task was created with.
type Request struct {
	Query      string            `json:"query"`
	Action     string            `json:"action"`
	Parameters map[string]string `json:"parameters"`
}

// Clone returns a copy of r with its own parameter map.
func (r Request) Clone() Request {
	c := r
	c.Parameters = make(map[string]string, len(r.Parameters))
	maps.Copy(c.Parameters, r.Parameters)
	return c
}

// Task tracks a requested action and its outcome.
type Task struct {
	ID        string     `json:"id"`
	Status    TaskStatus `json:"status"`
	Request   Request    `json:"request"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Artifacts Artifacts  `json:"artifacts"`
}

// Clone returns a deep copy of t.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	return &Task{
		ID:        t.ID,
		Status:    t.Status,
		Request:   t.Request.Clone(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Artifacts: t.Artifacts.Clone(),
	}
}
