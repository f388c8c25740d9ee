// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTaskStatus(t *testing.T) {
	tests := map[string]struct {
		status   TaskStatus
		terminal bool
	}{
		"in progress": {status: TaskStatusInProgress, terminal: false},
		"completed":   {status: TaskStatusCompleted, terminal: true},
		"failed":      {status: TaskStatusFailed, terminal: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.terminal {
				t.Errorf("TaskStatus(%q).IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
			}
		})
	}

	if got := StatusFor(true); got != TaskStatusCompleted {
		t.Errorf("StatusFor(true) = %q, want completed", got)
	}
	if got := StatusFor(false); got != TaskStatusFailed {
		t.Errorf("StatusFor(false) = %q, want failed", got)
	}
}

func TestTaskClone(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orig := &Task{
		ID:     "t1",
		Status: TaskStatusInProgress,
		Request: Request{
			Query:      "q",
			Action:     ActionBookmarkGet,
			Parameters: map[string]string{"id": "1"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	orig.Artifacts.Add(&Artifact{ID: "a", Type: ArtifactTypeError, Content: MessageContent("x"), CreatedAt: now})

	c := orig.Clone()
	opts := cmp.Transformer("Artifacts", func(as Artifacts) []*Artifact { return as.List() })
	if diff := cmp.Diff(orig, c, opts); diff != "" {
		t.Fatalf("Clone() mismatch (-want +got):\n%s", diff)
	}

	c.Request.Parameters["id"] = "2"
	c.Status = TaskStatusFailed
	c.Artifacts.Add(&Artifact{ID: "b"})

	if orig.Request.Parameters["id"] != "1" {
		t.Error("Clone() shares the parameter map")
	}
	if orig.Status != TaskStatusInProgress {
		t.Error("Clone() shares the status")
	}
	if orig.Artifacts.Len() != 1 {
		t.Error("Clone() shares the artifact collection")
	}

	var nilTask *Task
	if nilTask.Clone() != nil {
		t.Error("nil Clone() != nil")
	}
}

func TestUpdateStatusRequestSuccess(t *testing.T) {
	tests := map[string]bool{
		"completed":   true,
		"Completed":   true,
		"COMPLETED":   true,
		"failed":      false,
		"in_progress": false,
		"":            false,
		"complete":    false,
	}

	for status, want := range tests {
		t.Run(status, func(t *testing.T) {
			if got := (UpdateStatusRequest{Status: status}).Success(); got != want {
				t.Errorf("UpdateStatusRequest{%q}.Success() = %v, want %v", status, got, want)
			}
		})
	}
}

func TestInitialize(t *testing.T) {
	want := &InitializeResponse{
		Protocol: "mcp/1",
		Name:     "Bookmarks Manager MCP Server",
		Capabilities: Capabilities{Actions: []string{
			"bookmark.list",
			"bookmark.get",
			"bookmark.create",
			"bookmark.update",
			"bookmark.markasread",
			"bookmark.delete",
		}},
	}

	for name, req := range map[string]*InitializeRequest{
		"nil":        nil,
		"with body":  {Protocol: "mcp/0", Capabilities: map[string]any{"x": true}},
		"empty body": {},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(want, Initialize(req)); diff != "" {
				t.Errorf("Initialize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBookmarkClone(t *testing.T) {
	read := time.Date(2023, 2, 12, 0, 0, 0, 0, time.UTC)
	orig := &Bookmark{ID: 2, URL: "https://a", Title: "A", ReadAt: &read}

	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("Clone() mismatch (-want +got):\n%s", diff)
	}
	*c.ReadAt = read.Add(time.Hour)
	if !orig.ReadAt.Equal(read) {
		t.Error("Clone() shares ReadAt")
	}
}
