// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import "testing"

func TestPaths(t *testing.T) {
	tests := map[string]struct {
		got  string
		want string
	}{
		"tasks":      {got: TasksPath, want: "/mcp/tasks"},
		"task":       {got: TaskPath("t1"), want: "/mcp/tasks/t1"},
		"artifact":   {got: ArtifactPath("t1", "a1"), want: "/mcp/tasks/t1/artifacts/a1"},
		"initialize": {got: InitializePath, want: "/mcp/initialize"},
		"stream":     {got: StreamPath, want: "/mcp"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("path = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
