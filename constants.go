// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

// HTTP path constants.
// These define where the task orchestration endpoints and the handshake
// stream are mounted.
const (
	// BasePath is the prefix shared by every protocol endpoint.
	BasePath = "/mcp"

	// TasksPath is the collection path for tasks.
	//
	// Example usage: POST https://bookmarks.example.com/mcp/tasks
	TasksPath = BasePath + "/tasks"

	// InitializePath serves the capability handshake as a plain JSON response.
	InitializePath = BasePath + "/initialize"

	// StreamPath is the long-lived event stream. The first event on every
	// connection is the initialize handshake.
	StreamPath = BasePath

	// HealthPath reports process liveness.
	HealthPath = "/healthz"
)

// TaskPath returns the location of a single task.
func TaskPath(taskID string) string {
	return TasksPath + "/" + taskID
}

// ArtifactPath returns the location of a single artifact owned by a task.
func ArtifactPath(taskID, artifactID string) string {
	return TaskPath(taskID) + "/artifacts/" + artifactID
}
