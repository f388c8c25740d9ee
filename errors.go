// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"errors"
	"fmt"
)

// Sentinel errors for lookups that miss.
var (
	// ErrTaskNotFound is returned when a task id does not resolve.
	ErrTaskNotFound = errors.New("task not found")

	// ErrArtifactNotFound is returned when an artifact id does not resolve within its task.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrBookmarkNotFound is returned by a BookmarkStore when a bookmark id does not resolve.
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

// TaskNotFoundError reports an unknown task id.
type TaskNotFoundError struct {
	TaskID string
}

// Error implements the error interface.
func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("Task with ID %s not found.", e.TaskID)
}

// Is reports whether target is [ErrTaskNotFound].
func (e TaskNotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// ArtifactNotFoundError reports an unknown artifact id within a known or unknown task.
type ArtifactNotFoundError struct {
	TaskID     string
	ArtifactID string
}

// Error implements the error interface.
func (e ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("Artifact with ID %s not found in task %s.", e.ArtifactID, e.TaskID)
}

// Is reports whether target is [ErrArtifactNotFound].
func (e ArtifactNotFoundError) Is(target error) bool {
	return target == ErrArtifactNotFound
}

// BookmarkNotFoundError reports an unknown bookmark id.
type BookmarkNotFoundError struct {
	ID int
}

// Error implements the error interface.
func (e BookmarkNotFoundError) Error() string {
	return fmt.Sprintf("Bookmark with ID %d not found.", e.ID)
}

// Is reports whether target is [ErrBookmarkNotFound].
func (e BookmarkNotFoundError) Is(target error) bool {
	return target == ErrBookmarkNotFound
}

// ValidationError represents a missing or malformed action parameter.
// Its message is user facing and ends up verbatim in an error artifact.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// UnsupportedActionError is returned when an action name has no handler.
type UnsupportedActionError struct {
	Action string
}

// Error implements the error interface.
func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("Unsupported bookmark action: %s", e.Action)
}
