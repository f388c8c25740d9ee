// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"fmt"
)

// RegistryError represents an error from the task registry.
type RegistryError struct {
	Operation string
	TaskID    string
	Err       error
}

// Error returns the error message.
func (e RegistryError) Error() string {
	if e.TaskID == "" {
		return fmt.Sprintf("task registry %s operation failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("task registry %s operation failed for task %s: %v", e.Operation, e.TaskID, e.Err)
}

// Unwrap returns the underlying error.
func (e RegistryError) Unwrap() error {
	return e.Err
}

// ArtifactValidationError represents an artifact that cannot be stored.
type ArtifactValidationError struct {
	TaskID string
	Err    error
}

// Error returns the error message.
func (e ArtifactValidationError) Error() string {
	return fmt.Sprintf("artifact for task %s validation failed: %v", e.TaskID, e.Err)
}

// Unwrap returns the underlying error.
func (e ArtifactValidationError) Unwrap() error {
	return e.Err
}

// NewRegistryError creates a new RegistryError.
func NewRegistryError(operation, taskID string, err error) RegistryError {
	return RegistryError{
		Operation: operation,
		TaskID:    taskID,
		Err:       err,
	}
}

// NewArtifactValidationError creates a new ArtifactValidationError.
func NewArtifactValidationError(taskID string, err error) ArtifactValidationError {
	return ArtifactValidationError{
		TaskID: taskID,
		Err:    err,
	}
}
