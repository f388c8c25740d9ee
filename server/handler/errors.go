// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"fmt"
	"net/http"

	mcp "github.com/go-mcp/bookmarks"
	"github.com/go-mcp/bookmarks/server/task"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitzero"`
}

// ServerError represents an error that occurred during request handling.
// It carries the HTTP status it is reported with.
type ServerError struct {
	Code    int
	Message string
	Details string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// NewServerError creates a new ServerError.
func NewServerError(code int, message string, details ...string) *ServerError {
	err := &ServerError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// badRequest reports a malformed request body.
func badRequest(message string, details ...string) *ServerError {
	return NewServerError(http.StatusBadRequest, message, details...)
}

// toServerError maps err to the status and body it is reported with.
func toServerError(err error) *ServerError {
	var serr *ServerError
	var verr task.ArtifactValidationError
	switch {
	case errors.As(err, &serr):
		return serr
	case errors.Is(err, mcp.ErrTaskNotFound), errors.Is(err, mcp.ErrArtifactNotFound):
		return NewServerError(http.StatusNotFound, notFoundMessage(err))
	case errors.As(err, &verr):
		return badRequest("Invalid artifact", verr.Err.Error())
	default:
		return NewServerError(http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// notFoundMessage returns the message of the typed not-found error in err's chain.
func notFoundMessage(err error) string {
	var terr mcp.TaskNotFoundError
	if errors.As(err, &terr) {
		return terr.Error()
	}
	var aerr mcp.ArtifactNotFoundError
	if errors.As(err, &aerr) {
		return aerr.Error()
	}
	return err.Error()
}
