// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package handler provides the HTTP surface of the bookmarks MCP server.
// This package maps the task, artifact, handshake and stream endpoints onto
// the task registry, the dispatcher and the event broadcaster.
package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	mcp "github.com/go-mcp/bookmarks"
	"github.com/go-mcp/bookmarks/internal/pool"
	"github.com/go-mcp/bookmarks/server/dispatch"
	"github.com/go-mcp/bookmarks/server/event"
	"github.com/go-mcp/bookmarks/server/task"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 1 << 20

// Handler serves the MCP endpoints.
type Handler struct {
	tasks      task.TaskRegistry
	artifacts  task.ArtifactStore
	dispatcher *dispatch.Dispatcher
	stream     *event.Broadcaster
	logger     *slog.Logger
}

// Config holds the collaborators of a Handler.
type Config struct {
	Tasks      task.TaskRegistry
	Artifacts  task.ArtifactStore
	Dispatcher *dispatch.Dispatcher
	Stream     *event.Broadcaster
	Logger     *slog.Logger // Optional, defaults to slog.Default()
}

// New creates a new Handler.
func New(cfg Config) (*Handler, error) {
	switch {
	case cfg.Tasks == nil:
		return nil, fmt.Errorf("task registry is required")
	case cfg.Artifacts == nil:
		return nil, fmt.Errorf("artifact store is required")
	case cfg.Dispatcher == nil:
		return nil, fmt.Errorf("dispatcher is required")
	case cfg.Stream == nil:
		return nil, fmt.Errorf("event broadcaster is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		tasks:      cfg.Tasks,
		artifacts:  cfg.Artifacts,
		dispatcher: cfg.Dispatcher,
		stream:     cfg.Stream,
		logger:     logger,
	}, nil
}

// Register sets up all the HTTP routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST "+mcp.TasksPath, h.handleCreateTask)
	mux.HandleFunc("GET "+mcp.TasksPath, h.handleListTasks)
	mux.HandleFunc("GET "+mcp.TasksPath+"/{taskId}", h.handleGetTask)
	mux.HandleFunc("PATCH "+mcp.TasksPath+"/{taskId}", h.handleUpdateStatus)
	mux.HandleFunc("POST "+mcp.TasksPath+"/{taskId}/artifacts", h.handleCreateArtifact)
	mux.HandleFunc("GET "+mcp.TasksPath+"/{taskId}/artifacts/{artifactId}", h.handleGetArtifact)

	mux.HandleFunc("GET "+mcp.InitializePath, h.handleInitialize)
	mux.HandleFunc("POST "+mcp.InitializePath, h.handleInitialize)
	mux.HandleFunc("GET "+mcp.StreamPath, h.handleStream)

	mux.HandleFunc("GET "+mcp.HealthPath, h.handleHealth)
}

// handleCreateTask creates a task and dispatches its action before replying.
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(body) == 0 {
		h.writeError(w, r, badRequest("Request body is required"))
		return
	}
	if err := validate(createTaskValidator, body); err != nil {
		h.writeError(w, r, err)
		return
	}

	var req mcp.Request
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, r, badRequest("Invalid JSON", err.Error()))
		return
	}
	if req.Parameters == nil {
		req.Parameters = map[string]string{}
	}

	t, err := h.dispatcher.Submit(r.Context(), req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to create task", "action", req.Action, "error", err)
		h.writeError(w, r, NewServerError(http.StatusInternalServerError, "Failed to create task", err.Error()))
		return
	}

	w.Header().Set("Location", mcp.TaskPath(t.ID))
	h.writeJSON(w, r, http.StatusCreated, t)
}

// handleListTasks returns every task.
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListTasks(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, tasks)
}

// handleGetTask returns a single task.
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.tasks.GetTask(r.Context(), r.PathValue("taskId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, t)
}

// handleUpdateStatus resolves a task from a partial update.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(body) == 0 {
		h.writeError(w, r, badRequest("Status field is required."))
		return
	}
	if err := validate(updateStatusValidator, body); err != nil {
		h.writeError(w, r, err)
		return
	}

	var req struct {
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, r, badRequest("Invalid JSON", err.Error()))
		return
	}
	if req.Status == nil {
		h.writeError(w, r, badRequest("Status field is required."))
		return
	}

	update := mcp.UpdateStatusRequest{Status: *req.Status}
	t, err := h.tasks.CompleteTask(r.Context(), r.PathValue("taskId"), update.Success())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, t)
}

// handleCreateArtifact attaches a client supplied artifact to a task.
func (h *Handler) handleCreateArtifact(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("taskId")

	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(body) == 0 {
		h.writeError(w, r, badRequest("Request body is required"))
		return
	}
	if err := validate(createArtifactValidator, body); err != nil {
		h.writeError(w, r, err)
		return
	}

	var req mcp.CreateArtifactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, r, badRequest("Invalid JSON", err.Error()))
		return
	}

	content := mcp.UploadedContent(jsontext.Value(req.Content))
	a, err := h.artifacts.CreateArtifact(r.Context(), taskID, req.Type, content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", mcp.ArtifactPath(taskID, a.ID))
	h.writeJSON(w, r, http.StatusCreated, a)
}

// handleGetArtifact returns a single artifact.
func (h *Handler) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	a, err := h.artifacts.GetArtifact(r.Context(), r.PathValue("taskId"), r.PathValue("artifactId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, a)
}

// handleInitialize answers the capability handshake. The request body is
// optional and only logged.
func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	var req *mcp.InitializeRequest
	if body, err := readBody(w, r); err == nil && len(bytes.TrimSpace(body)) > 0 {
		req = new(mcp.InitializeRequest)
		if err := json.Unmarshal(body, req); err != nil {
			h.logger.DebugContext(r.Context(), "ignoring malformed initialize request", "error", err)
			req = nil
		}
	}

	if req != nil {
		h.logger.InfoContext(r.Context(), "initialize request", "protocol", req.Protocol)
	} else {
		h.logger.InfoContext(r.Context(), "initialize request")
	}
	h.writeJSON(w, r, http.StatusOK, mcp.Initialize(req))
}

// handleStream holds an event stream open until the client disconnects.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	if err := h.stream.Serve(r.Context(), w); errors.Is(err, event.ErrShutdown) {
		h.writeError(w, r, NewServerError(http.StatusServiceUnavailable, "Server is shutting down"))
	}
}

// handleHealth reports liveness.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, NewServerError(http.StatusRequestEntityTooLarge, "Request body too large")
		}
		return nil, badRequest("Failed to read request body", err.Error())
	}
	return body, nil
}

// writeJSON encodes v as the response body.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	buf := pool.Bytes.Get()
	defer pool.Bytes.Put(buf)

	if err := json.MarshalWrite(buf, v); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to encode response", "error", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.DebugContext(r.Context(), "failed to write response", "error", err)
	}
}

// writeError reports err with the status it maps to.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	serr := toServerError(err)
	if serr.Code >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	h.writeJSON(w, r, serr.Code, ErrorResponse{Error: serr.Message, Details: serr.Details})
}
