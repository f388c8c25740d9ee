// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package event provides the server-sent event stream of the MCP server.
// This package implements event framing and a broadcaster that fans events
// out to every connected stream.
package event

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"

	mcp "github.com/go-mcp/bookmarks"
	"github.com/go-mcp/bookmarks/internal/pool"
)

// Event types emitted on the stream.
const (
	TypeInitialize    = "initialize"
	TypeTaskCompleted = "task.completed"
	TypeTaskFailed    = "task.failed"
)

// Event is a single server-sent event.
type Event struct {
	// Type is written as the event field and names the kind of payload.
	Type string

	// ID is written as the id field. It is unique per event.
	ID string

	// Data is encoded as JSON into the data field.
	Data any
}

// New returns an event of the given type with a fresh id.
func New(typ string, data any) *Event {
	return &Event{
		Type: typ,
		ID:   uuid.NewString(),
		Data: data,
	}
}

// Initialize returns the handshake event sent first on every connection.
func Initialize() *Event {
	return New(TypeInitialize, mcp.Initialize(nil))
}

// TaskResolved returns the event announcing that t reached a terminal status.
func TaskResolved(t *mcp.Task) *Event {
	typ := TypeTaskCompleted
	if t.Status == mcp.TaskStatusFailed {
		typ = TypeTaskFailed
	}
	return New(typ, t)
}

// Validate ensures the event can be framed.
func (e *Event) Validate() error {
	if e.Type == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if e.ID == "" {
		return fmt.Errorf("event id cannot be empty")
	}
	return nil
}

// String returns a string representation of the Event.
func (e *Event) String() string {
	return fmt.Sprintf("Event{Type: %s, ID: %s}", e.Type, e.ID)
}

// WriteTo writes e to w framed as
//
//	event: <type>
//	id: <id>
//	data: <json>
//
// followed by a blank line.
func (e *Event) WriteTo(w io.Writer) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	data, err := json.Marshal(e.Data)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s event data: %w", e.Type, err)
	}

	buf := pool.Bytes.Get()
	defer pool.Bytes.Put(buf)

	buf.WriteString("event: ")
	buf.WriteString(e.Type)
	buf.WriteString("\nid: ")
	buf.WriteString(e.ID)
	buf.WriteString("\ndata: ")
	buf.Write(data)
	buf.WriteString("\n\n")

	return buf.WriteTo(w)
}
