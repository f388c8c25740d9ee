// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import "strings"

// ProtocolVersion is the protocol identifier advertised during the handshake.
const ProtocolVersion = "mcp/1"

// ServerName is the human readable server name advertised during the handshake.
const ServerName = "Bookmarks Manager MCP Server"

// InitializeRequest is the optional body a client sends to negotiate
// capabilities. Its contents are informational only.
type InitializeRequest struct {
	Protocol     string         `json:"protocol,omitzero"`
	Capabilities map[string]any `json:"capabilities,omitzero"`
}

// Capabilities lists what the server can do.
type Capabilities struct {
	Actions []string `json:"actions"`
}

// InitializeResponse is the fixed capability descriptor returned by the
// handshake and carried by the initialize stream event.
type InitializeResponse struct {
	Protocol     string       `json:"protocol"`
	Name         string       `json:"name"`
	Capabilities Capabilities `json:"capabilities"`
}

// Initialize answers a capability handshake. It is stateless and never
// fails; req may be nil.
func Initialize(req *InitializeRequest) *InitializeResponse {
	return &InitializeResponse{
		Protocol: ProtocolVersion,
		Name:     ServerName,
		Capabilities: Capabilities{
			Actions: SupportedActions(),
		},
	}
}

// UpdateStatusRequest is the body of a partial task status update.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Success reports whether the requested status resolves the task as
// completed. Any value other than "completed" (case-insensitive) fails it.
func (r UpdateStatusRequest) Success() bool {
	return strings.EqualFold(r.Status, string(TaskStatusCompleted))
}

// CreateArtifactRequest is the body of a client artifact upload.
type CreateArtifactRequest struct {
	Type    string     `json:"type"`
	Content RawContent `json:"content"`
}
