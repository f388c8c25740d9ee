// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package mcp provides the wire types of the bookmarks task orchestration
// protocol: tasks, artifacts, actions and the capability handshake.
//
// Clients submit named actions as tasks. The server dispatches each action
// against a [BookmarkStore], records the outcome as one or more artifacts and
// resolves the task to completed or failed. The server side lives under the
// server package and its subpackages.
package mcp
