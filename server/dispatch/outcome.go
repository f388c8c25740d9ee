// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"

	mcp "github.com/go-mcp/bookmarks"
)

// outcome is the artifact and terminal status produced by one action.
type outcome struct {
	typ     string
	content mcp.Content
	success bool
}

func success(typ string, content mcp.Content) outcome {
	return outcome{typ: typ, content: content, success: true}
}

func failure(msg string) outcome {
	return outcome{typ: mcp.ArtifactTypeError, content: mcp.MessageContent(msg)}
}

func notFound(id int) outcome {
	return failure(mcp.BookmarkNotFoundError{ID: id}.Error())
}

func internalFailure(err error) outcome {
	return failure(fmt.Sprintf("An error occurred: %v", err))
}

// message returns the diagnostic of a failed outcome.
func (o outcome) message() string {
	if m, ok := o.content.(mcp.MessageContent); ok {
		return string(m)
	}
	return o.typ
}
