// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrors(t *testing.T) {
	tests := map[string]struct {
		err      error
		sentinel error
		wantMsg  string
	}{
		"task": {
			err:      TaskNotFoundError{TaskID: "t1"},
			sentinel: ErrTaskNotFound,
			wantMsg:  "Task with ID t1 not found.",
		},
		"artifact": {
			err:      ArtifactNotFoundError{TaskID: "t1", ArtifactID: "a1"},
			sentinel: ErrArtifactNotFound,
			wantMsg:  "Artifact with ID a1 not found in task t1.",
		},
		"bookmark": {
			err:      BookmarkNotFoundError{ID: 7},
			sentinel: ErrBookmarkNotFound,
			wantMsg:  "Bookmark with ID 7 not found.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			wrapped := fmt.Errorf("lookup: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
			for _, other := range []error{ErrTaskNotFound, ErrArtifactNotFound, ErrBookmarkNotFound} {
				if other != tt.sentinel && errors.Is(tt.err, other) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, other)
				}
			}
		})
	}
}
