// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func TestParseAction(t *testing.T) {
	tests := map[string]struct {
		req     Request
		want    Action
		wantErr string
	}{
		"list": {
			req:  Request{Action: "bookmark.list"},
			want: ListBookmarks{},
		},
		"list ignores parameters": {
			req:  Request{Action: "bookmark.list", Parameters: map[string]string{"id": "x"}},
			want: ListBookmarks{},
		},
		"case insensitive name": {
			req:  Request{Action: " Bookmark.Get ", Parameters: map[string]string{"id": "2"}},
			want: GetBookmark{ID: 2},
		},
		"get missing id": {
			req:     Request{Action: "bookmark.get", Parameters: map[string]string{}},
			wantErr: "Missing or invalid 'id' parameter.",
		},
		"get non numeric id": {
			req:     Request{Action: "bookmark.get", Parameters: map[string]string{"id": "two"}},
			wantErr: "Missing or invalid 'id' parameter.",
		},
		"id beyond 32 bits": {
			req:     Request{Action: "bookmark.get", Parameters: map[string]string{"id": "99999999999"}},
			wantErr: "Missing or invalid 'id' parameter.",
		},
		"largest 32 bit id": {
			req:  Request{Action: "bookmark.delete", Parameters: map[string]string{"id": "2147483647"}},
			want: DeleteBookmark{ID: 2147483647},
		},
		"create defaults title to url": {
			req:  Request{Action: "bookmark.create", Parameters: map[string]string{"url": "https://go.dev"}},
			want: CreateBookmark{URL: "https://go.dev", Title: "https://go.dev"},
		},
		"create keeps explicit empty title": {
			req:  Request{Action: "bookmark.create", Parameters: map[string]string{"url": "https://go.dev", "title": ""}},
			want: CreateBookmark{URL: "https://go.dev", Title: ""},
		},
		"create missing url": {
			req:     Request{Action: "bookmark.create", Parameters: map[string]string{"title": "Go"}},
			wantErr: "Missing required 'url' parameter.",
		},
		"create empty url": {
			req:     Request{Action: "bookmark.create", Parameters: map[string]string{"url": ""}},
			wantErr: "Missing required 'url' parameter.",
		},
		"update title only": {
			req:  Request{Action: "bookmark.update", Parameters: map[string]string{"id": "3", "title": "New"}},
			want: UpdateBookmark{ID: 3, Title: ptr("New")},
		},
		"update both fields": {
			req:  Request{Action: "bookmark.update", Parameters: map[string]string{"id": "3", "url": "https://a", "title": "A"}},
			want: UpdateBookmark{ID: 3, URL: ptr("https://a"), Title: ptr("A")},
		},
		"mark as read": {
			req:  Request{Action: "bookmark.markasread", Parameters: map[string]string{"id": "1"}},
			want: MarkBookmarkRead{ID: 1},
		},
		"delete": {
			req:  Request{Action: "bookmark.delete", Parameters: map[string]string{"id": "1"}},
			want: DeleteBookmark{ID: 1},
		},
		"unsupported": {
			req:     Request{Action: "bookmark.archive"},
			wantErr: "Unsupported bookmark action: bookmark.archive",
		},
		"empty action": {
			req:     Request{},
			wantErr: "Unsupported bookmark action: ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAction(tt.req)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseAction() = %v, want error %q", got, tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("ParseAction() error = %q, want %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAction() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseAction() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseActionErrorTypes(t *testing.T) {
	_, err := ParseAction(Request{Action: "bookmark.get"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ParseAction() error = %T, want *ValidationError", err)
	}
	if verr.Field != "id" {
		t.Errorf("ValidationError.Field = %q, want id", verr.Field)
	}

	_, err = ParseAction(Request{Action: "nope"})
	var uerr *UnsupportedActionError
	if !errors.As(err, &uerr) {
		t.Fatalf("ParseAction() error = %T, want *UnsupportedActionError", err)
	}
}

func TestActionNames(t *testing.T) {
	actions := []Action{
		ListBookmarks{},
		GetBookmark{},
		CreateBookmark{},
		UpdateBookmark{},
		MarkBookmarkRead{},
		DeleteBookmark{},
	}

	var got []string
	for _, a := range actions {
		got = append(got, a.Name())
	}
	if diff := cmp.Diff(SupportedActions(), got); diff != "" {
		t.Errorf("action names mismatch (-want +got):\n%s", diff)
	}
}
