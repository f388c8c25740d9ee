// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"strconv"
	"strings"
)

// Supported action names.
const (
	ActionBookmarkList       = "bookmark.list"
	ActionBookmarkGet        = "bookmark.get"
	ActionBookmarkCreate     = "bookmark.create"
	ActionBookmarkUpdate     = "bookmark.update"
	ActionBookmarkMarkAsRead = "bookmark.markasread"
	ActionBookmarkDelete     = "bookmark.delete"
)

// SupportedActions returns the closed set of action names in the order they
// are advertised during the handshake.
func SupportedActions() []string {
	return []string{
		ActionBookmarkList,
		ActionBookmarkGet,
		ActionBookmarkCreate,
		ActionBookmarkUpdate,
		ActionBookmarkMarkAsRead,
		ActionBookmarkDelete,
	}
}

// Action is a decoded, validated task action. The set of implementations is
// closed: ListBookmarks, GetBookmark, CreateBookmark, UpdateBookmark,
// MarkBookmarkRead and DeleteBookmark.
type Action interface {
	// Name returns the canonical action name.
	Name() string

	isAction()
}

// ListBookmarks lists every bookmark.
type ListBookmarks struct{}

// GetBookmark fetches a single bookmark.
type GetBookmark struct {
	ID int
}

// CreateBookmark stores a new bookmark. Title is already defaulted to URL
// when the request did not carry one.
type CreateBookmark struct {
	URL   string
	Title string
}

// UpdateBookmark overrides the url and/or title of an existing bookmark.
// A nil field keeps the stored value.
type UpdateBookmark struct {
	ID    int
	URL   *string
	Title *string
}

// MarkBookmarkRead stamps a bookmark as read.
type MarkBookmarkRead struct {
	ID int
}

// DeleteBookmark removes a bookmark.
type DeleteBookmark struct {
	ID int
}

func (ListBookmarks) Name() string    { return ActionBookmarkList }
func (GetBookmark) Name() string      { return ActionBookmarkGet }
func (CreateBookmark) Name() string   { return ActionBookmarkCreate }
func (UpdateBookmark) Name() string   { return ActionBookmarkUpdate }
func (MarkBookmarkRead) Name() string { return ActionBookmarkMarkAsRead }
func (DeleteBookmark) Name() string   { return ActionBookmarkDelete }

func (ListBookmarks) isAction()    {}
func (GetBookmark) isAction()      {}
func (CreateBookmark) isAction()   {}
func (UpdateBookmark) isAction()   {}
func (MarkBookmarkRead) isAction() {}
func (DeleteBookmark) isAction()   {}

// ParseAction decodes the action name and string parameters of req into an
// [Action]. Names are matched case-insensitively.
//
// It returns a *ValidationError when a required parameter is missing or does
// not parse, and an *UnsupportedActionError for unknown names.
func ParseAction(req Request) (Action, error) {
	name := strings.ToLower(strings.TrimSpace(req.Action))
	params := req.Parameters

	switch name {
	case ActionBookmarkList:
		return ListBookmarks{}, nil

	case ActionBookmarkGet:
		id, err := intParam(params, "id")
		if err != nil {
			return nil, err
		}
		return GetBookmark{ID: id}, nil

	case ActionBookmarkCreate:
		url, ok := params["url"]
		if !ok || url == "" {
			return nil, &ValidationError{Field: "url", Message: "Missing required 'url' parameter."}
		}
		title, ok := params["title"]
		if !ok {
			title = url
		}
		return CreateBookmark{URL: url, Title: title}, nil

	case ActionBookmarkUpdate:
		id, err := intParam(params, "id")
		if err != nil {
			return nil, err
		}
		a := UpdateBookmark{ID: id}
		if url, ok := params["url"]; ok {
			a.URL = &url
		}
		if title, ok := params["title"]; ok {
			a.Title = &title
		}
		return a, nil

	case ActionBookmarkMarkAsRead:
		id, err := intParam(params, "id")
		if err != nil {
			return nil, err
		}
		return MarkBookmarkRead{ID: id}, nil

	case ActionBookmarkDelete:
		id, err := intParam(params, "id")
		if err != nil {
			return nil, err
		}
		return DeleteBookmark{ID: id}, nil

	default:
		return nil, &UnsupportedActionError{Action: name}
	}
}

// intParam reads a 32-bit integer parameter. A missing key, a failed parse
// and an out of range value are the same validation error.
func intParam(params map[string]string, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, &ValidationError{Field: key, Message: "Missing or invalid '" + key + "' parameter."}
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: key, Message: "Missing or invalid '" + key + "' parameter."}
	}
	return int(n), nil
}
