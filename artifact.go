// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/go-mcp/bookmarks/internal/pool"
)

// Artifact type tags produced by dispatch.
const (
	ArtifactTypeBookmarksList      = "bookmarks.list"
	ArtifactTypeBookmarkSingle     = "bookmark.single"
	ArtifactTypeBookmarkCreated    = "bookmark.created"
	ArtifactTypeBookmarkUpdated    = "bookmark.updated"
	ArtifactTypeBookmarkMarkedRead = "bookmark.marked_read"
	ArtifactTypeBookmarkDeleted    = "bookmark.deleted"
	ArtifactTypeError              = "error"
)

// Content is the payload of an [Artifact]. The set of implementations is
// closed: BookmarkContent, BookmarkListContent, MessageContent,
// AcknowledgementContent and RawContent.
type Content interface {
	isContent()

	// clone returns a copy that shares no mutable state with the receiver.
	clone() Content
}

// BookmarkContent carries a single bookmark.
type BookmarkContent Bookmark

// BookmarkListContent carries a collection of bookmarks.
type BookmarkListContent []*Bookmark

// MessageContent carries a diagnostic message. It is encoded as a bare JSON string.
type MessageContent string

// AcknowledgementContent confirms an operation that has no other result.
type AcknowledgementContent struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RawContent is client supplied content stored verbatim.
type RawContent jsontext.Value

func (BookmarkContent) isContent()        {}
func (BookmarkListContent) isContent()    {}
func (MessageContent) isContent()         {}
func (AcknowledgementContent) isContent() {}
func (RawContent) isContent()             {}

func (c BookmarkContent) clone() Content {
	return BookmarkContent(*(*Bookmark)(&c).Clone())
}

func (c BookmarkListContent) clone() Content {
	if c == nil {
		return c
	}
	list := make(BookmarkListContent, len(c))
	for i, b := range c {
		list[i] = b.Clone()
	}
	return list
}

func (c MessageContent) clone() Content         { return c }
func (c AcknowledgementContent) clone() Content { return c }
func (c RawContent) clone() Content             { return RawContent(bytes.Clone(c)) }

// CloneContent returns a deep copy of c. It returns nil for nil content.
func CloneContent(c Content) Content {
	if c == nil {
		return nil
	}
	return c.clone()
}

// MarshalJSON implements [json.Marshaler]. An empty list encodes as [] rather than null.
func (c BookmarkListContent) MarshalJSON() ([]byte, error) {
	if c == nil {
		c = BookmarkListContent{}
	}
	return json.Marshal([]*Bookmark(c))
}

// MarshalJSON implements [json.Marshaler].
func (c RawContent) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("null"), nil
	}
	return bytes.Clone(c), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (c *RawContent) UnmarshalJSON(data []byte) error {
	*c = RawContent(bytes.Clone(data))
	return nil
}

// Artifact is an immutable, typed result attached to a task.
type Artifact struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Content   Content   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy of a.
func (a *Artifact) Clone() *Artifact {
	if a == nil {
		return nil
	}
	c := *a
	c.Content = CloneContent(a.Content)
	return &c
}

// UnmarshalJSON implements [json.Unmarshaler], resolving Content to its
// variant from the type tag.
func (a *Artifact) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID        string         `json:"id"`
		Type      string         `json:"type"`
		Content   jsontext.Value `json:"content"`
		CreatedAt time.Time      `json:"created_at"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to unmarshal artifact: %w", err)
	}

	*a = Artifact{
		ID:        wire.ID,
		Type:      wire.Type,
		Content:   DecodeContent(wire.Type, wire.Content),
		CreatedAt: wire.CreatedAt,
	}
	return nil
}

// DecodeContent maps raw JSON to the content variant expected for typ.
// Content that does not fit the expected shape exactly, including objects
// with members the variant does not define, or that belongs to a type this
// package does not produce, is kept as RawContent.
func DecodeContent(typ string, raw jsontext.Value) Content {
	if len(raw) == 0 || raw.Kind() == 'n' {
		return nil
	}

	strict := json.RejectUnknownMembers(true)
	switch typ {
	case ArtifactTypeBookmarkSingle, ArtifactTypeBookmarkCreated, ArtifactTypeBookmarkUpdated, ArtifactTypeBookmarkMarkedRead:
		var b BookmarkContent
		if err := json.Unmarshal(raw, &b, strict); err == nil {
			return b
		}
	case ArtifactTypeBookmarksList:
		var list []*Bookmark
		if err := json.Unmarshal(raw, &list, strict); err == nil {
			return BookmarkListContent(list)
		}
	case ArtifactTypeBookmarkDeleted:
		var ack AcknowledgementContent
		if err := json.Unmarshal(raw, &ack, strict); err == nil {
			return ack
		}
	case ArtifactTypeError:
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			return MessageContent(msg)
		}
	}

	return RawContent(bytes.Clone(raw))
}

// UploadedContent wraps client supplied JSON so that it is stored and
// returned exactly as posted, whatever its type tag. Absent and null
// content is nil.
func UploadedContent(raw jsontext.Value) Content {
	if len(raw) == 0 || raw.Kind() == 'n' {
		return nil
	}
	return RawContent(bytes.Clone(raw))
}

// Artifacts is an insertion-ordered collection of artifacts keyed by id.
// It encodes as a JSON object whose members follow insertion order.
//
// The zero value is an empty collection ready to use.
type Artifacts struct {
	order []string
	byID  map[string]*Artifact
}

// Add appends a to the collection. An artifact with an id already present
// replaces the stored one without changing its position.
func (as *Artifacts) Add(a *Artifact) {
	if as.byID == nil {
		as.byID = make(map[string]*Artifact)
	}
	if _, ok := as.byID[a.ID]; !ok {
		as.order = append(as.order, a.ID)
	}
	as.byID[a.ID] = a
}

// Get returns the artifact with the given id.
func (as Artifacts) Get(id string) (*Artifact, bool) {
	a, ok := as.byID[id]
	return a, ok
}

// Len returns the number of artifacts.
func (as Artifacts) Len() int {
	return len(as.order)
}

// List returns the artifacts in insertion order.
func (as Artifacts) List() []*Artifact {
	list := make([]*Artifact, 0, len(as.order))
	for _, id := range as.order {
		list = append(list, as.byID[id])
	}
	return list
}

// Clone returns a copy that shares no mutable state with as, down to the
// artifact contents.
func (as Artifacts) Clone() Artifacts {
	c := Artifacts{
		order: make([]string, len(as.order)),
		byID:  make(map[string]*Artifact, len(as.byID)),
	}
	copy(c.order, as.order)
	for id, a := range as.byID {
		c.byID[id] = a.Clone()
	}
	return c
}

// MarshalJSON implements [json.Marshaler].
func (as Artifacts) MarshalJSON() ([]byte, error) {
	buf := pool.Bytes.Get()
	defer pool.Bytes.Put(buf)

	enc := jsontext.NewEncoder(buf)
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return nil, err
	}
	for _, id := range as.order {
		if err := enc.WriteToken(jsontext.String(id)); err != nil {
			return nil, err
		}
		if err := json.MarshalEncode(enc, as.byID[id]); err != nil {
			return nil, fmt.Errorf("failed to marshal artifact %s: %w", id, err)
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return nil, err
	}

	return bytes.Clone(bytes.TrimSpace(buf.Bytes())), nil
}

// UnmarshalJSON implements [json.Unmarshaler], preserving member order.
func (as *Artifacts) UnmarshalJSON(data []byte) error {
	*as = Artifacts{}

	dec := jsontext.NewDecoder(bytes.NewReader(data))
	tok, err := dec.ReadToken()
	if err != nil {
		return fmt.Errorf("failed to read artifacts: %w", err)
	}
	switch tok.Kind() {
	case 'n':
		return nil
	case '{':
	default:
		return fmt.Errorf("artifacts must be a JSON object, got %v", tok.Kind())
	}

	for dec.PeekKind() != '}' {
		key, err := dec.ReadToken()
		if err != nil {
			return fmt.Errorf("failed to read artifact key: %w", err)
		}
		var a Artifact
		if err := json.UnmarshalDecode(dec, &a); err != nil {
			return fmt.Errorf("failed to unmarshal artifact %s: %w", key.String(), err)
		}
		if a.ID == "" {
			a.ID = key.String()
		}
		as.Add(&a)
	}

	if _, err := dec.ReadToken(); err != nil {
		return fmt.Errorf("failed to read artifacts: %w", err)
	}
	return nil
}
