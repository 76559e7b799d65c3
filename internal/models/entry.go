// Package models defines the in-memory vault repository: entries with their
// fields, attachments, tags and history.
package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/google/uuid"
)

// Now returns the current UTC time truncated to the millisecond precision the
// wire format keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Field is one labeled piece of entry data. Concealed only asks the UI to
// mask the value; every field is encrypted the same way.
type Field struct {
	Name      string
	Value     string
	Concealed bool
}

// Attachment is a binary blob owned by an Entry.
type Attachment struct {
	// ID is unique within the owning entry.
	ID        string
	Name      string
	MimeType  string
	Data      []byte
	CreatedAt time.Time
}

// HistoryEvent is one append-only audit record of an entry.
type HistoryEvent struct {
	Summary   string
	Timestamp time.Time
}

// Entry is a single credential-like record.
type Entry struct {
	// ID is unique within the repository.
	ID          string
	Title       string
	Fields      []Field
	Attachments []Attachment
	Tags        []string
	History     []HistoryEvent
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEntry creates an entry with a fresh id and a "created" history event.
func NewEntry(title string) *Entry {
	now := Now()
	return &Entry{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		History:   []HistoryEvent{{Summary: "created", Timestamp: now}},
	}
}

// Touch bumps UpdatedAt, never moving it before CreatedAt or backwards.
func (e *Entry) Touch() {
	now := Now()
	if now.Before(e.UpdatedAt) {
		now = e.UpdatedAt
	}
	if now.Before(e.CreatedAt) {
		now = e.CreatedAt
	}
	e.UpdatedAt = now
}

// AppendHistory records an event and touches the entry.
func (e *Entry) AppendHistory(summary string) {
	e.Touch()
	e.History = append(e.History, HistoryEvent{Summary: summary, Timestamp: e.UpdatedAt})
}

// Field returns the field with the given name.
func (e *Entry) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// SetField replaces the field with the same name or appends a new one.
func (e *Entry) SetField(f Field) {
	for i := range e.Fields {
		if e.Fields[i].Name == f.Name {
			e.Fields[i] = f
			e.AppendHistory("field " + f.Name + " updated")
			return
		}
	}
	e.Fields = append(e.Fields, f)
	e.AppendHistory("field " + f.Name + " added")
}

// AddAttachment stores a copy of data under a fresh attachment id.
func (e *Entry) AddAttachment(name, mimeType string, data []byte) Attachment {
	a := Attachment{
		ID:        uuid.NewString(),
		Name:      name,
		MimeType:  mimeType,
		Data:      slices.Clone(data),
		CreatedAt: Now(),
	}
	e.Attachments = append(e.Attachments, a)
	e.AppendHistory("attachment " + name + " added")
	return a
}

// Attachment returns the attachment with the given id.
func (e *Entry) Attachment(id string) (Attachment, bool) {
	for _, a := range e.Attachments {
		if a.ID == id {
			return a, true
		}
	}
	return Attachment{}, false
}

// AddTag adds tag unless it is already present. It reports whether the tag
// was added.
func (e *Entry) AddTag(tag string) bool {
	if tag == "" || slices.Contains(e.Tags, tag) {
		return false
	}
	e.Tags = append(e.Tags, tag)
	e.AppendHistory("tag " + tag + " added")
	return true
}

// Validate checks the entry invariants.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: entry id is empty", common.ErrInvalidArgument)
	}
	if e.UpdatedAt.Before(e.CreatedAt) {
		return fmt.Errorf("%w: entry %s updated_at precedes created_at", common.ErrInvalidArgument, e.ID)
	}
	seen := make(map[string]struct{}, len(e.Attachments))
	for _, a := range e.Attachments {
		if a.ID == "" {
			return fmt.Errorf("%w: entry %s has an attachment without id", common.ErrInvalidArgument, e.ID)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: entry %s has duplicate attachment id %s", common.ErrInvalidArgument, e.ID, a.ID)
		}
		seen[a.ID] = struct{}{}
	}
	return nil
}
