package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/google/uuid"
)

// MetadataVersion is the metadata/payload schema version this build writes
// and understands.
const MetadataVersion uint16 = 1

// Metadata is the repository header. It is stored unencrypted, but
// authenticated, so tooling can read it without the password.
type Metadata struct {
	Version uint16
	// RepositoryID is generated once and never changes.
	RepositoryID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Tags         []string
}

// Repository is the aggregate root of a vault. It is not safe for concurrent
// mutation.
type Repository struct {
	Metadata Metadata
	Entries  []Entry
}

// NewRepository creates an empty repository with a fresh id.
func NewRepository(tags ...string) *Repository {
	now := Now()
	return &Repository{
		Metadata: Metadata{
			Version:      MetadataVersion,
			RepositoryID: uuid.NewString(),
			CreatedAt:    now,
			UpdatedAt:    now,
			Tags:         tags,
		},
	}
}

// Touch bumps Metadata.UpdatedAt. It never moves the timestamp backwards
// nor before CreatedAt.
func (r *Repository) Touch() {
	now := Now()
	if now.Before(r.Metadata.UpdatedAt) {
		now = r.Metadata.UpdatedAt
	}
	if now.Before(r.Metadata.CreatedAt) {
		now = r.Metadata.CreatedAt
	}
	r.Metadata.UpdatedAt = now
}

// AddEntry appends e; its id must not already be present.
func (r *Repository) AddEntry(e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("%w: entry id is empty", common.ErrInvalidArgument)
	}
	if _, err := r.FindEntry(e.ID); err == nil {
		return fmt.Errorf("entry %s: %w", e.ID, common.ErrorAlreadyExists)
	}
	r.Entries = append(r.Entries, e)
	r.Touch()
	return nil
}

// FindEntry returns a pointer into Entries for the given id. The pointer is
// invalidated by AddEntry and RemoveEntry.
func (r *Repository) FindEntry(id string) (*Entry, error) {
	for i := range r.Entries {
		if r.Entries[i].ID == id {
			return &r.Entries[i], nil
		}
	}
	return nil, fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
}

// RemoveEntry deletes the entry with the given id.
func (r *Repository) RemoveEntry(id string) error {
	for i := range r.Entries {
		if r.Entries[i].ID == id {
			r.Entries = append(r.Entries[:i], r.Entries[i+1:]...)
			r.Touch()
			return nil
		}
	}
	return fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
}

// Validate checks the repository and all entry invariants. A metadata version
// other than MetadataVersion is reported as common.ErrUnsupportedVersion.
func (r *Repository) Validate() error {
	m := r.Metadata
	if m.RepositoryID == "" {
		return fmt.Errorf("%w: repository id is empty", common.ErrInvalidArgument)
	}
	if m.UpdatedAt.Before(m.CreatedAt) {
		return fmt.Errorf("%w: repository updated_at precedes created_at", common.ErrInvalidArgument)
	}
	if m.Version != MetadataVersion {
		return fmt.Errorf("%w: metadata version %d, want %d", common.ErrUnsupportedVersion, m.Version, MetadataVersion)
	}
	seen := make(map[string]struct{}, len(r.Entries))
	for i := range r.Entries {
		e := &r.Entries[i]
		if err := e.Validate(); err != nil {
			return err
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate entry id %s", common.ErrInvalidArgument, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
