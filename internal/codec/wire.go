package codec

import (
	"time"

	"github.com/dmitrijs2005/archivevault/internal/models"
)

// Wire shapes. Integer map keys keep the encoding compact; timestamps are
// int64 milliseconds since the Unix epoch.

type metadataWire struct {
	Version      uint16   `cbor:"1,keyasint"`
	RepositoryID string   `cbor:"2,keyasint"`
	CreatedAt    int64    `cbor:"3,keyasint"`
	UpdatedAt    int64    `cbor:"4,keyasint"`
	Tags         []string `cbor:"5,keyasint"`
}

type payloadWire struct {
	MetadataVersion uint16      `cbor:"1,keyasint"`
	Entries         []entryWire `cbor:"2,keyasint"`
}

type entryWire struct {
	ID          string           `cbor:"1,keyasint"`
	Title       string           `cbor:"2,keyasint"`
	Fields      []fieldWire      `cbor:"3,keyasint"`
	Attachments []attachmentWire `cbor:"4,keyasint"`
	Tags        []string         `cbor:"5,keyasint"`
	History     []historyWire    `cbor:"6,keyasint"`
	CreatedAt   int64            `cbor:"7,keyasint"`
	UpdatedAt   int64            `cbor:"8,keyasint"`
}

type fieldWire struct {
	Name      string `cbor:"1,keyasint"`
	Value     string `cbor:"2,keyasint"`
	Concealed bool   `cbor:"3,keyasint"`
}

type attachmentWire struct {
	ID        string `cbor:"1,keyasint"`
	Name      string `cbor:"2,keyasint"`
	MimeType  string `cbor:"3,keyasint"`
	Data      []byte `cbor:"4,keyasint"`
	CreatedAt int64  `cbor:"5,keyasint"`
}

type historyWire struct {
	Summary   string `cbor:"1,keyasint"`
	Timestamp int64  `cbor:"2,keyasint"`
}

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// convert maps a slice element-wise. Empty input maps to nil so that nil and
// empty collections are indistinguishable after a round trip.
func convert[S, D any](in []S, f func(S) D) []D {
	if len(in) == 0 {
		return nil
	}
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func strs(in []string) []string {
	return convert(in, func(s string) string { return s })
}

func metadataToWire(m models.Metadata) metadataWire {
	return metadataWire{
		Version:      m.Version,
		RepositoryID: m.RepositoryID,
		CreatedAt:    toMillis(m.CreatedAt),
		UpdatedAt:    toMillis(m.UpdatedAt),
		Tags:         strs(m.Tags),
	}
}

func metadataFromWire(w metadataWire) models.Metadata {
	return models.Metadata{
		Version:      w.Version,
		RepositoryID: w.RepositoryID,
		CreatedAt:    fromMillis(w.CreatedAt),
		UpdatedAt:    fromMillis(w.UpdatedAt),
		Tags:         strs(w.Tags),
	}
}

func entryToWire(e models.Entry) entryWire {
	return entryWire{
		ID:    e.ID,
		Title: e.Title,
		Fields: convert(e.Fields, func(f models.Field) fieldWire {
			return fieldWire{Name: f.Name, Value: f.Value, Concealed: f.Concealed}
		}),
		Attachments: convert(e.Attachments, func(a models.Attachment) attachmentWire {
			return attachmentWire{
				ID:        a.ID,
				Name:      a.Name,
				MimeType:  a.MimeType,
				Data:      convert(a.Data, func(b byte) byte { return b }),
				CreatedAt: toMillis(a.CreatedAt),
			}
		}),
		Tags: strs(e.Tags),
		History: convert(e.History, func(h models.HistoryEvent) historyWire {
			return historyWire{Summary: h.Summary, Timestamp: toMillis(h.Timestamp)}
		}),
		CreatedAt: toMillis(e.CreatedAt),
		UpdatedAt: toMillis(e.UpdatedAt),
	}
}

func entryFromWire(w entryWire) models.Entry {
	return models.Entry{
		ID:    w.ID,
		Title: w.Title,
		Fields: convert(w.Fields, func(f fieldWire) models.Field {
			return models.Field{Name: f.Name, Value: f.Value, Concealed: f.Concealed}
		}),
		Attachments: convert(w.Attachments, func(a attachmentWire) models.Attachment {
			return models.Attachment{
				ID:        a.ID,
				Name:      a.Name,
				MimeType:  a.MimeType,
				Data:      convert(a.Data, func(b byte) byte { return b }),
				CreatedAt: fromMillis(a.CreatedAt),
			}
		}),
		Tags: strs(w.Tags),
		History: convert(w.History, func(h historyWire) models.HistoryEvent {
			return models.HistoryEvent{Summary: h.Summary, Timestamp: fromMillis(h.Timestamp)}
		}),
		CreatedAt: fromMillis(w.CreatedAt),
		UpdatedAt: fromMillis(w.UpdatedAt),
	}
}
