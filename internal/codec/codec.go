// Package codec encodes repository metadata and entry payloads as CBOR.
//
// Decoding is strict: duplicate map keys, indefinite-length items and CBOR
// tags are rejected, as is trailing data. Such input is reported as
// common.ErrCorruptFormat.
package codec

import (
	"fmt"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/dmitrijs2005/archivevault/internal/models"
	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("codec: cbor encoder options: %v", err))
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		TagsMd:      cbor.TagsForbidden,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("codec: cbor decoder options: %v", err))
	}
}

// EncodeMetadata encodes the repository header.
func EncodeMetadata(m models.Metadata) ([]byte, error) {
	b, err := encMode.Marshal(metadataToWire(m))
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return b, nil
}

// DecodeMetadata decodes a repository header produced by EncodeMetadata.
func DecodeMetadata(b []byte) (models.Metadata, error) {
	var w metadataWire
	if err := decMode.Unmarshal(b, &w); err != nil {
		return models.Metadata{}, fmt.Errorf("%w: decode metadata: %w", common.ErrCorruptFormat, err)
	}
	return metadataFromWire(w), nil
}

// EncodePayload encodes the entries tagged with the metadata version they
// were written under.
func EncodePayload(metadataVersion uint16, entries []models.Entry) ([]byte, error) {
	p := payloadWire{
		MetadataVersion: metadataVersion,
		Entries:         convert(entries, entryToWire),
	}
	b, err := encMode.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return b, nil
}

// DecodePayload decodes entries and checks that the payload was written under
// expectedVersion, failing with common.ErrUnsupportedVersion otherwise.
func DecodePayload(b []byte, expectedVersion uint16) ([]models.Entry, error) {
	var p payloadWire
	if err := decMode.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", common.ErrCorruptFormat, err)
	}
	if p.MetadataVersion != expectedVersion {
		return nil, fmt.Errorf("%w: payload metadata version %d, header says %d",
			common.ErrUnsupportedVersion, p.MetadataVersion, expectedVersion)
	}
	return convert(p.Entries, entryFromWire), nil
}
