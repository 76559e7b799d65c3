package cryptox

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"golang.org/x/crypto/hkdf"
)

const maxExpandLen = 255 * sha256.Size

// ExpandKey runs HKDF-SHA256 extract-and-expand over ikm and returns length
// bytes. info binds the output to one purpose so the same input key material
// never serves two uses verbatim.
func ExpandKey(ikm, salt, info []byte, length int) ([]byte, error) {
	if len(ikm) == 0 {
		return nil, fmt.Errorf("%w: empty input key material", common.ErrInvalidArgument)
	}
	if length < 1 || length > maxExpandLen {
		return nil, fmt.Errorf("%w: hkdf output length %d out of range", common.ErrInvalidArgument, length)
	}

	r := hkdf.New(sha256.New, ikm, salt, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}
	return out, nil
}
