package common

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenerateRandBytes reads size bytes from r. A nil reader means crypto/rand.
// A short read is reported as ErrRandomness; callers must not fall back to
// weaker sources.
func GenerateRandBytes(r io.Reader, size int) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomness, err)
	}
	return b, nil
}

// WipeByteArray overwrites b with zeros. Used for passwords and derived keys
// once they are no longer needed. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
