// Package binx provides a bounds-checked little-endian cursor over byte
// slices. Every read reports common.ErrTruncated instead of panicking when
// the buffer runs out.
package binx

import (
	"encoding/binary"
	"fmt"

	"github.com/dmitrijs2005/archivevault/internal/common"
)

// Reader consumes a byte slice front to back.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Offset is the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining is the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// ReadExact returns the next n bytes. The result aliases the underlying buffer.
func (r *Reader) ReadExact(n int, what string) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: %s needs %d bytes at offset %d, %d remaining",
			common.ErrTruncated, what, n, r.off, r.Remaining())
	}
	b := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16(what string) (uint16, error) {
	b, err := r.ReadExact(2, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32(what string) (uint32, error) {
	b, err := r.ReadExact(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadBlock reads a uint32 length prefix followed by that many bytes.
func (r *Reader) ReadBlock(what string) ([]byte, error) {
	n, err := r.ReadU32(what + " length")
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: %s declares %d bytes, %d remaining",
			common.ErrTruncated, what, n, r.Remaining())
	}
	return r.ReadExact(int(n), what)
}
