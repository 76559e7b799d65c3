package binx

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dmitrijs2005/archivevault/internal/common"
)

// Writer appends little-endian fields to a growing buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with capacity preallocated for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// WriteU16 appends v as two little-endian bytes.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteU32 appends v as four little-endian bytes.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Write appends b unchanged.
func (w *Writer) Write(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteBlock writes a uint32 length prefix followed by b.
func (w *Writer) WriteBlock(b []byte, what string) error {
	if uint64(len(b)) > math.MaxUint32 {
		return fmt.Errorf("%w: %s is %d bytes, exceeds uint32 length prefix", common.ErrInvalidArgument, what, len(b))
	}
	w.WriteU32(uint32(len(b)))
	w.Write(b)
	return nil
}

// Len is the number of bytes written.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte { return w.buf }
