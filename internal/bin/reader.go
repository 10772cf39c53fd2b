package bin

import (
	"encoding/binary"

	"github.com/go-faster/errors"
)

// ErrShortBuffer reports a read past the end of the underlying slice.
// Every Reader failure wraps it.
var ErrShortBuffer = errors.New("short buffer")

// Reader decodes fixed-width integers from a byte slice. Unlike a
// stream reader it supports absolute seeks, which SARC needs: section
// offsets in the header are absolute.
type Reader struct {
	buf   []byte
	off   int
	Order binary.ByteOrder
}

// NewReader initializes a Reader over buf. Order may be changed later
// via SetOrder once the byte-order mark is known.
func NewReader(buf []byte, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, Order: order}
}

// SetOrder switches the byte order for subsequent reads.
func (r *Reader) SetOrder(order binary.ByteOrder) {
	r.Order = order
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.off
}

// Len returns the length of the underlying slice.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Seek moves the read position to an absolute offset.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.buf) {
		return errors.Wrapf(ErrShortBuffer, "seek to %d of %d", off, len(r.buf))
	}
	r.off = off
	return nil
}

// Take returns the next n bytes without copying and advances.
//
// Do not retain the returned slice past the lifetime of the input.
func (r *Reader) Take(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.buf) {
		return nil, errors.Wrapf(ErrShortBuffer, "need %d at %d of %d", n, r.off, len(r.buf))
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v, nil
}

// Uint16 decodes a 16-bit integer in the current byte order.
func (r *Reader) Uint16() (uint16, error) {
	v, err := r.Take(2)
	if err != nil {
		return 0, err
	}
	return r.Order.Uint16(v), nil
}

// Uint32 decodes a 32-bit integer in the current byte order.
func (r *Reader) Uint32() (uint32, error) {
	v, err := r.Take(4)
	if err != nil {
		return 0, err
	}
	return r.Order.Uint32(v), nil
}
