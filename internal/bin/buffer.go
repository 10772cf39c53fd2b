// Package bin implements SARC binary encoding primitives.
//
// The container's byte order is picked at parse time from the header
// byte-order mark, so both Buffer and Reader carry an explicit
// binary.ByteOrder instead of assuming one.
package bin

import "encoding/binary"

// Buffer implements fixed-width integer encoding to a byte slice.
type Buffer struct {
	Buf   []byte
	Order binary.ByteOrder
}

// Len returns current buffer length.
func (b *Buffer) Len() int {
	return len(b.Buf)
}

// Reset buffer to zero length.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// PutRaw writes v as raw bytes to buffer.
func (b *Buffer) PutRaw(v []byte) {
	b.Buf = append(b.Buf, v...)
}

// PutUint16 encodes x in the buffer's byte order.
func (b *Buffer) PutUint16(x uint16) {
	buf := make([]byte, 2)
	b.Order.PutUint16(buf, x)
	b.Buf = append(b.Buf, buf...)
}

// PutUint32 encodes x in the buffer's byte order.
func (b *Buffer) PutUint32(x uint32) {
	buf := make([]byte, 4)
	b.Order.PutUint32(buf, x)
	b.Buf = append(b.Buf, buf...)
}

// PutCString writes s followed by a NUL terminator.
func (b *Buffer) PutCString(s string) {
	b.Buf = append(b.Buf, s...)
	b.Buf = append(b.Buf, 0)
}

// Pad zero-fills the buffer up to a multiple of align bytes.
func (b *Buffer) Pad(align int) {
	for len(b.Buf)%align != 0 {
		b.Buf = append(b.Buf, 0)
	}
}

// PadTo zero-fills the buffer up to absolute length n.
func (b *Buffer) PadTo(n int) {
	for len(b.Buf) < n {
		b.Buf = append(b.Buf, 0)
	}
}
