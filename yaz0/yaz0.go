// Package yaz0 implements the Yaz0 compression format, an LZ77-style
// codec with a 4096-byte back-reference window used to wrap SARC
// archives and other game assets.
package yaz0

import (
	"encoding/binary"

	"github.com/go-faster/errors"
)

// HeaderSize is the fixed size of the stream header in bytes.
const HeaderSize = 16

var magic = [4]byte{'Y', 'a', 'z', '0'}

const (
	// Distance field is 12 bits, so references reach at most 4096
	// bytes back.
	maxDistance = 0x1000
	minMatch    = 3
	// Lengths 3..17 encode directly in the 4-bit nibble; 18..273 take
	// the nibble-zero form with an extra byte biased by 0x12.
	maxShortMatch = 0x11
	maxMatch      = 0x111
	lenBias       = 0x12
)

// Error kinds surfaced by Decompress. Match with errors.Is.
var (
	// ErrFormat reports input that does not start with the Yaz0 magic.
	ErrFormat = errors.New("not a Yaz0 stream")
	// ErrTruncated reports a stream body shorter than its control
	// flags demand.
	ErrTruncated = errors.New("truncated input")
	// ErrCorruptReference reports a back-reference pointing before the
	// start of the output.
	ErrCorruptReference = errors.New("corrupt back-reference")
)

// Header is the fixed 16-byte stream header. All fields are
// big-endian regardless of the payload's own conventions.
//
// The semantics of the two reserved fields vary across format
// revisions: later variants store an alignment hint in the first, older
// ones leave both zero. They are passed through opaquely.
type Header struct {
	DecompressedSize uint32
	Reserved         [2]uint32
}

// ParseHeader decodes the stream header from data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < 4 {
		return Header{}, errors.Wrap(ErrTruncated, "magic")
	}
	if [4]byte{data[0], data[1], data[2], data[3]} != magic {
		return Header{}, errors.Wrapf(ErrFormat, "magic %q", data[:4])
	}
	if len(data) < HeaderSize {
		return Header{}, errors.Wrap(ErrTruncated, "header")
	}
	return Header{
		DecompressedSize: binary.BigEndian.Uint32(data[4:]),
		Reserved: [2]uint32{
			binary.BigEndian.Uint32(data[8:]),
			binary.BigEndian.Uint32(data[12:]),
		},
	}, nil
}

func (h Header) append(dst []byte) []byte {
	dst = append(dst, magic[:]...)
	dst = appendUint32(dst, h.DecompressedSize)
	dst = appendUint32(dst, h.Reserved[0])
	dst = appendUint32(dst, h.Reserved[1])
	return dst
}

func appendUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// Is reports whether data starts with the Yaz0 magic.
func Is(data []byte) bool {
	return len(data) >= 4 && [4]byte{data[0], data[1], data[2], data[3]} == magic
}
