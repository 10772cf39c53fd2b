package yaz0

import (
	"github.com/go-faster/errors"
)

// Decompress expands a Yaz0 stream and returns exactly
// Header.DecompressedSize bytes. Trailing flag bits past the final
// output byte are ignored.
func Decompress(data []byte) ([]byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}

	var (
		src = data[HeaderSize:]
		pos = 0
		// Pre-sized: reallocation during the copy loop dominates the
		// cost otherwise.
		out = make([]byte, 0, h.DecompressedSize)

		ctrl      byte
		validBits = 0
	)
	for uint32(len(out)) < h.DecompressedSize {
		if validBits == 0 {
			if pos >= len(src) {
				return nil, errors.Wrapf(ErrTruncated, "control byte at %d", pos)
			}
			ctrl = src[pos]
			pos++
			validBits = 8
		}
		if ctrl&0x80 != 0 {
			// Literal.
			if pos >= len(src) {
				return nil, errors.Wrapf(ErrTruncated, "literal at %d", pos)
			}
			out = append(out, src[pos])
			pos++
		} else {
			if pos+2 > len(src) {
				return nil, errors.Wrapf(ErrTruncated, "back-reference at %d", pos)
			}
			b1, b2 := src[pos], src[pos+1]
			pos += 2

			distance := int(b1&0x0F)<<8 | int(b2)
			back := len(out) - (distance + 1)
			if back < 0 {
				return nil, errors.Wrapf(ErrCorruptReference, "distance %d at output %d", distance+1, len(out))
			}

			length := int(b1 >> 4)
			if length == 0 {
				if pos >= len(src) {
					return nil, errors.Wrapf(ErrTruncated, "length byte at %d", pos)
				}
				length = int(src[pos]) + lenBias
				pos++
			} else {
				length += 2
			}

			// Byte at a time: source and destination advance together,
			// so a reference may overlap its own output and repeat a
			// just-written pattern.
			for i := 0; i < length && uint32(len(out)) < h.DecompressedSize; i++ {
				out = append(out, out[back+i])
			}
		}
		ctrl <<= 1
		validBits--
	}
	return out, nil
}
