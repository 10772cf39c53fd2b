package yaz0

const (
	tableBits = 14
	tableSize = 1 << tableBits

	// Walking full chains on highly repetitive input degrades to
	// quadratic; a greedy encoder gains almost nothing past this many
	// candidates.
	maxChainLen = 64
)

// hash3 maps the three upcoming bytes to a candidate table slot.
func hash3(b0, b1, b2 byte) uint32 {
	v := uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)
	return (v * 506832829) >> (32 - tableBits)
}

// Compress encodes src as a Yaz0 stream using a greedy windowed match
// search: at every position the longest prior occurrence within the
// 4096-byte window wins, with ties broken by the nearest distance.
//
// alignment is carried in the first reserved header field as the
// alignment hint of later format variants; it does not affect the
// bitstream. Zero writes a zero field.
func Compress(src []byte, alignment uint32) []byte {
	h := Header{
		DecompressedSize: uint32(len(src)),
		Reserved:         [2]uint32{alignment, 0},
	}
	out := h.append(make([]byte, 0, HeaderSize+len(src)+len(src)/8+1))

	// head and prev store position+1 so the zero value means "no
	// candidate".
	var (
		head [tableSize]int32
		prev = make([]int32, len(src))
	)
	insert := func(pos int) {
		if pos+minMatch > len(src) {
			return
		}
		hv := hash3(src[pos], src[pos+1], src[pos+2])
		prev[pos] = head[hv]
		head[hv] = int32(pos + 1)
	}

	var (
		ctrlPos  = -1
		flagBits = 0
	)
	for pos := 0; pos < len(src); {
		if flagBits == 0 {
			ctrlPos = len(out)
			out = append(out, 0)
			flagBits = 8
		}

		var bestLen, bestDist int
		if pos+minMatch <= len(src) {
			limit := len(src) - pos
			if limit > maxMatch {
				limit = maxMatch
			}
			hv := hash3(src[pos], src[pos+1], src[pos+2])
			chain := maxChainLen
			for cand := int(head[hv]) - 1; cand >= 0 && chain > 0; cand, chain = int(prev[cand])-1, chain-1 {
				if pos-cand > maxDistance {
					break
				}
				if src[cand] != src[pos] || src[cand+1] != src[pos+1] || src[cand+2] != src[pos+2] {
					continue
				}
				// The source may run into the current position: both
				// sides index the same buffer, so an overlapping match
				// compares correctly.
				n := minMatch
				for n < limit && src[cand+n] == src[pos+n] {
					n++
				}
				if n > bestLen {
					bestLen, bestDist = n, pos-cand
					if n == limit {
						break
					}
				}
			}
		}

		if bestLen >= minMatch {
			dist := bestDist - 1
			if bestLen <= maxShortMatch {
				out = append(out, byte(bestLen-2)<<4|byte(dist>>8), byte(dist))
			} else {
				out = append(out, byte(dist>>8), byte(dist), byte(bestLen-lenBias))
			}
			for i := 0; i < bestLen; i++ {
				insert(pos + i)
			}
			pos += bestLen
		} else {
			out[ctrlPos] |= 0x80 >> (8 - flagBits)
			out = append(out, src[pos])
			insert(pos)
			pos++
		}
		flagBits--
	}
	return out
}
