package sarc

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/go-faster/errors"

	"github.com/go-faster/sarc/internal/bin"
)

// Fixed sizes of the container sections.
const (
	sarcHeaderLen = 0x14
	sfatHeaderLen = 0x0C
	sfntHeaderLen = 0x08
	sfatEntryLen  = 0x10
)

// SFAT attribute word: the high flag bit marks a named entry, the low
// bits hold the name-table offset in 4-byte units.
const (
	attrHasName    = 0x01000000
	attrNameOffset = 0x00FFFFFF
)

var (
	magicSARC = []byte("SARC")
	magicSFAT = []byte("SFAT")
	magicSFNT = []byte("SFNT")
)

type sfatRecord struct {
	hash  uint32
	attrs uint32
	start uint32
	end   uint32
}

// Parse decodes a raw SARC container. The input must already be
// decompressed; Read handles Yaz0 and zstd wrapping.
//
// Entry data is copied out of the input, so data may be reused after
// Parse returns.
func Parse(data []byte) (*Archive, error) {
	r := bin.NewReader(data, binary.BigEndian)

	// SARC header. The header length field precedes the byte-order
	// mark, so its bytes are kept raw until the mark fixes the order.
	m, err := r.Take(4)
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "magic")
	}
	if !bytes.Equal(m, magicSARC) {
		return nil, errors.Wrapf(ErrFormat, "magic %q", m)
	}
	rawHeaderLen, err := r.Take(2)
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "header length")
	}
	bom, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "byte order mark")
	}
	order := ByteOrder(bom)
	if !order.IsAByteOrder() {
		return nil, errors.Wrapf(ErrFormat, "byte order mark %#x", bom)
	}
	bo := order.binary()
	r.SetOrder(bo)
	if v := bo.Uint16(rawHeaderLen); v != sarcHeaderLen {
		return nil, errors.Wrapf(ErrFormat, "header length %#x", v)
	}
	fileSize, err := r.Uint32()
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "file size")
	}
	if int64(fileSize) > int64(len(data)) {
		return nil, errors.Wrapf(ErrTruncated, "file size %d exceeds input %d", fileSize, len(data))
	}
	dataOffset, err := r.Uint32()
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "data offset")
	}
	if int64(dataOffset) > int64(len(data)) {
		return nil, errors.Wrapf(ErrIntegrity, "data offset %d exceeds input %d", dataOffset, len(data))
	}
	version, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "version")
	}
	if _, err := r.Take(2); err != nil {
		return nil, errors.Wrap(ErrTruncated, "header padding")
	}

	// SFAT node.
	m, err = r.Take(4)
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "sfat magic")
	}
	if !bytes.Equal(m, magicSFAT) {
		return nil, errors.Wrapf(ErrFormat, "sfat magic %q", m)
	}
	if v, err := r.Uint16(); err != nil {
		return nil, errors.Wrap(ErrTruncated, "sfat header length")
	} else if v != sfatHeaderLen {
		return nil, errors.Wrapf(ErrFormat, "sfat header length %#x", v)
	}
	count, err := r.Uint16()
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "entry count")
	}
	multiplier, err := r.Uint32()
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "hash multiplier")
	}
	records := make([]sfatRecord, count)
	for i := range records {
		rec, err := readRecord(r)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		records[i] = rec
	}

	// SFNT node.
	m, err = r.Take(4)
	if err != nil {
		return nil, errors.Wrap(ErrTruncated, "sfnt magic")
	}
	if !bytes.Equal(m, magicSFNT) {
		return nil, errors.Wrapf(ErrFormat, "sfnt magic %q", m)
	}
	if v, err := r.Uint16(); err != nil {
		return nil, errors.Wrap(ErrTruncated, "sfnt header length")
	} else if v != sfntHeaderLen {
		return nil, errors.Wrapf(ErrFormat, "sfnt header length %#x", v)
	}
	if _, err := r.Take(2); err != nil {
		return nil, errors.Wrap(ErrTruncated, "sfnt padding")
	}
	nameBase := r.Offset()
	nameLimit := int(dataOffset)
	if nameLimit > len(data) {
		nameLimit = len(data)
	}

	files := make([]Entry, 0, count)
	ranges := make([]dataRange, 0, count)
	for i, rec := range records {
		if rec.end < rec.start {
			return nil, errors.Wrapf(ErrIntegrity, "entry %d: range [%d, %d)", i, rec.start, rec.end)
		}
		start := int64(dataOffset) + int64(rec.start)
		end := int64(dataOffset) + int64(rec.end)
		if err := r.Seek(int(start)); err != nil {
			return nil, errors.Wrapf(ErrIntegrity, "entry %d: data start %d exceeds input %d", i, start, r.Len())
		}
		raw, err := r.Take(int(end - start))
		if err != nil {
			return nil, errors.Wrapf(ErrIntegrity, "entry %d: data end %d exceeds input %d", i, end, r.Len())
		}
		ranges = append(ranges, dataRange{index: i, start: start, end: end})

		e := Entry{
			Hash: rec.hash,
			Data: append([]byte(nil), raw...),
		}
		if rec.attrs&attrHasName != 0 {
			off := nameBase + int(rec.attrs&attrNameOffset)*4
			name, err := cstring(data, off, nameLimit)
			if err != nil {
				return nil, errors.Wrapf(err, "entry %d", i)
			}
			e.Name = name
		}
		files = append(files, e)
	}
	if err := checkRanges(ranges); err != nil {
		return nil, err
	}
	if err := checkOrder(files); err != nil {
		return nil, err
	}

	return &Archive{
		ByteOrder:      order,
		HashMultiplier: multiplier,
		Version:        version,
		Files:          files,
	}, nil
}

// dataRange is an entry's absolute data span, tagged with its file
// table index for error reporting.
type dataRange struct {
	index      int
	start, end int64
}

// checkRanges verifies that no two entries share data bytes. Ranges
// need not be laid out in file table order: the writer places data in
// insertion order while records sort by hash, so spans are sorted by
// position before checking adjacency.
func checkRanges(rs []dataRange) error {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].start != rs[j].start {
			return rs[i].start < rs[j].start
		}
		return rs[i].end < rs[j].end
	})
	for i := 1; i < len(rs); i++ {
		if rs[i].start < rs[i-1].end {
			return errors.Wrapf(ErrIntegrity, "entry %d: data overlaps entry %d", rs[i].index, rs[i-1].index)
		}
	}
	return nil
}

func readRecord(r *bin.Reader) (sfatRecord, error) {
	var rec sfatRecord
	v, err := r.Uint32()
	if err != nil {
		return rec, errors.Wrap(ErrTruncated, "hash")
	}
	rec.hash = v
	if v, err = r.Uint32(); err != nil {
		return rec, errors.Wrap(ErrTruncated, "attributes")
	}
	rec.attrs = v
	if v, err = r.Uint32(); err != nil {
		return rec, errors.Wrap(ErrTruncated, "data start")
	}
	rec.start = v
	if v, err = r.Uint32(); err != nil {
		return rec, errors.Wrap(ErrTruncated, "data end")
	}
	rec.end = v
	return rec, nil
}

// cstring reads a null-terminated name from the SFNT region.
func cstring(data []byte, off, limit int) (string, error) {
	if off < 0 || off >= limit {
		return "", errors.Wrapf(ErrIntegrity, "name offset %d outside name table", off)
	}
	end := bytes.IndexByte(data[off:limit], 0)
	if end < 0 {
		return "", errors.Wrapf(ErrIntegrity, "unterminated name at %d", off)
	}
	return string(data[off : off+end]), nil
}
