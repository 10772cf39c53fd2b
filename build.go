package sarc

import (
	"math"
	"path"
	"strings"

	"github.com/go-faster/errors"

	"github.com/go-faster/sarc/internal/bin"
)

// DefaultAlignment is the minimum byte alignment of entry data in the
// serialized archive.
const DefaultAlignment uint32 = 4

// AlignTable maps lower-case file extensions with the leading dot
// (".bflyt") to the byte alignment entry data must start at. Alignments
// must be powers of two; values below DefaultAlignment are raised to
// it. A nil table aligns everything to DefaultAlignment.
type AlignTable map[string]uint32

// For returns the alignment for a file name.
func (t AlignTable) For(name string) uint32 {
	if a, ok := t[strings.ToLower(path.Ext(name))]; ok && a > DefaultAlignment {
		return a
	}
	return DefaultAlignment
}

// BOM value as read in the archive's own byte order. Serializing it
// through the selected order produces the two legal encodings.
const bomValue = 0xFEFF

type entryLayout struct {
	nameOff uint32 // 4-byte units into the name table
	hasName bool
	start   uint32 // relative to the data region
	end     uint32
}

// Build serializes an archive. Entries are sorted by hash; hashes of
// named entries are recomputed from the name so the stored invariant
// cannot drift. Entry data starts at offsets satisfying the alignment
// table, measured on the absolute file offset.
//
// Build fails only on inputs no valid archive can represent: named
// hash collisions (duplicate names included), more than 65535 entries,
// or a non-power-of-two alignment.
func Build(a *Archive, table AlignTable) ([]byte, error) {
	mult := a.HashMultiplier
	if mult == 0 {
		mult = DefaultHashMultiplier
	}
	version := a.Version
	if version == 0 {
		version = DefaultVersion
	}
	if len(a.Files) > math.MaxUint16 {
		return nil, errors.Wrapf(ErrIntegrity, "%d entries exceed the 16-bit count", len(a.Files))
	}

	files := make([]Entry, len(a.Files))
	copy(files, a.Files)
	for i := range files {
		if files[i].Name != "" {
			files[i].Hash = Hash(files[i].Name, mult)
		}
	}
	sortEntries(files)
	if err := checkOrder(files); err != nil {
		return nil, err
	}

	// Name table in sorted encounter order, each name null-terminated
	// at a 4-byte-aligned offset. Duplicate names cannot occur here:
	// they hash equal and checkOrder already rejected them.
	lay := make([]entryLayout, len(files))
	var names bin.Buffer
	for i := range files {
		name := files[i].Name
		if name == "" {
			continue
		}
		off := uint32(names.Len() / 4)
		if off > attrNameOffset {
			return nil, errors.Wrapf(ErrIntegrity, "name table offset overflow at %q", name)
		}
		names.PutCString(name)
		names.Pad(4)
		lay[i].nameOff = off
		lay[i].hasName = true
	}

	dataOffset := uint32(sarcHeaderLen + sfatHeaderLen + len(files)*sfatEntryLen + sfntHeaderLen + names.Len())
	var cur uint32
	for i := range files {
		align := table.For(files[i].Name)
		if align&(align-1) != 0 {
			return nil, errors.Wrapf(ErrIntegrity, "alignment %d for %q is not a power of two", align, files[i].Name)
		}
		abs := alignUp(dataOffset+cur, align)
		lay[i].start = abs - dataOffset
		lay[i].end = lay[i].start + uint32(len(files[i].Data))
		cur = lay[i].end
	}
	fileSize := dataOffset + cur

	b := bin.Buffer{
		Buf:   make([]byte, 0, fileSize),
		Order: a.ByteOrder.binary(),
	}
	b.PutRaw(magicSARC)
	b.PutUint16(sarcHeaderLen)
	b.PutUint16(bomValue)
	b.PutUint32(fileSize)
	b.PutUint32(dataOffset)
	b.PutUint16(version)
	b.PutUint16(0)

	b.PutRaw(magicSFAT)
	b.PutUint16(sfatHeaderLen)
	b.PutUint16(uint16(len(files)))
	b.PutUint32(mult)
	for i := range files {
		b.PutUint32(files[i].Hash)
		var attrs uint32
		if lay[i].hasName {
			attrs = attrHasName | lay[i].nameOff
		}
		b.PutUint32(attrs)
		b.PutUint32(lay[i].start)
		b.PutUint32(lay[i].end)
	}

	b.PutRaw(magicSFNT)
	b.PutUint16(sfntHeaderLen)
	b.PutUint16(0)
	b.PutRaw(names.Buf)

	for i := range files {
		b.PadTo(int(dataOffset + lay[i].start))
		b.PutRaw(files[i].Data)
	}
	return b.Buf, nil
}

func alignUp(v, align uint32) uint32 {
	return (v + align - 1) &^ (align - 1)
}
