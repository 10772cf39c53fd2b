// Package sarc reads and writes SARC archives, a flat hash-indexed
// container for named binary blobs used by game-asset toolchains.
//
// Archives are optionally wrapped in Yaz0 or zstd compression; Read
// detects the wrapping by magic and unwraps it before parsing.
package sarc

import (
	"encoding/binary"
	"sort"

	"github.com/go-faster/errors"
)

//go:generate go run github.com/dmarkham/enumer -type ByteOrder -trimprefix ByteOrder -output byteorder_gen.go

// ByteOrder selects the endianness of every multi-byte integer in an
// archive. It is fixed by the byte-order mark in the SARC header and
// applies to the container only, not to embedded file payloads.
type ByteOrder uint16

// Legal byte-order mark values.
const (
	ByteOrderBig    ByteOrder = 0xFEFF
	ByteOrderLittle ByteOrder = 0xFFFE
)

func (b ByteOrder) binary() binary.ByteOrder {
	if b == ByteOrderLittle {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// DefaultHashMultiplier is the multiplier of the SFAT name hash used by
// every known producer. Archives with a different multiplier are valid
// and round-trip unchanged.
const DefaultHashMultiplier uint32 = 0x65

// DefaultVersion is the format version written for new archives.
const DefaultVersion uint16 = 0x0100

// Hash computes the SFAT name hash: an unsigned 32-bit
// multiply-accumulate over the characters of name with wraparound.
//
// Parse validates stored hashes against it and Build recomputes it, so
// the two sides can never disagree.
func Hash(name string, multiplier uint32) uint32 {
	var h uint32
	for _, r := range name {
		h = h*multiplier + uint32(r)
	}
	return h
}

// Entry is a single file stored in an archive. Name is empty when the
// entry was stored hash-only. Data is owned by the entry.
//
// Entries are not mutated after creation; edits produce a new Archive.
type Entry struct {
	Name string
	Hash uint32
	Data []byte
}

// Archive is the in-memory form of a SARC container.
//
// Files are ordered by ascending Hash. The format has no separate
// insertion order: the on-disk order is the hash order.
type Archive struct {
	ByteOrder      ByteOrder
	HashMultiplier uint32
	Version        uint16
	Files          []Entry
}

// New constructs an archive from (name, data) pairs with the default
// hash multiplier and version. Entries come out sorted by hash.
func New(order ByteOrder, files map[string][]byte) *Archive {
	a := &Archive{
		ByteOrder:      order,
		HashMultiplier: DefaultHashMultiplier,
		Version:        DefaultVersion,
	}
	for name, data := range files {
		a.Files = append(a.Files, Entry{
			Name: name,
			Hash: Hash(name, a.HashMultiplier),
			Data: data,
		})
	}
	sortEntries(a.Files)
	return a
}

// Lookup finds the entry for name by its hash.
func (a *Archive) Lookup(name string) (Entry, bool) {
	mult := a.HashMultiplier
	if mult == 0 {
		mult = DefaultHashMultiplier
	}
	h := Hash(name, mult)
	i := sort.Search(len(a.Files), func(i int) bool {
		return a.Files[i].Hash >= h
	})
	for ; i < len(a.Files) && a.Files[i].Hash == h; i++ {
		if a.Files[i].Name == name {
			return a.Files[i], true
		}
	}
	return Entry{}, false
}

func sortEntries(files []Entry) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Hash < files[j].Hash
	})
}

// checkOrder verifies the hash sort invariant. Equal neighbor hashes
// are tolerated only when both entries are nameless: a named collision
// breaks hash lookup.
func checkOrder(files []Entry) error {
	for i := 1; i < len(files); i++ {
		prev, cur := &files[i-1], &files[i]
		if cur.Hash < prev.Hash {
			return errors.Wrapf(ErrIntegrity, "hash order: %#x after %#x", cur.Hash, prev.Hash)
		}
		if cur.Hash == prev.Hash && (cur.Name != "" || prev.Name != "") {
			return errors.Wrapf(ErrIntegrity, "hash collision %#x between named entries", cur.Hash)
		}
	}
	return nil
}
