package sarc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildEmptyArchive(t *testing.T) {
	data, err := Build(&Archive{ByteOrder: ByteOrderBig}, nil)
	require.NoError(t, err)
	// Three bare headers and nothing else.
	require.Len(t, data, sarcHeaderLen+sfatHeaderLen+sfntHeaderLen)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Empty(t, parsed.Files)
}

func TestBuildRoundTrip(t *testing.T) {
	files := map[string][]byte{
		"texture.bin": {0xDE, 0xAD, 0xBE, 0xEF, 0x00},
		"model.dat":   []byte("vertices"),
		"empty.txt":   {},
		"script.lua":  []byte("return 42"),
	}
	for _, order := range ByteOrderValues() {
		order := order
		t.Run(order.String(), func(t *testing.T) {
			a := New(order, files)
			data, err := Build(a, nil)
			require.NoError(t, err)

			parsed, err := Parse(data)
			require.NoError(t, err)
			require.Equal(t, order, parsed.ByteOrder)
			require.Len(t, parsed.Files, len(files))
			for name, content := range files {
				e, ok := parsed.Lookup(name)
				require.True(t, ok, name)
				require.Equal(t, content, e.Data)
			}
		})
	}
}

func TestBuildByteOrderMark(t *testing.T) {
	big, err := Build(&Archive{ByteOrder: ByteOrderBig}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFE, 0xFF}, big[6:8])

	little, err := Build(&Archive{ByteOrder: ByteOrderLittle}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFE}, little[6:8])
}

func TestBuildAlignment(t *testing.T) {
	a := New(ByteOrderBig, map[string][]byte{
		"a.bin": {1},
		"b.bin": {2, 3, 4},
		"c.txt": {5},
	})
	table := AlignTable{".bin": 32}
	data, err := Build(a, table)
	require.NoError(t, err)

	// Walk the raw SFAT records and check each data start offset
	// against the alignment its extension demands.
	dataOffset := binary.BigEndian.Uint32(data[12:])
	count := int(binary.BigEndian.Uint16(data[0x1A:]))
	require.Equal(t, 3, count)
	nameBase := sarcHeaderLen + sfatHeaderLen + count*sfatEntryLen + sfntHeaderLen
	for i := 0; i < count; i++ {
		rec := data[0x20+i*sfatEntryLen:]
		attrs := binary.BigEndian.Uint32(rec[4:])
		start := binary.BigEndian.Uint32(rec[8:])
		require.NotZero(t, attrs&uint32(attrHasName))

		nameOff := nameBase + int(attrs&attrNameOffset)*4
		name := ""
		for data[nameOff+len(name)] != 0 {
			name += string(data[nameOff+len(name)])
		}
		require.Zero(t, (dataOffset+start)%table.For(name), "entry %q", name)
	}

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed.Files, 3)
}

func TestBuildHashCollision(t *testing.T) {
	a := &Archive{
		ByteOrder: ByteOrderBig,
		Files: []Entry{
			{Name: "same.bin", Data: []byte("one")},
			{Name: "same.bin", Data: []byte("two")},
		},
	}
	_, err := Build(a, nil)
	require.ErrorIs(t, err, ErrIntegrity)
}

func TestBuildBadAlignment(t *testing.T) {
	a := New(ByteOrderBig, map[string][]byte{"a.bin": {1}})
	_, err := Build(a, AlignTable{".bin": 24})
	require.ErrorIs(t, err, ErrIntegrity)
}

func TestBuildNamelessEntry(t *testing.T) {
	a := &Archive{
		ByteOrder: ByteOrderBig,
		Files: []Entry{
			{Hash: 0xDEADBEEF, Data: []byte("payload")},
		},
	}
	data, err := Build(a, nil)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed.Files, 1)
	require.Empty(t, parsed.Files[0].Name)
	require.Equal(t, uint32(0xDEADBEEF), parsed.Files[0].Hash)
	require.Equal(t, []byte("payload"), parsed.Files[0].Data)
}

func TestBuildPreservesMetadata(t *testing.T) {
	a := &Archive{
		ByteOrder:      ByteOrderLittle,
		HashMultiplier: 0x7F,
		Version:        0x0200,
		Files: []Entry{
			{Name: "file.bin", Data: []byte("x")},
		},
	}
	data, err := Build(a, nil)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, uint32(0x7F), parsed.HashMultiplier)
	require.Equal(t, uint16(0x0200), parsed.Version)
	require.Equal(t, Hash("file.bin", 0x7F), parsed.Files[0].Hash)

	e, ok := parsed.Lookup("file.bin")
	require.True(t, ok)
	require.Equal(t, []byte("x"), e.Data)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	a := &Archive{
		ByteOrder: ByteOrderBig,
		Files: []Entry{
			{Name: "z.bin", Data: []byte("z")},
			{Name: "a.bin", Data: []byte("a")},
		},
	}
	_, err := Build(a, nil)
	require.NoError(t, err)
	// Build sorts a copy: caller order is untouched.
	require.Equal(t, "z.bin", a.Files[0].Name)
	require.Equal(t, "a.bin", a.Files[1].Name)
}
