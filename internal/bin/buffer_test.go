package bin

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferReaderRoundTrip(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		order := order
		t.Run(order.String(), func(t *testing.T) {
			b := Buffer{Order: order}
			b.PutRaw([]byte("MAGC"))
			b.PutUint16(0x14)
			b.PutUint32(0xDEADBEEF)
			b.PutCString("name.bin")
			b.Pad(4)
			b.PadTo(32)
			require.Len(t, b.Buf, 32)

			r := NewReader(b.Buf, order)
			m, err := r.Take(4)
			require.NoError(t, err)
			require.Equal(t, []byte("MAGC"), m)

			v16, err := r.Uint16()
			require.NoError(t, err)
			require.Equal(t, uint16(0x14), v16)

			v32, err := r.Uint32()
			require.NoError(t, err)
			require.Equal(t, uint32(0xDEADBEEF), v32)

			name, err := r.Take(9)
			require.NoError(t, err)
			require.Equal(t, append([]byte("name.bin"), 0), name)
		})
	}
}

func TestBufferPad(t *testing.T) {
	var b Buffer
	b.PutCString("abc")
	b.Pad(4)
	require.Equal(t, []byte{'a', 'b', 'c', 0}, b.Buf)
	// Already aligned: no-op.
	b.Pad(4)
	require.Len(t, b.Buf, 4)
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{1, 2, 3}, binary.BigEndian)
	_, err := r.Uint32()
	require.ErrorIs(t, err, ErrShortBuffer)

	// Failed reads do not advance.
	v, err := r.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), v)

	require.Error(t, r.Seek(4))
	require.NoError(t, r.Seek(0))
	require.Equal(t, 0, r.Offset())
	require.Equal(t, 3, r.Len())
}

func TestReaderSetOrder(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x12, 0x34}, binary.BigEndian)
	v, err := r.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v)

	r.SetOrder(binary.LittleEndian)
	v, err = r.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x3412), v)
}
