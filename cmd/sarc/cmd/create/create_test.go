package create

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectInputs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	write := func(p string, data []byte) string {
		t.Helper()
		require.NoError(t, os.WriteFile(p, data, 0o644))
		return p
	}
	a := write(filepath.Join(dir, "a.txt"), []byte("hello"))
	b := write(filepath.Join(dir, "b.bin"), []byte{0x00, 0x01, 0x02})
	shadow := write(filepath.Join(sub, "a.txt"), []byte("other"))

	t.Run("OK", func(t *testing.T) {
		files, err := collectInputs([]string{a, b})
		require.NoError(t, err)
		require.Equal(t, map[string][]byte{
			"a.txt": []byte("hello"),
			"b.bin": {0x00, 0x01, 0x02},
		}, files)
	})
	t.Run("DuplicateName", func(t *testing.T) {
		// Same base name from different directories.
		_, err := collectInputs([]string{a, b, shadow})
		require.ErrorContains(t, err, `duplicate entry name "a.txt"`)
	})
	t.Run("Missing", func(t *testing.T) {
		_, err := collectInputs([]string{filepath.Join(dir, "nope")})
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
