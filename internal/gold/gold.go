// Package gold implements golden files for binary layout tests.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// Bytes checks data against the golden file, rewriting it when -update
// is set.
func Bytes(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	if Update {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("golden dir: %+v", err)
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			t.Fatalf("golden write %s: %+v", path.Join(elems...), err)
		}
		return
	}
	if want := ReadFile(t, elems...); !bytes.Equal(want, data) {
		t.Errorf("golden mismatch %s: got %d bytes, want %d", path.Join(elems...), len(data), len(want))
	}
}
