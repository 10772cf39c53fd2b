package sarc

import (
	"bytes"
	"os"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"

	"github.com/go-faster/sarc/yaz0"
)

//go:generate go run github.com/dmarkham/enumer -type Compression -trimprefix Compression -output compression_gen.go

// Compression selects the outer wrapping of a serialized archive.
type Compression byte

const (
	CompressionNone Compression = iota
	CompressionYaz0
	CompressionZstd
)

// zstd frame magic.
var magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Read parses data as a SARC archive, transparently unwrapping Yaz0 or
// zstd compression detected by magic sniff.
func Read(data []byte) (*Archive, error) {
	switch {
	case yaz0.Is(data):
		dec, err := yaz0.Decompress(data)
		if err != nil {
			return nil, errors.Wrap(err, "yaz0")
		}
		return Parse(dec)
	case bytes.HasPrefix(data, magicZstd):
		r, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, errors.Wrap(err, "zstd reader")
		}
		defer r.Close()
		dec, err := r.DecodeAll(data, nil)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return Parse(dec)
	default:
		return Parse(data)
	}
}

// WriteOptions configures Encode and WriteFile.
type WriteOptions struct {
	// Align supplies per-extension data alignments; nil means the
	// default minimum for every entry.
	Align AlignTable
	// Compression wraps the serialized container. None by default.
	Compression Compression
	// Alignment is the hint carried in the Yaz0 header by later format
	// variants. Zero leaves the field empty. Ignored unless
	// Compression is CompressionYaz0.
	Alignment uint32
}

// Encode builds an archive and applies the configured outer
// compression.
func Encode(a *Archive, opt WriteOptions) ([]byte, error) {
	raw, err := Build(a, opt.Align)
	if err != nil {
		return nil, errors.Wrap(err, "build")
	}
	switch opt.Compression {
	case CompressionNone:
		return raw, nil
	case CompressionYaz0:
		return yaz0.Compress(raw, opt.Alignment), nil
	case CompressionZstd:
		w, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderConcurrency(1),
			zstd.WithLowerEncoderMem(true),
		)
		if err != nil {
			return nil, errors.Wrap(err, "zstd writer")
		}
		defer w.Close()
		return w.EncodeAll(raw, nil), nil
	default:
		return nil, errors.Errorf("unknown compression %v", opt.Compression)
	}
}

// ReadFile reads an archive from disk, compressed or not.
func ReadFile(name string) (*Archive, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	a, err := Read(data)
	if err != nil {
		return nil, errors.Wrapf(err, "file %q", name)
	}
	return a, nil
}

// WriteFile builds an archive and writes it to disk.
func WriteFile(name string, a *Archive, opt WriteOptions) error {
	data, err := Encode(a, opt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}
