package sarc

import "github.com/go-faster/errors"

// Error kinds surfaced by Parse, Build and Read. Match with errors.Is;
// wrapping adds the failing field or entry for context.
var (
	// ErrFormat reports input that is not a SARC container at all,
	// like a bad magic or an unexpected header length.
	ErrFormat = errors.New("invalid format")
	// ErrTruncated reports a buffer shorter than a field or record
	// demands.
	ErrTruncated = errors.New("truncated input")
	// ErrIntegrity reports a structurally valid container with broken
	// invariants: hash order violations, overlapping or out-of-range
	// data ranges, name offsets past the name table.
	ErrIntegrity = errors.New("integrity violation")
)
