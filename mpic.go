// Package mpic implements the mPic lossy image codec: a fixed 9-byte
// header followed by a sequence of 8x8-pixel blocks, each compressed
// independently with one of three strategies chosen by size (see package
// chunkcodec). It is designed for small, memory-constrained decoders —
// the decode hot path in this package allocates nothing beyond the
// caller-requested output buffer.
//
// The package exposes a small public orchestration surface (Encode,
// NewDecoder, and the Decoder's several output-shape methods) built on
// leaf packages that do the real work (colorspace, chunkcodec, and the
// internal block/mosaic packages), with two narrow exported error values
// rather than a rich per-cause error hierarchy.
package mpic

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when encode/decode arguments violate their
// preconditions: a too-small buffer, zero dimensions, dimensions not a
// multiple of 8, or dimensions outside the supported range.
var ErrInvalidInput = errors.New("mpic: invalid input")

// ErrInvalidData is returned when a byte stream being decoded violates
// the mPic format: bad magic, unsupported version, truncated or
// malformed chunk data.
var ErrInvalidData = errors.New("mpic: invalid data")

// wrapInvalidData wraps an underlying chunk decode error so callers can
// still match it with errors.Is(err, ErrInvalidData), while the specific
// cause's message stays visible in the error text (it is formatted with
// %v, so it is not itself reachable through errors.Is/As).
func wrapInvalidData(cause error) error {
	return fmt.Errorf("%w: %v", ErrInvalidData, cause)
}
