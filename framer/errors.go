package framer

import "errors"

var (
	// ErrFrameTooLarge is returned when a declared frame length exceeds
	// MaxFrameLength.
	ErrFrameTooLarge = errors.New("framer: frame exceeds maximum length")

	// ErrDecompressionFailure is returned when zlib inflation of a
	// compressed frame's payload fails.
	ErrDecompressionFailure = errors.New("framer: decompression failed")

	// ErrCompressedLengthMismatch is returned when a frame's declared Data
	// Length does not match the actual length of its inflated payload.
	ErrCompressedLengthMismatch = errors.New("framer: compressed length mismatch")
)
