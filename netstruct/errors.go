package netstruct

import "errors"

// Codec-level error taxonomy. Framer errors live in package framer and
// dispatcher errors in package protocol; these belong to the primitive
// decoders in this package and are meant to be matched with errors.Is.
var (
	// ErrShortRead names the case of fewer bytes being available than a
	// fixed-width or length-prefixed type requires. The decoders in this
	// package do not return it: a short read surfaces as the error of the
	// underlying io.ReadFull call (io.EOF or io.ErrUnexpectedEOF).
	ErrShortRead = errors.New("netstruct: short read")

	// ErrMalformedVarInt is returned when a VarInt/VarLong's continuation
	// bit is still set after the maximum number of bytes for its width.
	ErrMalformedVarInt = errors.New("netstruct: malformed varint")

	// ErrInvalidString is returned when string bytes fail UTF-8
	// validation or exceed the declared maximum length.
	ErrInvalidString = errors.New("netstruct: invalid string")

	// ErrInvalidBoolean is returned by strict boolean decoding when the
	// wire byte is neither 0x00 nor 0x01. DecodeBoolean itself is
	// permissive (any nonzero byte decodes true, matching observed
	// vanilla server behavior per spec.md §9); callers that need strict
	// validation should use DecodeBooleanStrict.
	ErrInvalidBoolean = errors.New("netstruct: invalid boolean")
)
