package salz

import "errors"

// Sentinel errors returned by the core encode/decode functions. Callers
// should compare with errors.Is; the core never wraps these in a bespoke
// error type.
var (
	// ErrInputTooSmall is returned when EncodeBlock is given fewer than 9
	// bytes of input — the minimum needed so the last 8 bytes can be
	// reserved as forced literals.
	ErrInputTooSmall = errors.New("salz: input shorter than 9 bytes")

	// ErrOutputTooSmall is returned when dst cannot hold the worst-case
	// encoded size, or when a writer would exceed its preallocated
	// capacity.
	ErrOutputTooSmall = errors.New("salz: destination buffer too small")

	// ErrSortFailed is returned when the external suffix-sort collaborator
	// reports failure.
	ErrSortFailed = errors.New("salz: suffix sort failed")

	// ErrMalformedInput is returned by DecodeBlock when the header is
	// unrecognized, the declared payload length exceeds the remaining
	// input, a bitstream token would force an over-read, a factor's
	// offset reaches back before the start of the output produced so
	// far, or a literal or factor would write past the end of dst.
	ErrMalformedInput = errors.New("salz: malformed input")

	// ErrInternal is returned when an internal allocation or invariant
	// check fails.
	ErrInternal = errors.New("salz: internal error")
)
