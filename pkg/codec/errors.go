package codec

import "github.com/pkg/errors"

// Framing and encoding errors reported by Reader. I/O failures from the
// underlying stream are wrapped and returned alongside these; use errors.Is
// to distinguish them.
var (
	// ErrInvalidLength marks a record header whose declared size is
	// smaller than the 4-byte header itself.
	ErrInvalidLength = errors.New("record length smaller than header")

	// ErrUnknownDataType marks a record header carrying a data type tag
	// outside the format's 0..6 range.
	ErrUnknownDataType = errors.New("unknown data type tag")

	// ErrInvalidUTF8 marks a string payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("string payload is not valid UTF-8")
)
