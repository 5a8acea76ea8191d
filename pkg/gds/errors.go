package gds

import "github.com/pkg/errors"

// Terminator and misuse errors. The historical behavior on a stream
// missing its terminators was to block forever waiting for more input;
// these surface the condition instead.
var (
	// ErrMissingEndLib is returned when the stream ends before ENDLIB.
	ErrMissingEndLib = errors.New("stream ended without ENDLIB")

	// ErrUnterminatedStructure is returned when ENDLIB arrives while a
	// structure is still open.
	ErrUnterminatedStructure = errors.New("structure not closed by ENDSTR")

	// ErrUnterminatedElement is returned when ENDSTR or ENDLIB arrives
	// while an element is still open.
	ErrUnterminatedElement = errors.New("element not closed by ENDEL")

	// ErrUnsetElementKind is returned by the encoder for an element whose
	// kind was never set; there is no record tag for it on the wire.
	ErrUnsetElementKind = errors.New("element kind is not set")
)
