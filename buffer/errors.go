package buffer

import "errors"

var (
	// ErrInvalidUTF8 is flagged for input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("buffer: invalid UTF-8")

	// ErrIndexOutOfBounds is flagged whenever a codepoint offset is greater
	// than the length of the buffer.
	ErrIndexOutOfBounds = errors.New("buffer: index out of bounds")

	// ErrForeignCursor is flagged when a cursor is used against a buffer it
	// was not materialized from.
	ErrForeignCursor = errors.New("buffer: cursor bound to different buffer")
)
