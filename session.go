package attrline

import (
	"github.com/jolanger/attrline/buffer"
)

// lookback is the scanner's one-codepoint memory of the text preceding its
// position. It survives across Advance calls, so a doubled marker is
// recognized even when its two characters arrive in separate calls.
type lookback struct {
	ok  bool
	cur buffer.Cursor
}

// Session binds one text buffer, its attribute span list and the scanner
// state into the editable unit of this package, typically one paragraph of
// a draft. The three parts are created together, mutated only through the
// session's operations, and discarded together when the unit is committed.
//
// A session has exactly one logical owner and performs no locking of its
// own; the owner serializes all calls. No operation blocks or suspends.
type Session struct {
	buf  *buffer.Buffer
	list *SpanList

	pos  buffer.Cursor // next codepoint offset Advance will consume
	prev lookback

	openBold   Handle
	openItalic Handle

	cursorLive bool
	cursorHigh int // buffer length recorded when the placeholder was appended
}

// NewSession creates the span list and scanner state for buf. The scanner
// starts at offset 0; content already in the buffer is consumed by the
// first Advance call.
func NewSession(buf *buffer.Buffer) *Session {
	pos, err := buf.CursorAt(0)
	assert(err == nil, "NewSession: cannot materialize start position")
	return &Session{
		buf:  buf,
		list: NewSpanList(),
		pos:  pos,
	}
}

// Buffer returns the text buffer the session is bound to.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// List returns the session's span list.
func (s *Session) List() *SpanList {
	return s.list
}

// Spans returns the current span snapshot in insertion order. This is the
// entire interface towards the rendering side.
func (s *Session) Spans() []Span {
	return s.list.Snapshot()
}

// Position returns the scanner position: the count of codepoints consumed
// so far.
func (s *Session) Position() int {
	return s.pos.Offset()
}

// OpenBold returns the handle of the pending Bold span, if one is open.
func (s *Session) OpenBold() (Handle, bool) {
	return s.openBold, s.openBold.Valid()
}

// OpenItalic returns the handle of the pending Italic span, if one is open.
func (s *Session) OpenItalic() (Handle, bool) {
	return s.openItalic, s.openItalic.Valid()
}

// Simplify drops zero-length markup spans from the list; the overlay spans
// stay parked where they are.
func (s *Session) Simplify() {
	s.list.Simplify()
}

// Append appends text to the buffer and advances the scanner over it.
func (s *Session) Append(text string) error {
	if s.cursorLive {
		return ErrCursorActive
	}
	if err := s.buf.Append(text); err != nil {
		return err
	}
	return s.Advance()
}
