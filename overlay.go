package attrline

// CursorRune is the placeholder codepoint SetupCursor appends to the text.
// Renderers draw it at half alpha as the caret; see markup.Cursor for the
// serialized form.
const CursorRune = '_'

// SetupCursor appends the caret placeholder and aims the CursorAlpha span
// at it. The buffer must not be edited again before the matching
// CleanupCursor; Advance, Retreat and Append refuse to run while the
// placeholder is live.
func (s *Session) SetupCursor() error {
	if s.cursorLive {
		return ErrCursorActive
	}
	s.buf.AppendRune(CursorRune)
	n := s.buf.Len()
	s.list.update(s.list.cursor, n-1, Bounded(n))
	s.cursorLive = true
	s.cursorHigh = n
	return nil
}

// CleanupCursor removes the placeholder codepoint and parks the CursorAlpha
// span at (0,0) again. Calling it without a live placeholder, or after the
// trailing placeholder was disturbed, is a caller error and reported as
// such.
func (s *Session) CleanupCursor() error {
	if !s.cursorLive {
		return ErrCursorNotSet
	}
	if s.buf.Len() != s.cursorHigh {
		tracer().Errorf("cleanup cursor: text length %d, expected %d", s.buf.Len(), s.cursorHigh)
		return ErrCursorClobbered
	}
	if r, ok := s.buf.LastRune(); !ok || r != CursorRune {
		return ErrCursorClobbered
	}
	if err := s.buf.Truncate(s.buf.Len() - 1); err != nil {
		return err
	}
	s.list.update(s.list.cursor, 0, Bounded(0))
	s.cursorLive = false
	return nil
}

// SetupCompose aims the ComposeUnderline span at the pre-edit range the
// input method reported. end may be open towards the text end. The range is
// independent of the Bold/Italic state machine; composing text is appended
// and removed by the host around this call pair.
func (s *Session) SetupCompose(start int, end SpanEnd) error {
	if start < 0 || start > s.buf.Len() {
		return ErrIllegalArguments
	}
	if e, ok := end.Bound(); ok && e < start {
		return ErrIllegalArguments
	}
	s.list.update(s.list.compose, start, end)
	return nil
}

// CleanupCompose parks the ComposeUnderline span at (0,0).
func (s *Session) CleanupCompose() {
	s.list.update(s.list.compose, 0, Bounded(0))
}
