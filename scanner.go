package attrline

// Delimiter codepoints of the inline-markup dialect.
const (
	italicMarker = '_'
	boldMarker   = '*'
)

// A Bold span's start reaches back to the first asterisk of its doubled
// opening marker. Retreat compensates its start comparison by the same
// amount; keep the two in sync through this one constant.
const boldMarkerBackdate = 1

// Advance consumes every codepoint between the scanner position and the
// buffer end, opening and closing Bold/Italic spans as delimiters pass by.
// Single, undoubled asterisks have no effect.
//
// A scanner position beyond the buffer end means the owner shortened the
// buffer without going through Retreat; Advance reports this instead of
// silently rescanning.
func (s *Session) Advance() error {
	if s.cursorLive {
		return ErrCursorActive
	}
	if s.pos.Offset() > s.buf.Len() {
		tracer().Errorf("advance: scanner at %d, text length %d", s.pos.Offset(), s.buf.Len())
		return ErrScanPastEnd
	}
	for s.pos.Offset() < s.buf.Len() {
		c, ok := s.pos.Rune()
		assert(ok, "advance: cannot decode codepoint inside text bounds")
		o := s.pos.Offset()
		switch {
		case c == italicMarker:
			if s.openItalic.Valid() {
				// the closing delimiter is part of the styled range
				err := s.list.SetEnd(s.openItalic, Bounded(o+1))
				assert(err == nil, "advance: open italic handle went dangling")
				tracer().Debugf("advance: italic closed at %d", o+1)
				s.openItalic = Handle{}
			} else {
				s.openItalic = s.list.Insert(Span{Kind: Italic, Start: o, End: ToTextEnd()})
				tracer().Debugf("advance: italic opened at %d", o)
			}
		case c == boldMarker && s.prevRuneIs(boldMarker):
			if s.openBold.Valid() {
				err := s.list.SetEnd(s.openBold, Bounded(o+1))
				assert(err == nil, "advance: open bold handle went dangling")
				tracer().Debugf("advance: bold closed at %d", o+1)
				s.openBold = Handle{}
			} else {
				s.openBold = s.list.Insert(Span{
					Kind:  Bold,
					Start: o - boldMarkerBackdate,
					End:   ToTextEnd(),
				})
				tracer().Debugf("advance: bold opened at %d", o-boldMarkerBackdate)
			}
		}
		s.prev = lookback{ok: true, cur: s.pos}
		s.pos.Forward()
	}
	return nil
}

func (s *Session) prevRuneIs(r rune) bool {
	if !s.prev.ok {
		return false
	}
	c, ok := s.prev.cur.Rune()
	return ok && c == r
}
