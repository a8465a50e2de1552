package attrline

// Retreat deletes the codepoint before the scanner position, rewinds the
// lookback, and repairs the span list in the same step: a markup span
// reaching past the new text end reopens (its handle re-attached), a span
// whose opening delimiter is gone vanishes. Overlay spans are untouched.
//
// With no codepoint before the scanner position the call is a defined
// no-op: there is nothing to delete.
func (s *Session) Retreat() error {
	if s.cursorLive {
		return ErrCursorActive
	}
	if !s.prev.ok {
		return nil
	}
	s.pos = s.prev.cur
	back := s.pos
	if back.Backward() {
		s.prev = lookback{ok: true, cur: back}
	} else {
		s.prev = lookback{}
	}
	if err := s.buf.TruncateAt(&s.pos); err != nil {
		return err
	}
	s.repairSpans(s.pos.Offset())
	return nil
}

// repairSpans runs the backspace filter over every non-protected span.
// last is the codepoint offset of the new text end.
func (s *Session) repairSpans(last int) {
	out := s.list.entries[:0]
	for _, e := range s.list.entries {
		sp := e.span
		if sp.Kind.Protected() {
			out = append(out, e)
			continue
		}
		if sp.End.Beyond(last) {
			sp.End = ToTextEnd()
			switch sp.Kind {
			case Bold:
				s.openBold = Handle{id: e.id}
			case Italic:
				s.openItalic = Handle{id: e.id}
			}
			tracer().Debugf("retreat: %s span at %d reopened", sp.Kind, sp.Start)
		}
		cmp := last
		if sp.Kind == Bold {
			cmp -= boldMarkerBackdate
		}
		if sp.Start >= cmp {
			// the opening delimiter is gone together with its span
			if s.openBold.id == e.id {
				s.openBold = Handle{}
			}
			if s.openItalic.id == e.id {
				s.openItalic = Handle{}
			}
			tracer().Debugf("retreat: %s span at %d removed", sp.Kind, sp.Start)
			continue
		}
		e.span = sp
		out = append(out, e)
	}
	s.list.entries = out
}
