package attrline

// entry couples a span with its list-local identity.
type entry struct {
	id   uint32
	span Span
}

// SpanList is an insertion-ordered collection of attribute spans.
//
// The two overlay spans are created together with the list, parked at
// (0,0), and are present for the list's whole lifetime; Retain and Simplify
// never remove them. Insertion order is kept so that serialization towards
// the renderer is deterministic; it carries no other meaning.
type SpanList struct {
	entries []entry
	nextID  uint32
	compose Handle // protected overlay spans
	cursor  Handle
}

// NewSpanList creates a span list holding the two parked overlay spans.
func NewSpanList() *SpanList {
	l := &SpanList{nextID: 1}
	l.compose = l.Insert(Span{Kind: ComposeUnderline, Start: 0, End: Bounded(0)})
	l.cursor = l.Insert(Span{Kind: CursorAlpha, Start: 0, End: Bounded(0)})
	return l
}

// Insert appends a span and returns a handle for later resolution.
func (l *SpanList) Insert(sp Span) Handle {
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, entry{id: id, span: sp})
	return Handle{id: id}
}

// Resolve returns the span a handle points at. A handle whose span has been
// removed resolves to nothing.
func (l *SpanList) Resolve(h Handle) (Span, bool) {
	if i := l.find(h); i >= 0 {
		return l.entries[i].span, true
	}
	return Span{}, false
}

func (l *SpanList) find(h Handle) int {
	if h.id == 0 {
		return -1
	}
	for i := range l.entries {
		if l.entries[i].id == h.id {
			return i
		}
	}
	return -1
}

// SetEnd rebinds the right bound of the span h points at.
func (l *SpanList) SetEnd(h Handle, end SpanEnd) error {
	i := l.find(h)
	if i < 0 {
		return ErrIllegalArguments
	}
	l.entries[i].span.End = end
	return nil
}

// update rebinds both bounds of the span h points at. Overlay bookkeeping
// goes through here.
func (l *SpanList) update(h Handle, start int, end SpanEnd) {
	i := l.find(h)
	assert(i >= 0, "span list: dangling overlay handle")
	l.entries[i].span.Start = start
	l.entries[i].span.End = end
}

// Retain removes every span failing the predicate. Protected overlay spans
// are kept regardless of the predicate's verdict.
func (l *SpanList) Retain(keep func(Span) bool) {
	out := l.entries[:0]
	for _, e := range l.entries {
		if e.span.Kind.Protected() || keep(e.span) {
			out = append(out, e)
		}
	}
	l.entries = out
}

// Simplify removes zero-length non-protected spans. It is idempotent: a
// second call in a row is a no-op.
func (l *SpanList) Simplify() {
	l.Retain(func(sp Span) bool {
		return !sp.ZeroLength()
	})
}

// Len returns the number of live spans, the two overlay spans included.
func (l *SpanList) Len() int {
	return len(l.entries)
}

// Each applies f to each span in insertion order; a non-nil return stops
// the walk.
func (l *SpanList) Each(f func(Span) error) error {
	for _, e := range l.entries {
		if err := f(e.span); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns the spans in insertion order, for handing to a renderer.
func (l *SpanList) Snapshot() []Span {
	out := make([]Span, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.span
	}
	return out
}
