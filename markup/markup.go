package markup

import (
	"strings"

	"github.com/jolanger/attrline"
)

// Cursor is the serialized form of the caret placeholder.
const Cursor = `<span alpha="50%">_</span>`

// attrs is the set of attributes active at one codepoint.
type attrs uint8

const (
	attrBold attrs = 1 << iota
	attrItalic
	attrCursor
	attrUnderline
)

func flagFor(k attrline.Kind) attrs {
	switch k {
	case attrline.Bold:
		return attrBold
	case attrline.Italic:
		return attrItalic
	case attrline.CursorAlpha:
		return attrCursor
	case attrline.ComposeUnderline:
		return attrUnderline
	}
	return 0
}

// maskAt collects the attributes covering codepoint offset off. Parked
// zero-length overlay spans cover nothing.
func maskAt(spans []attrline.Span, off int) attrs {
	var m attrs
	for _, sp := range spans {
		if off < sp.Start {
			continue
		}
		if e, ok := sp.End.Bound(); ok && off >= e {
			continue
		}
		m |= flagFor(sp.Kind)
	}
	return m
}

// Serialize renders text with its attribute spans as a Pango-style markup
// string. Overlapping spans are flattened into uniformly-attributed runs,
// each run wrapped in self-contained tags, so the output nests properly no
// matter how the spans interleave.
func Serialize(text string, spans []attrline.Span) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	runStart := 0
	runMask := maskAt(spans, 0)
	for off := 1; off <= len(runes); off++ {
		var m attrs
		if off < len(runes) {
			m = maskAt(spans, off)
		}
		if off == len(runes) || m != runMask {
			emitRun(&sb, string(runes[runStart:off]), runMask)
			runStart, runMask = off, m
		}
	}
	return sb.String()
}

func emitRun(sb *strings.Builder, s string, m attrs) {
	if s == "" {
		return
	}
	if m&attrBold != 0 {
		sb.WriteString(`<span weight="600">`)
	}
	if m&attrItalic != 0 {
		sb.WriteString("<i>")
	}
	if m&attrUnderline != 0 {
		sb.WriteString(`<span underline="single">`)
	}
	if m&attrCursor != 0 {
		sb.WriteString(`<span alpha="50%">`)
	}
	sb.WriteString(Escape(s))
	if m&attrCursor != 0 {
		sb.WriteString("</span>")
	}
	if m&attrUnderline != 0 {
		sb.WriteString("</span>")
	}
	if m&attrItalic != 0 {
		sb.WriteString("</i>")
	}
	if m&attrBold != 0 {
		sb.WriteString("</span>")
	}
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
)

// Escape replaces markup-significant characters with entities.
func Escape(s string) string {
	return escaper.Replace(s)
}
