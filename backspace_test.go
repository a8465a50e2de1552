package attrline

import (
	"testing"

	"github.com/jolanger/attrline/buffer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRetreatTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	cases := []struct {
		name       string
		text       string
		want       []Span
		openBold   bool
		openItalic bool
	}{
		{
			name: "unstyled text",
			text: "We slowly go back.",
		},
		{
			name: "closed spans before the end stay put",
			text: "There were **two** lights",
			want: []Span{{Kind: Bold, Start: 11, End: Bounded(18)}},
		},
		{
			name:       "deleting a closing underscore reopens the italic",
			text:       "This is _only_",
			want:       []Span{{Kind: Italic, Start: 8, End: ToTextEnd()}},
			openItalic: true,
		},
		{
			name: "deleting an opening underscore removes the italic",
			text: "This **is** only _",
			want: []Span{{Kind: Bold, Start: 5, End: Bounded(11)}},
		},
		{
			name: "deleting the second closing asterisk reopens the bold",
			text: "Let us now **_un_bold**",
			want: []Span{
				{Kind: Bold, Start: 11, End: ToTextEnd()},
				{Kind: Italic, Start: 13, End: Bounded(17)},
			},
			openBold: true,
		},
		{
			name: "deleting the second opening asterisk removes the bold",
			text: "And now _the_ **",
			want: []Span{{Kind: Italic, Start: 8, End: Bounded(13)}},
		},
		{
			name: "multibyte codepoint at the end",
			text: "**Multibyte**: ☭",
			want: []Span{{Kind: Bold, Start: 0, End: Bounded(13)}},
		},
		{
			name: "closed italic not at the end stays closed",
			text: "This is _only_,",
			want: []Span{{Kind: Italic, Start: 8, End: Bounded(14)}},
		},
		{
			name: "closed bold not at the end stays closed",
			text: "This is **only**,",
			want: []Span{{Kind: Bold, Start: 8, End: Bounded(16)}},
		},
	}
	for _, c := range cases {
		t.Logf("----- %s -----", c.name)
		s := mkSession(t, c.text)
		n := s.Position()
		if err := s.Retreat(); err != nil {
			t.Fatalf("%s: retreat failed: %s", c.name, err.Error())
		}
		if s.Position() != n-1 {
			t.Errorf("%s: scanner at %d, expected %d", c.name, s.Position(), n-1)
		}
		if s.Buffer().Len() != n-1 {
			t.Errorf("%s: text length %d, expected %d", c.name, s.Buffer().Len(), n-1)
		}
		checkSpans(t, s, c.want)
		if _, open := s.OpenBold(); open != c.openBold {
			t.Errorf("%s: open bold = %v, expected %v", c.name, open, c.openBold)
		}
		if _, open := s.OpenItalic(); open != c.openItalic {
			t.Errorf("%s: open italic = %v, expected %v", c.name, open, c.openItalic)
		}
	}
}

func TestRetreatReopenThenClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	s := mkSession(t, "Let us now **_un_bold**")
	if err := s.Retreat(); err != nil {
		t.Fatalf("retreat failed: %s", err.Error())
	}
	// the reopened bold must accept its closing delimiter again
	if err := s.Append("*"); err != nil {
		t.Fatalf("append failed: %s", err.Error())
	}
	checkSpans(t, s, []Span{
		{Kind: Bold, Start: 11, End: Bounded(23)},
		{Kind: Italic, Start: 13, End: Bounded(17)},
	})
	if _, open := s.OpenBold(); open {
		t.Error("bold should be closed again")
	}
}

func TestRetreatRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	s := mkSession(t, "a_b")
	base := markupSpans(s)
	pos := s.Position()
	if err := s.Append("_c!"); err != nil {
		t.Fatalf("append failed: %s", err.Error())
	}
	for i := 0; i < 3; i++ {
		if err := s.Retreat(); err != nil {
			t.Fatalf("retreat %d failed: %s", i, err.Error())
		}
	}
	if s.Buffer().String() != "a_b" {
		t.Errorf("text did not round-trip: %q", s.Buffer().String())
	}
	if s.Position() != pos {
		t.Errorf("scanner at %d, expected %d", s.Position(), pos)
	}
	checkSpans(t, s, base)
	if _, open := s.OpenItalic(); !open {
		t.Error("italic should be open again after the round trip")
	}
}

func TestRetreatThroughOpenBold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	s := mkSession(t, "**open")
	for i := 0; i < 6; i++ {
		if err := s.Retreat(); err != nil {
			t.Fatalf("retreat %d failed: %s", i, err.Error())
		}
	}
	if s.Buffer().Len() != 0 {
		t.Errorf("expected empty text, have %q", s.Buffer().String())
	}
	checkSpans(t, s, nil)
	if _, open := s.OpenBold(); open {
		t.Error("bold handle should be gone with its opening delimiter")
	}
}

func TestRetreatOnEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	buf := buffer.New()
	s := NewSession(buf)
	if err := s.Retreat(); err != nil {
		t.Errorf("retreat on empty text should be a no-op, got %v", err)
	}
	if s.Position() != 0 || buf.Len() != 0 {
		t.Error("retreat on empty text changed state")
	}
}
