package buffer

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAppendAndLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	b := New()
	if err := b.Append("héllo "); err != nil {
		t.Fatalf("append failed: %s", err.Error())
	}
	b.AppendRune('☃')
	if b.Len() != 7 {
		t.Errorf("expected 7 codepoints, have %d", b.Len())
	}
	if b.ByteLen() != 11 {
		t.Errorf("expected 11 bytes of storage, have %d", b.ByteLen())
	}
	if b.String() != "héllo ☃" {
		t.Errorf("unexpected content %q", b.String())
	}
}

func TestAppendRejectsInvalidUTF8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	b := New()
	if err := b.Append("ok\xff"); err != ErrInvalidUTF8 {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if b.Len() != 0 {
		t.Error("a rejected append must not change the buffer")
	}
}

func TestTruncate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	b, err := FromString("héllo")
	if err != nil {
		t.Fatalf("cannot create buffer: %s", err.Error())
	}
	g := b.Generation()
	if err := b.Truncate(2); err != nil {
		t.Fatalf("truncate failed: %s", err.Error())
	}
	if b.String() != "hé" || b.Len() != 2 {
		t.Errorf("unexpected content %q, length %d", b.String(), b.Len())
	}
	if b.Generation() != g {
		t.Error("truncation must not change the storage identity")
	}
	if err := b.Truncate(7); err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestGenerationTracksReallocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	b := New()
	g := b.Generation()
	if err := b.Append(strings.Repeat("x", 512)); err != nil {
		t.Fatalf("append failed: %s", err.Error())
	}
	if b.Generation() == g {
		t.Error("growing an empty buffer must change the storage identity")
	}
	g = b.Generation()
	if err := b.Truncate(500); err != nil {
		t.Fatalf("truncate failed: %s", err.Error())
	}
	if err := b.Append("padding"); err != nil { // fits the spare capacity
		t.Fatalf("append failed: %s", err.Error())
	}
	if b.Generation() != g {
		t.Error("an in-place append must not change the storage identity")
	}
}

func TestTruncateAtCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "attrline")
	defer teardown()
	//
	b, err := FromString("½ + ½ = 1")
	if err != nil {
		t.Fatalf("cannot create buffer: %s", err.Error())
	}
	c, err := b.CursorAt(5)
	if err != nil {
		t.Fatalf("cannot materialize cursor: %s", err.Error())
	}
	if err := b.TruncateAt(&c); err != nil {
		t.Fatalf("truncate at cursor failed: %s", err.Error())
	}
	if b.String() != "½ + ½" || b.Len() != 5 {
		t.Errorf("unexpected content %q, length %d", b.String(), b.Len())
	}
	//
	other := New()
	if err := other.TruncateAt(&c); err != ErrForeignCursor {
		t.Errorf("expected ErrForeignCursor, got %v", err)
	}
}
