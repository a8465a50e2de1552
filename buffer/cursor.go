package buffer

import (
	"unicode/utf8"
)

// Cursor is a materialized position inside a buffer: the stable codepoint
// offset paired with the byte offset it resolves to in the buffer's
// storage.
//
// The byte offset is derived state. A cursor remembers the storage
// generation it was materialized against; before each use it compares that
// token with the buffer's current one and, on mismatch, re-derives the byte
// offset from the codepoint offset. Codepoint offsets themselves never go
// stale. Re-derivation walks from the buffer start, which is amortized
// constant per appended codepoint under the storage's doubling growth.
//
// Cursors are values; copying one yields an independent position.
type Cursor struct {
	buf     *Buffer
	gen     uint64
	runeOff int
	byteOff int
}

// CursorAt materializes a cursor at codepoint offset off.
func (b *Buffer) CursorAt(off int) (Cursor, error) {
	if off < 0 || off > b.runes {
		return Cursor{}, ErrIndexOutOfBounds
	}
	return Cursor{buf: b, gen: b.gen, runeOff: off, byteOff: b.byteOffset(off)}, nil
}

// Offset returns the cursor's codepoint offset.
func (c *Cursor) Offset() int {
	return c.runeOff
}

// ByteOffset returns the materialized byte offset, revalidated against the
// buffer's current storage identity.
func (c *Cursor) ByteOffset() int {
	c.sync()
	return c.byteOff
}

func (c *Cursor) sync() {
	if c.buf == nil || c.gen == c.buf.gen {
		return
	}
	c.byteOff = c.buf.byteOffset(c.runeOff)
	c.gen = c.buf.gen
}

// Rune decodes the codepoint at the cursor position; ok is false at the
// text end.
func (c *Cursor) Rune() (r rune, ok bool) {
	c.sync()
	if c.buf == nil || c.byteOff >= len(c.buf.data) {
		return 0, false
	}
	r, _ = utf8.DecodeRune(c.buf.data[c.byteOff:])
	return r, true
}

// Forward moves the cursor one codepoint towards the text end.
func (c *Cursor) Forward() bool {
	c.sync()
	if c.buf == nil || c.byteOff >= len(c.buf.data) {
		return false
	}
	_, w := utf8.DecodeRune(c.buf.data[c.byteOff:])
	c.byteOff += w
	c.runeOff++
	return true
}

// Backward moves the cursor one codepoint towards the text start.
func (c *Cursor) Backward() bool {
	c.sync()
	if c.buf == nil || c.byteOff == 0 {
		return false
	}
	_, w := utf8.DecodeLastRune(c.buf.data[:c.byteOff])
	c.byteOff -= w
	c.runeOff--
	return true
}
