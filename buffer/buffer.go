package buffer

import (
	"unicode/utf8"
)

// Buffer is a growable sequence of Unicode codepoints, owned by a single
// editing session. Mutation happens only at the trailing end: codepoints
// are appended, or the buffer is truncated at an offset.
//
// Positions handed to and returned by Buffer methods are codepoint offsets.
// Storage is UTF-8. When an append outgrows the backing array the storage
// is reallocated and the generation token changes; the token never changes
// otherwise, so cached materializations of positions (see Cursor) can be
// trusted exactly as long as the token holds still.
type Buffer struct {
	data  []byte
	runes int
	gen   uint64
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromString creates a buffer holding s, which must be valid UTF-8.
func FromString(s string) (*Buffer, error) {
	b := &Buffer{}
	if err := b.Append(s); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the buffer length in codepoints.
func (b *Buffer) Len() int {
	return b.runes
}

// ByteLen returns the storage length in bytes.
func (b *Buffer) ByteLen() int {
	return len(b.data)
}

// Generation returns the storage identity token. It changes exactly when
// the backing storage is reallocated.
func (b *Buffer) Generation() uint64 {
	return b.gen
}

// String materializes the buffer content as a Go string.
func (b *Buffer) String() string {
	return string(b.data)
}

// AppendRune appends a single codepoint.
func (b *Buffer) AppendRune(r rune) {
	before := cap(b.data)
	b.data = utf8.AppendRune(b.data, r)
	if cap(b.data) != before {
		b.gen++
	}
	b.runes++
}

// Append appends a sequence of codepoints, which must be valid UTF-8.
func (b *Buffer) Append(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	before := cap(b.data)
	b.data = append(b.data, s...)
	if cap(b.data) != before {
		b.gen++
	}
	b.runes += utf8.RuneCountInString(s)
	return nil
}

// Truncate drops every codepoint at or after offset off. Truncation shrinks
// in place and never changes the storage identity.
func (b *Buffer) Truncate(off int) error {
	if off < 0 || off > b.runes {
		return ErrIndexOutOfBounds
	}
	b.data = b.data[:b.byteOffset(off)]
	b.runes = off
	return nil
}

// TruncateAt truncates at a cursor's position, reusing the cursor's
// materialized byte offset instead of resolving the codepoint offset anew.
func (b *Buffer) TruncateAt(c *Cursor) error {
	if c == nil || c.buf != b {
		return ErrForeignCursor
	}
	b.data = b.data[:c.ByteOffset()]
	b.runes = c.runeOff
	return nil
}

// LastRune returns the final codepoint, if any.
func (b *Buffer) LastRune() (rune, bool) {
	if len(b.data) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRune(b.data)
	return r, true
}

// byteOffset resolves a codepoint offset to its byte offset by walking the
// storage from the start.
func (b *Buffer) byteOffset(off int) int {
	pos := 0
	for i := 0; i < off; i++ {
		_, w := utf8.DecodeRune(b.data[pos:])
		pos += w
	}
	return pos
}
