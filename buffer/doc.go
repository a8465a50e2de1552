/*
Package buffer holds the text an editing session grows and shrinks.

A buffer is an opaque growable sequence of Unicode codepoints, addressed
purely by codepoint offset, together with a storage identity token that
changes exactly when the backing storage is reallocated. The token decides
whether a previously materialized position (a Cursor) needs re-derivation;
it is never used to validate offsets, which stay valid across reallocation
by construction.
*/
package buffer
