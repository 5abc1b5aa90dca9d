package carriage

import "fmt"

// A Cursor marks a position in the input text.
//
// Cursors are immutable values: advancing produces a new Cursor and never
// alters the text. Every parser reads a Cursor and, on success, returns the
// Cursor to resume from.
type Cursor struct {
	Text   string
	Offset int
}

// NewCursor returns a Cursor at the start of text.
func NewCursor(text string) Cursor {
	return Cursor{Text: text}
}

// Advance returns a new Cursor moved n bytes forward in the same text.
//
// Callers compute n from matched substrings, so the offset stays within
// [0, len(Text)].
func (c Cursor) Advance(n int) Cursor {
	return Cursor{Text: c.Text, Offset: c.Offset + n}
}

// Remaining returns the unconsumed portion of the input.
func (c Cursor) Remaining() string {
	return c.Text[c.Offset:]
}

// EOF reports whether the cursor has consumed all input.
func (c Cursor) EOF() bool {
	return c.Offset >= len(c.Text)
}

func (c Cursor) GoString() string {
	return fmt.Sprintf("Cursor{Text: %q, Offset: %d}", c.Text, c.Offset)
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%q", c.Offset, c.Remaining())
}
