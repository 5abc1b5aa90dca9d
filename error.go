package carriage

import "fmt"

// Failure describes why a parser did not match.
//
// Combinators that forward a sub-parser's Failure must preserve all three
// fields unchanged; only a parser that itself detects a mismatch constructs a
// new Failure.
type Failure struct {
	// Cursor is the position where matching began failing.
	Cursor Cursor
	// Expected describes the pattern or token that was sought.
	Expected string
	// Actual describes what was found instead, or "empty" at end of input.
	Actual string
}

// Message returns the unadorned diagnostic, without positional information.
func (f *Failure) Message() string {
	return fmt.Sprintf("expected %s, actual %s", f.Expected, f.Actual)
}

// Position returns the cursor at which matching failed.
func (f *Failure) Position() Cursor { return f.Cursor }

func (f *Failure) Error() string {
	return fmt.Sprintf("%d: %s", f.Cursor.Offset, f.Message())
}
