package carriage

// A Parser consumes input from a Cursor and produces a Result.
//
// Parsers are pure: the same (parser, cursor) pair always yields the same
// outcome, and no parser mutates the cursor or the text. Composed parsers are
// built once at grammar-assembly time and reused across calls.
type Parser[T any] func(Cursor) Result[T]

// Parse applies the parser at the given cursor.
func (p Parser[T]) Parse(cursor Cursor) Result[T] {
	return p(cursor)
}

// ParseString applies the parser to input from offset zero and unwraps the
// outcome into Go's usual (value, error) shape. The error, when non-nil, is
// the *Failure returned by the parse.
func ParseString[T any](p Parser[T], input string) (T, error) {
	r := p(NewCursor(input))
	if f := r.Failure(); f != nil {
		var zero T
		return zero, f
	}
	return r.Value, nil
}
