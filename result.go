package carriage

// Result is the outcome of applying a parser to a cursor.
//
// A Result is either a success carrying a value and the cursor to resume
// from, or a failure carrying a *Failure whose cursor marks the failure
// point. Ok distinguishes the two; a failed Result never carries a value.
type Result[T any] struct {
	// Cursor is the resume point on success, the failure point otherwise.
	Cursor Cursor
	// Value is the parsed value. Only meaningful when Ok reports true.
	Value T
	fail  *Failure
}

// Succeed constructs a successful Result resuming at cursor.
func Succeed[T any](cursor Cursor, value T) Result[T] {
	return Result[T]{Cursor: cursor, Value: value}
}

// Fail constructs a failed Result at cursor.
func Fail[T any](cursor Cursor, expected, actual string) Result[T] {
	return FailOf[T](&Failure{Cursor: cursor, Expected: expected, Actual: actual})
}

// FailOf constructs a failed Result from an existing Failure, preserving its
// cursor and diagnostics verbatim. Combinators use it to propagate a
// sub-parser's failure across the value type change.
func FailOf[T any](fail *Failure) Result[T] {
	return Result[T]{Cursor: fail.Cursor, fail: fail}
}

// Ok reports whether the parser matched.
func (r Result[T]) Ok() bool { return r.fail == nil }

// Failure returns the failure diagnostics, or nil on success.
func (r Result[T]) Failure() *Failure { return r.fail }

// Side tags which branch of an alternation matched.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Either records which side of an alternation produced a value. It is built
// only by Or; switch on Side to consume it.
type Either[L, R any] struct {
	Side  Side
	Left  L
	Right R
}

// OfLeft builds an Either carrying a left value.
func OfLeft[L, R any](value L) Either[L, R] {
	return Either[L, R]{Side: SideLeft, Left: value}
}

// OfRight builds an Either carrying a right value.
func OfRight[L, R any](value R) Either[L, R] {
	return Either[L, R]{Side: SideRight, Right: value}
}
