package carriage

// And sequences two parsers. The left parser runs first; on success the right
// parser runs from the left's resulting cursor, and its value becomes the
// sequence's value (the left value is discarded; use Bind to retain it).
// Either side's failure is propagated verbatim, and the right parser is never
// invoked after a left failure.
func And[T, U any](left Parser[T], right Parser[U]) Parser[U] {
	return func(c Cursor) Result[U] {
		lr := left(c)
		if !lr.Ok() {
			return FailOf[U](lr.Failure())
		}
		rr := right(lr.Cursor)
		if !rr.Ok() {
			return FailOf[U](rr.Failure())
		}
		return rr
	}
}

// Or tries the left parser and, only if it fails, the right parser from the
// original cursor, so a failed left branch never commits partial consumption.
// The value records which side matched. When both sides fail, the right
// side's failure is surfaced unchanged; the left diagnostic is dropped. That
// loses information when the left branch got further, but it keeps failure
// fields exact instead of inventing a merged message.
func Or[L, R any](left Parser[L], right Parser[R]) Parser[Either[L, R]] {
	return func(c Cursor) Result[Either[L, R]] {
		lr := left(c)
		if lr.Ok() {
			return Succeed(lr.Cursor, OfLeft[L, R](lr.Value))
		}
		rr := right(c)
		if rr.Ok() {
			return Succeed(rr.Cursor, OfRight[L, R](rr.Value))
		}
		return FailOf[Either[L, R]](rr.Failure())
	}
}

// Bind runs p and, on success, feeds its value to f to obtain the
// continuation parser, which runs from p's resulting cursor. The continuation
// can depend on the parsed value, e.g. requiring a closing delimiter that
// matches an opener while re-injecting an earlier value through Value.
// Failure of p is propagated verbatim.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(c Cursor) Result[U] {
		r := p(c)
		if !r.Ok() {
			return FailOf[U](r.Failure())
		}
		return f(r.Value)(r.Cursor)
	}
}

// Map transforms a parser's value with a pure function. It is the common
// weaker case of Bind where the continuation ignores the cursor.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Bind(p, func(v T) Parser[U] {
		return Value(f(v))
	})
}

// ZeroOrMore applies p repeatedly, collecting each value, until an attempt
// fails. The failed attempt is discarded and the repetition succeeds with the
// values gathered so far and the cursor after the last successful attempt.
// ZeroOrMore itself never fails, even on empty input.
//
// p must consume input on success; repeating a zero-consuming parser such as
// Value never terminates.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		var values []T
		next := c
		for {
			r := p(next)
			if !r.Ok() {
				return Succeed(next, values)
			}
			values = append(values, r.Value)
			next = r.Cursor
		}
	}
}

// OneOrMore is ZeroOrMore with a required first match: if the first attempt
// fails, its failure is propagated verbatim; otherwise the remaining attempts
// behave exactly as ZeroOrMore.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		first := p(c)
		if !first.Ok() {
			return FailOf[[]T](first.Failure())
		}
		rest := ZeroOrMore(p)(first.Cursor)
		return Succeed(rest.Cursor, append([]T{first.Value}, rest.Value...))
	}
}
