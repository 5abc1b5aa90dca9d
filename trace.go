package carriage

import (
	"fmt"
	"io"
)

// Traced wraps a parser so that each invocation and its outcome are written
// to w, tagged with name. Tracing lives at the invocation boundary; the
// wrapped parser is unchanged and primitives themselves never print.
//
//	quoted := carriage.Traced("quoted", os.Stderr, quoted)
func Traced[T any](name string, w io.Writer, p Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		fmt.Fprintf(w, "%s at %s\n", name, c)
		r := p(c)
		if f := r.Failure(); f != nil {
			fmt.Fprintf(w, "%s failed: %s\n", name, f)
		} else {
			fmt.Fprintf(w, "%s matched %v, resume at %d\n", name, r.Value, r.Cursor.Offset)
		}
		return r
	}
}
