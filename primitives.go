package carriage

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token returns a parser matching the exact literal s at the cursor. It
// succeeds with s itself, consuming len(s) bytes.
func Token(s string) Parser[string] {
	return func(c Cursor) Result[string] {
		if strings.HasPrefix(c.Remaining(), s) {
			return Succeed(c.Advance(len(s)), s)
		}
		return Fail[string](c, "token "+s, "not the token "+s)
	}
}

// Word returns a parser matching the maximal non-empty run of letter or
// digit characters at the cursor, succeeding with the run as a string.
func Word() Parser[string] {
	return func(c Cursor) Result[string] {
		rest := c.Remaining()
		n := 0
		for _, r := range rest {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			n += utf8.RuneLen(r)
		}
		if n == 0 {
			return Fail[string](c, "word character", "empty")
		}
		return Succeed(c.Advance(n), rest[:n])
	}
}

// Number returns a parser matching the maximal non-empty run of ASCII digits
// at the cursor, succeeding with its decimal value. Leading zeros are
// accepted ("0123" parses as 123). A run that does not fit in an int64 fails
// with actual "integer overflow" rather than wrapping.
func Number() Parser[int64] {
	return func(c Cursor) Result[int64] {
		rest := c.Remaining()
		n := 0
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n == 0 {
			return Fail[int64](c, "number", "empty")
		}
		v, err := strconv.ParseInt(rest[:n], 10, 64)
		if err != nil {
			return Fail[int64](c, "number", "integer overflow")
		}
		return Succeed(c.Advance(n), v)
	}
}

// Value returns a parser that always succeeds with v, consuming nothing.
//
// Because it consumes nothing it must not be placed directly under
// ZeroOrMore or OneOrMore; repetition over a zero-consuming parser never
// terminates. Its role is to inject values at the end of a Bind chain.
func Value[T any](v T) Parser[T] {
	return func(c Cursor) Result[T] {
		return Succeed(c, v)
	}
}
