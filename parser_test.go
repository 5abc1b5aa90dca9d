package carriage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quoted parses a single-quoted word like 'Carriage', recovering the
// enclosed word despite And keeping only its right value.
func quoted() Parser[string] {
	return And(
		Token("'"),
		Bind(Word(), func(w string) Parser[string] {
			return And(Token("'"), Value(w))
		}))
}

func TestParseNumber(t *testing.T) {
	r := Number().Parse(Cursor{Text: "5060"})
	require.True(t, r.Ok())
	assert.Equal(t, int64(5060), r.Value)
	assert.Equal(t, 4, r.Cursor.Offset)
}

func TestParseNumberNoDigits(t *testing.T) {
	r := Number().Parse(Cursor{Text: "ABC"})
	require.False(t, r.Ok())
	f := r.Failure()
	assert.Equal(t, "number", f.Expected)
	assert.Equal(t, "empty", f.Actual)
	assert.Equal(t, 0, f.Cursor.Offset)
}

func TestParseQuotedWord(t *testing.T) {
	r := quoted().Parse(NewCursor("'Carriage'"))
	require.True(t, r.Ok())
	assert.Equal(t, "Carriage", r.Value)
	assert.Equal(t, 10, r.Cursor.Offset)
}

func TestParseUnterminatedQuotedWord(t *testing.T) {
	r := OneOrMore(quoted()).Parse(NewCursor("'Carr"))
	require.False(t, r.Ok())
	f := r.Failure()
	assert.Equal(t, "token '", f.Expected)
	assert.Equal(t, "not the token '", f.Actual)
	assert.Equal(t, 5, f.Cursor.Offset)
}

func TestParseQuotedWordRun(t *testing.T) {
	input := "'Carriage''Text''Manipulation''Language'"
	r := OneOrMore(quoted()).Parse(NewCursor(input))
	require.True(t, r.Ok())
	assert.Equal(t, []string{"Carriage", "Text", "Manipulation", "Language"}, r.Value)
	assert.Equal(t, len(input), r.Cursor.Offset)
}

func TestParseString(t *testing.T) {
	words, err := ParseString(OneOrMore(quoted()), "'Text''Manipulation'")
	require.NoError(t, err)
	assert.Equal(t, []string{"Text", "Manipulation"}, words)

	_, err = ParseString(Number(), "ABC")
	require.Error(t, err)
	assert.Equal(t, "0: expected number, actual empty", err.Error())
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "number", f.Expected)
}

func TestTraced(t *testing.T) {
	var buf bytes.Buffer
	p := Traced("number", &buf, Number())

	r := p.Parse(NewCursor("42!"))
	require.True(t, r.Ok())
	assert.Contains(t, buf.String(), `number at 0:"42!"`)
	assert.Contains(t, buf.String(), "number matched 42, resume at 2")

	buf.Reset()
	p.Parse(NewCursor("!"))
	assert.Contains(t, buf.String(), "number failed: 0: expected number, actual empty")
}

func TestFailurePreservedThroughCombinators(t *testing.T) {
	// The same Failure value must surface untouched no matter how deeply the
	// failing parser is wrapped.
	inner := And(Token("("), Number())
	wrapped := Bind(
		And(Token("["), inner),
		func(n int64) Parser[int64] { return Value(n) })

	r := wrapped.Parse(NewCursor("[(x"))
	require.False(t, r.Ok())
	f := r.Failure()
	assert.Equal(t, "number", f.Expected)
	assert.Equal(t, "empty", f.Actual)
	assert.Equal(t, 2, f.Cursor.Offset)

	direct := Number().Parse(NewCursor("[(x").Advance(2))
	assert.Equal(t, direct.Failure(), f)
}
