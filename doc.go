// Package carriage is a small parser-combinator runtime for building
// recursive-descent parsers over short texts.
//
// A Parser[T] is a pure function from a Cursor (input text plus offset) to a
// Result[T], which either carries a value and the cursor to resume from, or a
// Failure recording where matching stopped and what was expected there.
//
// Grammars are assembled once from the primitives (Token, Word, Number,
// Value) and the combinators And, Or, Bind, Map, ZeroOrMore and OneOrMore,
// then reused across any number of parses. For example, a parser for quoted
// words like 'Carriage':
//
//	quoted := carriage.And(
//		carriage.Token("'"),
//		carriage.Bind(carriage.Word(), func(w string) carriage.Parser[string] {
//			return carriage.And(carriage.Token("'"), carriage.Value(w))
//		}))
//
//	words := carriage.OneOrMore(quoted)
//	r := words.Parse(carriage.NewCursor("'Carriage''Text'"))
//
// And keeps only its right value, so the Bind continuation re-injects the
// word through Value after requiring the closing quote.
//
// Alternation backtracks by construction: Or retries its right branch from
// the original cursor, and no parser ever mutates a Cursor, so failed
// branches leave no residue. Every primitive except Value consumes at least
// one character on success, which bounds repetition and guarantees
// termination on finite input.
//
// The textman and mathexpr subpackages are example grammars built purely on
// this API.
package carriage
