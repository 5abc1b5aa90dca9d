package textman

import (
	"github.com/abargnesi/carriage"
)

// The grammar is assembled once into package-level parser values and reused
// across parses.
var (
	// ParseQuoted parses a single-quoted word like 'Carriage'.
	ParseQuoted = carriage.And(
		carriage.Token("'"),
		carriage.Bind(carriage.Word(), func(w string) carriage.Parser[string] {
			return carriage.And(carriage.Token("'"), carriage.Value(w))
		}))

	// ParseAction parses an action symbol. Multi-character symbols come
	// first so that "r:U" is not claimed by the bare "r".
	ParseAction = first(
		symbol(":up", Upcase),
		symbol(":dn", Downcase),
		symbol("r:U", ReplaceUpper),
		symbol("r:L", ReplaceLower),
		symbol("m", Move),
		symbol("d", Delete),
		symbol("i", Insert),
		symbol("g", Go),
		symbol("r", Replace),
	)

	// ParseMovement parses a movement unit.
	ParseMovement = first(
		symbol("b", Back),
		symbol("f", Forward),
		symbol("l", Lines),
		symbol("w", Words),
	)

	// ParsePosition parses a line-relative position: "0", "^", "$", "3^",
	// "12$".
	ParsePosition = first(
		symbol("0", Position{}),
		carriage.Bind(optional(carriage.Number(), 0), func(n int64) carriage.Parser[Position] {
			return first(
				symbol("^", Position{Line: n, At: Start}),
				symbol("$", Position{Line: n, At: End}),
			)
		}),
	)

	// ParseCommand parses one command: an action, an optional seek mark, an
	// optional movement and an optional position/count/target argument.
	ParseCommand = carriage.Bind(ParseAction, func(a Action) carriage.Parser[Command] {
		return carriage.Bind(optional(seek, ""), func(s string) carriage.Parser[Command] {
			return carriage.Bind(optional(ParseMovement, None), func(m Movement) carriage.Parser[Command] {
				cmd := Command{Action: a, Seek: s, Movement: m}
				return optional(carriage.Map(argument, func(apply func(Command) Command) Command {
					return apply(cmd)
				}), cmd)
			})
		})
	})

	// seek is the punctuation mark an action travels to, as in g-w.
	seek = first(
		carriage.Token("-"),
		carriage.Token("."),
		carriage.Token(","),
		carriage.Token(";"),
		carriage.Token("_"),
	)

	// argument parses one command argument as a field setter, so the three
	// alternatives can carry different types. Positions come first: "3^"
	// must not be claimed digit-by-digit as a bare count.
	argument = first(
		carriage.Map(ParsePosition, func(p Position) func(Command) Command {
			return func(cmd Command) Command { cmd.Position = &p; return cmd }
		}),
		carriage.Map(carriage.Number(), func(n int64) func(Command) Command {
			return func(cmd Command) Command { cmd.Count = n; return cmd }
		}),
		carriage.Map(ParseQuoted, func(w string) func(Command) Command {
			return func(cmd Command) Command { cmd.Target = w; return cmd }
		}),
	)

	// statement defers to ParseGroup through a function reference; groups
	// contain programs, so the real wiring happens in init.
	statement = first(
		carriage.Map(carriage.Parser[Group](parseGroup), func(g Group) Statement { return g }),
		carriage.Map(ParseCommand, func(cmd Command) Statement { return cmd }),
	)

	// quantifier parses the repetition suffix of a group.
	quantifier = first(
		symbol("*", quant{repeat: Star}),
		symbol("+", quant{repeat: Plus}),
		symbol("?", quant{repeat: Opt}),
		carriage.Map(carriage.Number(), func(n int64) quant {
			return quant{repeat: Times, count: n}
		}),
	)

	spaces = carriage.ZeroOrMore(first(
		carriage.Token(" "),
		carriage.Token("\t"),
		carriage.Token("\n"),
	))
)

// quant is a parsed Quantifier before it lands in a Group.
type quant struct {
	repeat Repeat
	count  int64
}

// ParseGroup and ParseProgram are mutually recursive (a group wraps a
// program), which Go's initialization-dependency analysis rejects as a
// cycle, so both are declared bare and assembled in init. parseGroup and
// parseProgram dereference them at parse time; the composed parsers are
// still built exactly once.
var (
	// ParseGroup parses a parenthesized run of statements with an optional
	// quantifier: (gw'Carriage' :dn)*.
	ParseGroup carriage.Parser[Group]

	// ParseProgram parses a non-empty run of statements, discarding blank
	// space between them.
	ParseProgram carriage.Parser[Program]
)

func parseGroup(c carriage.Cursor) carriage.Result[Group] { return ParseGroup(c) }

func parseProgram(c carriage.Cursor) carriage.Result[Program] { return ParseProgram(c) }

func init() {
	ParseGroup = carriage.And(
		carriage.Token("("),
		carriage.Bind(carriage.Parser[Program](parseProgram), func(body Program) carriage.Parser[Group] {
			return carriage.And(
				carriage.Token(")"),
				carriage.Map(optional(quantifier, quant{}), func(q quant) Group {
					return Group{Body: body, Repeat: q.repeat, Count: q.count}
				}))
		}))

	ParseProgram = carriage.Bind(
		carriage.OneOrMore(carriage.And(spaces, statement)),
		func(stmts []Statement) carriage.Parser[Program] {
			return carriage.And(spaces, carriage.Value(Program(stmts)))
		})
}

// Parse parses a whole shorthand program, requiring all input to be
// consumed.
func Parse(input string) (Program, error) {
	r := ParseProgram.Parse(carriage.NewCursor(input))
	if f := r.Failure(); f != nil {
		return nil, f
	}
	if !r.Cursor.EOF() {
		f := &carriage.Failure{Cursor: r.Cursor, Expected: "command", Actual: r.Cursor.Remaining()}
		return nil, f
	}
	return r.Value, nil
}

// symbol matches an exact token and yields a fixed value in its place.
func symbol[T any](token string, value T) carriage.Parser[T] {
	return carriage.And(carriage.Token(token), carriage.Value(value))
}

// first tries each parser in order and keeps the first success. On total
// failure the last alternative's failure surfaces, per Or's policy.
func first[T any](parsers ...carriage.Parser[T]) carriage.Parser[T] {
	p := parsers[0]
	for _, alt := range parsers[1:] {
		p = collapse(carriage.Or(p, alt))
	}
	return p
}

// optional yields def without consuming input when p fails.
func optional[T any](p carriage.Parser[T], def T) carriage.Parser[T] {
	return collapse(carriage.Or(p, carriage.Value(def)))
}

func collapse[T any](p carriage.Parser[carriage.Either[T, T]]) carriage.Parser[T] {
	return carriage.Map(p, func(e carriage.Either[T, T]) T {
		if e.Side == carriage.SideLeft {
			return e.Left
		}
		return e.Right
	})
}
