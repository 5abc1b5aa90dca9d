// Package mathexpr is an arithmetic-expression sketch built on the carriage
// combinators:
//
//	Num     <- [0-9]+
//	Unary   <- ("+" / "-") Primary
//	Primary <- Num / Unary / "(" Expr ")"
//	Expr    <- Primary (("+" / "-" / "*" / "/") Primary)*
//
// Operators at the same level associate to the left and there is no
// precedence between them: "2+3*4" is (2+3)*4. Values are folded as the
// parse goes, so the result of a parse is the evaluated int64 and no tree is
// retained. Blank space between tokens is thrown away.
package mathexpr

import (
	"github.com/abargnesi/carriage"
)

// Op is a binary arithmetic operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

func (o Op) String() string {
	return [...]string{"+", "-", "*", "/"}[o]
}

func (o Op) apply(lhs, rhs int64) (int64, bool) {
	switch o {
	case Add:
		return lhs + rhs, true
	case Sub:
		return lhs - rhs, true
	case Mul:
		return lhs * rhs, true
	default:
		if rhs == 0 {
			return 0, false
		}
		return lhs / rhs, true
	}
}

// Expr is the expression parser. It stops at the first character that cannot
// extend the expression; use Eval to require full consumption.
var Expr = carriage.Parser[int64](parseExpr)

// parseExpr defers to the assembled grammar through a function reference so
// that Primary's parenthesized branch can recurse into Expr.
func parseExpr(c carriage.Cursor) carriage.Result[int64] {
	return grammar(c)
}

// opRhs is one "(op Primary)" step of an expression tail.
type opRhs struct {
	op  Op
	rhs int64
}

// The grammar is recursive (parenthesized expressions contain expressions),
// which Go's initialization-dependency analysis rejects as a cycle, so the
// recursive productions are declared bare and assembled in init. parseExpr
// and parsePrimary only dereference them at parse time.
var (
	grammar carriage.Parser[int64]
	primary carriage.Parser[int64]
)

func init() {
	primary = first(
		number,
		unary,
		carriage.Bind(token("("), func(string) carriage.Parser[int64] {
			return carriage.Bind(carriage.Parser[int64](parseExpr), func(v int64) carriage.Parser[int64] {
				return carriage.And(token(")"), carriage.Value(v))
			})
		}),
	)
	grammar = carriage.Bind(primary, fold)
}

var (
	// tail collects the "(op Primary)*" steps; folding happens afterwards so
	// a fold error is a real Failure instead of being backtracked away.
	tail = carriage.ZeroOrMore(carriage.Bind(operator, func(op Op) carriage.Parser[opRhs] {
		return carriage.Map(carriage.Parser[int64](parsePrimary), func(rhs int64) opRhs {
			return opRhs{op: op, rhs: rhs}
		})
	}))

	// Unary <- ("+" / "-") Primary. Signs nest, so "--5" is 5.
	unary = carriage.Bind(
		first(symbol("+", int64(1)), symbol("-", int64(-1))),
		func(sign int64) carriage.Parser[int64] {
			return carriage.Map(carriage.Parser[int64](parsePrimary), func(v int64) int64 {
				return sign * v
			})
		})

	operator = first(
		symbol("+", Add),
		symbol("-", Sub),
		symbol("*", Mul),
		symbol("/", Div),
	)

	number = carriage.And(spaces, carriage.Number())

	spaces = carriage.ZeroOrMore(first(
		carriage.Token(" "),
		carriage.Token("\t"),
		carriage.Token("\n"),
	))
)

func parsePrimary(c carriage.Cursor) carriage.Result[int64] {
	return primary(c)
}

// fold applies the collected steps to lhs, left-associatively.
func fold(lhs int64) carriage.Parser[int64] {
	return carriage.Bind(tail, func(steps []opRhs) carriage.Parser[int64] {
		v := lhs
		for _, step := range steps {
			var ok bool
			v, ok = step.op.apply(v, step.rhs)
			if !ok {
				return fail[int64]("nonzero divisor", "0")
			}
		}
		return carriage.Value(v)
	})
}

// Eval parses and folds a whole expression, requiring all input to be
// consumed.
func Eval(input string) (int64, error) {
	r := Expr.Parse(carriage.NewCursor(input))
	if f := r.Failure(); f != nil {
		return 0, f
	}
	next := spaces.Parse(r.Cursor)
	if !next.Cursor.EOF() {
		return 0, &carriage.Failure{
			Cursor:   next.Cursor,
			Expected: "end of expression",
			Actual:   next.Cursor.Remaining(),
		}
	}
	return r.Value, nil
}

func token(s string) carriage.Parser[string] {
	return carriage.And(spaces, carriage.Token(s))
}

func symbol[T any](tok string, value T) carriage.Parser[T] {
	return carriage.And(token(tok), carriage.Value(value))
}

func fail[T any](expected, actual string) carriage.Parser[T] {
	return func(c carriage.Cursor) carriage.Result[T] {
		return carriage.Fail[T](c, expected, actual)
	}
}

func first[T any](parsers ...carriage.Parser[T]) carriage.Parser[T] {
	p := parsers[0]
	for _, alt := range parsers[1:] {
		p = collapse(carriage.Or(p, alt))
	}
	return p
}

func collapse[T any](p carriage.Parser[carriage.Either[T, T]]) carriage.Parser[T] {
	return carriage.Map(p, func(e carriage.Either[T, T]) T {
		if e.Side == carriage.SideLeft {
			return e.Left
		}
		return e.Right
	})
}
