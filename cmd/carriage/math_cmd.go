package main

import (
	"os"

	"github.com/alecthomas/repr"

	"github.com/abargnesi/carriage"
	"github.com/abargnesi/carriage/mathexpr"
)

type mathCmd struct {
	Expr string `arg:"" help:"Arithmetic expression, e.g. '(25 - 5) * 10'."`
}

func (m *mathCmd) Run(trace bool) error {
	p := mathexpr.Expr
	if trace {
		p = carriage.Traced("expr", os.Stderr, p)
	}
	r := p.Parse(carriage.NewCursor(m.Expr))
	if f := r.Failure(); f != nil {
		return f
	}
	if !r.Cursor.EOF() {
		return &carriage.Failure{
			Cursor:   r.Cursor,
			Expected: "end of expression",
			Actual:   r.Cursor.Remaining(),
		}
	}
	repr.Println(r.Value)
	return nil
}
