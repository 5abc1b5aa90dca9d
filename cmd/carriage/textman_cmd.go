package main

import (
	"os"

	"github.com/alecthomas/repr"

	"github.com/abargnesi/carriage"
	"github.com/abargnesi/carriage/textman"
)

type textmanCmd struct {
	Script string `arg:"" help:"Shorthand script, e.g. \"gw'Carriage' :dn\"."`
}

func (t *textmanCmd) Run(trace bool) error {
	p := textman.ParseProgram
	if trace {
		p = carriage.Traced("program", os.Stderr, p)
	}
	r := p.Parse(carriage.NewCursor(t.Script))
	if f := r.Failure(); f != nil {
		return f
	}
	if !r.Cursor.EOF() {
		return &carriage.Failure{
			Cursor:   r.Cursor,
			Expected: "command",
			Actual:   r.Cursor.Remaining(),
		}
	}
	repr.Println(r.Value)
	return nil
}
