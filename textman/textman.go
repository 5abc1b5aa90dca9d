// Package textman parses Carriage, a concise shorthand for describing text
// manipulations.
//
// The language is position-oriented: a program is a run of commands, each
// naming an action, an optional movement unit and an optional argument
// (a repeat count or a quoted target word):
//
//	gw'Carriage' :dn
//
// reads "go to the next occurrence of the word Carriage, then downcase it".
// Parenthesized groups repeat a run of commands:
//
//	(gw'Carriage' :dn)*
//
// downcases every occurrence. The accepted grammar, in PEG form:
//
//	Number     <- [0-9]+
//	Quoted     <- "'" Word "'"
//	Position   <- "0" / Number? ("^" / "$")
//	Seek       <- "-" / "." / "," / ";" / "_"
//	Movement   <- "b" / "f" / "l" / "w"
//	Action     <- ":up" / ":dn" / "r:U" / "r:L" / "m" / "d" / "i" / "g" / "r"
//	Command    <- Action Seek? Movement? (Position / Number / Quoted)?
//	Quantifier <- "*" / "+" / "?" / Number
//	Group      <- "(" Program ")" Quantifier?
//	Statement  <- Group / Command
//	Program    <- (Space* Statement)+ Space*
//
// Blank space between statements is not necessary but can be used for clear
// separation; it is thrown away.
//
// The package only parses: commands are returned as plain values and nothing
// executes them against a text.
package textman

import (
	"fmt"
	"strconv"
	"strings"
)

// Action names what a command does to the text at the current position.
type Action int

const (
	Move Action = iota
	Delete
	Insert
	Go
	Replace
	Upcase
	Downcase
	ReplaceUpper
	ReplaceLower
)

var actionNames = map[Action]string{
	Move:         "move",
	Delete:       "delete",
	Insert:       "insert",
	Go:           "go",
	Replace:      "replace",
	Upcase:       "upcase",
	Downcase:     "downcase",
	ReplaceUpper: "replace-upper",
	ReplaceLower: "replace-lower",
}

func (a Action) String() string { return actionNames[a] }

// Movement selects the unit an action travels over. The zero value means the
// command named no movement.
type Movement int

const (
	None Movement = iota
	Back
	Forward
	Lines
	Words
)

var movementNames = map[Movement]string{
	None:    "none",
	Back:    "back",
	Forward: "forward",
	Lines:   "lines",
	Words:   "words",
}

func (m Movement) String() string { return movementNames[m] }

// Anchor distinguishes the two ends of a line.
type Anchor int

const (
	Start Anchor = iota
	End
)

// Position addresses a point relative to the current line: Line lines ahead,
// at the start or end of that line. "^" and "0" are the start of the current
// line, "$" its end, "3^" the start of the third line down.
type Position struct {
	Line int64
	At   Anchor
}

func (p Position) String() string {
	anchor := "^"
	if p.At == End {
		anchor = "$"
	}
	if p.Line == 0 {
		return anchor
	}
	return fmt.Sprintf("%d%s", p.Line, anchor)
}

// Command is one parsed shorthand command. Seek is the punctuation mark an
// action travels to, as in g-w ("go to the next hyphen, then the next word");
// it is empty when the command named none. A command carries at most one
// argument: Count is zero, Target empty and Position nil when the
// corresponding argument was not given.
type Command struct {
	Action   Action
	Seek     string
	Movement Movement
	Count    int64
	Target   string
	Position *Position
}

func (c Command) String() string {
	s := c.Action.String()
	if c.Seek != "" {
		s += " " + c.Seek
	}
	if c.Movement != None {
		s += " " + c.Movement.String()
	}
	if c.Count != 0 {
		s += fmt.Sprintf(" %d", c.Count)
	}
	if c.Target != "" {
		s += fmt.Sprintf(" %q", c.Target)
	}
	if c.Position != nil {
		s += " " + c.Position.String()
	}
	return s
}

// Repeat says how many times a Group runs.
type Repeat int

const (
	Once  Repeat = iota
	Star         // zero or more
	Plus         // one or more
	Opt          // zero or one
	Times        // exactly Count times
)

// Group is a parenthesized run of statements with an optional quantifier,
// like (gw'Carriage' :dn)*.
type Group struct {
	Body   Program
	Repeat Repeat
	Count  int64 // set when Repeat is Times
}

func (g Group) String() string {
	parts := make([]string, len(g.Body))
	for i, stmt := range g.Body {
		parts[i] = stmt.String()
	}
	s := "(" + strings.Join(parts, " ") + ")"
	switch g.Repeat {
	case Star:
		s += "*"
	case Plus:
		s += "+"
	case Opt:
		s += "?"
	case Times:
		s += strconv.FormatInt(g.Count, 10)
	}
	return s
}

// Statement is one step of a program: a plain Command or a repetition Group.
type Statement interface {
	fmt.Stringer
	statement()
}

func (Command) statement() {}
func (Group) statement()   {}

// Program is an ordered run of statements.
type Program []Statement
