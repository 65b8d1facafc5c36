// Package grammar is a declarative rendition of the formula grammar built
// with participle. It accepts exactly the inputs formula.Parse accepts and
// yields the same counts, so the two can be used to check each other.
package grammar

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/martinemde/chemformula/formula"
)

// Formula is the root of the parse tree.
type Formula struct {
	Molecule *Molecule `@@`
}

type Molecule struct {
	Groups []*Group `@@+`
}

type Group struct {
	Atom   string    `(  @Atom`
	Nested *Molecule ` | Open @@ Close )`
	Factor string    `@Factor?`
}

// Junk swallows every character the formula lexer would skip.
var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Atom", Pattern: `[A-Z][a-z]?`},
	{Name: "Factor", Pattern: `[0-9]+`},
	{Name: "Open", Pattern: `[\[({]`},
	{Name: "Close", Pattern: `[\])}]`},
	{Name: "Junk", Pattern: `[^A-Z0-9\[\](){}]+`},
})

var parseFormula = participle.MustBuild[Formula](
	participle.Lexer(formulaLexer),
	participle.Elide("Junk"),
)

// SyntaxError wraps a participle failure. Pos is a character position in the
// source, unlike formula.GrammarError which reports token indexes.
type SyntaxError struct {
	Pos lexer.Position
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Pos.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Is(target error) bool { return target == formula.ErrGrammar }

// ParseTree parses src into its parse tree.
func ParseTree(src string) (*Formula, error) {
	tree, err := parseFormula.ParseString("", src)
	if err != nil {
		serr := &SyntaxError{Err: err}
		var perr participle.Error
		if errors.As(err, &perr) {
			serr.Pos = perr.Position()
		}
		return nil, serr
	}
	if tree.Molecule == nil || len(tree.Molecule.Groups) == 0 {
		return nil, &SyntaxError{Err: errors.New("expected atom or opening bracket")}
	}
	return tree, nil
}

// Parse parses src and folds the tree into atom counts.
func Parse(src string) (formula.Counts, error) {
	tree, err := ParseTree(src)
	if err != nil {
		return nil, err
	}
	return tree.Molecule.Counts()
}

// Counts sums the counts of every group in the molecule.
func (m *Molecule) Counts() (formula.Counts, error) {
	counts := formula.Counts{}
	for _, g := range m.Groups {
		gc, err := g.Counts()
		if err != nil {
			return nil, err
		}
		if err := counts.Add(gc); err != nil {
			return nil, overflow("", err)
		}
	}
	return counts, nil
}

// Counts returns the group's counts with its factor applied.
func (g *Group) Counts() (formula.Counts, error) {
	var counts formula.Counts
	if g.Nested != nil {
		inner, err := g.Nested.Counts()
		if err != nil {
			return nil, err
		}
		counts = inner
	} else {
		counts = formula.Counts{g.Atom: 1}
	}

	if g.Factor == "" {
		return counts, nil
	}
	factor, err := strconv.Atoi(g.Factor)
	if err != nil {
		return nil, &formula.ValueError{
			ParseError: formula.ParseError{
				Message: fmt.Sprintf("invalid factor %q: %v", g.Factor, err),
				Cause:   err,
			},
			Literal: g.Factor,
		}
	}
	if factor != 1 {
		if err := counts.Scale(factor); err != nil {
			return nil, overflow(g.Factor, err)
		}
	}
	return counts, nil
}

func overflow(literal string, cause error) *formula.ValueError {
	return &formula.ValueError{
		ParseError: formula.ParseError{Message: cause.Error(), Cause: cause},
		Literal:    literal,
	}
}
