package formula

import (
	"fmt"
	"strconv"
)

// Parse parses a chemical formula and returns its atom counts.
// Returns a *GrammarError or *ValueError on failure.
func Parse(src string) (Counts, error) {
	return NewParser(NewLexer(src)).ParseFormula()
}

// Parser is a recursive-descent parser pulling tokens from a Lexer on demand.
type Parser struct {
	lex *Lexer

	done   bool
	result Counts
	err    error
}

// NewParser creates a Parser reading from lex.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// ParseFormula parses the whole token stream as a formula. The outcome is
// computed once; later calls return the same Counts and error without
// touching the lexer again.
func (p *Parser) ParseFormula() (Counts, error) {
	if !p.done {
		p.result, p.err = p.parseFormula()
		p.done = true
	}
	return p.result, p.err
}

func (p *Parser) parseFormula() (Counts, error) {
	counts, err := p.parseMolecule()
	if err != nil {
		return nil, err
	}

	// Reject trailing tokens, e.g. an unmatched closing bracket.
	if tok := p.lex.Peek(); tok.Kind != TokenEOF {
		return nil, p.unexpected(tok, "end of input")
	}
	return counts, nil
}

func (p *Parser) parseMolecule() (Counts, error) {
	tok := p.lex.Peek()
	if !tok.startsGroup() {
		return nil, p.unexpected(tok, "atom or opening bracket")
	}

	counts := Counts{}
	group, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	if err := counts.Add(group); err != nil {
		return nil, p.overflow("", err)
	}

	if p.lex.Peek().startsGroup() {
		rest, err := p.parseMolecule()
		if err != nil {
			return nil, err
		}
		if err := counts.Add(rest); err != nil {
			return nil, p.overflow("", err)
		}
	}
	return counts, nil
}

func (p *Parser) parseGroup() (Counts, error) {
	var counts Counts

	tok := p.lex.Peek()
	switch tok.Kind {
	case TokenAtom:
		counts = p.parseAtom()

	case TokenOpeningBracket:
		p.lex.Next()
		inner, err := p.parseMolecule()
		if err != nil {
			return nil, err
		}
		if err := p.expectClosingBracket(); err != nil {
			return nil, err
		}
		counts = inner

	default:
		return nil, p.unexpected(tok, "atom or opening bracket")
	}

	if p.lex.Peek().Kind == TokenFactor {
		factor, literal, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if factor != 1 {
			if err := counts.Scale(factor); err != nil {
				return nil, p.overflow(literal, err)
			}
		}
	}
	return counts, nil
}

func (p *Parser) parseAtom() Counts {
	tok := p.lex.Next()
	return Counts{tok.Value: 1}
}

// parseFactor consumes a factor token. The caller has already checked the
// token kind.
func (p *Parser) parseFactor() (int, string, error) {
	tok := p.lex.Next()
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return 0, tok.Value, &ValueError{
			ParseError: ParseError{
				Message: fmt.Sprintf("invalid factor %q: %v", tok.Value, err),
				Pos:     p.lex.Position(),
				Cause:   err,
			},
			Literal: tok.Value,
		}
	}
	return n, tok.Value, nil
}

// expectClosingBracket consumes the next token and requires it to be a
// closing bracket of any shape.
func (p *Parser) expectClosingBracket() error {
	tok := p.lex.Next()
	if tok.Kind != TokenClosingBracket {
		return p.unexpected(tok, "closing bracket")
	}
	return nil
}

func (p *Parser) unexpected(tok Token, expected string) *GrammarError {
	return &GrammarError{
		ParseError: ParseError{Pos: p.lex.Position()},
		Token:      tok,
		Expected:   expected,
	}
}

func (p *Parser) overflow(literal string, cause error) *ValueError {
	return &ValueError{
		ParseError: ParseError{
			Message: cause.Error(),
			Pos:     p.lex.Position(),
			Cause:   cause,
		},
		Literal: literal,
	}
}
