package formula

import (
	"fmt"
	"unicode"
)

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF            TokenKind = iota
	TokenAtom                     // [A-Z][a-z]?
	TokenFactor                   // [0-9]+
	TokenOpeningBracket           // ( { [
	TokenClosingBracket           // ) } ]
)

var tokenNames = map[TokenKind]string{
	TokenEOF:            "end of input",
	TokenAtom:           "atom",
	TokenFactor:         "factor",
	TokenOpeningBracket: "opening bracket",
	TokenClosingBracket: "closing bracket",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit. Tokens compare equal when both Kind and
// Value match.
type Token struct {
	Kind  TokenKind
	Value string // exact source text, empty for TokenEOF
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s (%q)", t.Kind, t.Value)
}

// startsGroup reports whether t can begin a group.
func (t Token) startsGroup() bool {
	return t.Kind == TokenAtom || t.Kind == TokenOpeningBracket
}

// Tokenize classifies a raw substring into a Token.
//
// The empty string is end of input, an all-letter string is an atom and an
// all-digit string is a factor. Atom shape ([A-Z][a-z]?) is not checked here;
// the Lexer only ever produces well-formed atom spans.
// Returns an *InvalidTokenError when raw fits none of the token kinds.
func Tokenize(raw string) (Token, error) {
	switch {
	case raw == "":
		return Token{Kind: TokenEOF}, nil
	case allRunes(raw, unicode.IsLetter):
		return Token{Kind: TokenAtom, Value: raw}, nil
	case allRunes(raw, unicode.IsDigit):
		return Token{Kind: TokenFactor, Value: raw}, nil
	case raw == "(" || raw == "{" || raw == "[":
		return Token{Kind: TokenOpeningBracket, Value: raw}, nil
	case raw == ")" || raw == "}" || raw == "]":
		return Token{Kind: TokenClosingBracket, Value: raw}, nil
	}

	return Token{}, &InvalidTokenError{
		ParseError: ParseError{Message: fmt.Sprintf("invalid token %q", raw)},
		Value:      raw,
	}
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
