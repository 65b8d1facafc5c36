package formula

import "regexp"

// spanPattern extracts atom, factor and bracket spans. Any other character
// is skipped.
var spanPattern = regexp.MustCompile(`[A-Z][a-z]?|[0-9]+|[\[({})\]]`)

// Lexer is a cursor over the token spans of one formula. It is not safe for
// concurrent use.
type Lexer struct {
	spans []string
	pos   int // index of the next unconsumed span
}

// NewLexer splits src into spans. Lexing never fails.
func NewLexer(src string) *Lexer {
	return &Lexer{spans: spanPattern.FindAllString(src, -1)}
}

// Peek returns the next token without consuming it. Past the last span it
// returns the end-of-input token.
func (l *Lexer) Peek() Token {
	if l.pos >= len(l.spans) {
		return Token{Kind: TokenEOF}
	}
	tok, err := Tokenize(l.spans[l.pos])
	if err != nil {
		// spanPattern only matches classifiable text.
		panic(err)
	}
	return tok
}

// Next returns the next token and advances the cursor by one. It may be
// called past the end; every such call returns end of input.
func (l *Lexer) Next() Token {
	tok := l.Peek()
	l.pos++
	return tok
}

// Position returns the index of the next unconsumed token.
func (l *Lexer) Position() int {
	return l.pos
}

// Spans returns a copy of the raw spans extracted from the source.
func (l *Lexer) Spans() []string {
	return append([]string(nil), l.spans...)
}
