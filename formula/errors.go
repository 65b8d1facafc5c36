package formula

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrGrammar      = errors.New("grammar error")
	ErrOverflow     = errors.New("count overflow")
)

// ParseError is the base error type for all formula errors.
type ParseError struct {
	Message string
	Pos     int // lexer cursor (token index) when the error was raised
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("position %d: %s", e.Pos, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// InvalidTokenError is returned by Tokenize for a substring that is not a
// token. It carries no position.
type InvalidTokenError struct {
	ParseError
	Value string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q", e.Value)
}

func (e *InvalidTokenError) Is(target error) bool { return target == ErrInvalidToken }

// GrammarError represents an unexpected token for the current grammar rule.
type GrammarError struct {
	ParseError
	Token    Token
	Expected string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("position %d: expected %s, got %s", e.Pos, e.Expected, e.Token)
}

func (e *GrammarError) Is(target error) bool { return target == ErrGrammar }

// ValueError represents a factor or count that does not fit in an int.
type ValueError struct {
	ParseError
	Literal string
}

func (e *ValueError) Is(target error) bool { return target == ErrOverflow }
