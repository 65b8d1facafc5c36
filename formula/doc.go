// Package formula parses chemical formulas into per-element atom counts.
//
// A formula is a sequence of groups. A group is either an element symbol or a
// bracketed sub-formula, optionally followed by a decimal repeat factor:
//
//	formula  := molecule EOF
//	molecule := group molecule?
//	group    := ATOM FACTOR? | OPENING_BRACKET molecule CLOSING_BRACKET FACTOR?
//
//	ATOM            [A-Z][a-z]?
//	FACTOR          [0-9]+
//	OPENING_BRACKET ( { [
//	CLOSING_BRACKET ) } ]
//
// The package is structured in three layers:
//
//   - Tokenize: classifies one raw substring into a typed Token.
//   - Lexer: splits a formula into spans and exposes a one-token lookahead
//     cursor over them. Characters that start no span are dropped, so
//     "H2 O" lexes the same as "H2O".
//   - Parser: an LL(1) recursive-descent parser over the grammar above that
//     folds the tokens into Counts.
//
// Brackets are matched by kind only: "(OH]" is a valid group.
//
// Usage:
//
//	counts, err := formula.Parse("Mg2[CH4{NNi2(Li2O4)5}14]3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(counts["Li"]) // 420
//
// Errors are *InvalidTokenError, *GrammarError or *ValueError. Grammar
// positions are indexes into the token sequence, not byte offsets.
package formula
