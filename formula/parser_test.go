package formula

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlatFormula(t *testing.T) {
	counts, err := Parse("HHe2O30")
	require.NoError(t, err)
	assert.Equal(t, Counts{"H": 1, "He": 2, "O": 30}, counts)
}

func TestParseNestedFormula(t *testing.T) {
	counts, err := Parse("Mg2[CH4{NNi2(Li2O4)5}14]3")
	require.NoError(t, err)
	expected := Counts{"Mg": 2, "C": 3, "H": 12, "N": 42, "Ni": 84, "Li": 420, "O": 840}
	assert.Equal(t, expected, counts)
}

func TestParseCommonFormulas(t *testing.T) {
	tests := []struct {
		input string
		want  Counts
	}{
		{"H2O", Counts{"H": 2, "O": 1}},
		{"C6H12O6", Counts{"C": 6, "H": 12, "O": 6}},
		{"Fe(OH)3", Counts{"Fe": 1, "O": 3, "H": 3}},
		{"K4[ON(SO3)2]2", Counts{"K": 4, "O": 14, "N": 2, "S": 4}},
		{"HOH", Counts{"H": 2, "O": 1}},
		{"(H)", Counts{"H": 1}},
		{"((((H))))2", Counts{"H": 2}},
		{"H1", Counts{"H": 1}},
		{"H02", Counts{"H": 2}},
	}
	for _, tt := range tests {
		counts, err := Parse(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, counts, "input: %s", tt.input)
	}
}

func TestParseZeroFactorDropsAtoms(t *testing.T) {
	counts, err := Parse("H0")
	require.NoError(t, err)
	assert.Empty(t, counts)

	counts, err = Parse("C(H0)3O")
	require.NoError(t, err)
	assert.Equal(t, Counts{"C": 1, "O": 1}, counts)
}

func TestParseMismatchedBracketShapesAccepted(t *testing.T) {
	tests := []string{"(OH]", "[OH}", "{OH)"}
	for _, src := range tests {
		counts, err := Parse(src)
		require.NoError(t, err, "input: %s", src)
		assert.Equal(t, Counts{"O": 1, "H": 1}, counts)
	}
}

func TestParseIgnoresDroppedCharacters(t *testing.T) {
	counts, err := Parse("H2 O")
	require.NoError(t, err)
	assert.Equal(t, Counts{"H": 2, "O": 1}, counts)
}

func grammarError(t *testing.T, src string) *GrammarError {
	t.Helper()
	_, err := Parse(src)
	require.Error(t, err, "input: %q", src)
	var gerr *GrammarError
	require.True(t, errors.As(err, &gerr), "input: %q, err: %v", src, err)
	assert.ErrorIs(t, err, ErrGrammar)
	return gerr
}

func TestParseEmptyString(t *testing.T) {
	gerr := grammarError(t, "")
	assert.Equal(t, TokenEOF, gerr.Token.Kind)
	assert.Equal(t, 0, gerr.Pos)
	assert.Equal(t, "atom or opening bracket", gerr.Expected)
}

func TestParseUnclosedBracket(t *testing.T) {
	gerr := grammarError(t, "H2(OH")
	assert.Equal(t, TokenEOF, gerr.Token.Kind)
	assert.Equal(t, "closing bracket", gerr.Expected)
	// Cursor sits past the consumed end-of-input token.
	assert.Equal(t, 6, gerr.Pos)
}

func TestParseUnmatchedClosingBracket(t *testing.T) {
	gerr := grammarError(t, "H2(OH))2")
	assert.Equal(t, Token{Kind: TokenClosingBracket, Value: ")"}, gerr.Token)
	assert.Equal(t, "end of input", gerr.Expected)
	assert.Equal(t, 6, gerr.Pos)
	assert.Equal(t, `position 6: expected end of input, got closing bracket (")")`, gerr.Error())
}

func TestParseGrammarErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
		pos   int
	}{
		{"2H", TokenFactor, 0},
		{")", TokenClosingBracket, 0},
		{"()", TokenClosingBracket, 1},
		{"H()", TokenClosingBracket, 2},
		{"H22 3", TokenFactor, 2},
		{"(H2", TokenEOF, 4},
		{"   ", TokenEOF, 0},
		{"H(O", TokenEOF, 4},
	}
	for _, tt := range tests {
		gerr := grammarError(t, tt.input)
		assert.Equal(t, tt.kind, gerr.Token.Kind, "input: %q", tt.input)
		assert.Equal(t, tt.pos, gerr.Pos, "input: %q", tt.input)
	}
}

func TestParseFactorOverflow(t *testing.T) {
	_, err := Parse("H99999999999999999999999")
	require.Error(t, err)
	var verr *ValueError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "99999999999999999999999", verr.Literal)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestParseProductOverflow(t *testing.T) {
	big := strconv.Itoa(1 << 40)
	_, err := Parse("(H" + big + ")" + big)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.IsType(t, &ValueError{}, err)
}

func TestParseSumOverflow(t *testing.T) {
	half := strconv.Itoa(1<<62 + 1)
	_, err := Parse("H" + half + "H" + half)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestParseFormulaIsMemoized(t *testing.T) {
	lex := NewLexer("CH4")
	p := NewParser(lex)

	first, err := p.ParseFormula()
	require.NoError(t, err)
	pos := lex.Position()

	second, err := p.ParseFormula()
	require.NoError(t, err)
	assert.Equal(t, Counts{"C": 1, "H": 4}, second)
	assert.Equal(t, pos, lex.Position())
	assert.Equal(t, fmt.Sprintf("%p", first), fmt.Sprintf("%p", second))
}

func TestParseFormulaMemoizesError(t *testing.T) {
	lex := NewLexer("H2(OH))2")
	p := NewParser(lex)

	_, first := p.ParseFormula()
	require.Error(t, first)
	pos := lex.Position()

	counts, second := p.ParseFormula()
	assert.Nil(t, counts)
	assert.Same(t, first, second)
	assert.Equal(t, pos, lex.Position())
}

func TestParseIsDeterministic(t *testing.T) {
	src := "Mg2[CH4{NNi2(Li2O4)5}14]3"
	want, err := Parse(src)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		got, err := Parse(src)
		require.NoError(t, err)
		assert.True(t, want.Equal(got))
	}
}

func TestParseBracketFactorIsMultiplicative(t *testing.T) {
	molecules := []string{"H2O", "CH4", "Fe(OH)3", "K4[ON(SO3)2]2", "NNi2(Li2O4)5"}
	brackets := [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}}
	for _, m := range molecules {
		base, err := Parse(m)
		require.NoError(t, err)
		for _, b := range brackets {
			for _, n := range []int{1, 2, 7, 13} {
				got, err := Parse(b[0] + m + b[1] + strconv.Itoa(n))
				require.NoError(t, err)

				want := base.Clone()
				require.NoError(t, want.Scale(n))
				assert.Equal(t, want, got, "molecule %s x%d", m, n)
			}
		}
	}
}

func TestParseConcatenationIsAdditive(t *testing.T) {
	groups := []string{"H", "He2", "(OH)3", "[Fe{CN}6]4", "O30", "Na"}
	for _, a := range groups {
		for _, b := range groups {
			left, err := Parse(a)
			require.NoError(t, err)
			right, err := Parse(b)
			require.NoError(t, err)

			got, err := Parse(a + b)
			require.NoError(t, err)

			want := left.Clone()
			require.NoError(t, want.Add(right))
			assert.Equal(t, want, got, "%s + %s", a, b)
		}
	}
}
