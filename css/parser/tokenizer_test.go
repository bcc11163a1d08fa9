package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind()
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	tokens := RemoveWhitespace(TokenizeString(`a 12px 50% 3 #fff "str" url(x.png) , / f(1) [b] (d) {c} @media`, true))
	assert.Equal(t, []Kind{
		KIdent, KDimension, KPercentage, KNumber, KHash, KString, KURL, KLiteral, KLiteral,
		KFunctionBlock, KSquareBracketsBlock, KParenthesesBlock, KCurlyBracketsBlock, KAtKeyword,
	}, kinds(tokens))
}

func TestTokenizeNumbers(t *testing.T) {
	tokens := RemoveWhitespace(TokenizeString("12 -1.5em 50% +3 0.0", true))
	require.Len(t, tokens, 5)

	n := tokens[0].(Number)
	assert.True(t, n.IsInt())
	assert.Equal(t, 12, n.Int())

	d := tokens[1].(Dimension)
	assert.False(t, d.IsInt())
	assert.Equal(t, -1.5, float64(d.ValueF))
	assert.Equal(t, "em", d.Unit)

	p := tokens[2].(Percentage)
	assert.Equal(t, 50., float64(p.ValueF))

	assert.Equal(t, 3., float64(tokens[3].(Number).ValueF))
	assert.False(t, tokens[4].(Number).IsInt())
}

func TestTokenizeFunctions(t *testing.T) {
	tokens := TokenizeString("rgba(1, 2, calc(3 + 4), 0.5)", true)
	require.Len(t, tokens, 1)
	fn, ok := tokens[0].(FunctionBlock)
	require.True(t, ok)
	assert.Equal(t, "rgba", fn.Name)
	args := RemoveWhitespace(fn.Arguments)
	require.Len(t, args, 7)
	inner, ok := args[4].(FunctionBlock)
	require.True(t, ok)
	assert.Equal(t, "calc", inner.Name)

	// unclosed blocks are closed at the end of the input
	tokens = TokenizeString("f(a, [b", true)
	require.Len(t, tokens, 1)
	fn = tokens[0].(FunctionBlock)
	assert.Equal(t, KSquareBracketsBlock, RemoveWhitespace(fn.Arguments)[2].Kind())
}

func TestTokenizeErrors(t *testing.T) {
	tokens := TokenizeString("a ) b", true)
	assert.Equal(t, []Kind{KIdent, KWhitespace, KParseError, KWhitespace, KIdent}, kinds(tokens))

	tokens = TokenizeString("url(a b)", true)
	require.NotEmpty(t, tokens)
	assert.Equal(t, KParseError, tokens[len(tokens)-1].Kind())
}

func TestTokenizeUnicodeRange(t *testing.T) {
	for _, test := range []struct {
		css        string
		start, end uint32
	}{
		{"U+26", 0x26, 0x26},
		{"u+0-7F", 0, 0x7f},
		{"U+4??", 0x400, 0x4ff},
	} {
		tokens := TokenizeString(test.css, true)
		require.Len(t, tokens, 1, test.css)
		ur, ok := tokens[0].(UnicodeRange)
		require.True(t, ok, test.css)
		assert.Equal(t, test.start, ur.Start, test.css)
		assert.Equal(t, test.end, ur.End, test.css)
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := TokenizeString("a\n  b", true)
	require.Len(t, tokens, 3)
	assert.Equal(t, Pos{Line: 1, Column: 1}, tokens[0].Pos())
	assert.Equal(t, Pos{Line: 2, Column: 3}, tokens[2].Pos())
}

func TestNoSkipComments(t *testing.T) {
	source := `
    /* foo */
    @media print {
        #foo {
            width: /* bar*/4px;
            color: green;
        }
    }
    `
	tokens := TokenizeString(source, false)
	assert.Equal(t, source, Serialize(tokens))

	tokens = TokenizeString("/* foo */ a", true)
	assert.Equal(t, []Kind{KWhitespace, KIdent}, kinds(tokens))
}

func TestHasVar(t *testing.T) {
	for _, test := range []struct {
		css    string
		hasVar bool
	}{
		{"var(--a)", true},
		{"VAR(--a)", true},
		{"calc(1px + var(--a))", true},
		{"(var(--a))", true},
		{"calc(1px + 2px)", false},
		{"var", false},
	} {
		tokens := TokenizeString(test.css, true)
		require.Len(t, tokens, 1)
		assert.Equal(t, test.hasVar, HasVar(tokens[0]), test.css)
	}
}
