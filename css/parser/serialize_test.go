package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifiers(t *testing.T) {
	for _, value := range []string{"a", "-a", "--a", "1a", "-", "a b", "é", "a\nb"} {
		s := SerializeIdentifier(value)
		tokens := TokenizeString(s, true)
		require.Len(t, tokens, 1, s)
		ident, ok := tokens[0].(Ident)
		require.True(t, ok, s)
		assert.Equal(t, value, ident.Value)
	}
	assert.Equal(t, "", SerializeIdentifier(""))
}

func TestStringsAndURLs(t *testing.T) {
	for _, value := range []string{"", "a", `a"b`, "a\\b", "a\nb"} {
		tokens := TokenizeString(SerializeString(value), true)
		require.Len(t, tokens, 1)
		assert.Equal(t, value, tokens[0].(String).Value)
	}
	for _, value := range []string{"a.png", "a b.png", "a(b).png"} {
		tokens := TokenizeString(SerializeURL(value), true)
		require.Len(t, tokens, 1)
		assert.Equal(t, value, tokens[0].(URL).Value)
	}
}

func TestCommentEof(t *testing.T) {
	assert.Equal(t, "/* foo */", Serialize(TokenizeString("/* foo ", false)))
}

func TestBackslashDelim(t *testing.T) {
	source := "\\\nfoo"
	tokens := TokenizeString(source, false)
	require.Len(t, tokens, 3)
	lit, ok := tokens[0].(Literal)
	require.True(t, ok)
	assert.Equal(t, "\\", lit.Value)
	assert.Equal(t, KWhitespace, tokens[1].Kind())
	assert.Equal(t, KIdent, tokens[2].Kind())

	tokens = []Token{tokens[0], tokens[2]}
	assert.Equal(t, source, Serialize(tokens))
}

// serializing then tokenizing again gives the same tokens
func TestSerialization(t *testing.T) {
	for _, css := range []string{
		"a 12px -1.5em 50% #fff #1a",
		`"str" url(x.png) f(1, 2) [b] (c) {d}`,
		"calc(1px + 2%) / 3 , e",
		"a-b --c var(--d, 1px)",
		"1 2 3em4",
	} {
		tokens := TokenizeString(css, true)
		again := TokenizeString(Serialize(tokens), true)
		assert.Equal(t, kinds(tokens), kinds(again), css)
		assert.Equal(t, Serialize(tokens), Serialize(again), css)
	}
}

// adjacent tokens which would merge are separated
func TestSerializeAdjacent(t *testing.T) {
	tokens := []Token{NewIdent("a", Pos{}), NewIdent("b", Pos{})}
	again := TokenizeString(Serialize(tokens), true)
	assert.Len(t, RemoveWhitespace(again), 2)

	tokens = []Token{NewNumber(1, Pos{}), NewIdent("px", Pos{})}
	again = TokenizeString(Serialize(tokens), true)
	assert.Len(t, RemoveWhitespace(again), 2)
}
