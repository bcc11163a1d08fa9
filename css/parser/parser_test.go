package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationList(t *testing.T) {
	list := ParseDeclarationListString("color: red; margin : 1px 2px !important;; @page {} ; 12: a; width", true, true)
	require.Len(t, list, 5)

	decl, ok := list[0].(Declaration)
	require.True(t, ok)
	assert.Equal(t, "color", decl.Name)
	assert.Equal(t, " red", Serialize(decl.Value))
	assert.False(t, decl.Important)

	decl, ok = list[1].(Declaration)
	require.True(t, ok)
	assert.Equal(t, "margin", decl.Name)
	assert.Equal(t, "1px 2px", strings.TrimSpace(Serialize(decl.Value)))
	assert.True(t, decl.Important)

	at, ok := list[2].(AtRule)
	require.True(t, ok)
	assert.Equal(t, "page", at.AtKeyword)

	_, ok = list[3].(ParseError)
	assert.True(t, ok, "a declaration name must be an identifier")

	_, ok = list[4].(ParseError)
	assert.True(t, ok, "missing colon")
}

func TestImportant(t *testing.T) {
	for _, test := range []struct {
		css       string
		important bool
	}{
		{"a: b !important", true},
		{"a: b ! IMPORTANT ", true},
		{"a: b !important c", false},
		{"a: !important", true},
		{"a: b important", false},
	} {
		decl, ok := ParseOneDeclaration(TokenizeString(test.css, true)).(Declaration)
		require.True(t, ok, test.css)
		assert.Equal(t, test.important, decl.Important, test.css)
	}

	decl := ParseOneDeclaration(TokenizeString("a: b !important c", true)).(Declaration)
	assert.Equal(t, "b !important c", strings.TrimSpace(Serialize(decl.Value)))
}

func TestOneDeclaration(t *testing.T) {
	_, ok := ParseOneDeclaration(TokenizeString("  ", true)).(ParseError)
	assert.True(t, ok)

	decl, ok := ParseOneDeclaration(TokenizeString(" /**/ --x: {a; b}", false)).(Declaration)
	require.True(t, ok)
	assert.Equal(t, "--x", decl.Name)
	assert.Equal(t, KCurlyBracketsBlock, RemoveWhitespace(decl.Value)[0].Kind())
}

func TestSplitOnComma(t *testing.T) {
	parts := SplitOnComma(TokenizeString("a, f(b, c), d", true))
	require.Len(t, parts, 3)
	assert.Equal(t, "f(b, c)", Serialize(RemoveWhitespace(parts[1])))
}
