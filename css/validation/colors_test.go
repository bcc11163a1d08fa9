package validation

import (
	"testing"

	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseColorValue(t *testing.T, ctx *Context, name, css string) values.Value {
	t.Helper()
	records := expectValid(t, ctx, name, css)
	require.Len(t, records, 1)
	return records[0].Value
}

func TestColorSyntaxes(t *testing.T) {
	ctx := NewContext(StandardMode)
	red := values.Color{R: 255, A: 255}
	for _, css := range []string{
		"red", "RED", "#f00", "#F00", "#ff0000", "#ff0000ff", "#f00f",
		"rgb(255, 0, 0)", "rgb(100%, 0%, 0%)", "rgb(300, -20, 0)",
		"rgba(255, 0, 0, 1)", "hsl(0, 100%, 50%)", "hsl(360, 100%, 50%)",
		"hsla(0, 100%, 50%, 2)",
	} {
		assert.Equal(t, red, parseColorValue(t, ctx, "color", css), css)
	}

	for _, test := range []struct {
		css      string
		expected values.Color
	}{
		{"transparent", values.Transparent},
		{"lime", values.Color{G: 255, A: 255}},
		{"hsl(120, 100%, 50%)", values.Color{G: 255, A: 255}},
		{"hsl(0, 0%, 100%)", values.Color{R: 255, G: 255, B: 255, A: 255}},
		{"rgba(0, 0, 0, 0.5)", values.Color{A: 127}},
		{"rgba(0, 0, 0, 0)", values.Color{}},
		{"#12345678", values.Color{R: 0x12, G: 0x34, B: 0x56, A: 0x78}},
		{"#abc", values.Color{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}},
	} {
		assert.Equal(t, test.expected, parseColorValue(t, ctx, "color", test.css), test.css)
	}

	assert.Equal(t, values.Keyword("currentcolor"), parseColorValue(t, ctx, "color", "currentColor"))
	assert.Equal(t, values.Keyword("buttonface"), parseColorValue(t, ctx, "color", "ButtonFace"))
}

func TestInvalidColors(t *testing.T) {
	ctx := NewContext(StandardMode)
	for _, css := range []string{
		"#ff", "#fffff", "#ggg", "redd", "rgb(255, 0)", "rgb(255, 0%, 0)",
		"rgb(1.5, 0, 0)", "rgb(255, 0, 0, 1)", "rgba(255, 0, 0)",
		"hsl(0, 100, 50%)", "hsl(0deg, 100%, 50%)", "cmyk(0, 0, 0, 0)",
		"red blue", "10px",
	} {
		expectInvalid(t, ctx, "color", css)
	}
}

func TestQuirkyColors(t *testing.T) {
	var counter countingUseCounter
	ctx := NewContext(QuirksMode)
	ctx.UseCounter = &counter

	red := values.Color{R: 255, A: 255}
	assert.Equal(t, red, parseColorValue(t, ctx, "color", "ff0000"))
	assert.Equal(t, values.Color{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}, parseColorValue(t, ctx, "background-color", "abc"))
	assert.Equal(t, values.Color{G: 0x01, B: 0x23, A: 255}, parseColorValue(t, ctx, "border-top-color", "123"))
	assert.Equal(t, values.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}, parseColorValue(t, ctx, "color", "112233"))
	assert.Equal(t, values.Color{R: 0x10, G: 0x20, B: 0xee, A: 255}, parseColorValue(t, ctx, "color", "1020ee"))
	assert.Equal(t, 5, counter.counts[UseQuirkyColor])

	// named colors win over the quirk
	assert.Equal(t, values.Color{R: 0xfa, G: 0xeb, B: 0xd7, A: 255}, parseColorValue(t, ctx, "color", "antiquewhite"))

	expectInvalid(t, ctx, "outline-color", "ff0000")
	expectInvalid(t, ctx, "color", "ff00")     // 4 digits
	expectInvalid(t, ctx, "color", "ff0000ff") // 8 digits
	expectInvalid(t, ctx, "color", "-100")
	expectInvalid(t, ctx, "border", "1px solid ff0000")
	expectInvalid(t, ctx, "border-color", "ff0000")

	standard := NewContext(StandardMode)
	expectInvalid(t, standard, "background-color", "abc")
}

func TestInternalColors(t *testing.T) {
	ctx := NewContext(StandardMode)
	assert.Equal(t, DisabledFeature, expectInvalid(t, ctx, "color", "-internal-quirk-inherit").Kind)

	var counter countingUseCounter
	ua := NewContext(UASheetMode)
	ua.UseCounter = &counter
	assert.Equal(t, values.Keyword("-internal-quirk-inherit"), parseColorValue(t, ua, "color", "-internal-quirk-inherit"))
	assert.Equal(t, 1, counter.counts[UseInternalColor])
}

func TestColorsInShorthands(t *testing.T) {
	ctx := NewContext(StandardMode)
	m := expand(t, ctx, "outline", "rgb(0, 0, 255) dashed")
	assert.Equal(t, values.Color{B: 255, A: 255}, m[pr.POutlineColor].Value)
	assert.Equal(t, "dashed", text(m[pr.POutlineStyle]))
}

func TestHexParsing(t *testing.T) {
	c, ok := parseHex("1234", false)
	assert.True(t, ok)
	assert.Equal(t, values.Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, c)

	_, ok = parseHex("1234", true)
	assert.False(t, ok)
	_, ok = parseHex("12345", false)
	assert.False(t, ok)
	_, ok = parseHex("12345g", false)
	assert.False(t, ok)
}

func TestHSLConversion(t *testing.T) {
	r, g, b := hslToRGB(0, 0, 0.5)
	assert.Equal(t, [3]float64{0.5, 0.5, 0.5}, [3]float64{r, g, b})

	r, g, b = hslToRGB(2./3, 1, 0.5) // blue
	assert.InDelta(t, 0, r, 1e-9)
	assert.InDelta(t, 0, g, 1e-9)
	assert.InDelta(t, 1, b, 1e-9)
}
