package validation

import (
	"testing"

	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontFaceDescriptors(t *testing.T) {
	ctx := NewContext(StandardMode)
	ctx.BaseURL = "http://example.com/fonts/"
	ctx = ctx.ForRule(FontFaceRule)

	records := expectValid(t, ctx, "font-family", "My Font")
	require.Len(t, records, 1)
	assert.Equal(t, pr.PFontFamily, records[0].Property)
	assert.Equal(t, values.FontFamily("My Font"), records[0].Value)
	assert.Zero(t, records[0].FromShorthand)

	records = expectValid(t, ctx, "src", `local("Foo Bold"), local(Foo), url(foo.woff) format("woff", "truetype"), url(bar.ttf)`)
	require.Len(t, records, 1)
	assert.Equal(t, pr.PSrc, records[0].Property)
	assert.Equal(t, values.List{
		Items: []values.Value{
			values.FontFaceSrc{Local: "Foo Bold"},
			values.FontFaceSrc{Local: "Foo"},
			values.FontFaceSrc{URI: "http://example.com/fonts/foo.woff", Format: "woff"},
			values.FontFaceSrc{URI: "http://example.com/fonts/bar.ttf"},
		},
		Sep: values.CommaSeparator,
	}, records[0].Value)

	records = expectValid(t, ctx, "unicode-range", "U+0-7F, u+4??")
	assert.Equal(t, values.List{
		Items: []values.Value{
			values.UnicodeRange{From: 0, To: 0x7f},
			values.UnicodeRange{From: 0x400, To: 0x4ff},
		},
		Sep: values.CommaSeparator,
	}, records[0].Value)
	assert.Equal(t, "U+26", singleText(t, expectValid(t, ctx, "unicode-range", "U+26")))

	assert.Equal(t, "bold, 400", singleText(t, expectValid(t, ctx, "font-weight", "bold, 400")))
	assert.Equal(t, "italic", singleText(t, expectValid(t, ctx, "font-style", "italic")))
	assert.Equal(t, "normal, small-caps", singleText(t, expectValid(t, ctx, "font-variant", "normal, small-caps")))

	for _, test := range []struct {
		name, css string
	}{
		{"font-family", "serif"},
		{"font-family", "a, b"},
		{"font-family", "inherit"},
		{"font-style", "var(--s)"},
		{"font-style", "initial"},
		{"font-weight", "bolder"},
		{"src", "url(a.woff) format(woff)"},
		{"src", "local(a) format(\"woff\")"},
		{"src", "url(a.woff),"},
		{"unicode-range", "U+26 U+27"},
	} {
		expectInvalid(t, ctx, test.name, test.css)
	}
	assert.Equal(t, RangeViolation, expectInvalid(t, ctx, "unicode-range", "U+110000").Kind)
	assert.Equal(t, UnknownProperty, expectInvalid(t, ctx, "width", "10px").Kind)
	assert.Equal(t, UnknownProperty, expectInvalid(t, ctx, "min-zoom", "1").Kind)
}

func TestViewportDescriptors(t *testing.T) {
	ctx := NewContext(StandardMode).ForRule(ViewportRule)

	records := expectValid(t, ctx, "width", "device-width")
	require.Len(t, records, 2)
	assert.Equal(t, pr.PMinWidth, records[0].Property)
	assert.Equal(t, pr.PMaxWidth, records[1].Property)
	for _, r := range records {
		assert.Equal(t, "device-width", text(r))
		assert.Zero(t, r.FromShorthand)
		assert.False(t, r.Implicit)
	}

	records = expectValid(t, ctx, "height", "100px 50%")
	require.Len(t, records, 2)
	assert.Equal(t, pr.PMinHeight, records[0].Property)
	assert.Equal(t, "100px", text(records[0]))
	assert.Equal(t, pr.PMaxHeight, records[1].Property)
	assert.Equal(t, "50%", text(records[1]))

	for _, test := range []struct {
		name, css, expected string
	}{
		{"min-width", "auto", "auto"},
		{"max-height", "device-height", "device-height"},
		{"zoom", "1.5", "1.5"},
		{"min-zoom", "150%", "150%"},
		{"max-zoom", "auto", "auto"},
		{"user-zoom", "fixed", "fixed"},
		{"orientation", "landscape", "landscape"},
	} {
		assert.Equal(t, test.expected, singleText(t, expectValid(t, ctx, test.name, test.css)), test.name)
	}

	for _, test := range []struct {
		name, css string
	}{
		{"width", "1px 2px 3px"},
		{"width", "inherit"},
		{"min-width", "red"},
		{"user-zoom", "auto"},
		{"orientation", "portrait landscape"},
	} {
		expectInvalid(t, ctx, test.name, test.css)
	}
	assert.Equal(t, RangeViolation, expectInvalid(t, ctx, "zoom", "-1").Kind)
	assert.Equal(t, RangeViolation, expectInvalid(t, ctx, "min-width", "-1px").Kind)
	assert.Equal(t, UnknownProperty, expectInvalid(t, ctx, "color", "red").Kind)
	assert.Equal(t, UnknownProperty, expectInvalid(t, ctx, "src", "url(a.woff)").Kind)
}

func TestDescriptorsInStyleRules(t *testing.T) {
	ctx := NewContext(StandardMode)
	for _, name := range []string{"src", "unicode-range", "min-zoom", "user-zoom", "orientation"} {
		assert.Equal(t, UnknownProperty, expectInvalid(t, ctx, name, "auto").Kind, name)
	}
	// the rule kind does not leak into the original context
	fontFace := ctx.ForRule(FontFaceRule)
	assert.Equal(t, FontFaceRule, fontFace.Rule)
	assert.Equal(t, StyleRule, ctx.Rule)
	assert.Same(t, ctx.Caches, fontFace.Caches)
}
