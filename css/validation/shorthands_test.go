package validation

import (
	"testing"

	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expand parses a valid shorthand and checks that every longhand
// is set exactly once.
func expand(t *testing.T, ctx *Context, name, css string) map[pr.KnownProp]Record {
	t.Helper()
	records := expectValid(t, ctx, name, css)
	shorthand := pr.FromName(name)
	out := byProperty(t, records)
	require.Len(t, out, len(shorthand.Longhands()), "%s: %s", name, css)
	for _, r := range records {
		assert.Equal(t, shorthand, r.FromShorthand)
	}
	return out
}

func text(r Record) string { return values.CSSText(r.Value) }

func assertImplicit(t *testing.T, r Record) {
	t.Helper()
	assert.True(t, r.Implicit, "%s", r.Property)
	assert.Equal(t, values.CSSWide{Keyword: values.Initial, Implicit: true}, r.Value)
}

func TestFourSides(t *testing.T) {
	ctx := NewContext(StandardMode)
	for _, test := range []struct {
		css                      string
		top, right, bottom, left string
	}{
		{"1px", "1px", "1px", "1px", "1px"},
		{"1px 2px", "1px", "2px", "1px", "2px"},
		{"1px 2px 3px", "1px", "2px", "3px", "2px"},
		{"1px 2px 3px 4px", "1px", "2px", "3px", "4px"},
		{"auto 0", "auto", "0px", "auto", "0px"},
	} {
		m := expand(t, ctx, "margin", test.css)
		assert.Equal(t, test.top, text(m[pr.PMarginTop]), test.css)
		assert.Equal(t, test.right, text(m[pr.PMarginRight]), test.css)
		assert.Equal(t, test.bottom, text(m[pr.PMarginBottom]), test.css)
		assert.Equal(t, test.left, text(m[pr.PMarginLeft]), test.css)
		for _, r := range m {
			assert.False(t, r.Implicit)
		}
	}

	m := expand(t, ctx, "border-style", "solid dashed")
	assert.Equal(t, "dashed", text(m[pr.PBorderLeftStyle]))

	expectInvalid(t, ctx, "margin", "1px 2px 3px 4px 5px")
	expectInvalid(t, ctx, "padding", "-1px")
	expectInvalid(t, ctx, "padding", "auto")
	expectInvalid(t, ctx, "border-width", "1px red")
}

func TestShorthandAtomicity(t *testing.T) {
	ctx := NewContext(StandardMode)
	var out Collector
	require.NoError(t, ParseValue(pr.PWidth, false, tokens("10px"), ctx, &out))
	require.Equal(t, 1, out.Len())

	for _, test := range []struct {
		id  pr.KnownProp
		css string
	}{
		{pr.SBorderWidth, "1px 2px 3px 4px 5px"},
		{pr.SBorder, "1px solid red blue"},
		{pr.SFont, "bold 12px"},
		{pr.SBackground, "red, url(a.png)"},
		{pr.SGridTemplate, `"a b" "b a"`},
		{pr.STransition, "none, opacity 1s"},
	} {
		err := ParseValue(test.id, false, tokens(test.css), ctx, &out)
		assert.Error(t, err, test.css)
		assert.Equal(t, 1, out.Len(), test.css)
	}
	assert.Equal(t, pr.PWidth, out.Records()[0].Property)
}

func TestBorder(t *testing.T) {
	ctx := NewContext(StandardMode)

	m := expand(t, ctx, "border", "1px solid red")
	require.Len(t, m, 17)
	for _, prop := range []pr.KnownProp{pr.PBorderTopWidth, pr.PBorderRightWidth, pr.PBorderBottomWidth, pr.PBorderLeftWidth} {
		assert.Equal(t, "1px", text(m[prop]))
	}
	for _, prop := range []pr.KnownProp{pr.PBorderTopStyle, pr.PBorderRightStyle, pr.PBorderBottomStyle, pr.PBorderLeftStyle} {
		assert.Equal(t, "solid", text(m[prop]))
	}
	assert.Equal(t, values.Color{R: 255, A: 255}, m[pr.PBorderLeftColor].Value)
	for _, prop := range []pr.KnownProp{
		pr.PBorderImageSource, pr.PBorderImageSlice, pr.PBorderImageWidth,
		pr.PBorderImageOutset, pr.PBorderImageRepeat,
	} {
		assertImplicit(t, m[prop])
	}

	// any order, missing parts are implicit
	m = expand(t, ctx, "border", "dotted 2px")
	assert.Equal(t, "dotted", text(m[pr.PBorderBottomStyle]))
	assert.Equal(t, "2px", text(m[pr.PBorderBottomWidth]))
	assertImplicit(t, m[pr.PBorderTopColor])

	m = expand(t, ctx, "border-top", "thick")
	assert.Equal(t, "thick", text(m[pr.PBorderTopWidth]))
	assertImplicit(t, m[pr.PBorderTopStyle])

	expectInvalid(t, ctx, "border", "solid solid")
	expectInvalid(t, ctx, "border", "1px solid red, 2px")
}

func TestShorthandIndex(t *testing.T) {
	ctx := NewContext(StandardMode)
	m := expand(t, ctx, "border-top", "1px solid")
	// border-top-width is set by border, border-top and border-width
	shorthands := pr.PBorderTopWidth.Shorthands()
	require.Greater(t, len(shorthands), 1)
	assert.Equal(t, pr.SBorderTop, shorthands[m[pr.PBorderTopWidth].ShorthandIndex])
}

func TestFont(t *testing.T) {
	ctx := NewContext(StandardMode)

	m := expand(t, ctx, "font", "italic bold 12px/1.5 Arial, sans-serif")
	assert.Equal(t, "italic", text(m[pr.PFontStyle]))
	assert.Equal(t, "bold", text(m[pr.PFontWeight]))
	assert.Equal(t, "12px", text(m[pr.PFontSize]))
	assert.Equal(t, "1.5", text(m[pr.PLineHeight]))
	assert.Equal(t, values.List{
		Items: []values.Value{values.FontFamily("Arial"), values.Keyword("sans-serif")},
		Sep:   values.CommaSeparator,
	}, m[pr.PFontFamily].Value)
	assertImplicit(t, m[pr.PFontVariant])
	assertImplicit(t, m[pr.PFontStretch])

	// normal fills a prefix slot, leaving the longhand implicit
	m = expand(t, ctx, "font", "normal small-caps 10pt Times New Roman")
	assert.Equal(t, "small-caps", text(m[pr.PFontVariant]))
	assert.Equal(t, values.FontFamily("Times New Roman"), m[pr.PFontFamily].Value)
	assertImplicit(t, m[pr.PFontStyle])
	assertImplicit(t, m[pr.PLineHeight])

	// system fonts
	m = expand(t, ctx, "font", "caption")
	assert.Equal(t, "caption", text(m[pr.PFontFamily]))
	assertImplicit(t, m[pr.PFontSize])
	assertImplicit(t, m[pr.PFontWeight])

	for _, css := range []string{
		"12px",            // family required
		"bold serif",      // size required
		"12px/ serif",     // missing line height
		"caption 12px a",  // system font must be alone
		"12px serif,",     // trailing comma
		"bold bold 12px serif",
	} {
		expectInvalid(t, ctx, "font", css)
	}
}

func TestFlex(t *testing.T) {
	ctx := NewContext(StandardMode)
	for _, test := range []struct {
		css                  string
		grow, shrink, basis string
	}{
		{"none", "0", "0", "auto"},
		{"auto", "1", "1", "auto"},
		{"2", "2", "1", "0%"},
		{"1 0", "1", "0", "0%"},
		{"1 1 10px", "1", "1", "10px"},
		{"10px 2", "2", "1", "10px"},
		{"2 3 0", "2", "3", "0px"},
		{"auto 2", "2", "1", "auto"},
	} {
		m := expand(t, ctx, "flex", test.css)
		assert.Equal(t, test.grow, text(m[pr.PFlexGrow]), test.css)
		assert.Equal(t, test.shrink, text(m[pr.PFlexShrink]), test.css)
		assert.Equal(t, test.basis, text(m[pr.PFlexBasis]), test.css)
	}

	assert.Equal(t, RangeViolation, expectInvalid(t, ctx, "flex", "-1").Kind)
	expectInvalid(t, ctx, "flex", "1 2 3")
	expectInvalid(t, ctx, "flex", "none 1")
	expectInvalid(t, ctx, "flex", "10px 20px")
}

func TestColumns(t *testing.T) {
	ctx := NewContext(StandardMode)
	for _, test := range []struct {
		css          string
		width, count string
	}{
		{"10em", "10em", ""},
		{"3", "", "3"},
		{"10em 3", "10em", "3"},
		{"3 auto", "auto", "3"},
		{"auto auto", "auto", "auto"},
		{"auto", "auto", ""},
	} {
		m := expand(t, ctx, "columns", test.css)
		if test.width == "" {
			assertImplicit(t, m[pr.PColumnWidth])
		} else {
			assert.Equal(t, test.width, text(m[pr.PColumnWidth]), test.css)
		}
		if test.count == "" {
			assertImplicit(t, m[pr.PColumnCount])
		} else {
			assert.Equal(t, test.count, text(m[pr.PColumnCount]), test.css)
		}
	}
	expectInvalid(t, ctx, "columns", "auto auto auto")
	expectInvalid(t, ctx, "columns", "0")
	expectInvalid(t, ctx, "columns", "10em 20em")
}

func TestListStyle(t *testing.T) {
	ctx := NewContext(StandardMode)
	for _, test := range []struct {
		css                   string
		typ, position, image string
	}{
		{"none", "none", "", "none"},
		{"square inside", "square", "inside", ""},
		{"none square", "square", "", "none"},
		{"none none", "none", "", "none"},
		{"outside", "", "outside", ""},
	} {
		m := expand(t, ctx, "list-style", test.css)
		for prop, expected := range map[pr.KnownProp]string{
			pr.PListStyleType:     test.typ,
			pr.PListStylePosition: test.position,
			pr.PListStyleImage:    test.image,
		} {
			if expected == "" {
				assertImplicit(t, m[prop])
			} else {
				assert.Equal(t, expected, text(m[prop]), "%s: %s", test.css, prop)
			}
		}
	}
	expectInvalid(t, ctx, "list-style", "none none none")
	expectInvalid(t, ctx, "list-style", "inside outside")
}

func TestPairs(t *testing.T) {
	ctx := NewContext(StandardMode)

	m := expand(t, ctx, "overflow", "hidden")
	assert.Equal(t, "hidden", text(m[pr.POverflowX]))
	assert.Equal(t, "hidden", text(m[pr.POverflowY]))
	m = expand(t, ctx, "overflow", "hidden scroll")
	assert.Equal(t, "scroll", text(m[pr.POverflowY]))

	m = expand(t, ctx, "border-spacing", "2px 4px")
	assert.Equal(t, "2px", text(m[pr.PWebkitBorderHorizontalSpacing]))
	assert.Equal(t, "4px", text(m[pr.PWebkitBorderVerticalSpacing]))

	expectInvalid(t, ctx, "overflow", "hidden scroll auto")
	expectInvalid(t, ctx, "border-spacing", "-2px")
}

func TestMarker(t *testing.T) {
	ctx := NewContext(StandardMode)
	m := expand(t, ctx, "marker", "none")
	for _, r := range m {
		assert.Equal(t, "none", text(r))
		assert.False(t, r.Implicit)
	}
	expectInvalid(t, ctx, "marker", "none none")
}

func TestTextDecoration(t *testing.T) {
	ctx := NewContext(StandardMode)
	m := expand(t, ctx, "text-decoration", "underline dotted red")
	assert.Equal(t, "underline", text(m[pr.PTextDecorationLine]))
	assert.Equal(t, "dotted", text(m[pr.PTextDecorationStyle]))

	ctx.Features &^= pr.FeatureCSS3TextDecorations
	records := expectValid(t, ctx, "text-decoration", "underline overline")
	require.Len(t, records, 1)
	assert.Equal(t, pr.PTextDecorationLine, records[0].Property)
	assert.Equal(t, "underline overline", text(records[0]))
	expectInvalid(t, ctx, "text-decoration", "underline red")
}

func TestTransition(t *testing.T) {
	ctx := NewContext(StandardMode)

	m := expand(t, ctx, "transition", "opacity 1s, width 2s ease-in")
	assert.Equal(t, "opacity, width", text(m[pr.PTransitionProperty]))
	assert.Equal(t, "1s, 2s", text(m[pr.PTransitionDuration]))
	timing, ok := m[pr.PTransitionTimingFunction].Value.(values.List)
	require.True(t, ok)
	require.Len(t, timing.Items, 2)
	assert.Equal(t, values.Keyword("ease"), timing.Items[0])
	assert.Equal(t, "ease-in", values.CSSText(timing.Items[1]))
	assertImplicit(t, m[pr.PTransitionDelay])

	m = expand(t, ctx, "transition", "none")
	assert.Equal(t, "none", text(m[pr.PTransitionProperty]))

	expectInvalid(t, ctx, "transition", "none, opacity 1s")
	expectInvalid(t, ctx, "transition", "opacity 1s,")
	expectInvalid(t, ctx, "transition", "1s 2s 3s")
}

func TestAnimation(t *testing.T) {
	ctx := NewContext(StandardMode)
	m := expand(t, ctx, "animation", "spin 1s infinite")
	assert.Equal(t, "spin", text(m[pr.PAnimationName]))
	assert.Equal(t, "1s", text(m[pr.PAnimationDuration]))
	assert.Equal(t, "infinite", text(m[pr.PAnimationIterationCount]))
	assertImplicit(t, m[pr.PAnimationDirection])

	m = expand(t, ctx, "animation", "a 1s, b 2s reverse")
	assert.Equal(t, "a, b", text(m[pr.PAnimationName]))
	direction, ok := m[pr.PAnimationDirection].Value.(values.List)
	require.True(t, ok)
	assert.Equal(t, values.Keyword("normal"), direction.Items[0])
	assert.Equal(t, "0s, 0s", text(m[pr.PAnimationDelay]))
	assert.Equal(t, "1, 1", text(m[pr.PAnimationIterationCount]))

	ctx.MaxArguments = 2
	expectInvalid(t, ctx, "animation", "a, b, c")
}

func TestBackground(t *testing.T) {
	ctx := NewContext(StandardMode)

	m := expand(t, ctx, "background", "url(a.png) no-repeat center / cover red")
	assert.Contains(t, text(m[pr.PBackgroundImage]), "a.png")
	assert.Equal(t, "no-repeat", text(m[pr.PBackgroundRepeatX]))
	assert.Equal(t, "no-repeat", text(m[pr.PBackgroundRepeatY]))
	assert.Equal(t, "center", text(m[pr.PBackgroundPositionX]))
	assert.Equal(t, "center", text(m[pr.PBackgroundPositionY]))
	assert.Equal(t, "cover", text(m[pr.PBackgroundSize]))
	assert.Equal(t, values.Color{R: 255, A: 255}, m[pr.PBackgroundColor].Value)
	assertImplicit(t, m[pr.PBackgroundAttachment])
	assertImplicit(t, m[pr.PBackgroundOrigin])
	assertImplicit(t, m[pr.PBackgroundClip])

	// a single box sets the origin and the clip
	m = expand(t, ctx, "background", "padding-box blue")
	assert.Equal(t, "padding-box", text(m[pr.PBackgroundOrigin]))
	assert.Equal(t, "padding-box", text(m[pr.PBackgroundClip]))

	// the color is only valid in the last layer
	m = expand(t, ctx, "background", "url(a.png), red")
	image, ok := m[pr.PBackgroundImage].Value.(values.List)
	require.True(t, ok)
	require.Len(t, image.Items, 2)
	assert.Equal(t, values.Keyword("none"), image.Items[1])
	assert.Equal(t, values.Color{R: 255, A: 255}, m[pr.PBackgroundColor].Value)
	expectInvalid(t, ctx, "background", "red, url(a.png)")
	expectInvalid(t, ctx, "background", "red red")
	expectInvalid(t, ctx, "background", "url(a.png),")

	m = expand(t, ctx, "background-repeat", "repeat-x")
	assert.Equal(t, "repeat", text(m[pr.PBackgroundRepeatX]))
	assert.Equal(t, "no-repeat", text(m[pr.PBackgroundRepeatY]))
}

func TestGridArea(t *testing.T) {
	ctx := NewContext(StandardMode)

	m := expand(t, ctx, "grid-area", "a")
	for _, r := range m {
		assert.Equal(t, values.CustomIdent("a"), r.Value)
	}

	m = expand(t, ctx, "grid-area", "a / b")
	assert.Equal(t, "a", text(m[pr.PGridRowStart]))
	assert.Equal(t, "b", text(m[pr.PGridColumnStart]))
	assert.Equal(t, "a", text(m[pr.PGridRowEnd]))
	assert.Equal(t, "b", text(m[pr.PGridColumnEnd]))

	m = expand(t, ctx, "grid-area", "1 / 2")
	assert.Equal(t, "1", text(m[pr.PGridRowStart]))
	assert.Equal(t, "auto", text(m[pr.PGridRowEnd]))
	assert.Equal(t, "auto", text(m[pr.PGridColumnEnd]))

	m = expand(t, ctx, "grid-row", "2 / span 3")
	assert.Equal(t, "2", text(m[pr.PGridRowStart]))
	assert.Equal(t, "span 3", text(m[pr.PGridRowEnd]))

	expectInvalid(t, ctx, "grid-row", "1 / 2 / 3")
	expectInvalid(t, ctx, "grid-area", "1 / 2 / 3 / 4 / 5")
	assert.Equal(t, RangeViolation, expectInvalid(t, ctx, "grid-column", "0").Kind)
}

func TestGridTemplate(t *testing.T) {
	ctx := NewContext(StandardMode)

	m := expand(t, ctx, "grid-template", `"a a" "b c"`)
	assert.Equal(t, values.GridTemplateAreas{
		Rows: 2, Columns: 2,
		Areas: map[string]values.GridArea{
			"a": {RowStart: 0, RowEnd: 1, ColumnStart: 0, ColumnEnd: 2},
			"b": {RowStart: 1, RowEnd: 2, ColumnStart: 0, ColumnEnd: 1},
			"c": {RowStart: 1, RowEnd: 2, ColumnStart: 1, ColumnEnd: 2},
		},
	}, m[pr.PGridTemplateAreas].Value)
	assert.Equal(t, "auto auto", text(m[pr.PGridTemplateRows]))
	assert.Equal(t, "none", text(m[pr.PGridTemplateColumns]))

	m = expand(t, ctx, "grid-template", `"a" 10px "b" 20px / 1fr`)
	assert.Equal(t, "10px 20px", text(m[pr.PGridTemplateRows]))
	assert.Equal(t, "1fr", text(m[pr.PGridTemplateColumns]))

	m = expand(t, ctx, "grid-template", "100px / 1fr 1fr")
	assert.Equal(t, "100px", text(m[pr.PGridTemplateRows]))
	assert.Equal(t, "1fr 1fr", text(m[pr.PGridTemplateColumns]))
	assert.Equal(t, "none", text(m[pr.PGridTemplateAreas]))

	m = expand(t, ctx, "grid-template", "none")
	for _, r := range m {
		assert.Equal(t, "none", text(r))
	}

	for _, css := range []string{
		`"a b" "b a"`, // not a rectangle
		`"a b" "c"`,   // row lengths differ
		`"a" "b" "a"`, // disjoint area
	} {
		assert.Equal(t, StructuralViolation, expectInvalid(t, ctx, "grid-template", css).Kind, css)
	}
	expectInvalid(t, ctx, "grid-template", `"a" / none`)
}

func TestGrid(t *testing.T) {
	ctx := NewContext(StandardMode)

	m := expand(t, ctx, "grid", "100px / 1fr 1fr")
	assert.Equal(t, "100px", text(m[pr.PGridTemplateRows]))
	assertImplicit(t, m[pr.PGridAutoFlow])
	assertImplicit(t, m[pr.PGridAutoRows])
	assertImplicit(t, m[pr.PGridAutoColumns])

	m = expand(t, ctx, "grid", "row dense 50px / 10px")
	assert.Equal(t, "row dense", text(m[pr.PGridAutoFlow]))
	assert.Equal(t, "50px", text(m[pr.PGridAutoRows]))
	assert.Equal(t, "10px", text(m[pr.PGridAutoColumns]))
	assertImplicit(t, m[pr.PGridTemplateRows])
	assertImplicit(t, m[pr.PGridTemplateAreas])

	m = expand(t, ctx, "grid", "dense")
	assert.Equal(t, "row dense", text(m[pr.PGridAutoFlow]))

	assert.Equal(t, StructuralViolation, expectInvalid(t, ctx, "grid", `"a b" "b a"`).Kind)
	expectInvalid(t, ctx, "grid", "column row")

	ctx.Features &^= pr.FeatureGridLayout
	assert.Equal(t, DisabledFeature, expectInvalid(t, ctx, "grid", "none").Kind)
}

func TestLayeredShorthandsRoundTrip(t *testing.T) {
	ctx := NewContext(StandardMode)
	ctx.BaseURL = "http://example.com/style/"
	for _, test := range []struct{ name, css string }{
		{"background", "url(a.png), red"},
		{"background", "url(a.png) center / cover, url(b.png) no-repeat fixed"},
		{"background", "none, content-box, url(a.png) 10px 20px"},
		{"transition", "opacity 1s, width 2s ease-in"},
		{"transition", "1s, 2s 3s"},
		{"animation", "a 1s, b 2s reverse"},
		{"animation", "a infinite, b both paused"},
		{"background-position", "center, left 10px top"},
		{"background-repeat", "repeat-x, space round"},
	} {
		for _, r := range expectValid(t, ctx, test.name, test.css) {
			if r.Implicit {
				continue
			}
			css := text(r)
			again := expectValid(t, ctx, r.Property.String(), css)
			require.Len(t, again, 1)
			assert.True(t, values.Equal(r.Value, again[0].Value), "%s: %s -> %s -> %s",
				r.Property, test.css, css, text(again[0]))
		}
	}
}

func TestBorderImage(t *testing.T) {
	ctx := NewContext(StandardMode)
	ctx.BaseURL = "http://example.com/"

	m := expand(t, ctx, "border-image", "url(a.png) 10 / 2px / 3px round")
	assert.Equal(t, "url(http://example.com/a.png)", text(m[pr.PBorderImageSource]))
	assert.Equal(t, "10", text(m[pr.PBorderImageSlice]))
	assert.Equal(t, "2px", text(m[pr.PBorderImageWidth]))
	assert.Equal(t, "3px", text(m[pr.PBorderImageOutset]))
	assert.Contains(t, text(m[pr.PBorderImageRepeat]), "round")

	// an empty width between the slashes
	m = expand(t, ctx, "border-image", "url(a.png) 10 / / 2px")
	assert.Equal(t, "10", text(m[pr.PBorderImageSlice]))
	assertImplicit(t, m[pr.PBorderImageWidth])
	assert.Equal(t, "2px", text(m[pr.PBorderImageOutset]))

	m = expand(t, ctx, "border-image", "10 fill / auto")
	assert.Equal(t, "10 fill", text(m[pr.PBorderImageSlice]))
	assert.Equal(t, "auto", text(m[pr.PBorderImageWidth]))
	assertImplicit(t, m[pr.PBorderImageOutset])
	assertImplicit(t, m[pr.PBorderImageSource])

	m = expand(t, ctx, "border-image", "stretch none")
	assert.Equal(t, "none", text(m[pr.PBorderImageSource]))

	for _, css := range []string{
		"url(a.png) / 2px",
		"url(a.png) 10 / / / 2px",
		"url(a.png) 10 /",
		"url(a.png) 10 / /",
		"url(a.png) 10 / url(b.png)",
		"url(a.png) url(b.png)",
	} {
		expectInvalid(t, ctx, "border-image", css)
	}

	records := expectValid(t, ctx, "-webkit-box-reflect", "below 2px url(a.png) 10 / / 2px")
	require.Len(t, records, 1)
	assert.Equal(t, "below 2px url(http://example.com/a.png) 10 / 1 / 2px", text(records[0]))
}
