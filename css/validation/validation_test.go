package validation

import (
	"errors"
	"sync"
	"testing"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/logger"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(css string) []Token { return pa.TokenizeString(css, true) }

func parseValue(t *testing.T, ctx *Context, name, css string) ([]Record, error) {
	t.Helper()
	id := pr.FromName(name)
	require.NotZero(t, id, name)
	return ParseDeclarationValue(id, false, tokens(css), ctx)
}

func expectValid(t *testing.T, ctx *Context, name, css string) []Record {
	t.Helper()
	records, err := parseValue(t, ctx, name, css)
	require.NoError(t, err, "%s: %s", name, css)
	require.NotEmpty(t, records)
	return records
}

func expectInvalid(t *testing.T, ctx *Context, name, css string) ParseError {
	t.Helper()
	records, err := parseValue(t, ctx, name, css)
	require.Error(t, err, "%s: %s", name, css)
	assert.Empty(t, records)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	var pe ParseError
	require.True(t, errors.As(err, &pe))
	return pe
}

// byProperty indexes the records, which must set distinct longhands
func byProperty(t *testing.T, records []Record) map[pr.KnownProp]Record {
	t.Helper()
	out := make(map[pr.KnownProp]Record, len(records))
	for _, r := range records {
		_, dup := out[r.Property]
		require.False(t, dup, "duplicate record for %s", r.Property)
		out[r.Property] = r
	}
	return out
}

// singleText returns the CSS text of the only record
func singleText(t *testing.T, records []Record) string {
	t.Helper()
	require.Len(t, records, 1)
	return values.CSSText(records[0].Value)
}

func TestLonghands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, logger.KeyValidation)
	defer teardown()

	ctx := NewContext(StandardMode)
	for _, test := range []struct {
		name, css, expected string
	}{
		{"width", "10px", "10px"},
		{"width", "auto", "auto"},
		{"WIDTH", "AUTO", "auto"},
		{"width", "0", "0px"},
		{"margin-top", "-5%", "-5%"},
		{"z-index", "3", "3"},
		{"z-index", "auto", "auto"},
		{"opacity", "0.5", "0.5"},
		{"color", "red", "rgb(255, 0, 0)"},
		{"color", "currentColor", "currentcolor"},
		{"display", "inline-block", "inline-block"},
		{"display", "grid", "grid"},
		{"font-weight", "700", "700"},
		{"line-height", "1.5", "1.5"},
		{"animation-duration", "1s, 200ms", "1s, 200ms"},
		{"transition-property", "opacity, width", "opacity, width"},
		{"column-width", "auto", "auto"},
		{"text-decoration-line", "underline overline", "underline overline"},
	} {
		records := expectValid(t, ctx, test.name, test.css)
		assert.Equal(t, test.expected, singleText(t, records), "%s: %s", test.name, test.css)
		assert.False(t, records[0].Implicit)
		assert.Zero(t, records[0].FromShorthand)
	}
}

func TestInvalidLonghands(t *testing.T) {
	ctx := NewContext(StandardMode)
	for _, test := range []struct {
		name, css string
		kind      ErrorKind
	}{
		{"width", "red", GrammarMismatch},
		{"width", "10px 10px", GrammarMismatch},
		{"width", "", GrammarMismatch},
		{"width", "-1px", RangeViolation},
		{"width", "10deg", UnitMismatch},
		{"width", "10", GrammarMismatch}, // unitless, not zero
		{"z-index", "1.5", UnitMismatch},
		{"z-index", "calc(1px)", UnitMismatch},
		{"opacity", "1px", UnitMismatch},
		{"font-weight", "450", RangeViolation},
		{"column-width", "0", RangeViolation},
		{"column-width", "-1px", RangeViolation},
		{"color", "#ff", GrammarMismatch},
		{"color", "ff0000", GrammarMismatch}, // only in quirks mode
		{"src", "url(a.ttf)", UnknownProperty},
		{"max-zoom", "2", UnknownProperty},
	} {
		err := expectInvalid(t, ctx, test.name, test.css)
		if test.kind != GrammarMismatch {
			assert.Equal(t, test.kind, err.Kind, "%s: %s", test.name, test.css)
		}
	}
}

func TestUnknownProperty(t *testing.T) {
	ctx := NewContext(StandardMode)
	_, err := ParseDeclarationValue(0, false, tokens("1px"), ctx)
	require.Error(t, err)
	assert.Equal(t, UnknownProperty, err.(ParseError).Kind)

	_, err = ParseDeclarationValue(pr.PVariable, false, tokens("1px"), ctx)
	require.Error(t, err)
	assert.Equal(t, UnknownProperty, err.(ParseError).Kind)
}

// the serialization of a parsed longhand parses back to the same value
func TestRoundTrip(t *testing.T) {
	ctx := NewContext(StandardMode)
	ctx.BaseURL = "http://example.com/style/"
	for _, test := range []struct{ name, css string }{
		{"width", "calc(10px + 5%)"},
		{"margin-left", "-2.5em"},
		{"color", "rgba(1, 2, 3, 0.4)"},
		{"color", "hsl(120, 100%, 25%)"},
		{"background-color", "transparent"},
		{"font-family", `Arial, "Times New Roman", serif`},
		{"font-family", "Times New Roman"},
		{"background-image", "url(a.png), none"},
		{"transform", "translate(1px, 2px) rotate(45deg)"},
		{"animation-name", "slide, none"},
		{"counter-reset", "a 2 b"},
		{"box-shadow", "1px 2px 3px red, inset 0 0 1px blue"},
		{"grid-template-areas", `"a a b" "c c b"`},
		{"grid-template-columns", "[start] 1fr minmax(10px, 2fr) [end]"},
		{"quotes", `"«" "»"`},
		{"will-change", "transform, opacity"},
		{"border-top-left-radius", "10px 20%"},
		{"font-feature-settings", `"liga" 0, "kern"`},
	} {
		records := expectValid(t, ctx, test.name, test.css)
		require.Len(t, records, 1)
		text := values.CSSText(records[0].Value)

		again := expectValid(t, ctx, test.name, text)
		require.Len(t, again, 1)
		assert.True(t, values.Equal(records[0].Value, again[0].Value), "%s: %s -> %s -> %s",
			test.name, test.css, text, values.CSSText(again[0].Value))
		assert.Equal(t, text, values.CSSText(again[0].Value))
	}
}

func TestCSSWideKeywords(t *testing.T) {
	ctx := NewContext(StandardMode)

	records := expectValid(t, ctx, "width", "INHERIT")
	require.Len(t, records, 1)
	assert.Equal(t, values.CSSWide{Keyword: values.Inherit}, records[0].Value)

	records = expectValid(t, ctx, "margin", "initial")
	require.Len(t, records, 4)
	for _, r := range records {
		assert.Equal(t, values.CSSWide{Keyword: values.Initial}, r.Value)
		assert.Equal(t, pr.SMargin, r.FromShorthand)
		assert.False(t, r.Implicit)
	}

	// CSS-wide keywords must be alone
	expectInvalid(t, ctx, "margin", "inherit 1px")
	expectInvalid(t, ctx, "font-family", "inherit, serif")
}

func TestVarReferences(t *testing.T) {
	ctx := NewContext(StandardMode)

	records := expectValid(t, ctx, "width", " calc(var(--w) * 2) ")
	require.Len(t, records, 1)
	assert.Equal(t, values.CustomPropertyReference{Text: "calc(var(--w) * 2)"}, records[0].Value)

	records = expectValid(t, ctx, "border", "var(--b) solid")
	assert.Len(t, records, len(pr.SBorder.Longhands()))
	for _, r := range records {
		assert.Equal(t, pr.SBorder, r.FromShorthand)
		assert.Equal(t, "var(--b) solid", values.CSSText(r.Value))
	}
}

func TestAliases(t *testing.T) {
	var counter countingUseCounter
	ctx := NewContext(StandardMode)
	ctx.UseCounter = &counter

	records := expectValid(t, ctx, "-webkit-transform", "none")
	require.Len(t, records, 1)
	assert.Equal(t, pr.PTransform, records[0].Property)

	records = expectValid(t, ctx, "-webkit-transition", "opacity 1s")
	for _, r := range records {
		assert.Equal(t, pr.STransition, r.FromShorthand)
	}
	assert.Equal(t, 2, counter.counts[UsePropertyAlias])

	err := expectInvalid(t, ctx, "word-wrap", "bad")
	assert.Equal(t, pr.POverflowWrap, err.Property)
}

func TestDisabledFeatures(t *testing.T) {
	ctx := NewContext(StandardMode)
	ctx.Features = 0

	for _, test := range []struct{ name, css string }{
		{"grid-template-columns", "1fr"},
		{"grid", "auto-flow / 1fr"},
		{"mix-blend-mode", "multiply"},
		{"text-decoration-style", "wavy"},
		{"motion-path", "none"},
		{"display", "grid"},
		{"grid-row-start", "inherit"},
	} {
		err := expectInvalid(t, ctx, test.name, test.css)
		assert.Equal(t, DisabledFeature, err.Kind, test.name)
	}

	// motion path is disabled by default
	err := expectInvalid(t, NewContext(StandardMode), "motion-rotation", "auto")
	assert.Equal(t, DisabledFeature, err.Kind)

	ctx.Features = pr.AllFeatures
	expectValid(t, ctx, "motion-rotation", "auto 10deg")
	expectValid(t, ctx, "scroll-snap-type", "mandatory")
}

func TestUnitlessQuirk(t *testing.T) {
	var counter countingUseCounter
	quirks := NewContext(QuirksMode)
	quirks.UseCounter = &counter

	assert.Equal(t, "10px", singleText(t, expectValid(t, quirks, "width", "10")))
	assert.Equal(t, "-3px", singleText(t, expectValid(t, quirks, "margin-top", "-3")))
	assert.Equal(t, 2, counter.counts[UseUnitlessLength])

	// only the properties allowing the quirk
	expectInvalid(t, quirks, "border-top-left-radius", "3")
	expectInvalid(t, quirks, "border-radius", "3")

	// and not in standard mode
	expectInvalid(t, NewContext(StandardMode), "width", "10")

	// unitless lengths are always valid in SVG attributes
	svg := NewContext(SVGAttributeMode)
	assert.Equal(t, "3px", singleText(t, expectValid(t, svg, "outline-offset", "3")))
}

func TestNestingLimit(t *testing.T) {
	ctx := NewContext(StandardMode)
	ctx.MaxNesting = 5

	css := "1px"
	for i := 0; i < 10; i++ {
		css = "calc(" + css + ")"
	}
	err := expectInvalid(t, ctx, "width", css)
	assert.Equal(t, StructuralViolation, err.Kind)

	expectValid(t, ctx, "width", "calc(calc(1px + 2px) * 2)")
}

func TestArgumentsLimit(t *testing.T) {
	ctx := NewContext(StandardMode)
	ctx.MaxArguments = 3

	expectValid(t, ctx, "animation-name", "a, b, c")
	err := expectInvalid(t, ctx, "animation-name", "a, b, c, d")
	assert.Equal(t, StructuralViolation, err.Kind)
}

func TestImportant(t *testing.T) {
	ctx := NewContext(StandardMode)
	records, err := ParseDeclarationValue(pr.SPadding, true, tokens("1px 2px"), ctx)
	require.NoError(t, err)
	require.Len(t, records, 4)
	for _, r := range records {
		assert.True(t, r.Important)
	}
}

type countingUseCounter struct {
	mu     sync.Mutex
	counts map[UseFeature]int
}

func (c *countingUseCounter) Count(feature UseFeature) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[UseFeature]int)
	}
	c.counts[feature]++
}

type panickingUseCounter struct{}

func (panickingUseCounter) Count(UseFeature) { panic("counter failure") }

func TestUseCounterFailure(t *testing.T) {
	ctx := NewContext(QuirksMode)
	ctx.UseCounter = panickingUseCounter{}

	records := expectValid(t, ctx, "color", "ff0000")
	assert.Equal(t, values.Color{R: 255, A: 255}, records[0].Value)
	expectValid(t, ctx, "-webkit-transform", "none")
}

func TestConcurrentParses(t *testing.T) {
	ctx := NewContext(StandardMode)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				records, err := ParseDeclarationValue(pr.SBorder, false, tokens("1px solid red"), ctx)
				if err != nil || len(records) != len(pr.SBorder.Longhands()) {
					t.Errorf("unexpected result %v %v", records, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGradientColorStops(t *testing.T) {
	ctx := NewContext(StandardMode)

	records := expectValid(t, ctx, "background-image", "linear-gradient(45deg, red 10%, 30%, blue 50%, green)")
	require.Len(t, records, 1)
	g, ok := records[0].Value.(values.LinearGradient)
	require.True(t, ok)
	require.Len(t, g.Stops, 4)
	assert.True(t, g.Stops[1].IsHint())
	assert.False(t, g.Stops[3].IsHint())

	for _, css := range []string{
		"linear-gradient(red, blue)",
		"linear-gradient(red, 10%, blue)",
		"repeating-radial-gradient(red, 20%, blue)",
		"-webkit-linear-gradient(red, blue 10px)",
	} {
		expectValid(t, ctx, "background-image", css)
	}

	for _, css := range []string{
		"linear-gradient(red)",                    // one color
		"linear-gradient(10%)",                    // no color
		"linear-gradient(red, 10%, 20%, blue)",    // consecutive hints
		"linear-gradient(red, blue, 10%)",         // trailing hint
		"linear-gradient(10%, red, blue)",         // leading hint
		"linear-gradient(red, , blue)",            // empty stop
		"-webkit-linear-gradient(red, 10%, blue)", // hints in prefixed gradients
		"radial-gradient(red, 10%, 20%, blue)",
	} {
		expectInvalid(t, ctx, "background-image", css)
	}
}

func TestGridRepeatLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, logger.KeyValidation)
	defer teardown()

	ctx := NewContext(StandardMode)
	ctx.MaxGridTracks = 5
	for _, test := range []struct{ css, expected string }{
		{"1px repeat(10, [a] 2px)", "1px [a] 2px [a] 2px [a] 2px [a] 2px"},
		{"repeat(3, 1px) repeat(3, 2px)", "1px 1px 1px 2px 2px"},
		{"repeat(10, 1px) 3px [end]", "1px 1px 1px 1px 1px [end]"},
		{"repeat(2, 1px 2px)", "1px 2px 1px 2px"},
	} {
		assert.Equal(t, test.expected, singleText(t, expectValid(t, ctx, "grid-template-columns", test.css)), test.css)
	}

	ctx = NewContext(StandardMode)
	assert.Equal(t, DefaultMaxGridTracks, ctx.MaxGridTracks)
	assert.Equal(t, "1px 1px 1px", singleText(t, expectValid(t, ctx, "grid-template-rows", "repeat(3, 1px)")))
	assert.Equal(t, RangeViolation, expectInvalid(t, ctx, "grid-template-rows", "repeat(0, 1px)").Kind)
}
