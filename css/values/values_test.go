package values

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/benoitkugler/cssdecl/css/calc"
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/properties/keywords"
	"github.com/benoitkugler/cssdecl/logger"
	"github.com/benoitkugler/textlayout/fonts/truetype"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func px(v Fl) Numeric { return Numeric{Value: v, Unit: pr.Px} }

func TestCSSText(t *testing.T) {
	for _, test := range []struct {
		value    Value
		expected string
	}{
		{Keyword("auto"), "auto"},
		{px(1.5), "1.5px"},
		{Numeric{Value: 50, Unit: pr.Perc}, "50%"},
		{Numeric{Value: 2, Unit: pr.Scalar}, "2"},
		{String(`a"b`), `"a\"b"`},
		{CustomIdent("foo"), "foo"},
		{URI{URL: "http://a.b/c.png"}, "url(http://a.b/c.png)"},
		{List{Items: []Value{px(1), px(2)}, Sep: SpaceSeparator}, "1px 2px"},
		{List{Items: []Value{Keyword("a"), Keyword("b")}, Sep: CommaSeparator}, "a, b"},
		{List{Items: []Value{Keyword("a"), Keyword("b")}, Sep: SlashSeparator}, "a / b"},
		{Function{Name: "translate", Args: []Value{px(1), px(2)}}, "translate(1px, 2px)"},
		{Pair{First: px(1), Second: px(1)}, "1px"},
		{Pair{First: px(1), Second: px(1), Policy: KeepIdenticalValues}, "1px 1px"},
		{Pair{First: px(1), Second: px(2)}, "1px 2px"},
		{Quad{px(1), px(1), px(1), px(1)}, "1px"},
		{Quad{px(1), px(2), px(1), px(2)}, "1px 2px"},
		{Quad{px(1), px(2), px(3), px(2)}, "1px 2px 3px"},
		{Quad{px(1), px(2), px(3), px(4)}, "1px 2px 3px 4px"},
		{Color{255, 0, 0, 255}, "rgb(255, 0, 0)"},
		{Color{0, 0, 255, 0}, "rgba(0, 0, 255, 0)"},
		{CSSWide{Keyword: Inherit}, "inherit"},
		{CustomPropertyReference{Text: "var(--a)"}, "var(--a)"},
		{Shadow{X: px(1), Y: px(2), Color: Keyword("red"), Inset: true}, "red 1px 2px inset"},
		{BorderImageSlice{Slices: Quad{px(1), px(1), px(1), px(1)}, Fill: true}, "1px fill"},
		{GridLineNames{Names: []string{"a", "b"}}, "[a b]"},
		{Circle{Radius: px(5)}, "circle(5px)"},
		{Ellipse{CenterX: Keyword("left"), CenterY: Keyword("top")}, "ellipse(at left top)"},
		{Polygon{FillRule: "evenodd", Points: []Value{px(0), px(0), px(1), px(1)}}, "polygon(evenodd, 0px 0px, 1px 1px)"},
		{CubicBezier{0.1, 0.2, 0.3, 0.4}, "cubic-bezier(0.1, 0.2, 0.3, 0.4)"},
		{Steps{Count: 3}, "steps(3)"},
		{Steps{Count: 3, Position: "start"}, "steps(3, start)"},
		{FontFamily("Times New Roman"), `"Times New Roman"`},
		{FontFeature{Tag: truetype.MustNewTag("liga"), Value: 1}, `"liga"`},
		{FontFeature{Tag: truetype.MustNewTag("swsh"), Value: 2}, `"swsh" 2`},
		{UnicodeRange{From: 0, To: 0x7F}, "U+0-7F"},
		{FontFaceSrc{Local: "Arial"}, `local("Arial")`},
		{FontFaceSrc{URI: "http://a/f.woff", Format: "woff"}, `url(http://a/f.woff) format("woff")`},
		{ContentDistribution{Position: keywords.Center, Overflow: keywords.Safe}, "center safe"},
		{Path{Data: "M 0 0"}, `path("M 0 0")`},
		{Counter{Identifier: "c", Nested: true, Separator: ".", ListStyle: "upper-roman"}, `counters(c, ".", upper-roman)`},
		{Reflection{Direction: "below", Offset: px(2)}, "below 2px"},
	} {
		assert.Equal(t, test.expected, test.value.CSSText(), "for %s", Dump(test.value))
	}
}

func TestGradientsCSSText(t *testing.T) {
	red, blue := Keyword("red"), Keyword("blue")
	stops := []ColorStop{{Color: red}, {Position: Numeric{Value: 30, Unit: pr.Perc}}, {Color: blue, Position: px(10)}}
	assert.Equal(t, "linear-gradient(to left top, red, 30%, blue 10px)",
		LinearGradient{SideX: "left", SideY: "top", Stops: stops}.CSSText())
	assert.Equal(t, "-webkit-repeating-linear-gradient(left, red, 30%, blue 10px)",
		LinearGradient{SideX: "left", Stops: stops, Kind: PrefixedGradient, Repeating: true}.CSSText())
	assert.Equal(t, "radial-gradient(circle closest-side at 1px 2px, red, 30%, blue 10px)",
		RadialGradient{Shape: "circle", SizeKeyword: "closest-side", CenterX: px(1), CenterY: px(2), Stops: stops}.CSSText())
	assert.Equal(t, "-webkit-radial-gradient(1px 2px, ellipse cover, red, 30%, blue 10px)",
		RadialGradient{Shape: "ellipse", SizeKeyword: "cover", CenterX: px(1), CenterY: px(2), Stops: stops, Kind: PrefixedGradient}.CSSText())

	dep := DeprecatedGradient{
		FirstX: Keyword("left"), FirstY: Keyword("top"), SecondX: Keyword("left"), SecondY: Keyword("bottom"),
		Stops: []DeprecatedStop{
			{Offset: Numeric{Value: 0, Unit: pr.Scalar}, Color: red},
			{Offset: Numeric{Value: 50, Unit: pr.Perc}, Color: blue},
			{Offset: Numeric{Value: 1, Unit: pr.Scalar}, Color: red},
		},
	}
	assert.Equal(t, "-webkit-gradient(linear, left top, left bottom, from(red), color-stop(50%, blue), to(red))", dep.CSSText())
}

func TestGridTemplateAreasCSSText(t *testing.T) {
	areas := GridTemplateAreas{
		Areas: map[string]GridArea{
			"head": {RowStart: 0, RowEnd: 1, ColumnStart: 0, ColumnEnd: 2},
			"main": {RowStart: 1, RowEnd: 2, ColumnStart: 1, ColumnEnd: 2},
		},
		Rows: 2, Columns: 2,
	}
	assert.Equal(t, `"head head" ". main"`, areas.CSSText())
	assert.Equal(t, []string{"head", "main"}, areas.Names())
}

func TestEqual(t *testing.T) {
	// cross tags comparisons are always false
	assert.False(t, Keyword("a").Equal(CustomIdent("a")))
	assert.False(t, String("a").Equal(FontFamily("a")))
	assert.False(t, px(0).Equal(Numeric{Value: 0, Unit: pr.Scalar}))
	assert.False(t, Equal(nil, px(0)))
	assert.True(t, Equal(nil, nil))

	assert.True(t, List{Items: []Value{px(1)}}.Equal(List{Items: []Value{px(1)}}))
	assert.False(t, List{Items: []Value{px(1)}}.Equal(List{Items: []Value{px(1)}, Sep: CommaSeparator}))
	assert.True(t, Steps{Count: 2}.Equal(Steps{Count: 2, Position: "end"}))
	assert.True(t, Polygon{Points: []Value{px(1), px(1)}}.Equal(Polygon{FillRule: "nonzero", Points: []Value{px(1), px(1)}}))

	expr, ok := calc.Parse(pa.NewFunctionBlock(pa.Pos{}, "calc", pa.TokenizeString("1px + 2%", false)), false, 0)
	require.True(t, ok)
	assert.True(t, Calc{Expression: expr}.Equal(Calc{Expression: expr}))
	assert.False(t, Calc{Expression: expr}.Equal(px(1)))
}

func TestCustomPropertyDeclarationText(t *testing.T) {
	v := CustomPropertyDeclaration{Name: "--a", Text: "1px"}
	assert.Panics(t, func() { _ = v.CSSText() })
	assert.True(t, v.Equal(CustomPropertyDeclaration{Name: "--a", Text: "1px"}))
}

func TestDump(t *testing.T) {
	v := List{Items: []Value{px(1), Function{Name: "rotate", Args: []Value{Numeric{Value: 90, Unit: pr.Deg}}}}}
	dump := Dump(v)
	assert.True(t, strings.Contains(dump, "function rotate"), dump)
	assert.True(t, strings.Contains(dump, "numeric 90deg"), dump)
}

func TestPoolConcurrentInsertion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, logger.KeyValues)
	defer teardown()

	pool := NewPool()
	const workers = 16
	results := make([]Value, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = pool.Keyword("auto")
			pool.Numeric(Fl(i), pr.Px)
			pool.Color(Color{R: 255, A: 255})
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, Keyword("auto"), r)
	}
	assert.Equal(t, 1+workers+1, pool.Len())

	// large or fractional values are not pooled
	pool.Numeric(1000, pr.Px)
	pool.Numeric(0.5, pr.Px)
	assert.Equal(t, 1+workers+1, pool.Len())
	assert.Equal(t, px(0.5), pool.Numeric(0.5, pr.Px))
}

func TestPoolBounded(t *testing.T) {
	pool := NewPool()
	for i := 0; i < maxPooledColors+100; i++ {
		c := Color{R: uint8(i), G: uint8(i >> 8), A: 255}
		assert.Equal(t, c, pool.Color(c))
	}
	assert.Equal(t, maxPooledColors, pool.Len())

	// values already pooled are still shared
	assert.Equal(t, Color{A: 255}, pool.Color(Color{A: 255}))
	assert.Equal(t, Keyword("auto"), pool.Keyword("auto"))
	assert.Equal(t, maxPooledColors+1, pool.Len())
}

func TestValueIsClosed(t *testing.T) {
	typ := reflect.TypeOf((*Value)(nil)).Elem()
	sealed := false
	for i := 0; i < typ.NumMethod(); i++ {
		if m := typ.Method(i); m.PkgPath != "" {
			sealed = true
		}
	}
	assert.True(t, sealed, "Value must have an unexported method")

	// every variant is a Value
	for _, v := range []interface{}{
		Keyword("auto"), px(1), String("a"), CustomIdent("a"), URI{}, List{}, Function{},
		Pair{}, Quad{}, Color{}, CSSWide{}, FontFamily("a"), UnicodeRange{}, GridLineNames{},
	} {
		_, ok := v.(Value)
		assert.True(t, ok, "%T", v)
	}
}
