package calc

import (
	"strings"
	"testing"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/logger"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCalc(t *testing.T, css string) (Expression, bool) {
	t.Helper()
	tokens := pa.TokenizeString(css, true)
	require.Len(t, tokens, 1, "expected a single function in %s", css)
	fn, ok := tokens[0].(pa.FunctionBlock)
	require.True(t, ok)
	return Parse(fn, false, 0)
}

func TestCategories(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, logger.KeyValidation)
	defer teardown()

	for _, test := range []struct {
		css      string
		category Category
	}{
		{"calc(1px + 2px)", Length},
		{"calc(1px + 2em)", Length},
		{"calc(1px + 2%)", PercentLength},
		{"calc(2% - 1px)", PercentLength},
		{"calc(1 + 2)", Number},
		{"calc(1 + 2%)", PercentNumber},
		{"calc(50%)", Percent},
		{"calc(2 * 3px)", Length},
		{"calc(3px * 2)", Length},
		{"calc(3px / 2)", Length},
		{"calc(90deg - 1rad)", Angle},
		{"calc(1s + 10ms)", Time},
		{"calc(1hz + 1khz)", Frequency},
		{"calc(1dppx * 2)", Resolution},
		{"-webkit-calc(1px + (2% * 3))", PercentLength},
		{"calc(calc(1px + 2px) * 2)", Length},
	} {
		expr, ok := parseCalc(t, test.css)
		require.True(t, ok, test.css)
		assert.Equal(t, test.category, expr.Category(), test.css)
	}
}

func TestInvalid(t *testing.T) {
	for _, css := range []string{
		"calc()",
		"calc(1px + 2deg)",
		"calc(1px * 2px)",
		"calc(1px / 2px)",
		"calc(1px / 0)",
		"calc(1px +2px)",
		"calc(1px+ 2px)",
		"calc(1px 2px)",
		"calc(1px + )",
		"calc(1fr)",
		"calc(1__qem)",
		"calc(1foo)",
		"calc(red)",
		"calc(min(1px, 2px))",
		"calc(1 + 1s)",
		"calc(1px + 1%  + 1)",
	} {
		_, ok := parseCalc(t, css)
		assert.False(t, ok, css)
	}
}

func TestDepthLimit(t *testing.T) {
	css := "calc(" + strings.Repeat("(", 50) + "1px" + strings.Repeat(")", 50) + ")"
	fn := pa.TokenizeString(css, true)[0].(pa.FunctionBlock)
	_, ok := Parse(fn, false, 0)
	assert.True(t, ok)
	_, ok = Parse(fn, false, 10)
	assert.False(t, ok)
}

func TestIsInt(t *testing.T) {
	expr, ok := parseCalc(t, "calc(1 + 2)")
	require.True(t, ok)
	assert.True(t, expr.IsInt())

	expr, ok = parseCalc(t, "calc(1.5 + 2)")
	require.True(t, ok)
	assert.False(t, expr.IsInt())

	expr, ok = parseCalc(t, "calc(4 / 2)")
	require.True(t, ok)
	assert.False(t, expr.IsInt())

	expr, ok = parseCalc(t, "calc(1px)")
	require.True(t, ok)
	assert.False(t, expr.IsInt())
}

func TestCSSTextRoundTrip(t *testing.T) {
	for _, test := range [][2]string{
		{"calc(1px + 2px)", "calc(3px)"},
		{"calc(1px + 2%)", "calc(1px + 2%)"},
		{"calc((1px + 2%) * 2)", "calc((1px + 2%) * 2)"},
		{"calc(2 * 3px)", "calc(6px)"},
		{"calc(1em - -2px)", "calc(1em - -2px)"},
	} {
		expr, ok := parseCalc(t, test[0])
		require.True(t, ok, test[0])
		assert.Equal(t, test[1], expr.CSSText())

		again, ok := parseCalc(t, expr.CSSText())
		require.True(t, ok, expr.CSSText())
		assert.True(t, expr.Equal(again))
	}
}

func TestEvaluate(t *testing.T) {
	fn := pa.TokenizeString("calc(10px - 20%)", true)[0].(pa.FunctionBlock)
	toPixels := func(value Fl, unit pr.Unit) Fl {
		if unit == pr.Perc {
			return value // percentage of 100px
		}
		return value
	}

	expr, ok := Parse(fn, false, 0)
	require.True(t, ok)
	assert.Equal(t, Fl(-10), expr.Evaluate(toPixels))

	expr, ok = Parse(fn, true, 0)
	require.True(t, ok)
	assert.Equal(t, Fl(0), expr.Evaluate(toPixels))

	leaf, isConstant := expr.ConstantValue()
	assert.False(t, isConstant)
	assert.Equal(t, Leaf{}, leaf)
}
