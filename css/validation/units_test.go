package validation

import (
	"testing"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unit validates the single token of [css]
func unit(mode Mode, css string, flags unitFlags) (values.Value, ErrorKind, bool) {
	p := newParser(NewContext(mode), new(Collector), pr.PWidth, false)
	vl := pa.NewValueList(tokens(css))
	v, ok := p.consumeUnit(vl, flags)
	return v, p.kind, ok && vl.AtEnd()
}

func TestValidUnit(t *testing.T) {
	for _, test := range []struct {
		css      string
		flags    unitFlags
		expected values.Numeric
	}{
		{"2", fNumber, values.Numeric{Value: 2, Unit: pr.Scalar}},
		{"2", fInteger, values.Numeric{Value: 2, Unit: pr.Scalar}},
		{"3", fPositiveInteger, values.Numeric{Value: 3, Unit: pr.Scalar}},
		{"0", fLength, values.Numeric{Value: 0, Unit: pr.Px}},
		{"0", fAngle, values.Numeric{Value: 0, Unit: pr.Deg}},
		{"10PX", fLength, values.Numeric{Value: 10, Unit: pr.Px}},
		{"1.5em", fLength, values.Numeric{Value: 1.5, Unit: pr.Em}},
		{"50%", fPercent, values.Numeric{Value: 50, Unit: pr.Perc}},
		{"90deg", fAngle, values.Numeric{Value: 90, Unit: pr.Deg}},
		{"0.5turn", fAngle, values.Numeric{Value: 0.5, Unit: pr.Turn}},
		{"200ms", fTime, values.Numeric{Value: 200, Unit: pr.Ms}},
		{"2kHz", fFrequency, values.Numeric{Value: 2, Unit: pr.KHz}},
		{"96dpi", fResolution, values.Numeric{Value: 96, Unit: pr.Dpi}},
	} {
		v, _, ok := unit(StandardMode, test.css, test.flags)
		require.True(t, ok, test.css)
		assert.Equal(t, test.expected, v, test.css)
	}
}

func TestInvalidUnit(t *testing.T) {
	for _, test := range []struct {
		css   string
		flags unitFlags
		kind  ErrorKind
	}{
		{"2px", fNumber, UnitMismatch},
		{"1.5", fInteger, UnitMismatch},
		{"0", fPositiveInteger, RangeViolation},
		{"-1", fPositiveInteger, RangeViolation},
		{"-1px", fLength | fNonNeg, RangeViolation},
		{"-1", fNumber | fNonNeg, RangeViolation},
		{"10%", fLength, UnitMismatch},
		{"10", fLength, UnitMismatch},
		{"1fr", fLength, GrammarMismatch},
		{"1foo", fLength, GrammarMismatch},
		{"1__qem", fLength, UnitMismatch},
		{"auto", fLength, GrammarMismatch},
		{"calc(1px + 1s)", fLength, GrammarMismatch},
		{"calc(1px * 2)", fNumber, UnitMismatch},
		{"calc(-2px)", fLength | fNonNeg, RangeViolation},
		{"calc(1.5)", fInteger, UnitMismatch},
		{"calc(0)", fPositiveInteger, RangeViolation},
	} {
		_, kind, ok := unit(StandardMode, test.css, test.flags)
		assert.False(t, ok, test.css)
		assert.Equal(t, test.kind, kind, test.css)
	}
}

func TestUnitModes(t *testing.T) {
	// unitless lengths
	_, _, ok := unit(QuirksMode, "10", fLength)
	assert.False(t, ok)
	v, _, ok := unit(QuirksMode, "10", fLength|fUnitlessQuirk)
	assert.True(t, ok)
	assert.Equal(t, values.Numeric{Value: 10, Unit: pr.Px}, v)
	v, _, ok = unit(SVGAttributeMode, "10", fLength)
	assert.True(t, ok)
	assert.Equal(t, values.Numeric{Value: 10, Unit: pr.Px}, v)
	v, _, ok = unit(SVGAttributeMode, "45", fAngle)
	assert.True(t, ok)
	assert.Equal(t, values.Numeric{Value: 45, Unit: pr.Deg}, v)

	// the internal quirky em unit
	_, _, ok = unit(UASheetMode, "1__qem", fLength)
	assert.True(t, ok)
}

func TestCalcUnits(t *testing.T) {
	for _, test := range []struct {
		css   string
		flags unitFlags
	}{
		{"calc(10px + 5%)", fLength | fPercent},
		{"calc(2 * 3)", fInteger},
		{"calc(2 * 3)", fPositiveInteger},
		{"calc(1.5 * 2)", fNumber},
		{"calc(1s - 200ms)", fTime},
		{"calc(90deg / 2)", fAngle},
		{"-webkit-calc(1px)", fLength},
	} {
		v, _, ok := unit(StandardMode, test.css, test.flags)
		require.True(t, ok, test.css)
		assert.IsType(t, values.Calc{}, v, test.css)
	}

	v, _, _ := unit(StandardMode, "calc(1px + 2px)", fLength)
	f, u, ok := numericValue(v)
	assert.True(t, ok)
	assert.Equal(t, 3., f)
	assert.Equal(t, pr.Px, u)

	v, _, _ = unit(StandardMode, "calc(1px + 2%)", fLength|fPercent)
	_, _, ok = numericValue(v)
	assert.False(t, ok)
}
