package validation

import (
	"github.com/benoitkugler/cssdecl/css/calc"
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

// unitFlags is the set of numeric categories accepted by a grammar.
type unitFlags uint16

const (
	fInteger unitFlags = 1 << iota
	fNumber
	fPercent
	fLength
	fAngle
	fTime
	fFrequency
	fPositiveInteger
	fResolution
	// rejects negative values
	fNonNeg
	// in quirks mode, unitless numbers are accepted as pixels
	fUnitlessQuirk
)

// validUnit checks that [token] is a number, a dimension or a calc()
// expression matching [flags], and returns the corresponding value:
// a [values.Numeric] or a [values.Calc].
func (p *parser) validUnit(token Token, flags unitFlags) (values.Value, bool) {
	if fn, ok := token.(pa.FunctionBlock); ok {
		if !calc.IsCalcFunction(fn) {
			return nil, false
		}
		return p.validCalc(fn, flags)
	}

	var (
		value  utils.Fl
		unit   pr.Unit
		accept bool
	)
	switch token := token.(type) {
	case pa.Number:
		value, unit = token.ValueF, pr.Scalar
		if flags&fNonNeg != 0 && value < 0 {
			return nil, p.fail(RangeViolation)
		}
		accept = flags&fNumber != 0
		if !accept && p.acceptUnitless(value, flags) {
			if flags&fLength != 0 {
				unit = pr.Px
			} else {
				unit = pr.Deg
			}
			if value != 0 {
				p.ctx.count(UseUnitlessLength)
			}
			accept = true
		}
		if !accept && flags&fInteger != 0 && token.IsInt() {
			accept = true
		}
		if !accept && flags&fPositiveInteger != 0 && token.IsInt() {
			if value <= 0 {
				return nil, p.fail(RangeViolation)
			}
			accept = true
		}
	case pa.Percentage:
		value, unit = token.ValueF, pr.Perc
		accept = flags&fPercent != 0
	case pa.Dimension:
		value, unit = token.ValueF, pr.UnitFromString(token.Unit)
		switch unit.Category() {
		case pr.CatLength:
			accept = flags&fLength != 0 && (unit != pr.QuirkyEm || p.ctx.Mode == UASheetMode)
		case pr.CatAngle:
			accept = flags&fAngle != 0
		case pr.CatTime:
			accept = flags&fTime != 0
		case pr.CatFrequency:
			accept = flags&fFrequency != 0
		case pr.CatResolution:
			accept = flags&fResolution != 0
		default: // unknown units, and flex units only valid in grid tracks
			return nil, false
		}
	default:
		return nil, false
	}

	if !accept {
		return nil, p.fail(UnitMismatch)
	}
	if flags&fNonNeg != 0 && value < 0 {
		return nil, p.fail(RangeViolation)
	}
	return p.number(value, unit), true
}

// acceptUnitless returns true if a unitless number may be used
// as a length or an angle
func (p *parser) acceptUnitless(value utils.Fl, flags unitFlags) bool {
	if flags&(fLength|fAngle) == 0 {
		return false
	}
	return value == 0 || p.ctx.Mode == SVGAttributeMode ||
		(p.ctx.Mode == QuirksMode && flags&fUnitlessQuirk != 0)
}

// validCalc parses a calc() function and checks its category against [flags].
func (p *parser) validCalc(fn pa.FunctionBlock, flags unitFlags) (values.Value, bool) {
	nonNegative := flags&(fNonNeg|fPositiveInteger) != 0
	expr, ok := calc.Parse(fn, nonNegative, p.maxNesting)
	if !ok {
		return nil, false
	}

	var accept bool
	switch expr.Category() {
	case calc.Number:
		accept = flags&fNumber != 0 ||
			(flags&(fInteger|fPositiveInteger) != 0 && expr.IsInt())
	case calc.Length:
		accept = flags&fLength != 0
	case calc.Percent:
		accept = flags&fPercent != 0
	case calc.PercentLength:
		accept = flags&fLength != 0 && flags&fPercent != 0
	case calc.PercentNumber:
		accept = flags&fNumber != 0 && flags&fPercent != 0
	case calc.Angle:
		accept = flags&fAngle != 0
	case calc.Time:
		accept = flags&fTime != 0
	case calc.Frequency:
		accept = flags&fFrequency != 0
	case calc.Resolution:
		accept = flags&fResolution != 0
	}
	if !accept {
		return nil, p.fail(UnitMismatch)
	}

	if leaf, isConstant := expr.ConstantValue(); isConstant {
		if nonNegative && leaf.Value < 0 {
			return nil, p.fail(RangeViolation)
		}
		if flags&fPositiveInteger != 0 && flags&fInteger == 0 && leaf.Value <= 0 {
			return nil, p.fail(RangeViolation)
		}
	}
	return values.Calc{Expression: expr}, true
}

// consumeUnit validates the current token of [vl] and advances on success.
func (p *parser) consumeUnit(vl *pa.ValueList, flags unitFlags) (values.Value, bool) {
	token := vl.Current()
	if token == nil {
		return nil, false
	}
	v, ok := p.validUnit(token, flags)
	if ok {
		vl.Next()
	}
	return v, ok
}

// numericValue returns the value of a number, or of a
// calc() expression folded into a constant.
func numericValue(v values.Value) (utils.Fl, pr.Unit, bool) {
	switch v := v.(type) {
	case values.Numeric:
		return v.Value, v.Unit, true
	case values.Calc:
		if leaf, ok := v.Expression.ConstantValue(); ok {
			return leaf.Value, leaf.Unit, true
		}
	}
	return 0, 0, false
}

// isZero returns true for the numbers equal to zero
func isZero(v values.Value) bool {
	n, ok := v.(values.Numeric)
	return ok && n.Value == 0
}
