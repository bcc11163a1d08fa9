package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

// functionArity describes the arguments of a transform function
type functionArity struct {
	min, max int
	// flags of each argument
	flags unitFlags
	// overrides [flags] for the given argument (used by rotate3d)
	lastFlags unitFlags
}

const fLengthPercent = fLength | fPercent

// transformFunctions is indexed by the lower case function name
var transformFunctions = map[string]functionArity{
	"matrix":      {min: 6, max: 6, flags: fNumber},
	"matrix3d":    {min: 16, max: 16, flags: fNumber},
	"translate":   {min: 1, max: 2, flags: fLengthPercent},
	"translatex":  {min: 1, max: 1, flags: fLengthPercent},
	"translatey":  {min: 1, max: 1, flags: fLengthPercent},
	"translatez":  {min: 1, max: 1, flags: fLength},
	"translate3d": {min: 3, max: 3, flags: fLengthPercent, lastFlags: fLength},
	"scale":       {min: 1, max: 2, flags: fNumber},
	"scalex":      {min: 1, max: 1, flags: fNumber},
	"scaley":      {min: 1, max: 1, flags: fNumber},
	"scalez":      {min: 1, max: 1, flags: fNumber},
	"scale3d":     {min: 3, max: 3, flags: fNumber},
	"rotate":      {min: 1, max: 1, flags: fAngle},
	"rotatex":     {min: 1, max: 1, flags: fAngle},
	"rotatey":     {min: 1, max: 1, flags: fAngle},
	"rotatez":     {min: 1, max: 1, flags: fAngle},
	"rotate3d":    {min: 4, max: 4, flags: fNumber, lastFlags: fAngle},
	"skew":        {min: 1, max: 2, flags: fAngle},
	"skewx":       {min: 1, max: 1, flags: fAngle},
	"skewy":       {min: 1, max: 1, flags: fAngle},
	"perspective": {min: 1, max: 1, flags: fLength | fNonNeg},
}

// transformFunction parses one transform function, checking the number
// and the type of its arguments.
func (p *parser) transformFunction(token Token) (values.Value, bool) {
	name, fn := functionName(token)
	arity, ok := transformFunctions[name]
	if !ok {
		return nil, false
	}
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	out := values.Function{Name: name}
	for !args.AtEnd() {
		if len(out.Args) != 0 && !args.SkipComma() {
			return nil, false
		}
		if len(out.Args) == arity.max {
			return nil, p.fail(StructuralViolation)
		}
		flags := arity.flags
		if arity.lastFlags != 0 && len(out.Args) == arity.max-1 {
			flags = arity.lastFlags
		}
		var v values.Value
		if name == "perspective" {
			v, ok = p.perspectiveLength(args.Current())
		} else {
			v, ok = p.validUnit(args.Current(), flags)
		}
		if !ok {
			return nil, false
		}
		args.Next()
		out.Args = append(out.Args, v)
	}
	if len(out.Args) < arity.min {
		return nil, p.fail(StructuralViolation)
	}
	return out, true
}

// perspectiveLength accepts a non negative length, or a
// non negative number, interpreted as pixels.
func (p *parser) perspectiveLength(token Token) (values.Value, bool) {
	if n, ok := token.(pa.Number); ok {
		if n.ValueF < 0 {
			return nil, p.fail(RangeViolation)
		}
		return p.number(n.ValueF, pr.Px), true
	}
	return p.validUnit(token, fLength|fNonNeg)
}

// transform parses none or a list of transform functions
func transform(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	var items []values.Value
	for !vl.AtEnd() {
		fn, ok := p.transformFunction(vl.Current())
		if !ok {
			return nil, false
		}
		vl.Next()
		items = append(items, fn)
		if len(items) > p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
	}
	switch len(items) {
	case 0:
		return nil, false
	case 1:
		return items[0], true
	default:
		return values.List{Items: items}, true
	}
}

// perspective parses none or a non negative length
func perspective(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	return p.consumeUnit(vl, fLength|fNonNeg)
}

// filterAmount is the range of the argument of the filter functions
// taking a number or a percentage
type filterAmount struct {
	// 0 for no upper bound
	max utils.Fl
}

var amountFilters = map[string]filterAmount{
	"grayscale":  {max: 1},
	"sepia":      {max: 1},
	"invert":     {max: 1},
	"opacity":    {max: 1},
	"saturate":   {},
	"brightness": {},
	"contrast":   {},
}

// filterFunction parses one filter function
func (p *parser) filterFunction(token Token) (values.Value, bool) {
	name, fn := functionName(token)
	if name == "" {
		return nil, false
	}
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	out := values.Function{Name: name}
	var arg values.Value
	switch name {
	case "hue-rotate":
		if !args.AtEnd() {
			arg, ok = p.consumeUnit(args, fAngle)
		}
	case "blur":
		if !args.AtEnd() {
			arg, ok = p.consumeUnit(args, fLength|fNonNeg)
		}
	case "drop-shadow":
		arg, ok = p.shadow(args, false)
	default:
		amount, isAmount := amountFilters[name]
		if !isAmount {
			return nil, false
		}
		if args.AtEnd() {
			break
		}
		arg, ok = p.consumeUnit(args, fNumber|fPercent|fNonNeg)
		if ok && amount.max != 0 {
			v, unit, isConstant := numericValue(arg)
			limit := amount.max
			if unit == pr.Perc {
				limit *= 100
			}
			if isConstant && v > limit {
				return nil, p.fail(RangeViolation)
			}
		}
	}
	if !ok || !args.AtEnd() {
		return nil, false
	}
	if arg != nil {
		out.Args = []values.Value{arg}
	}
	return out, true
}

// filter parses none or a list of filter functions and urls
func filter(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	var items []values.Value
	for !vl.AtEnd() {
		if u, ok := p.consumeURL(vl); ok {
			items = append(items, u)
			continue
		}
		fn, ok := p.filterFunction(vl.Current())
		if !ok {
			return nil, false
		}
		vl.Next()
		items = append(items, fn)
		if len(items) > p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
	}
	switch len(items) {
	case 0:
		return nil, false
	case 1:
		return items[0], true
	default:
		return values.List{Items: items}, true
	}
}

// shadow parses [inset]? && <length>{2,4} && <color>?, with
// the spread and inset only valid for box shadows.
func (p *parser) shadow(vl *pa.ValueList, isBox bool) (values.Value, bool) {
	var (
		s       values.Shadow
		lengths []values.Value
		// the lengths must be contiguous
		lengthsDone bool
	)
	maxLengths := 3
	if isBox {
		maxLengths = 4
	}
	for !vl.AtEnd() && !vl.IsOperator(",") {
		if isBox && !s.Inset && consumeIdent(vl, "inset") {
			s.Inset = true
			lengthsDone = len(lengths) != 0
			continue
		}
		if s.Color == nil {
			if c, ok := p.consumeColor(vl, 0); ok {
				s.Color = c
				lengthsDone = len(lengths) != 0
				continue
			}
		}
		if lengthsDone || len(lengths) == maxLengths {
			return nil, false
		}
		flags := fLength
		if len(lengths) == 2 {
			flags |= fNonNeg // blur radius
		}
		v, ok := p.consumeUnit(vl, flags)
		if !ok {
			return nil, false
		}
		lengths = append(lengths, v)
	}
	if len(lengths) < 2 {
		return nil, false
	}
	s.X, s.Y = lengths[0], lengths[1]
	if len(lengths) >= 3 {
		s.Blur = lengths[2]
	}
	if len(lengths) == 4 {
		s.Spread = lengths[3]
	}
	return s, true
}

// shadowList parses none or a comma separated list of shadows
func shadowList(isBox bool) validator {
	item := func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		return p.shadow(vl, isBox)
	}
	list := commaSeparated(item)
	return func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		if consumeIdent(vl, "none") {
			return p.keyword("none"), true
		}
		return list(p, vl)
	}
}
