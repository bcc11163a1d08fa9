package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

var (
	timingKeywords = utils.NewSet("ease", "linear", "ease-in", "ease-out", "ease-in-out",
		"step-start", "step-middle", "step-end")
	animationDirectionKeywords = utils.NewSet("normal", "reverse", "alternate", "alternate-reverse")
	animationFillModeKeywords  = utils.NewSet("none", "forwards", "backwards", "both")
	animationPlayStateKeywords = utils.NewSet("running", "paused")
)

// timingFunction parses a keyword, cubic-bezier() or steps().
func timingFunction(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(vl, timingKeywords); ok {
		return kw, true
	}
	name, fn := functionName(vl.Current())
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	var out values.Value
	switch name {
	case "cubic-bezier":
		out, ok = p.cubicBezier(args)
	case "steps":
		out, ok = p.steps(args)
	default:
		return nil, false
	}
	if !ok || !args.AtEnd() {
		return nil, false
	}
	vl.Next()
	return out, true
}

// cubicBezier parses 4 numbers, the x coordinates being in [0, 1].
func (p *parser) cubicBezier(args *pa.ValueList) (values.Value, bool) {
	var coords [4]utils.Fl
	for i := range coords {
		if i != 0 && !args.SkipComma() {
			return nil, false
		}
		v, ok := p.channelValue(args, fNumber)
		if !ok {
			return nil, false
		}
		if i%2 == 0 && (v < 0 || v > 1) {
			return nil, p.fail(RangeViolation)
		}
		coords[i] = v
	}
	return values.CubicBezier{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, true
}

// steps parses a positive integer, with an optional start, middle or end position.
func (p *parser) steps(args *pa.ValueList) (values.Value, bool) {
	n, ok := args.Current().(pa.Number)
	if !ok || !n.IsInt() {
		return nil, false
	}
	if n.ValueF < 1 {
		return nil, p.fail(RangeViolation)
	}
	args.Next()
	out := values.Steps{Count: n.Int()}
	if args.SkipComma() {
		switch kw := getKeyword(args.Current()); kw {
		case "start", "middle", "end":
			out.Position = values.Keyword(kw)
			args.Next()
		default:
			return nil, false
		}
	}
	return out, true
}

// customIdent accepts an identifier which is not a CSS-wide keyword
func customIdent(vl *pa.ValueList) (values.Value, bool) {
	ident, ok := vl.Current().(pa.Ident)
	if !ok {
		return nil, false
	}
	lower := utils.AsciiLower(ident.Value)
	if values.NewCSSWideKeyword(lower) != 0 || lower == "default" {
		return nil, false
	}
	vl.Next()
	return values.CustomIdent(ident.Value), true
}

func animationName(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	if s, ok := vl.Current().(pa.String); ok {
		vl.Next()
		return values.CustomIdent(s.Value), true
	}
	return customIdent(vl)
}

func duration(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeUnit(vl, fTime|fNonNeg)
}

func delay(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeUnit(vl, fTime)
}

func iterationCount(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "infinite") {
		return p.keyword("infinite"), true
	}
	return p.consumeUnit(vl, fNumber|fNonNeg)
}

func animationDirection(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, animationDirectionKeywords)
}

func animationFillMode(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, animationFillModeKeywords)
}

func animationPlayState(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, animationPlayStateKeywords)
}

// transitionPropertyItem accepts all, none or a property name.
// Unknown property names are kept, as custom identifiers.
func transitionPropertyItem(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := getKeyword(vl.Current()); kw {
	case "all", "none":
		vl.Next()
		return p.keyword(kw), true
	}
	return customIdent(vl)
}

var transitionPropertyList = commaSeparated(transitionPropertyItem)

// transitionProperty rejects 'none' inside a list
func transitionProperty(p *parser, vl *pa.ValueList) (values.Value, bool) {
	v, ok := transitionPropertyList(p, vl)
	if !ok {
		return nil, false
	}
	if list, isList := v.(values.List); isList && containsKeyword(list.Items, "none") {
		return nil, false
	}
	return v, true
}

func containsKeyword(items []values.Value, kw string) bool {
	for _, item := range items {
		if k, ok := item.(values.Keyword); ok && string(k) == kw {
			return true
		}
	}
	return false
}
