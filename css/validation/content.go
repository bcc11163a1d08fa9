package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

var (
	listStyleTypes = utils.NewSet("none", "disc", "circle", "square", "decimal", "decimal-leading-zero",
		"arabic-indic", "bengali", "cambodian", "khmer", "devanagari", "gujarati", "gurmukhi", "kannada",
		"lao", "malayalam", "mongolian", "myanmar", "oriya", "persian", "urdu", "telugu", "tibetan", "thai",
		"lower-roman", "upper-roman", "lower-greek", "lower-alpha", "lower-latin", "upper-alpha",
		"upper-latin", "cjk-earthly-branch", "cjk-heavenly-stem", "ethiopic-halehame",
		"ethiopic-halehame-am", "ethiopic-halehame-ti-er", "ethiopic-halehame-ti-et", "hangul",
		"hangul-consonant", "korean-hangul-formal", "korean-hanja-formal", "korean-hanja-informal",
		"hebrew", "armenian", "lower-armenian", "upper-armenian", "georgian", "cjk-ideographic",
		"simp-chinese-formal", "simp-chinese-informal", "trad-chinese-formal", "trad-chinese-informal",
		"hiragana", "katakana", "hiragana-iroha", "katakana-iroha")
	quoteKeywords  = utils.NewSet("open-quote", "close-quote", "no-open-quote", "no-close-quote")
	cursorKeywords = utils.NewSet("auto", "crosshair", "default", "pointer", "move", "vertical-text",
		"cell", "context-menu", "alias", "progress", "no-drop", "not-allowed", "zoom-in", "zoom-out",
		"e-resize", "ne-resize", "nw-resize", "n-resize", "se-resize", "sw-resize", "s-resize", "w-resize",
		"ew-resize", "ns-resize", "nesw-resize", "nwse-resize", "col-resize", "row-resize", "text", "wait",
		"help", "all-scroll", "grab", "grabbing", "-webkit-grab", "-webkit-grabbing", "-webkit-zoom-in",
		"-webkit-zoom-out", "copy", "none")
)

func listStyleType(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, listStyleTypes)
}

// content parses normal, none, or a list of strings, images,
// counters, attr() and quote keywords.
func content(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := getKeyword(vl.Current()); kw {
	case "normal", "none":
		vl.Next()
		return p.keyword(kw), true
	}
	var items []values.Value
	for !vl.AtEnd() {
		item, ok := p.contentItem(vl)
		if !ok {
			break
		}
		items = append(items, item)
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

func (p *parser) contentItem(vl *pa.ValueList) (values.Value, bool) {
	token := vl.Current()
	if s, ok := token.(pa.String); ok {
		vl.Next()
		return values.String(s.Value), true
	}
	if kw, ok := p.consumeKeyword(vl, quoteKeywords); ok {
		return kw, true
	}
	if img, ok := p.consumeImage(vl); ok {
		return img, true
	}
	name, fn := functionName(token)
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	var out values.Value
	switch name {
	case "attr":
		// attr(<identifier>)
		ident, isIdent := args.Current().(pa.Ident)
		if !isIdent {
			return nil, false
		}
		args.Next()
		out = values.Function{Name: "attr", Args: []values.Value{values.CustomIdent(ident.Value)}}
	case "counter", "counters":
		out, ok = p.counterFunction(args, name == "counters")
		if !ok {
			return nil, false
		}
	default:
		return nil, false
	}
	if !args.AtEnd() {
		return nil, false
	}
	vl.Next()
	return out, true
}

// counterFunction parses the arguments of
// counter(<identifier> [, <list-style-type>]?) and
// counters(<identifier>, <string> [, <list-style-type>]?)
func (p *parser) counterFunction(args *pa.ValueList, nested bool) (values.Value, bool) {
	ident, ok := args.Current().(pa.Ident)
	if !ok {
		return nil, false
	}
	args.Next()
	out := values.Counter{Identifier: ident.Value, Nested: nested}
	if nested {
		if !args.SkipComma() {
			return nil, false
		}
		sep, ok := args.Current().(pa.String)
		if !ok {
			return nil, false
		}
		args.Next()
		out.Separator = sep.Value
	}
	if args.SkipComma() {
		kw := getKeyword(args.Current())
		if !listStyleTypes.Has(kw) {
			return nil, false
		}
		args.Next()
		if kw != "decimal" {
			out.ListStyle = values.Keyword(kw)
		}
	}
	return out, true
}

// counters returns the validator of counter-increment (with a default of 1)
// and counter-reset (with a default of 0)
func counters(defaultValue utils.Fl) validator {
	return func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		if consumeIdent(vl, "none") {
			return p.keyword("none"), true
		}
		var items []values.Value
		for !vl.AtEnd() {
			name, ok := customIdent(vl)
			if !ok {
				break
			}
			value := p.number(defaultValue, pr.Scalar)
			if n, ok := vl.Current().(pa.Number); ok && n.IsInt() {
				value = p.number(n.ValueF, pr.Scalar)
				vl.Next()
			}
			items = append(items, values.Pair{First: name, Second: value, Policy: values.KeepIdenticalValues})
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
}

// quotes parses none or pairs of strings
func quotes(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	var items []values.Value
	for !vl.AtEnd() {
		s, ok := vl.Current().(pa.String)
		if !ok {
			break
		}
		items = append(items, values.String(s.Value))
		vl.Next()
	}
	if len(items) == 0 || len(items)%2 != 0 {
		return nil, p.fail(StructuralViolation)
	}
	return values.List{Items: items}, true
}

// cursor parses [<image> [<x> <y>]?,]* <keyword>
func cursor(p *parser, vl *pa.ValueList) (values.Value, bool) {
	var items []values.Value
	for {
		if kw, ok := p.consumeKeyword(vl, cursorKeywords); ok {
			items = append(items, kw)
			break
		}
		var img values.Value
		if u, ok := p.consumeURL(vl); ok {
			img = u
		} else if name, fn := functionName(vl.Current()); name == "-webkit-image-set" {
			p.ctx.count(UseImageSet)
			set, ok := p.imageSet(fn)
			if !ok {
				return nil, false
			}
			vl.Next()
			img = set
		} else {
			return nil, false
		}
		if x, ok := vl.Current().(pa.Number); ok {
			y, ok := vl.Peek(1).(pa.Number)
			if !ok {
				return nil, false
			}
			vl.Next()
			vl.Next()
			img = values.List{Items: []values.Value{img, p.number(x.ValueF, pr.Scalar), p.number(y.ValueF, pr.Scalar)}}
		}
		items = append(items, img)
		if len(items) > p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
		if !vl.SkipComma() {
			// the list must end with a keyword
			return nil, false
		}
	}
	if len(items) == 1 {
		return items[0], true
	}
	return values.List{Items: items, Sep: values.CommaSeparator}, true
}

func clipRectComponent(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	return p.consumeUnit(vl, fLength|fUnitlessQuirk)
}

// clip parses auto or rect(<top>, <right>, <bottom>, <left>), where
// the commas are either all present, or all omitted.
func clip(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	name, fn := functionName(vl.Current())
	if name != "rect" {
		return nil, false
	}
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	withCommas := false
	out := values.Function{Name: "rect"}
	for i := 0; i < 4; i++ {
		if i == 1 {
			withCommas = args.IsOperator(",")
		}
		if i >= 1 && withCommas && !args.SkipComma() {
			return nil, false
		}
		v, ok := clipRectComponent(p, args)
		if !ok {
			return nil, false
		}
		out.Args = append(out.Args, v)
	}
	if !args.AtEnd() {
		return nil, false
	}
	vl.Next()
	return out, true
}

var reflectDirections = utils.NewSet("above", "below", "left", "right")

// boxReflect parses none or <direction> <offset>? <mask-box-image>?
func boxReflect(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	direction, ok := p.consumeKeyword(vl, reflectDirections)
	if !ok {
		return nil, false
	}
	out := values.Reflection{Direction: direction.(values.Keyword), Offset: p.number(0, pr.Px)}
	if vl.AtEnd() {
		return out, true
	}
	if offset, ok := p.consumeUnit(vl, fLength|fPercent); ok {
		out.Offset = offset
	}
	if vl.AtEnd() {
		return out, true
	}
	mask, ok := p.consumeBorderImage(vl)
	if !ok {
		return nil, false
	}
	out.Mask = mask.reflectionMask()
	return out, true
}

// willChange parses auto or a list of scroll-position, contents or property names
func willChange(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	return willChangeList(p, vl)
}

var willChangeList = commaSeparated(func(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := getKeyword(vl.Current()); kw {
	case "scroll-position", "contents":
		vl.Next()
		return p.keyword(kw), true
	case "will-change", "none", "all", "auto":
		return nil, false
	}
	return customIdent(vl)
})

// touchAction parses auto | none | manipulation | [pan-x || pan-y]
func touchAction(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := getKeyword(vl.Current()); kw {
	case "auto", "none", "manipulation":
		vl.Next()
		return p.keyword(kw), true
	}
	return p.anyOrder(vl, utils.NewSet("pan-x"), utils.NewSet("pan-y"))
}

// paintOrder parses normal | [fill || stroke || markers]
func paintOrder(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "normal") {
		return p.keyword("normal"), true
	}
	return p.anyOrder(vl, utils.NewSet("fill"), utils.NewSet("stroke"), utils.NewSet("markers"))
}

// textDecorationLine parses none | [underline || overline || line-through || blink]
func textDecorationLine(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	return p.anyOrder(vl, utils.NewSet("underline"), utils.NewSet("overline"),
		utils.NewSet("line-through"), utils.NewSet("blink"))
}

// anyOrder parses the || combination of keyword groups: at least
// one group, each at most once, in any order.
func (p *parser) anyOrder(vl *pa.ValueList, groups ...utils.Set) (values.Value, bool) {
	seen := make([]bool, len(groups))
	var items []values.Value
outer:
	for !vl.AtEnd() {
		kw := getKeyword(vl.Current())
		for i, group := range groups {
			if group.Has(kw) {
				if seen[i] {
					return nil, false
				}
				seen[i] = true
				items = append(items, p.keyword(kw))
				vl.Next()
				continue outer
			}
		}
		break
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

func dashItem(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeUnit(vl, fLength|fPercent|fNumber|fNonNeg)
}

// strokeDasharray parses none or a list of non negative lengths,
// separated by commas or spaces.
func strokeDasharray(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	var items []values.Value
	for !vl.AtEnd() {
		v, ok := dashItem(p, vl)
		if !ok {
			return nil, false
		}
		items = append(items, v)
		if len(items) > p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
		if vl.IsOperator(",") && !vl.SkipComma() {
			return nil, false
		}
	}
	if len(items) == 1 {
		return items[0], true
	}
	return values.List{Items: items, Sep: values.CommaSeparator}, true
}

// svgPaint parses none | currentcolor | <color> | <url> [none | <color>]?
func svgPaint(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	if u, ok := p.consumeURL(vl); ok {
		if vl.AtEnd() {
			return u, true
		}
		var fallback values.Value
		if consumeIdent(vl, "none") {
			fallback = p.keyword("none")
		} else if fallback, ok = p.consumeColor(vl, 0); !ok {
			return nil, false
		}
		return values.List{Items: []values.Value{u, fallback}}, true
	}
	return p.consumeColor(vl, 0)
}

// urlOrNone is used by the marker properties and mask-image
func urlOrNone(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	return p.consumeURL(vl)
}

var (
	verticalAlignKeywords = utils.NewSet("baseline", "sub", "super", "text-top", "text-bottom",
		"middle", "top", "bottom", "-webkit-baseline-middle")
	emphasisFills  = utils.NewSet("filled", "open")
	emphasisShapes = utils.NewSet("dot", "circle", "double-circle", "triangle", "sawtooth")
)

func verticalAlign(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(vl, verticalAlignKeywords); ok {
		return kw, true
	}
	return p.consumeUnit(vl, fLength|fPercent|fUnitlessQuirk)
}

// textEmphasisStyle parses none | [filled | open] || <shape> | <string>
func textEmphasisStyle(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	if s, ok := vl.Current().(pa.String); ok {
		vl.Next()
		return values.String(s.Value), true
	}
	return p.anyOrder(vl, emphasisFills, emphasisShapes)
}
