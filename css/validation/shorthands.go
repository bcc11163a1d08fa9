package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
)

// expander parses the value of a shorthand, appending the records
// of its longhands to the collector.
// On failure, the records already appended are discarded by the caller.
type expander func(p *parser, vl *pa.ValueList) bool

var expanders = map[pr.KnownProp]expander{
	pr.SAnimation:          expandAnimation,
	pr.SBackground:         expandBackground,
	pr.SBackgroundPosition: expandFillPosition,
	pr.SBackgroundRepeat:   expandFillRepeat,
	pr.SBorder:             expandBorder,
	pr.SBorderBottom:       genericExpander,
	pr.SBorderColor:        expandFourSides,
	pr.SBorderImage:        expandBorderImage,
	pr.SBorderLeft:         genericExpander,
	pr.SBorderRadius:       expandBorderRadius,
	pr.SBorderRight:        genericExpander,
	pr.SBorderSpacing:      expandPair,
	pr.SBorderStyle:        expandFourSides,
	pr.SBorderTop:          genericExpander,
	pr.SBorderWidth:        expandFourSides,
	pr.SColumnRule:         genericExpander,
	pr.SColumns:            expandColumns,
	pr.SFlex:               expandFlex,
	pr.SFlexFlow:           genericExpander,
	pr.SFont:               expandFont,
	pr.SGrid:               expandGrid,
	pr.SGridArea:           expandGridArea,
	pr.SGridColumn:         expandGridArea,
	pr.SGridRow:            expandGridArea,
	pr.SGridTemplate:       expandGridTemplate,
	pr.SListStyle:          expandListStyle,
	pr.SMargin:             expandFourSides,
	pr.SMarker:             expandMarker,
	pr.SMotion:             genericExpander,
	pr.SOutline:            genericExpander,
	pr.SOverflow:           expandPair,
	pr.SPadding:            expandFourSides,
	pr.STextDecoration:     expandTextDecoration,
	pr.STransition:         expandTransition,
	pr.SWebkitMask:         expandMask,
	pr.SWebkitMaskPosition: expandFillPosition,
	pr.SWebkitMaskRepeat:   expandFillRepeat,
	pr.SWebkitTextEmphasis: genericExpander,
	pr.SWebkitTextStroke:   genericExpander,
}

// addAll appends one record per longhand: the found values
// are explicit, the nil ones are implicit.
func (p *parser) addAll(longhands []pr.KnownProp, found []values.Value) {
	for i, prop := range longhands {
		if found[i] == nil {
			p.addImplicit(prop)
		} else {
			p.addProperty(prop, found[i], false)
		}
	}
}

// matchAnyOrder matches the components of [vl] against [items], in any
// order, each at most once, stopping at the first unknown token or at a comma.
// For each component, the items are tried in order.
func (p *parser) matchAnyOrder(vl *pa.ValueList, items []validator) ([]values.Value, bool) {
	found := make([]values.Value, len(items))
	matched := 0
	for !vl.AtEnd() && !vl.IsOperator(",") {
		ok := false
		for i, item := range items {
			if found[i] != nil {
				continue
			}
			pos := vl.Save()
			if v, isValid := item(p, vl); isValid {
				found[i], ok = v, true
				matched++
				break
			}
			vl.Restore(pos)
		}
		if !ok { // a full pass without match
			break
		}
	}
	return found, matched != 0
}

// genericExpander is used by the shorthands whose longhands may be
// written in any order, using the longhand grammars.
func genericExpander(p *parser, vl *pa.ValueList) bool {
	longhands := p.shorthand.Longhands()
	items := make([]validator, len(longhands))
	for i, prop := range longhands {
		items[i] = validatorFor(prop)
	}
	found, ok := p.matchAnyOrder(vl, items)
	if !ok || !vl.AtEnd() {
		return false
	}
	p.addAll(longhands, found)
	return true
}

// expandFourSides parses 1 to 4 values, completed with
// the top, right, bottom, left rule.
func expandFourSides(p *parser, vl *pa.ValueList) bool {
	longhands := p.shorthand.Longhands()
	q, ok := p.fourValues(vl, validatorFor(longhands[0]))
	if !ok || !vl.AtEnd() {
		return false
	}
	p.addAll(longhands, []values.Value{q.Top, q.Right, q.Bottom, q.Left})
	return true
}

// expandPair parses one or two values; the second defaults to the first.
func expandPair(p *parser, vl *pa.ValueList) bool {
	longhands := p.shorthand.Longhands()
	first, ok := validatorFor(longhands[0])(p, vl)
	if !ok {
		return false
	}
	second := first
	if !vl.AtEnd() {
		if second, ok = validatorFor(longhands[1])(p, vl); !ok || !vl.AtEnd() {
			return false
		}
	}
	p.addAll(longhands, []values.Value{first, second})
	return true
}

func expandBorderRadius(p *parser, vl *pa.ValueList) bool {
	corners, ok := p.radiusCorners(vl)
	if !ok || !vl.AtEnd() {
		return false
	}
	p.addAll(p.shorthand.Longhands(), corners[:])
	return true
}

func expandBorderImage(p *parser, vl *pa.ValueList) bool {
	b, ok := p.consumeBorderImage(vl)
	if !ok || !vl.AtEnd() {
		return false
	}
	p.addAll(p.shorthand.Longhands(), []values.Value{b.source, b.slice, b.width, b.outset, b.repeat})
	return true
}

// expandBorder sets the four sides, and resets border-image.
func expandBorder(p *parser, vl *pa.ValueList) bool {
	found, ok := p.matchAnyOrder(vl, []validator{borderWidth, borderStyle, colorValue})
	if !ok || !vl.AtEnd() {
		return false
	}
	longhands := p.shorthand.Longhands()
	vs := make([]values.Value, len(longhands))
	for side := 0; side < 4; side++ {
		vs[side] = found[0]
		vs[4+side] = found[1]
		vs[8+side] = found[2]
	}
	p.addAll(longhands, vs)
	return true
}

// expandColumns parses column-width || column-count, where 'auto'
// may stand for any of them.
func expandColumns(p *parser, vl *pa.ValueList) bool {
	var width, count values.Value
	autos := 0
	for i := 0; i < 2 && !vl.AtEnd(); i++ {
		if consumeIdent(vl, "auto") {
			autos++
			continue
		}
		if width == nil {
			if v, ok := columnWidth(p, vl); ok {
				width = v
				continue
			}
		}
		if count == nil {
			if v, ok := p.consumeUnit(vl, fPositiveInteger); ok {
				count = v
				continue
			}
		}
		return false
	}
	if !vl.AtEnd() {
		return false
	}
	for ; autos > 0; autos-- {
		switch {
		case width == nil:
			width = p.keyword("auto")
		case count == nil:
			count = p.keyword("auto")
		default:
			return false
		}
	}
	p.addAll(p.shorthand.Longhands(), []values.Value{width, count})
	return true
}

// expandFlex parses none | [<flex-grow> <flex-shrink>? || <flex-basis>]
func expandFlex(p *parser, vl *pa.ValueList) bool {
	longhands := p.shorthand.Longhands()
	switch getKeyword(vl.Current()) {
	case "none":
		if vl.Next() != nil {
			return false
		}
		p.addAll(longhands, []values.Value{p.number(0, pr.Scalar), p.number(0, pr.Scalar), p.keyword("auto")})
		return true
	case "auto":
		if vl.Peek(1) == nil {
			vl.Next()
			p.addAll(longhands, []values.Value{p.number(1, pr.Scalar), p.number(1, pr.Scalar), p.keyword("auto")})
			return true
		}
	}
	var grow, shrink, basis values.Value
	afterGrow := false
	for i := 0; i < 3 && !vl.AtEnd(); i++ {
		if n, ok := vl.Current().(pa.Number); ok {
			if n.ValueF < 0 {
				return p.fail(RangeViolation)
			}
			wasAfterGrow := afterGrow
			afterGrow = false
			switch {
			case grow == nil:
				grow = p.number(n.ValueF, pr.Scalar)
				afterGrow = true
			case wasAfterGrow && shrink == nil:
				shrink = p.number(n.ValueF, pr.Scalar)
			case n.ValueF == 0 && basis == nil:
				// a unitless zero is a basis once the factors are set
				basis = p.number(0, pr.Px)
			default:
				return false
			}
			vl.Next()
			continue
		}
		afterGrow = false
		if basis != nil {
			return false
		}
		v, ok := validatorFor(pr.PFlexBasis)(p, vl)
		if !ok {
			return false
		}
		basis = v
	}
	if !vl.AtEnd() {
		return false
	}
	if grow == nil {
		grow = p.number(1, pr.Scalar)
	}
	if shrink == nil {
		shrink = p.number(1, pr.Scalar)
	}
	if basis == nil {
		basis = p.number(0, pr.Perc)
	}
	p.addAll(longhands, []values.Value{grow, shrink, basis})
	return true
}

// expandFont parses
// [[style || variant || weight || stretch]? size [/ line-height]? family] | <system-font>
// A system font sets font-family to the system keyword, and resets the other longhands.
func expandFont(p *parser, vl *pa.ValueList) bool {
	longhands := p.shorthand.Longhands() // style, variant, weight, stretch, size, line height, family
	found := make([]values.Value, len(longhands))
	if kw := getKeyword(vl.Current()); systemFonts.Has(kw) && vl.Peek(1) == nil {
		vl.Next()
		found[6] = p.keyword(kw)
		p.addAll(longhands, found)
		return true
	}

	prefix := []validator{fontStyle, fontVariant, fontWeight, fontStretch}
	normals, set := 0, 0
	for normals+set < len(prefix) && !vl.AtEnd() {
		if consumeIdent(vl, "normal") {
			normals++
			continue
		}
		matched := false
		for i, item := range prefix {
			if found[i] != nil {
				continue
			}
			pos := vl.Save()
			if v, ok := item(p, vl); ok {
				found[i], matched = v, true
				set++
				break
			}
			vl.Restore(pos)
		}
		if !matched {
			break
		}
	}

	size, ok := fontSize(p, vl)
	if !ok {
		return false
	}
	found[4] = size
	if vl.IsOperator("/") {
		vl.Next()
		if found[5], ok = lineHeight(p, vl); !ok {
			return false
		}
	}
	if found[6], ok = fontFamily(p, vl); !ok || !vl.AtEnd() {
		return false
	}
	p.addAll(longhands, found)
	return true
}

// expandListStyle parses type || position || image, where 'none'
// may apply to the type or the image.
func expandListStyle(p *parser, vl *pa.ValueList) bool {
	var typ, position, image values.Value
	nones := 0
	for !vl.AtEnd() {
		if consumeIdent(vl, "none") {
			nones++
			continue
		}
		if position == nil {
			if v, ok := listStylePosition(p, vl); ok {
				position = v
				continue
			}
		}
		if image == nil {
			if v, ok := p.consumeImage(vl); ok {
				image = v
				continue
			}
		}
		if typ == nil {
			if v, ok := listStyleType(p, vl); ok {
				typ = v
				continue
			}
		}
		return false
	}
	none := p.keyword("none")
	switch {
	case nones == 0:
		if typ == nil && position == nil && image == nil {
			return false
		}
	case nones == 1 && typ == nil && image == nil:
		typ, image = none, none
	case nones == 1 && image == nil:
		image = none
	case nones == 1 && typ == nil:
		typ = none
	case nones == 2 && typ == nil && image == nil:
		typ, image = none, none
	default:
		return false
	}
	p.addAll(p.shorthand.Longhands(), []values.Value{typ, position, image})
	return true
}

// expandMarker sets the three marker properties to the same value
func expandMarker(p *parser, vl *pa.ValueList) bool {
	v, ok := urlOrNone(p, vl)
	if !ok || !vl.AtEnd() {
		return false
	}
	p.addAll(p.shorthand.Longhands(), []values.Value{v, v, v})
	return true
}

// expandTextDecoration only sets text-decoration-line when the
// CSS3 text decorations are disabled.
func expandTextDecoration(p *parser, vl *pa.ValueList) bool {
	if p.ctx.Features.Has(pr.FeatureCSS3TextDecorations) {
		return genericExpander(p, vl)
	}
	v, ok := textDecorationLine(p, vl)
	if !ok || !vl.AtEnd() {
		return false
	}
	p.addProperty(pr.PTextDecorationLine, v, false)
	return true
}
