package validation

import (
	"github.com/benoitkugler/cssdecl/css/calc"
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

var (
	borderStyleKeywords = utils.NewSet("none", "hidden", "inset", "groove", "outset", "ridge",
		"dotted", "dashed", "solid", "double")
	borderWidthKeywords  = utils.NewSet("thin", "medium", "thick")
	borderRepeatKeywords = utils.NewSet("stretch", "repeat", "round", "space")
)

func borderStyle(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, borderStyleKeywords)
}

// outline-style also accepts 'auto'
func outlineStyle(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	return p.consumeKeyword(vl, borderStyleKeywords)
}

func borderWidth(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(vl, borderWidthKeywords); ok {
		return kw, true
	}
	return p.consumeUnit(vl, fLength|fNonNeg|fUnitlessQuirk)
}

// borderColor accepts the quirky colors for the border-*-color longhands
func borderColor(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeColor(vl, p.acceptQuirkyColors())
}

// borderRadius parses one or two non negative length-percentage.
func borderRadius(p *parser, vl *pa.ValueList) (values.Value, bool) {
	horizontal, ok := p.consumeUnit(vl, fLength|fPercent|fNonNeg)
	if !ok {
		return nil, false
	}
	vertical, ok := p.consumeUnit(vl, fLength|fPercent|fNonNeg)
	if !ok {
		vertical = horizontal
	}
	return values.Pair{First: horizontal, Second: vertical}, true
}

// borderSpacing parses one of the two lengths of border-spacing
func borderSpacing(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeUnit(vl, fLength|fNonNeg)
}

// fourValues consumes 1 to 4 items and completes them
// following the top, right, bottom, left rule.
func (p *parser) fourValues(vl *pa.ValueList, item validator) (values.Quad, bool) {
	var vs []values.Value
	for len(vs) < 4 && !vl.AtEnd() {
		pos := vl.Save()
		v, ok := item(p, vl)
		if !ok {
			vl.Restore(pos)
			break
		}
		vs = append(vs, v)
	}
	if len(vs) == 0 {
		return values.Quad{}, false
	}
	return completeQuad(vs), true
}

func completeQuad(vs []values.Value) values.Quad {
	q := values.Quad{Top: vs[0], Right: vs[0], Bottom: vs[0], Left: vs[0]}
	if len(vs) >= 2 {
		q.Right, q.Left = vs[1], vs[1]
	}
	if len(vs) >= 3 {
		q.Bottom = vs[2]
	}
	if len(vs) == 4 {
		q.Left = vs[3]
	}
	return q
}

func sliceOffset(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeUnit(vl, fNumber|fPercent|fNonNeg)
}

// borderImageSlice parses 1 to 4 numbers or percentages, with an
// optional 'fill' keyword before or after them.
func borderImageSlice(p *parser, vl *pa.ValueList) (values.Value, bool) {
	var out values.BorderImageSlice
	out.Fill = consumeIdent(vl, "fill")
	slices, ok := p.fourValues(vl, sliceOffset)
	if !ok {
		return nil, false
	}
	out.Slices = slices
	if !out.Fill {
		out.Fill = consumeIdent(vl, "fill")
	}
	return out, true
}

func imageWidthItem(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	return p.consumeUnit(vl, fNumber|fLength|fPercent|fNonNeg)
}

func imageOutsetItem(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeUnit(vl, fNumber|fLength|fNonNeg)
}

func borderImageWidth(p *parser, vl *pa.ValueList) (values.Value, bool) {
	q, ok := p.fourValues(vl, imageWidthItem)
	if !ok {
		return nil, false
	}
	return q, true
}

func borderImageOutset(p *parser, vl *pa.ValueList) (values.Value, bool) {
	q, ok := p.fourValues(vl, imageOutsetItem)
	if !ok {
		return nil, false
	}
	return q, true
}

func borderImageRepeat(p *parser, vl *pa.ValueList) (values.Value, bool) {
	horizontal, ok := p.consumeKeyword(vl, borderRepeatKeywords)
	if !ok {
		return nil, false
	}
	vertical, ok := p.consumeKeyword(vl, borderRepeatKeywords)
	if !ok {
		vertical = horizontal
	}
	return values.Pair{First: horizontal, Second: vertical}, true
}

// borderImage stores the components of a border-image value.
// Omitted components are nil.
type borderImage struct {
	source, slice, width, outset, repeat values.Value
}

// the states of the border-image parser
type biState uint8

const (
	biGeneral    biState = iota // between two components
	biAfterSlice                // a '/' may start the width
	biWidth                     // after the first '/'
	biAfterWidth                // a '/' may start the outset
	biOutset                    // after the second '/'
	biError
	biNumStates
)

// the classes of the tokens read by the border-image parser
type biInput uint8

const (
	biImage  biInput = iota // url, gradient, none
	biNumber                // numbers, lengths, 'fill' and 'auto'
	biSlash
	biRepeat
	biNumInputs
)

var biTransitions = [biNumStates][biNumInputs]biState{
	biGeneral:    {biImage: biGeneral, biNumber: biAfterSlice, biSlash: biError, biRepeat: biGeneral},
	biAfterSlice: {biImage: biGeneral, biNumber: biError, biSlash: biWidth, biRepeat: biGeneral},
	biWidth:      {biImage: biError, biNumber: biAfterWidth, biSlash: biOutset, biRepeat: biError},
	biAfterWidth: {biImage: biGeneral, biNumber: biError, biSlash: biOutset, biRepeat: biGeneral},
	biOutset:     {biImage: biError, biNumber: biGeneral, biSlash: biError, biRepeat: biError},
	biError:      {biError, biError, biError, biError},
}

// accepting reports whether the value may end in state s
func (s biState) accepting() bool {
	return s == biGeneral || s == biAfterSlice || s == biAfterWidth
}

func classifyBorderImageToken(token Token) (biInput, bool) {
	switch token := token.(type) {
	case pa.Literal:
		if token.Value == "/" {
			return biSlash, true
		}
	case pa.Ident:
		kw := utils.AsciiLower(token.Value)
		switch {
		case kw == "none":
			return biImage, true
		case kw == "fill" || kw == "auto":
			return biNumber, true
		case borderRepeatKeywords.Has(kw):
			return biRepeat, true
		}
	case pa.Number, pa.Percentage, pa.Dimension:
		return biNumber, true
	case pa.URL:
		return biImage, true
	case pa.FunctionBlock:
		if calc.IsCalcFunction(token) {
			return biNumber, true
		}
		return biImage, true
	}
	return 0, false
}

// consumeBorderImage parses the border-image shorthand grammar, which is
// also used by the mask of -webkit-box-reflect.
// The source, the slice group and the repeat may come in any order.
func (p *parser) consumeBorderImage(vl *pa.ValueList) (borderImage, bool) {
	var (
		out   borderImage
		state = biGeneral
	)
	for !vl.AtEnd() {
		input, ok := classifyBorderImageToken(vl.Current())
		if !ok {
			break
		}
		next := biTransitions[state][input]
		if next == biError {
			return out, p.fail(StructuralViolation)
		}

		var (
			component *values.Value
			item      validator
		)
		switch {
		case input == biSlash:
			vl.Next()
		case input == biImage:
			component, item = &out.source, imageOrNone
		case input == biRepeat:
			component, item = &out.repeat, borderImageRepeat
		case state == biGeneral:
			component, item = &out.slice, borderImageSlice
		case state == biWidth:
			component, item = &out.width, borderImageWidth
		case state == biOutset:
			component, item = &out.outset, borderImageOutset
		}
		if component != nil {
			if *component != nil { // duplicated component
				return out, false
			}
			v, ok := item(p, vl)
			if !ok {
				return out, false
			}
			*component = v
		}
		state = next
	}
	if !state.accepting() {
		return out, false
	}
	return out, out.source != nil || out.slice != nil || out.repeat != nil
}

// reflectionMask returns the border-image used as mask in -webkit-box-reflect
func (b borderImage) reflectionMask() values.Value {
	var items []values.Value
	if b.source != nil {
		items = append(items, b.source)
	}
	if b.slice != nil {
		group := []values.Value{b.slice}
		if b.width != nil {
			group = append(group, b.width)
		} else if b.outset != nil {
			one := values.Numeric{Value: 1, Unit: pr.Scalar} // initial width
			group = append(group, values.Quad{Top: one, Right: one, Bottom: one, Left: one})
		}
		if b.outset != nil {
			group = append(group, b.outset)
		}
		if len(group) == 1 {
			items = append(items, b.slice)
		} else {
			items = append(items, values.List{Items: group, Sep: values.SlashSeparator})
		}
	}
	if b.repeat != nil {
		items = append(items, b.repeat)
	}
	if len(items) == 1 {
		return items[0]
	}
	return values.List{Items: items}
}
