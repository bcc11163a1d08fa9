package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

var (
	horizontalKeywords = utils.NewSet("left", "center", "right")
	verticalKeywords   = utils.NewSet("top", "center", "bottom")
)

// positionComponent is one element of a <position>: a keyword or
// a length-percentage
type positionComponent struct {
	value   values.Value
	keyword string
}

func (p *parser) positionComponent(vl *pa.ValueList, flags unitFlags) (positionComponent, bool) {
	switch kw := getKeyword(vl.Current()); kw {
	case "left", "right", "top", "bottom", "center":
		vl.Next()
		return positionComponent{keyword: kw, value: p.keyword(kw)}, true
	case "":
		if v, ok := p.consumeUnit(vl, flags); ok {
			return positionComponent{value: v}, true
		}
	}
	return positionComponent{}, false
}

// position parses a <position> made of 1 to [maxValues] components,
// returning its horizontal and vertical parts.
// With 3 or 4 values, the parts may be a [values.Pair] (edge keyword, offset).
func (p *parser) position(vl *pa.ValueList, maxValues int) (x, y values.Value, ok bool) {
	var comps []positionComponent
	for len(comps) < maxValues && !vl.AtEnd() {
		pos := vl.Save()
		c, ok := p.positionComponent(vl, fLength|fPercent)
		if !ok {
			vl.Restore(pos)
			break
		}
		comps = append(comps, c)
	}

	switch len(comps) {
	case 1:
		c := comps[0]
		if c.keyword == "top" || c.keyword == "bottom" {
			return p.keyword("center"), c.value, true
		}
		return c.value, p.keyword("center"), true
	case 2:
		a, b := comps[0], comps[1]
		if a.keyword == "top" || a.keyword == "bottom" || b.keyword == "left" || b.keyword == "right" {
			// swapped keywords, like "top left"
			if verticalKeywords.Has(a.keyword) && horizontalKeywords.Has(b.keyword) {
				return b.value, a.value, true
			}
			return nil, nil, false
		}
		if a.keyword != "" && !horizontalKeywords.Has(a.keyword) {
			return nil, nil, false
		}
		if b.keyword != "" && !verticalKeywords.Has(b.keyword) {
			return nil, nil, false
		}
		return a.value, b.value, true
	case 3, 4:
		return p.edgeOffsetPosition(comps)
	}
	return nil, nil, false
}

// edgeOffsetPosition handles the 3 and 4 values syntax, like
// "right 10px bottom" or "left 5% top 10px"
func (p *parser) edgeOffsetPosition(comps []positionComponent) (x, y values.Value, ok bool) {
	var parts []values.Value
	var edges []string
	for i := 0; i < len(comps); i++ {
		c := comps[i]
		if c.keyword == "" {
			return nil, nil, false
		}
		if i+1 < len(comps) && comps[i+1].keyword == "" {
			if c.keyword == "center" {
				return nil, nil, false
			}
			parts = append(parts, values.Pair{First: c.value, Second: comps[i+1].value, Policy: values.KeepIdenticalValues})
			i++
		} else {
			parts = append(parts, c.value)
		}
		edges = append(edges, c.keyword)
	}
	if len(parts) != 2 {
		return nil, nil, false
	}
	switch {
	case horizontalKeywords.Has(edges[0]) && verticalKeywords.Has(edges[1]) && !(edges[0] == "center" && edges[1] == "center"):
		return parts[0], parts[1], true
	case verticalKeywords.Has(edges[0]) && horizontalKeywords.Has(edges[1]):
		return parts[1], parts[0], true
	}
	return nil, nil, false
}

// axisPosition parses the value of background-position-x (or -y):
// an edge keyword with an optional offset, or a length-percentage.
func axisPosition(keywords utils.Set) validator {
	return func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		kw := getKeyword(vl.Current())
		if kw == "" {
			return p.consumeUnit(vl, fLength|fPercent)
		}
		if !keywords.Has(kw) {
			return nil, false
		}
		vl.Next()
		if kw != "center" {
			if offset, ok := p.validUnit(vl.Current(), fLength|fPercent); ok {
				vl.Next()
				return values.Pair{First: p.keyword(kw), Second: offset, Policy: values.KeepIdenticalValues}, true
			}
		}
		return p.keyword(kw), true
	}
}

var (
	positionX = axisPosition(horizontalKeywords)
	positionY = axisPosition(verticalKeywords)
)

// positionValue parses a <position> as a space separated pair.
func positionValue(maxValues int) validator {
	return func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		x, y, ok := p.position(vl, maxValues)
		if !ok {
			return nil, false
		}
		return values.Pair{First: x, Second: y, Policy: values.KeepIdenticalValues}, true
	}
}

// transformOrigin parses a 2D position, followed by an optional z length.
func transformOrigin(p *parser, vl *pa.ValueList) (values.Value, bool) {
	x, y, ok := p.position(vl, 2)
	if !ok {
		return nil, false
	}
	if z, ok := p.validUnit(vl.Current(), fLength); ok {
		vl.Next()
		return values.List{Items: []values.Value{x, y, z}}, true
	}
	return values.Pair{First: x, Second: y, Policy: values.KeepIdenticalValues}, true
}

var repeatKeywords = utils.NewSet("repeat", "no-repeat", "space", "round")

// fillRepeat parses one layer of background-repeat (or -webkit-mask-repeat),
// returning the horizontal and vertical values.
func (p *parser) fillRepeat(vl *pa.ValueList) (x, y values.Value, ok bool) {
	switch getKeyword(vl.Current()) {
	case "repeat-x":
		vl.Next()
		return p.keyword("repeat"), p.keyword("no-repeat"), true
	case "repeat-y":
		vl.Next()
		return p.keyword("no-repeat"), p.keyword("repeat"), true
	}
	x, ok = p.consumeKeyword(vl, repeatKeywords)
	if !ok {
		return nil, nil, false
	}
	y, ok = p.consumeKeyword(vl, repeatKeywords)
	if !ok {
		y = x
	}
	return x, y, true
}

// fillSize parses one layer of background-size.
func fillSize(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := getKeyword(vl.Current()); kw {
	case "cover", "contain":
		vl.Next()
		return p.keyword(kw), true
	}
	width, ok := p.sizeComponent(vl)
	if !ok {
		return nil, false
	}
	if height, ok := p.sizeComponent(vl); ok {
		return values.Pair{First: width, Second: height, Policy: values.KeepIdenticalValues}, true
	}
	return width, true
}

func (p *parser) sizeComponent(vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	return p.consumeUnit(vl, fLength|fPercent|fNonNeg)
}

var (
	boxKeywords     = utils.NewSet("border-box", "padding-box", "content-box")
	clipBoxKeywords = utils.NewSet("border-box", "padding-box", "content-box", "text")
)
