package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

var shapeBoxKeywords = utils.NewSet("margin-box", "border-box", "padding-box", "content-box")

// consumeBasicShape parses circle(), ellipse(), polygon() and inset().
func (p *parser) consumeBasicShape(vl *pa.ValueList) (values.Value, bool) {
	name, fn := functionName(vl.Current())
	if name == "" {
		return nil, false
	}
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	var shape values.Value
	switch name {
	case "circle":
		shape, ok = p.circle(args)
	case "ellipse":
		shape, ok = p.ellipse(args)
	case "polygon":
		shape, ok = p.polygon(args)
	case "inset":
		shape, ok = p.inset(args)
	default:
		return nil, false
	}
	if !ok || !args.AtEnd() {
		return nil, false
	}
	vl.Next()
	return shape, true
}

func (p *parser) shapeRadius(args *pa.ValueList) (values.Value, bool) {
	switch kw := getKeyword(args.Current()); kw {
	case "closest-side", "farthest-side":
		args.Next()
		return p.keyword(kw), true
	}
	return p.consumeUnit(args, fLength|fPercent|fNonNeg)
}

// shapeCenter parses the optional "at <position>" part
func (p *parser) shapeCenter(args *pa.ValueList) (x, y values.Value, ok bool) {
	if !consumeIdent(args, "at") {
		return nil, nil, true
	}
	return p.position(args, 4)
}

func (p *parser) circle(args *pa.ValueList) (values.Value, bool) {
	var (
		c  values.Circle
		ok bool
	)
	if getKeyword(args.Current()) != "at" && !args.AtEnd() {
		if c.Radius, ok = p.shapeRadius(args); !ok {
			return nil, false
		}
	}
	c.CenterX, c.CenterY, ok = p.shapeCenter(args)
	return c, ok
}

func (p *parser) ellipse(args *pa.ValueList) (values.Value, bool) {
	var (
		e  values.Ellipse
		ok bool
	)
	if getKeyword(args.Current()) != "at" && !args.AtEnd() {
		if e.RadiusX, ok = p.shapeRadius(args); !ok {
			return nil, false
		}
		if e.RadiusY, ok = p.shapeRadius(args); !ok {
			return nil, false
		}
	}
	e.CenterX, e.CenterY, ok = p.shapeCenter(args)
	return e, ok
}

func (p *parser) polygon(args *pa.ValueList) (values.Value, bool) {
	var poly values.Polygon
	switch kw := getKeyword(args.Current()); kw {
	case "nonzero", "evenodd":
		poly.FillRule = values.Keyword(kw)
		args.Next()
		if !args.SkipComma() {
			return nil, false
		}
	}
	for {
		x, ok := p.consumeUnit(args, fLength|fPercent)
		if !ok {
			return nil, false
		}
		y, ok := p.consumeUnit(args, fLength|fPercent)
		if !ok {
			return nil, false
		}
		poly.Points = append(poly.Points, x, y)
		if len(poly.Points) > 2*p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
		if !args.SkipComma() {
			break
		}
	}
	return poly, true
}

func insetOffset(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeUnit(vl, fLength|fPercent)
}

func (p *parser) inset(args *pa.ValueList) (values.Value, bool) {
	var (
		in values.Inset
		ok bool
	)
	if in.Offsets, ok = p.fourValues(args, insetOffset); !ok {
		return nil, false
	}
	if consumeIdent(args, "round") {
		corners, ok := p.radiusCorners(args)
		if !ok {
			return nil, false
		}
		in.Corners = corners[:]
	}
	return in, true
}

func radiusItem(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeUnit(vl, fLength|fPercent|fNonNeg)
}

// radiusCorners parses the border-radius syntax: 1 to 4 horizontal radii,
// optionally followed by '/' and 1 to 4 vertical radii.
// It returns one [values.Pair] per corner, in the
// top-left, top-right, bottom-right, bottom-left order.
func (p *parser) radiusCorners(vl *pa.ValueList) ([4]values.Value, bool) {
	var out [4]values.Value
	horizontal, ok := p.fourValues(vl, radiusItem)
	if !ok {
		return out, false
	}
	vertical := horizontal
	if vl.IsOperator("/") {
		vl.Next()
		if vertical, ok = p.fourValues(vl, radiusItem); !ok {
			return out, false
		}
	}
	// the Quad order maps to top-left, top-right, bottom-right, bottom-left
	out[0] = values.Pair{First: horizontal.Top, Second: vertical.Top}
	out[1] = values.Pair{First: horizontal.Right, Second: vertical.Right}
	out[2] = values.Pair{First: horizontal.Bottom, Second: vertical.Bottom}
	out[3] = values.Pair{First: horizontal.Left, Second: vertical.Left}
	return out, true
}

// clipPath is the grammar of clip-path: none, an url or a basic shape
func clipPath(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	if u, ok := p.consumeURL(vl); ok {
		return u, true
	}
	return p.consumeBasicShape(vl)
}

// shapeOutside accepts none, an image, a reference box, or a basic shape
// with an optional reference box.
func shapeOutside(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	if img, ok := p.consumeImage(vl); ok {
		return img, true
	}
	box, hasBox := p.consumeKeyword(vl, shapeBoxKeywords)
	shape, hasShape := p.consumeBasicShape(vl)
	if !hasBox {
		box, hasBox = p.consumeKeyword(vl, shapeBoxKeywords)
	}
	switch {
	case hasShape && hasBox:
		return values.List{Items: []values.Value{shape, box}}, true
	case hasShape:
		return shape, true
	case hasBox:
		return box, true
	}
	return nil, false
}
