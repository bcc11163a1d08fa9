package values

import "strings"

// Circle is a circle() basic shape.
// Radius (a length, percentage or keyword) and center are optional.
type Circle struct {
	Radius           Value
	CenterX, CenterY Value
}

// Ellipse is an ellipse() basic shape.
// Radii are both set or both nil.
type Ellipse struct {
	RadiusX, RadiusY Value
	CenterX, CenterY Value
}

// Polygon is a polygon() basic shape.
type Polygon struct {
	FillRule Keyword // nonzero (default), evenodd
	// Points are the vertices, as x, y couples
	Points []Value
}

// Inset is an inset() basic shape.
// Corners are optional, or the four [Pair] of the rounded corners,
// in the top-left, top-right, bottom-right, bottom-left order.
type Inset struct {
	Offsets Quad
	Corners []Value
}

func shapeCenter(x, y Value) string {
	if x == nil {
		return ""
	}
	return "at " + x.CSSText() + " " + y.CSSText()
}

func shapeArgs(args ...string) string {
	var nonEmpty []string
	for _, a := range args {
		if a != "" {
			nonEmpty = append(nonEmpty, a)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func (c Circle) CSSText() string {
	return "circle(" + shapeArgs(CSSText(c.Radius), shapeCenter(c.CenterX, c.CenterY)) + ")"
}

func (e Ellipse) CSSText() string {
	radii := ""
	if e.RadiusX != nil {
		radii = e.RadiusX.CSSText() + " " + e.RadiusY.CSSText()
	}
	return "ellipse(" + shapeArgs(radii, shapeCenter(e.CenterX, e.CenterY)) + ")"
}

func (p Polygon) CSSText() string {
	var b strings.Builder
	b.WriteString("polygon(")
	if p.FillRule == "evenodd" {
		b.WriteString("evenodd, ")
	}
	for i := 0; i+1 < len(p.Points); i += 2 {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Points[i].CSSText() + " " + p.Points[i+1].CSSText())
	}
	b.WriteByte(')')
	return b.String()
}

func (in Inset) CSSText() string {
	s := "inset(" + in.Offsets.CSSText()
	if len(in.Corners) == 4 {
		var horizontal, vertical Quad
		horizontal.Top, vertical.Top = cornerRadii(in.Corners[0])
		horizontal.Right, vertical.Right = cornerRadii(in.Corners[1])
		horizontal.Bottom, vertical.Bottom = cornerRadii(in.Corners[2])
		horizontal.Left, vertical.Left = cornerRadii(in.Corners[3])
		s += " round " + horizontal.CSSText()
		if !horizontal.Equal(vertical) {
			s += " / " + vertical.CSSText()
		}
	}
	return s + ")"
}

func cornerRadii(v Value) (Value, Value) {
	if p, ok := v.(Pair); ok {
		return p.First, p.Second
	}
	return v, v
}

func (c Circle) Equal(other Value) bool {
	o, ok := other.(Circle)
	return ok && Equal(c.Radius, o.Radius) && Equal(c.CenterX, o.CenterX) && Equal(c.CenterY, o.CenterY)
}

func (e Ellipse) Equal(other Value) bool {
	o, ok := other.(Ellipse)
	return ok && Equal(e.RadiusX, o.RadiusX) && Equal(e.RadiusY, o.RadiusY) &&
		Equal(e.CenterX, o.CenterX) && Equal(e.CenterY, o.CenterY)
}

func (p Polygon) Equal(other Value) bool {
	o, ok := other.(Polygon)
	return ok && p.normalizedRule() == o.normalizedRule() && equalSlices(p.Points, o.Points)
}

func (p Polygon) normalizedRule() Keyword {
	if p.FillRule == "" {
		return "nonzero"
	}
	return p.FillRule
}

func (in Inset) Equal(other Value) bool {
	o, ok := other.(Inset)
	return ok && in.Offsets.Equal(o.Offsets) && equalSlices(in.Corners, o.Corners)
}
