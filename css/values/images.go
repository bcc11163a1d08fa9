package values

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/cssdecl/css/calc"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/utils"
)

// Calc is a calc() expression, kept symbolic until
// the computed value is known.
type Calc struct {
	Expression calc.Expression
}

func (c Calc) CSSText() string { return c.Expression.CSSText() }

func (c Calc) Equal(other Value) bool {
	o, ok := other.(Calc)
	return ok && c.Expression.Equal(o.Expression)
}

// GradientKind distinguishes the syntaxes of the gradient functions.
type GradientKind uint8

const (
	// linear-gradient(), radial-gradient()
	StandardGradient GradientKind = iota
	// -webkit-linear-gradient(), -webkit-radial-gradient()
	PrefixedGradient
)

// ColorStop is an element of a gradient color stop list.
// A stop without color is a color hint.
type ColorStop struct {
	Color    Value // nil for hints
	Position Value // optional, length or percentage
}

// IsHint returns true if the stop has no color.
func (c ColorStop) IsHint() bool { return c.Color == nil }

func (c ColorStop) cssText() string {
	switch {
	case c.Color == nil:
		return c.Position.CSSText()
	case c.Position == nil:
		return c.Color.CSSText()
	default:
		return c.Color.CSSText() + " " + c.Position.CSSText()
	}
}

func (c ColorStop) equal(o ColorStop) bool {
	return Equal(c.Color, o.Color) && Equal(c.Position, o.Position)
}

func stopsCSSText(b *strings.Builder, stops []ColorStop) {
	for i, stop := range stops {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(stop.cssText())
	}
}

func equalStops(a, b []ColorStop) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}

// LinearGradient is a (repeating) linear gradient.
// The direction is either an [Angle], or a side or corner given by
// [SideX] and [SideY] (one of them may be empty), or the default.
type LinearGradient struct {
	Angle     Value   // optional
	SideX     Keyword // left, right or empty
	SideY     Keyword // top, bottom or empty
	Stops     []ColorStop
	Kind      GradientKind
	Repeating bool
}

func (g LinearGradient) CSSText() string {
	var b strings.Builder
	if g.Kind == PrefixedGradient {
		b.WriteString("-webkit-")
	}
	if g.Repeating {
		b.WriteString("repeating-")
	}
	b.WriteString("linear-gradient(")
	wroteDirection := true
	switch {
	case g.Angle != nil:
		b.WriteString(g.Angle.CSSText())
	case g.SideX != "" || g.SideY != "":
		if g.Kind == StandardGradient {
			b.WriteString("to ")
		}
		if g.SideX != "" {
			b.WriteString(string(g.SideX))
			if g.SideY != "" {
				b.WriteByte(' ')
			}
		}
		b.WriteString(string(g.SideY))
	default:
		wroteDirection = false
	}
	if wroteDirection {
		b.WriteString(", ")
	}
	stopsCSSText(&b, g.Stops)
	b.WriteByte(')')
	return b.String()
}

func (g LinearGradient) Equal(other Value) bool {
	o, ok := other.(LinearGradient)
	return ok && g.Kind == o.Kind && g.Repeating == o.Repeating && Equal(g.Angle, o.Angle) &&
		g.SideX == o.SideX && g.SideY == o.SideY && equalStops(g.Stops, o.Stops)
}

// RadialGradient is a (repeating) radial gradient.
type RadialGradient struct {
	// circle, ellipse or empty
	Shape Keyword
	// closest-side, farthest-corner, etc... or empty.
	// For prefixed gradients, contain and cover are also valid.
	SizeKeyword Keyword
	// explicit sizes, optional. Only [EndX] is set for circles.
	EndX, EndY Value
	// center, optional
	CenterX, CenterY Value
	Stops            []ColorStop
	Kind             GradientKind
	Repeating        bool
}

func (g RadialGradient) hasPosition() bool { return g.CenterX != nil }

func (g RadialGradient) CSSText() string {
	var b strings.Builder
	if g.Kind == PrefixedGradient {
		b.WriteString("-webkit-")
	}
	if g.Repeating {
		b.WriteString("repeating-")
	}
	b.WriteString("radial-gradient(")

	var shape []string
	if g.Shape != "" {
		shape = append(shape, string(g.Shape))
	}
	if g.SizeKeyword != "" {
		shape = append(shape, string(g.SizeKeyword))
	}
	if g.EndX != nil {
		shape = append(shape, g.EndX.CSSText())
		if g.EndY != nil {
			shape = append(shape, g.EndY.CSSText())
		}
	}
	position := ""
	if g.hasPosition() {
		position = g.CenterX.CSSText() + " " + g.CenterY.CSSText()
	}

	if g.Kind == PrefixedGradient {
		// -webkit-radial-gradient(<position>, <shape> <size>, <stops>)
		if position != "" {
			b.WriteString(position + ", ")
		}
		if len(shape) != 0 {
			b.WriteString(strings.Join(shape, " ") + ", ")
		}
	} else {
		// radial-gradient(<shape> <size> at <position>, <stops>)
		prefix := strings.Join(shape, " ")
		if position != "" {
			if prefix != "" {
				prefix += " "
			}
			prefix += "at " + position
		}
		if prefix != "" {
			b.WriteString(prefix + ", ")
		}
	}
	stopsCSSText(&b, g.Stops)
	b.WriteByte(')')
	return b.String()
}

func (g RadialGradient) Equal(other Value) bool {
	o, ok := other.(RadialGradient)
	return ok && g.Kind == o.Kind && g.Repeating == o.Repeating && g.Shape == o.Shape &&
		g.SizeKeyword == o.SizeKeyword && Equal(g.EndX, o.EndX) && Equal(g.EndY, o.EndY) &&
		Equal(g.CenterX, o.CenterX) && Equal(g.CenterY, o.CenterY) && equalStops(g.Stops, o.Stops)
}

// DeprecatedStop is a from(), to() or color-stop() stop of
// a -webkit-gradient().
type DeprecatedStop struct {
	Offset Numeric // number or percentage
	Color  Value
}

// DeprecatedGradient is the legacy -webkit-gradient() function.
type DeprecatedGradient struct {
	Radial bool
	// the points are pairs of positions
	FirstX, FirstY, SecondX, SecondY Value
	// only for radial gradients
	FirstRadius, SecondRadius Value
	Stops                     []DeprecatedStop
}

func (g DeprecatedGradient) CSSText() string {
	var b strings.Builder
	b.WriteString("-webkit-gradient(")
	if g.Radial {
		b.WriteString("radial, ")
	} else {
		b.WriteString("linear, ")
	}
	b.WriteString(g.FirstX.CSSText() + " " + g.FirstY.CSSText() + ", ")
	if g.Radial {
		b.WriteString(g.FirstRadius.CSSText() + ", ")
	}
	b.WriteString(g.SecondX.CSSText() + " " + g.SecondY.CSSText())
	if g.Radial {
		b.WriteString(", " + g.SecondRadius.CSSText())
	}
	for _, stop := range g.Stops {
		b.WriteString(", ")
		switch {
		case stop.Offset.Value == 0 && stop.Offset.Unit == pr.Scalar:
			b.WriteString("from(" + stop.Color.CSSText() + ")")
		case stop.Offset.Value == 1 && stop.Offset.Unit == pr.Scalar:
			b.WriteString("to(" + stop.Color.CSSText() + ")")
		default:
			b.WriteString("color-stop(" + stop.Offset.CSSText() + ", " + stop.Color.CSSText() + ")")
		}
	}
	b.WriteByte(')')
	return b.String()
}

func (g DeprecatedGradient) Equal(other Value) bool {
	o, ok := other.(DeprecatedGradient)
	if !ok || g.Radial != o.Radial || len(g.Stops) != len(o.Stops) {
		return false
	}
	for i, s := range g.Stops {
		if s.Offset != o.Stops[i].Offset || !Equal(s.Color, o.Stops[i].Color) {
			return false
		}
	}
	return Equal(g.FirstX, o.FirstX) && Equal(g.FirstY, o.FirstY) &&
		Equal(g.SecondX, o.SecondX) && Equal(g.SecondY, o.SecondY) &&
		Equal(g.FirstRadius, o.FirstRadius) && Equal(g.SecondRadius, o.SecondRadius)
}

// ImageSetItem is one candidate of an image set.
type ImageSetItem struct {
	Image Value // URI
	Scale Fl    // in x
}

// ImageSet is a -webkit-image-set() function.
type ImageSet struct {
	Items []ImageSetItem
}

func (s ImageSet) CSSText() string {
	chunks := make([]string, len(s.Items))
	for i, item := range s.Items {
		chunks[i] = item.Image.CSSText() + " " + utils.FormatFloat(item.Scale) + "x"
	}
	return "-webkit-image-set(" + strings.Join(chunks, ", ") + ")"
}

func (s ImageSet) Equal(other Value) bool {
	o, ok := other.(ImageSet)
	if !ok || len(s.Items) != len(o.Items) {
		return false
	}
	for i, item := range s.Items {
		if item.Scale != o.Items[i].Scale || !Equal(item.Image, o.Items[i].Image) {
			return false
		}
	}
	return true
}

// BorderImageSlice stores the four offsets of border-image-slice,
// and the 'fill' keyword.
type BorderImageSlice struct {
	Slices Quad
	Fill   bool
}

func (b BorderImageSlice) CSSText() string {
	s := b.Slices.CSSText()
	if b.Fill {
		s += " fill"
	}
	return s
}

func (b BorderImageSlice) Equal(other Value) bool {
	o, ok := other.(BorderImageSlice)
	return ok && b.Fill == o.Fill && b.Slices.Equal(o.Slices)
}

// Reflection is the value of -webkit-box-reflect.
type Reflection struct {
	Direction Keyword // above, below, left or right
	Offset    Value   // length or percentage
	Mask      Value   // optional border-image like value
}

func (r Reflection) CSSText() string {
	s := string(r.Direction) + " " + r.Offset.CSSText()
	if r.Mask != nil {
		s += " " + r.Mask.CSSText()
	}
	return s
}

func (r Reflection) Equal(other Value) bool {
	o, ok := other.(Reflection)
	return ok && r.Direction == o.Direction && Equal(r.Offset, o.Offset) && Equal(r.Mask, o.Mask)
}

// Counter is a counter() or counters() function.
type Counter struct {
	Identifier string
	// Separator is only used by counters()
	Separator string
	// ListStyle is the counter style, empty for decimal
	ListStyle Keyword
	// Nested is true for counters()
	Nested bool
}

func (c Counter) CSSText() string {
	var b strings.Builder
	if c.Nested {
		b.WriteString("counters(")
	} else {
		b.WriteString("counter(")
	}
	b.WriteString(CustomIdent(c.Identifier).CSSText())
	if c.Nested {
		b.WriteString(", " + String(c.Separator).CSSText())
	}
	if c.ListStyle != "" && c.ListStyle != "decimal" {
		b.WriteString(", " + string(c.ListStyle))
	}
	b.WriteByte(')')
	return b.String()
}

func (c Counter) Equal(other Value) bool {
	o, ok := other.(Counter)
	return ok && c == o
}

// Path is a path() function, storing SVG path data.
type Path struct {
	Data string
}

func (p Path) CSSText() string { return "path(" + String(p.Data).CSSText() + ")" }

func (p Path) Equal(other Value) bool {
	o, ok := other.(Path)
	return ok && p == o
}

// Steps is a steps() timing function.
type Steps struct {
	Count int
	// start, middle or end
	Position Keyword
}

func (s Steps) CSSText() string {
	out := "steps(" + strconv.Itoa(s.Count)
	if s.Position != "end" && s.Position != "" {
		out += ", " + string(s.Position)
	}
	return out + ")"
}

func (s Steps) Equal(other Value) bool {
	o, ok := other.(Steps)
	return ok && s.Count == o.Count && s.normalizedPosition() == o.normalizedPosition()
}

func (s Steps) normalizedPosition() Keyword {
	if s.Position == "" {
		return "end"
	}
	return s.Position
}

// CubicBezier is a cubic-bezier() timing function.
type CubicBezier struct {
	X1, Y1, X2, Y2 Fl
}

func (c CubicBezier) CSSText() string {
	return "cubic-bezier(" + utils.FormatFloat(c.X1) + ", " + utils.FormatFloat(c.Y1) + ", " +
		utils.FormatFloat(c.X2) + ", " + utils.FormatFloat(c.Y2) + ")"
}

func (c CubicBezier) Equal(other Value) bool {
	o, ok := other.(CubicBezier)
	return ok && c == o
}
