package values

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump returns a tree representation of the value,
// showing its concrete types. It is meant for debugging.
func Dump(v Value) string {
	root := tp.New()
	d := dumper{branch: root}
	d.value(v)
	return root.String()
}

type dumper struct {
	branch tp.Tree
}

func (d dumper) value(v Value) {
	if v == nil {
		d.branch.AddNode("<nil>")
		return
	}
	v.Accept(d)
}

func (d dumper) node(format string, args ...interface{}) {
	d.branch.AddNode(fmt.Sprintf(format, args...))
}

// child adds a branch named [label], containing [children]
func (d dumper) child(label string, children ...Value) {
	sub := dumper{branch: d.branch.AddBranch(label)}
	for _, c := range children {
		sub.value(c)
	}
}

func (d dumper) VisitKeyword(k Keyword)         { d.node("keyword %s", string(k)) }
func (d dumper) VisitNumeric(n Numeric)         { d.node("numeric %s", n.CSSText()) }
func (d dumper) VisitString(s String)           { d.node("string %q", string(s)) }
func (d dumper) VisitCustomIdent(c CustomIdent) { d.node("ident %s", string(c)) }
func (d dumper) VisitURI(u URI)                 { d.node("uri %s", u.URL) }
func (d dumper) VisitCalc(c Calc) {
	d.node("calc <%s> %s", c.Expression.Category(), c.CSSText())
}
func (d dumper) VisitList(l List) { d.child(fmt.Sprintf("list %q", l.Sep.String()), l.Items...) }
func (d dumper) VisitFunction(f Function) {
	d.child("function "+f.Name, f.Args...)
}
func (d dumper) VisitPair(p Pair) { d.child("pair", p.First, p.Second) }
func (d dumper) VisitQuad(q Quad) { d.child("quad", q.Top, q.Right, q.Bottom, q.Left) }
func (d dumper) VisitColor(c Color) {
	d.node("color %d %d %d %d", c.R, c.G, c.B, c.A)
}
func (d dumper) VisitShadow(s Shadow) {
	d.child(fmt.Sprintf("shadow (inset: %v)", s.Inset), s.X, s.Y, s.Blur, s.Spread, s.Color)
}

func (d dumper) stops(label string, stops []ColorStop) {
	sub := dumper{branch: d.branch.AddBranch(label)}
	for _, stop := range stops {
		sub.child("stop", stop.Color, stop.Position)
	}
}

func (d dumper) VisitLinearGradient(g LinearGradient) {
	sub := dumper{branch: d.branch.AddBranch(fmt.Sprintf("linear-gradient (kind: %d, repeating: %v, side: %s %s)",
		g.Kind, g.Repeating, g.SideX, g.SideY))}
	sub.value(g.Angle)
	sub.stops("stops", g.Stops)
}

func (d dumper) VisitRadialGradient(g RadialGradient) {
	sub := dumper{branch: d.branch.AddBranch(fmt.Sprintf("radial-gradient (kind: %d, repeating: %v, shape: %s %s)",
		g.Kind, g.Repeating, g.Shape, g.SizeKeyword))}
	sub.child("size", g.EndX, g.EndY)
	sub.child("center", g.CenterX, g.CenterY)
	sub.stops("stops", g.Stops)
}

func (d dumper) VisitDeprecatedGradient(g DeprecatedGradient) {
	sub := dumper{branch: d.branch.AddBranch(fmt.Sprintf("-webkit-gradient (radial: %v)", g.Radial))}
	sub.child("points", g.FirstX, g.FirstY, g.SecondX, g.SecondY)
	sub.child("radii", g.FirstRadius, g.SecondRadius)
	for _, stop := range g.Stops {
		sub.child("stop", stop.Offset, stop.Color)
	}
}

func (d dumper) VisitImageSet(s ImageSet) {
	sub := dumper{branch: d.branch.AddBranch("image-set")}
	for _, item := range s.Items {
		sub.child(fmt.Sprintf("%gx", item.Scale), item.Image)
	}
}

func (d dumper) VisitBorderImageSlice(b BorderImageSlice) {
	d.child(fmt.Sprintf("border-image-slice (fill: %v)", b.Fill), b.Slices)
}
func (d dumper) VisitGridLineNames(g GridLineNames) { d.node("line names %v", g.Names) }
func (d dumper) VisitGridTemplateAreas(g GridTemplateAreas) {
	sub := dumper{branch: d.branch.AddBranch(fmt.Sprintf("areas %dx%d", g.Rows, g.Columns))}
	for _, name := range g.Names() {
		sub.node("%s: %v", name, g.Areas[name])
	}
}
func (d dumper) VisitCustomPropertyReference(c CustomPropertyReference) {
	d.node("var reference %q", c.Text)
}
func (d dumper) VisitCustomPropertyDeclaration(c CustomPropertyDeclaration) {
	d.node("custom property %s: %q %s", c.Name, c.Text, c.Keyword)
}
func (d dumper) VisitCSSWide(c CSSWide) { d.node("%s (implicit: %v)", c.Keyword, c.Implicit) }
func (d dumper) VisitCircle(c Circle)   { d.child("circle", c.Radius, c.CenterX, c.CenterY) }
func (d dumper) VisitEllipse(e Ellipse) {
	d.child("ellipse", e.RadiusX, e.RadiusY, e.CenterX, e.CenterY)
}
func (d dumper) VisitPolygon(p Polygon) { d.child("polygon "+string(p.FillRule), p.Points...) }
func (d dumper) VisitInset(i Inset) {
	sub := dumper{branch: d.branch.AddBranch("inset")}
	sub.value(i.Offsets)
	sub.child("corners", i.Corners...)
}
func (d dumper) VisitCubicBezier(c CubicBezier)   { d.node("%s", c.CSSText()) }
func (d dumper) VisitSteps(s Steps)               { d.node("%s", s.CSSText()) }
func (d dumper) VisitFontFamily(f FontFamily)     { d.node("family %q", string(f)) }
func (d dumper) VisitFontFeature(f FontFeature)   { d.node("feature %s = %d", tagString(f.Tag), f.Value) }
func (d dumper) VisitUnicodeRange(u UnicodeRange) { d.node("%s", u.CSSText()) }
func (d dumper) VisitFontFaceSrc(f FontFaceSrc)   { d.node("src %q local %q format %q", f.URI, f.Local, f.Format) }
func (d dumper) VisitReflection(r Reflection) {
	d.child("reflection "+string(r.Direction), r.Offset, r.Mask)
}
func (d dumper) VisitContentDistribution(c ContentDistribution) {
	d.node("distribution %q", c.CSSText())
}
func (d dumper) VisitPath(p Path)       { d.node("path %q", p.Data) }
func (d dumper) VisitCounter(c Counter) { d.node("%s", c.CSSText()) }
