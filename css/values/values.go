// Package values implements the tree of validated CSS values
// produced by the declaration parser.
//
// The set of values is closed: every concrete type is listed in the
// [Visitor] interface, so that adding a new kind of value breaks
// the compilation of every exhaustive consumer (see [Dump]).
//
// Values are immutable once built, and may be shared between
// several declarations (for instance between a shorthand and its longhands).
package values

import (
	"strings"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/utils"
)

type Fl = utils.Fl

// Value is a validated CSS value.
type Value interface {
	// CSSText returns the CSS text of the value, which parses back
	// to an equal value for the property it was parsed for.
	CSSText() string
	// Equal returns true if [other] has the same concrete type
	// and the same content.
	Equal(other Value) bool
	// Accept calls the method of [v] matching the concrete type.
	Accept(v Visitor)

	isValue()
}

// Visitor has one method per concrete [Value] type.
type Visitor interface {
	VisitKeyword(Keyword)
	VisitNumeric(Numeric)
	VisitString(String)
	VisitCustomIdent(CustomIdent)
	VisitURI(URI)
	VisitCalc(Calc)
	VisitList(List)
	VisitFunction(Function)
	VisitPair(Pair)
	VisitQuad(Quad)
	VisitColor(Color)
	VisitShadow(Shadow)
	VisitLinearGradient(LinearGradient)
	VisitRadialGradient(RadialGradient)
	VisitDeprecatedGradient(DeprecatedGradient)
	VisitImageSet(ImageSet)
	VisitBorderImageSlice(BorderImageSlice)
	VisitGridLineNames(GridLineNames)
	VisitGridTemplateAreas(GridTemplateAreas)
	VisitCustomPropertyReference(CustomPropertyReference)
	VisitCustomPropertyDeclaration(CustomPropertyDeclaration)
	VisitCSSWide(CSSWide)
	VisitCircle(Circle)
	VisitEllipse(Ellipse)
	VisitPolygon(Polygon)
	VisitInset(Inset)
	VisitCubicBezier(CubicBezier)
	VisitSteps(Steps)
	VisitFontFamily(FontFamily)
	VisitFontFeature(FontFeature)
	VisitUnicodeRange(UnicodeRange)
	VisitFontFaceSrc(FontFaceSrc)
	VisitReflection(Reflection)
	VisitContentDistribution(ContentDistribution)
	VisitPath(Path)
	VisitCounter(Counter)
}

// Keyword is a CSS identifier with a predefined meaning, like 'auto'.
// It is always stored in lower case.
type Keyword string

// Numeric is a number with an optional unit.
type Numeric struct {
	Value Fl
	Unit  pr.Unit
}

// String is a quoted CSS string.
type String string

// CustomIdent is an author defined identifier, like an animation name.
type CustomIdent string

// URI is a completed url().
type URI struct {
	URL string
	// Referrer is the referrer policy of the context the URL
	// was parsed in.
	Referrer string
}

// Separator is the separator of a [List].
type Separator uint8

const (
	SpaceSeparator Separator = iota
	CommaSeparator
	SlashSeparator
)

func (s Separator) String() string {
	switch s {
	case CommaSeparator:
		return ", "
	case SlashSeparator:
		return " / "
	default:
		return " "
	}
}

// List is an ordered sequence of values.
type List struct {
	Items []Value
	Sep   Separator
}

// Function is a generic function call, like
// transform and filter functions.
type Function struct {
	Name string // lower case
	Args []Value
}

// PairPolicy controls the serialization of a [Pair]
// whose components are equal.
type PairPolicy uint8

const (
	// DropIdenticalValues serializes "1px 1px" as "1px"
	DropIdenticalValues PairPolicy = iota
	KeepIdenticalValues
)

// Pair is a couple of values, like the two radii of a border corner.
type Pair struct {
	First, Second Value
	Policy        PairPolicy
}

// Quad stores the four values of a box, in the top, right, bottom, left order.
type Quad struct {
	Top, Right, Bottom, Left Value
}

// CSSWideKeyword is one of inherit, initial or unset.
type CSSWideKeyword uint8

const (
	Inherit CSSWideKeyword = iota + 1
	Initial
	Unset
)

func (k CSSWideKeyword) String() string {
	switch k {
	case Inherit:
		return "inherit"
	case Initial:
		return "initial"
	case Unset:
		return "unset"
	default:
		return ""
	}
}

// NewCSSWideKeyword returns the keyword for the lower case [s], or 0.
func NewCSSWideKeyword(s string) CSSWideKeyword {
	switch s {
	case "inherit":
		return Inherit
	case "initial":
		return Initial
	case "unset":
		return Unset
	default:
		return 0
	}
}

// CSSWide is a CSS-wide keyword. When [Implicit] is true, the value
// has not been written by the author but was set by a shorthand.
type CSSWide struct {
	Keyword  CSSWideKeyword
	Implicit bool
}

// CustomPropertyReference is a value containing var() references,
// stored as text until substitution.
type CustomPropertyReference struct {
	Text string
}

// CustomPropertyDeclaration is the value of a custom property (--name).
// Either [Keyword] is set, or [Text] stores the raw tokens.
type CustomPropertyDeclaration struct {
	Name    string
	Text    string
	Keyword CSSWideKeyword
}

func (k Keyword) CSSText() string { return string(k) }

func (n Numeric) CSSText() string { return utils.FormatFloat(n.Value) + n.Unit.String() }

func (s String) CSSText() string { return pa.SerializeString(string(s)) }

func (c CustomIdent) CSSText() string { return pa.SerializeIdentifier(string(c)) }

func (u URI) CSSText() string { return pa.SerializeURL(u.URL) }

func (l List) CSSText() string { return join(l.Items, l.Sep.String()) }

func (f Function) CSSText() string { return f.Name + "(" + join(f.Args, ", ") + ")" }

func (p Pair) CSSText() string {
	if p.Policy == DropIdenticalValues && Equal(p.First, p.Second) {
		return p.First.CSSText()
	}
	return p.First.CSSText() + " " + p.Second.CSSText()
}

// CSSText omits the values which can be deduced from the others.
func (q Quad) CSSText() string {
	top, right, bottom, left := q.Top.CSSText(), q.Right.CSSText(), q.Bottom.CSSText(), q.Left.CSSText()
	if left == right {
		if bottom == top {
			if right == top {
				return top
			}
			return top + " " + right
		}
		return top + " " + right + " " + bottom
	}
	return top + " " + right + " " + bottom + " " + left
}

func (c CSSWide) CSSText() string { return c.Keyword.String() }

func (c CustomPropertyReference) CSSText() string { return c.Text }

// CSSText panics: the CSS text of custom property declarations
// is built from the declaration itself, never from its value.
func (c CustomPropertyDeclaration) CSSText() string {
	panic("values: CSSText called on the custom property declaration " + c.Name)
}

func (k Keyword) Equal(other Value) bool {
	o, ok := other.(Keyword)
	return ok && k == o
}

func (n Numeric) Equal(other Value) bool {
	o, ok := other.(Numeric)
	return ok && n == o
}

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

func (c CustomIdent) Equal(other Value) bool {
	o, ok := other.(CustomIdent)
	return ok && c == o
}

func (u URI) Equal(other Value) bool {
	o, ok := other.(URI)
	return ok && u == o
}

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	return ok && l.Sep == o.Sep && equalSlices(l.Items, o.Items)
}

func (f Function) Equal(other Value) bool {
	o, ok := other.(Function)
	return ok && f.Name == o.Name && equalSlices(f.Args, o.Args)
}

func (p Pair) Equal(other Value) bool {
	o, ok := other.(Pair)
	return ok && p.Policy == o.Policy && Equal(p.First, o.First) && Equal(p.Second, o.Second)
}

func (q Quad) Equal(other Value) bool {
	o, ok := other.(Quad)
	return ok && Equal(q.Top, o.Top) && Equal(q.Right, o.Right) &&
		Equal(q.Bottom, o.Bottom) && Equal(q.Left, o.Left)
}

func (c CSSWide) Equal(other Value) bool {
	o, ok := other.(CSSWide)
	return ok && c == o
}

func (c CustomPropertyReference) Equal(other Value) bool {
	o, ok := other.(CustomPropertyReference)
	return ok && c == o
}

func (c CustomPropertyDeclaration) Equal(other Value) bool {
	o, ok := other.(CustomPropertyDeclaration)
	return ok && c == o
}

// Equal compares two values, which may be nil.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// join serializes the non nil values
func join(items []Value, sep string) string {
	chunks := make([]string, 0, len(items))
	for _, item := range items {
		if item != nil {
			chunks = append(chunks, item.CSSText())
		}
	}
	return strings.Join(chunks, sep)
}

// CSSText returns the text of [v], or an empty string if [v] is nil.
func CSSText(v Value) string {
	if v == nil {
		return ""
	}
	return v.CSSText()
}
