// Package calc parses the arguments of the calc() and -webkit-calc()
// functions into an expression tree, tagged by the category of
// its result.
package calc

import (
	"strings"

	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/logger"
	"github.com/benoitkugler/cssdecl/utils"
	"github.com/npillmayer/schuko/tracing"
)

type Fl = utils.Fl

// DefaultMaxDepth is the maximum nesting of parentheses
// used when no explicit limit is given.
const DefaultMaxDepth = 100

func tracer() tracing.Trace {
	return tracing.Select(logger.KeyValidation)
}

// Category is the type of the result of an expression.
type Category uint8

const (
	Other Category = iota // invalid combination
	Number
	Length
	Percent
	PercentNumber
	PercentLength
	Angle
	Time
	Frequency
	Resolution
)

func (c Category) String() string {
	switch c {
	case Number:
		return "number"
	case Length:
		return "length"
	case Percent:
		return "percent"
	case PercentNumber:
		return "percent-number"
	case PercentLength:
		return "percent-length"
	case Angle:
		return "angle"
	case Time:
		return "time"
	case Frequency:
		return "frequency"
	case Resolution:
		return "resolution"
	default:
		return "other"
	}
}

func unitCategory(u pr.Unit) Category {
	switch u.Category() {
	case pr.CatNumber:
		return Number
	case pr.CatPercent:
		return Percent
	case pr.CatLength:
		return Length
	case pr.CatAngle:
		return Angle
	case pr.CatTime:
		return Time
	case pr.CatFrequency:
		return Frequency
	case pr.CatResolution:
		return Resolution
	default:
		return Other
	}
}

// addSubtractResult[a][b] is the category of a + b
var addSubtractResult = [...][PercentLength + 1]Category{
	//           Other  Number         Length         Percent        PercentNumber  PercentLength
	Number:        {Other, Number, Other, PercentNumber, PercentNumber, Other},
	Length:        {Other, Other, Length, PercentLength, Other, PercentLength},
	Percent:       {Other, PercentNumber, PercentLength, Percent, PercentNumber, PercentLength},
	PercentNumber: {Other, PercentNumber, Other, PercentNumber, PercentNumber, Other},
	PercentLength: {Other, Other, PercentLength, PercentLength, Other, PercentLength},
}

func addSubtractCategory(left, right Category) Category {
	if left > PercentLength || right > PercentLength {
		// angle, time, frequency and resolution only combine with themselves
		if left == right {
			return left
		}
		return Other
	}
	if left == Other {
		return Other
	}
	return addSubtractResult[left][right]
}

// Node is a node of an expression tree, one of
// [Leaf] or [Operation].
type Node interface {
	Category() Category
	// IsInt returns true if the node evaluates to an integer
	IsInt() bool
	cssText(b *strings.Builder)
	equal(other Node) bool
}

// Leaf is a numeric value.
type Leaf struct {
	Value Fl
	Unit  pr.Unit
	isInt bool
}

// Operation is a binary operation between two nodes.
type Operation struct {
	Left, Right Node
	Op          byte // one of + - * /
	category    Category
}

func (l Leaf) Category() Category { return unitCategory(l.Unit) }

func (l Leaf) IsInt() bool { return l.Unit == pr.Scalar && l.isInt }

func (o Operation) Category() Category { return o.category }

func (o Operation) IsInt() bool {
	return o.category == Number && o.Op != '/' && o.Left.IsInt() && o.Right.IsInt()
}

func (l Leaf) cssText(b *strings.Builder) {
	b.WriteString(utils.FormatFloat(l.Value))
	b.WriteString(l.Unit.String())
}

func (o Operation) cssText(b *strings.Builder) {
	b.WriteByte('(')
	o.Left.cssText(b)
	b.WriteByte(' ')
	b.WriteByte(o.Op)
	b.WriteByte(' ')
	o.Right.cssText(b)
	b.WriteByte(')')
}

func (l Leaf) equal(other Node) bool {
	o, ok := other.(Leaf)
	return ok && l.Value == o.Value && l.Unit == o.Unit
}

func (o Operation) equal(other Node) bool {
	oo, ok := other.(Operation)
	return ok && o.Op == oo.Op && o.Left.equal(oo.Left) && o.Right.equal(oo.Right)
}

// Expression is a parsed calc() function.
type Expression struct {
	Root Node
	// NonNegative is true if negative results must be clamped
	// to zero when evaluated.
	NonNegative bool
}

// Category returns the category of the root node.
func (e Expression) Category() Category { return e.Root.Category() }

// IsInt returns true if the expression is an integer number.
func (e Expression) IsInt() bool { return e.Root.IsInt() }

// CSSText returns the calc() serialization of the expression.
func (e Expression) CSSText() string {
	var b strings.Builder
	e.Root.cssText(&b)
	s := b.String()
	if strings.HasPrefix(s, "(") {
		s = s[1 : len(s)-1]
	}
	return "calc(" + s + ")"
}

// Equal compares two expressions.
func (e Expression) Equal(other Expression) bool {
	return e.NonNegative == other.NonNegative && e.Root.equal(other.Root)
}

// ConstantValue returns the value of an expression made of a single leaf.
func (e Expression) ConstantValue() (Leaf, bool) {
	l, ok := e.Root.(Leaf)
	return l, ok
}

// Evaluate computes the value of the expression, using [resolve]
// to convert each leaf to a common unit.
// The result is clamped to zero for non-negative expressions.
func (e Expression) Evaluate(resolve func(value Fl, unit pr.Unit) Fl) Fl {
	v := evaluate(e.Root, resolve)
	if e.NonNegative && v < 0 {
		return 0
	}
	return v
}

func evaluate(node Node, resolve func(value Fl, unit pr.Unit) Fl) Fl {
	switch node := node.(type) {
	case Leaf:
		return resolve(node.Value, node.Unit)
	case Operation:
		left, right := evaluate(node.Left, resolve), evaluate(node.Right, resolve)
		switch node.Op {
		case '+':
			return left + right
		case '-':
			return left - right
		case '*':
			return left * right
		default:
			return left / right
		}
	}
	return 0
}
