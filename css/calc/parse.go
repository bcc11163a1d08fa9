package calc

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/utils"
)

// IsCalcFunction returns true for the calc() and -webkit-calc() functions.
func IsCalcFunction(token pa.Token) bool {
	fn, ok := token.(pa.FunctionBlock)
	if !ok {
		return false
	}
	name := utils.AsciiLower(fn.Name)
	return name == "calc" || name == "-webkit-calc"
}

// Parse builds the expression tree of a calc() function.
// If [nonNegative] is true, the value of the expression will be clamped to
// zero when evaluated.
// [maxDepth] bounds the nesting of parentheses and inner calc() functions;
// zero means [DefaultMaxDepth].
// Parse fails for empty arguments, invalid syntax or incompatible units:
// callers still have to check the category of the result.
func Parse(fn pa.FunctionBlock, nonNegative bool, maxDepth int) (Expression, bool) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := calcParser{tokens: fn.Arguments, maxDepth: maxDepth}
	root, ok := p.parseExpression(0)
	if !ok {
		tracer().Debugf("invalid calc expression %s", pa.Serialize([]pa.Token{fn}))
		return Expression{}, false
	}
	return Expression{Root: root, NonNegative: nonNegative}, true
}

type calcParser struct {
	tokens   []pa.Token
	pos      int
	maxDepth int
}

// skipWhitespace returns true if at least one whitespace was skipped
func (p *calcParser) skipWhitespace() bool {
	skipped := false
	for p.pos < len(p.tokens) {
		switch p.tokens[p.pos].Kind() {
		case pa.KWhitespace:
			skipped = true
		case pa.KComment:
		default:
			return skipped
		}
		p.pos++
	}
	return skipped
}

func (p *calcParser) current() pa.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return nil
}

func (p *calcParser) currentOperator() byte {
	if lit, ok := p.current().(pa.Literal); ok && len(lit.Value) == 1 {
		switch op := lit.Value[0]; op {
		case '+', '-', '*', '/':
			return op
		}
	}
	return 0
}

// parseExpression parses the whole token list, and fails if some tokens are left
func (p *calcParser) parseExpression(depth int) (Node, bool) {
	if depth > p.maxDepth {
		return nil, false
	}
	p.skipWhitespace()
	if p.current() == nil { // empty
		return nil, false
	}
	node, ok := p.parseSum(depth)
	if !ok {
		return nil, false
	}
	p.skipWhitespace()
	return node, p.current() == nil
}

func (p *calcParser) parseSum(depth int) (Node, bool) {
	left, ok := p.parseProduct(depth)
	if !ok {
		return nil, false
	}
	for {
		save := p.pos
		hadSpace := p.skipWhitespace()
		op := p.currentOperator()
		if op != '+' && op != '-' {
			p.pos = save
			return left, true
		}
		p.pos++
		// + and - must be surrounded by whitespace
		if !hadSpace || !p.skipWhitespace() {
			return nil, false
		}
		right, ok := p.parseProduct(depth)
		if !ok {
			return nil, false
		}
		left, ok = newOperation(op, left, right)
		if !ok {
			return nil, false
		}
	}
}

func (p *calcParser) parseProduct(depth int) (Node, bool) {
	left, ok := p.parseValue(depth)
	if !ok {
		return nil, false
	}
	for {
		save := p.pos
		p.skipWhitespace()
		op := p.currentOperator()
		if op != '*' && op != '/' {
			p.pos = save
			return left, true
		}
		p.pos++
		p.skipWhitespace()
		right, ok := p.parseValue(depth)
		if !ok {
			return nil, false
		}
		left, ok = newOperation(op, left, right)
		if !ok {
			return nil, false
		}
	}
}

func (p *calcParser) parseValue(depth int) (Node, bool) {
	token := p.current()
	p.pos++
	switch token := token.(type) {
	case pa.Number:
		return Leaf{Value: token.ValueF, Unit: pr.Scalar, isInt: token.IsInt()}, true
	case pa.Percentage:
		return Leaf{Value: token.ValueF, Unit: pr.Perc}, true
	case pa.Dimension:
		unit := pr.UnitFromString(token.Unit)
		if unit == 0 || unit == pr.Fr || unit == pr.QuirkyEm {
			return nil, false
		}
		return Leaf{Value: token.ValueF, Unit: unit}, true
	case pa.ParenthesesBlock:
		sub := calcParser{tokens: token.Arguments, maxDepth: p.maxDepth}
		return sub.parseExpression(depth + 1)
	case pa.FunctionBlock:
		if !IsCalcFunction(token) {
			return nil, false
		}
		sub := calcParser{tokens: token.Arguments, maxDepth: p.maxDepth}
		return sub.parseExpression(depth + 1)
	default:
		return nil, false
	}
}

// newOperation checks the categories of the operands, and folds
// operations between compatible constants.
func newOperation(op byte, left, right Node) (Node, bool) {
	var category Category
	switch op {
	case '+', '-':
		category = addSubtractCategory(left.Category(), right.Category())
	case '*':
		if left.Category() == Number {
			category = right.Category()
		} else if right.Category() == Number {
			category = left.Category()
		}
	case '/':
		if right.Category() != Number {
			return nil, false
		}
		if leaf, ok := right.(Leaf); ok && leaf.Value == 0 {
			return nil, false
		}
		category = left.Category()
	}
	if category == Other {
		return nil, false
	}

	l, okL := left.(Leaf)
	r, okR := right.(Leaf)
	if okL && okR {
		switch {
		case op == '+' && l.Unit == r.Unit:
			return Leaf{Value: l.Value + r.Value, Unit: l.Unit, isInt: l.isInt && r.isInt}, true
		case op == '-' && l.Unit == r.Unit:
			return Leaf{Value: l.Value - r.Value, Unit: l.Unit, isInt: l.isInt && r.isInt}, true
		case op == '*' && l.Unit == pr.Scalar:
			return Leaf{Value: l.Value * r.Value, Unit: r.Unit, isInt: l.isInt && r.isInt}, true
		case op == '*' && r.Unit == pr.Scalar:
			return Leaf{Value: l.Value * r.Value, Unit: l.Unit, isInt: l.isInt && r.isInt}, true
		case op == '/':
			return Leaf{Value: l.Value / r.Value, Unit: l.Unit}, true
		}
	}
	return Operation{Left: left, Right: right, Op: op, category: category}, true
}
