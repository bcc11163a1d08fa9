package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

type Token = pa.Token

// validator parses the value of a longhand, starting at the current
// token of [vl]. It consumes the tokens it accepts and leaves the
// cursor on the first unknown token; the caller checks that the whole
// list has been consumed.
// The cursor position is unspecified on failure.
type validator func(p *parser, vl *pa.ValueList) (values.Value, bool)

// parser stores the state of the parse of one declaration.
type parser struct {
	ctx  *Context
	out  *Collector
	pool *values.Pool

	// the property being parsed (canonical)
	property pr.KnownProp
	// the shorthand being expanded, or 0
	shorthand pr.KnownProp
	important bool

	// the most specific reason of failure
	kind ErrorKind

	maxTracks, maxNesting, maxArguments int
}

func newParser(ctx *Context, out *Collector, property pr.KnownProp, important bool) *parser {
	p := &parser{
		ctx:       ctx,
		out:       out,
		pool:      ctx.caches().Values,
		property:  property,
		important: important,
	}
	p.maxTracks, p.maxNesting, p.maxArguments = ctx.limits()
	return p
}

// fail records the reason of a failure, and returns false
func (p *parser) fail(kind ErrorKind) bool {
	if kind > p.kind {
		p.kind = kind
	}
	return false
}

func (p *parser) keyword(s string) values.Value { return p.pool.Keyword(s) }

func (p *parser) number(value utils.Fl, unit pr.Unit) values.Value {
	return p.pool.Numeric(value, unit)
}

// addProperty appends a record for the longhand [prop].
func (p *parser) addProperty(prop pr.KnownProp, value values.Value, implicit bool) {
	r := Record{
		Property:  prop,
		Value:     value,
		Important: p.important,
		Implicit:  implicit,
	}
	if p.shorthand != 0 {
		r.FromShorthand = p.shorthand
		r.ShorthandIndex = shorthandIndex(prop, p.shorthand)
	}
	p.out.add(r)
}

// addImplicit sets [prop] to its initial value, as omitted in a shorthand
func (p *parser) addImplicit(prop pr.KnownProp) {
	p.addProperty(prop, implicitInitial, true)
}

var implicitInitial = values.CSSWide{Keyword: values.Initial, Implicit: true}

func shorthandIndex(longhand, shorthand pr.KnownProp) int {
	shorthands := longhand.Shorthands()
	if len(shorthands) < 2 {
		return 0
	}
	for i, s := range shorthands {
		if s == shorthand {
			return i
		}
	}
	return 0
}

// arguments returns a cursor over the arguments of a function,
// or false if there are too many of them.
func (p *parser) arguments(args []Token) (*pa.ValueList, bool) {
	vl := pa.NewValueList(args)
	if vl.Len() > 2*p.maxArguments { // arguments and commas
		return nil, p.fail(StructuralViolation)
	}
	return vl, true
}

// parseWhole runs [fn] on every token of [vl], failing if
// some tokens are not consumed.
func (p *parser) parseWhole(vl *pa.ValueList, fn validator) (values.Value, bool) {
	v, ok := fn(p, vl)
	if !ok || !vl.AtEnd() {
		return nil, false
	}
	return v, true
}

// getKeyword returns the lower case value of an identifier,
// or an empty string.
func getKeyword(token Token) string {
	if ident, ok := token.(pa.Ident); ok {
		return utils.AsciiLower(ident.Value)
	}
	return ""
}

// getSingleKeyword returns the keyword of a list made of one identifier,
// or an empty string.
func getSingleKeyword(tokens []Token) string {
	if len(tokens) == 1 {
		return getKeyword(tokens[0])
	}
	return ""
}

// functionName returns the lower case name of a function token,
// or an empty string.
func functionName(token Token) (string, pa.FunctionBlock) {
	if fn, ok := token.(pa.FunctionBlock); ok {
		return utils.AsciiLower(fn.Name), fn
	}
	return "", pa.FunctionBlock{}
}

// consumeKeyword consumes the current token if it is one of [keywords],
// returning the pooled keyword.
func (p *parser) consumeKeyword(vl *pa.ValueList, keywords utils.Set) (values.Value, bool) {
	kw := getKeyword(vl.Current())
	if kw == "" || !keywords.Has(kw) {
		return nil, false
	}
	vl.Next()
	return p.keyword(kw), true
}

// consumeIdent consumes the current token if it is the keyword [kw]
func consumeIdent(vl *pa.ValueList, kw string) bool {
	if getKeyword(vl.Current()) == kw {
		vl.Next()
		return true
	}
	return false
}

// keywordValidator returns a validator accepting one keyword of the list.
func keywordValidator(keywords ...string) validator {
	set := utils.NewSet(keywords...)
	return func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		return p.consumeKeyword(vl, set)
	}
}

// unitValidator returns a validator accepting a number, and the
// optional keywords.
func unitValidator(flags unitFlags, keywords ...string) validator {
	set := utils.NewSet(keywords...)
	return func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		if v, ok := p.consumeKeyword(vl, set); ok {
			return v, true
		}
		return p.consumeUnit(vl, flags)
	}
}

// commaSeparated returns a validator accepting a comma separated list
// of items.
func commaSeparated(item validator) validator {
	return func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		var items []values.Value
		for {
			v, ok := item(p, vl)
			if !ok {
				return nil, false
			}
			items = append(items, v)
			if len(items) > p.maxArguments {
				return nil, p.fail(StructuralViolation)
			}
			if !vl.SkipComma() {
				break
			}
		}
		if len(items) == 1 {
			return items[0], true
		}
		return values.List{Items: items, Sep: values.CommaSeparator}, true
	}
}

// spaceSeparated returns a validator accepting one or more
// items separated by spaces.
func spaceSeparated(item validator) validator {
	return func(p *parser, vl *pa.ValueList) (values.Value, bool) {
		var items []values.Value
		for !vl.AtEnd() {
			pos := vl.Save()
			v, ok := item(p, vl)
			if !ok {
				vl.Restore(pos)
				break
			}
			items = append(items, v)
		}
		switch len(items) {
		case 0:
			return nil, false
		case 1:
			return items[0], true
		default:
			return values.List{Items: items}, true
		}
	}
}
