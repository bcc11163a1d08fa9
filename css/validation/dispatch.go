package validation

import (
	"strings"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
)

// ParseValue validates the value of the declaration [id]: [tokens],
// and appends the resulting longhand records to [out].
//
// Aliases are resolved, and shorthands are expanded into their longhands.
// The declaration is atomic: when an error is returned, [out] is unchanged.
// Errors match [ErrInvalidValue] and are of type [ParseError].
//
// Custom properties are handled by [ParseCustomProperty].
func ParseValue(id pr.KnownProp, important bool, tokens []Token, ctx *Context, out *Collector) error {
	if id.IsAlias() {
		ctx.count(UsePropertyAlias)
		id = id.Resolve()
	}
	p := newParser(ctx, out, id, important)
	if out.Transaction(p.parseDeclaration(tokens)) {
		return nil
	}
	err := ParseError{Property: id, Kind: p.kind}
	tracer().Debugf("%s (%s)", err, strings.TrimSpace(pa.Serialize(tokens)))
	return err
}

// ParseDeclarationValue is a convenience wrapper around [ParseValue],
// returning the records of one declaration.
func ParseDeclarationValue(id pr.KnownProp, important bool, tokens []Token, ctx *Context) ([]Record, error) {
	var out Collector
	if err := ParseValue(id, important, tokens, ctx, &out); err != nil {
		return nil, err
	}
	return out.Records(), nil
}

// parseDeclaration returns the closure run in the transaction
func (p *parser) parseDeclaration(tokens []Token) func() bool {
	return func() bool {
		id := p.property
		if id == pr.PVariable || !id.IsValid() {
			return p.fail(UnknownProperty)
		}
		if pa.Depth(tokens, p.maxNesting) > p.maxNesting {
			return p.fail(StructuralViolation)
		}
		vl := pa.NewValueList(tokens)
		if vl.AtEnd() {
			return false
		}

		if table := descriptorsFor(p.ctx.Rule); table != nil {
			desc, ok := table[id]
			if !ok {
				return p.fail(UnknownProperty)
			}
			// descriptors accept neither the CSS-wide keywords nor var()
			return desc(p, vl)
		}
		if id.IsDescriptor() {
			return p.fail(UnknownProperty)
		}
		if !id.IsEnabled(p.ctx.Features) {
			return p.fail(DisabledFeature)
		}

		if kw := values.NewCSSWideKeyword(getSingleKeyword(vl.Tokens())); kw != 0 {
			p.addToAll(values.CSSWide{Keyword: kw})
			return true
		}
		for _, token := range vl.Tokens() {
			if pa.HasVar(token) {
				p.addToAll(values.CustomPropertyReference{Text: strings.TrimSpace(pa.Serialize(tokens))})
				return true
			}
		}

		if id.IsShorthand() {
			p.shorthand = id
			return expanders[id](p, vl)
		}
		v, ok := p.parseWhole(vl, validatorFor(id))
		if !ok {
			return false
		}
		p.addProperty(id, v, false)
		return true
	}
}

// addToAll sets the same value to the property or to
// every longhand of the shorthand being parsed.
func (p *parser) addToAll(v values.Value) {
	if !p.property.IsShorthand() {
		p.addProperty(p.property, v, false)
		return
	}
	p.shorthand = p.property
	for _, longhand := range p.property.Longhands() {
		p.addProperty(longhand, v, false)
	}
}

// ParseCustomProperty validates the declaration of the custom
// property [name] (starting with "--"), appending one record
// with a [values.CustomPropertyDeclaration] value.
// Any non empty value is valid.
func ParseCustomProperty(name string, important bool, tokens []Token, ctx *Context, out *Collector) error {
	if ctx.Rule != StyleRule || !strings.HasPrefix(name, "--") {
		return ParseError{Property: pr.PVariable, Kind: UnknownProperty}
	}
	vl := pa.NewValueList(tokens)
	if vl.AtEnd() {
		return ParseError{Property: pr.PVariable, Kind: GrammarMismatch}
	}
	decl := values.CustomPropertyDeclaration{Name: name}
	if kw := values.NewCSSWideKeyword(getSingleKeyword(vl.Tokens())); kw != 0 {
		decl.Keyword = kw
	} else {
		decl.Text = strings.TrimSpace(pa.Serialize(tokens))
	}
	out.add(Record{Property: pr.PVariable, Value: decl, Important: important})
	return nil
}
