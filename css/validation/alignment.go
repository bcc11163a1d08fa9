package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	"github.com/benoitkugler/cssdecl/css/properties/keywords"
	"github.com/benoitkugler/cssdecl/css/values"
)

func alignmentKeyword(token Token) keywords.Keyword {
	return keywords.NewKeyword(getKeyword(token))
}

// contentAlignment parses align-content and justify-content:
// auto | normal | <baseline-position> | <content-distribution> || [<overflow-position>? && <content-position>]
func contentAlignment(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := alignmentKeyword(vl.Current()); {
	case kw == keywords.Auto || kw == keywords.Normal || kw.IsBaselinePosition():
		vl.Next()
		return values.ContentDistribution{Position: kw}, true
	}
	var out values.ContentDistribution
	for !vl.AtEnd() {
		kw := alignmentKeyword(vl.Current())
		switch {
		case kw.IsDistribution() && out.Distribution == 0:
			out.Distribution = kw
		case kw.IsContentPosition() && out.Position == 0:
			out.Position = kw
		case kw.IsOverflowPosition() && out.Overflow == 0:
			out.Overflow = kw
		default:
			return checkDistribution(out)
		}
		vl.Next()
	}
	return checkDistribution(out)
}

func checkDistribution(c values.ContentDistribution) (values.Value, bool) {
	if c.Distribution == 0 && c.Position == 0 {
		return nil, false
	}
	// an overflow position requires a position
	if c.Overflow != 0 && c.Position == 0 {
		return nil, false
	}
	return c, true
}

// selfAlignment parses align-items, align-self and justify-self:
// auto | normal | stretch | <baseline-position> | [<overflow-position>? && <self-position>]
func selfAlignment(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := alignmentKeyword(vl.Current()); {
	case kw == keywords.Auto || kw == keywords.Normal || kw == keywords.Stretch || kw.IsBaselinePosition():
		vl.Next()
		return values.ContentDistribution{Position: kw}, true
	}
	return p.selfPosition(vl, false)
}

// selfPosition parses <overflow-position>? && <self-position>, and
// if [legacy] is true, legacy && [left | right | center]
func (p *parser) selfPosition(vl *pa.ValueList, legacy bool) (values.Value, bool) {
	var out values.ContentDistribution
	for i := 0; i < 2 && !vl.AtEnd(); i++ {
		kw := alignmentKeyword(vl.Current())
		switch {
		case kw.IsSelfPosition() && out.Position == 0:
			out.Position = kw
		case kw.IsOverflowPosition() && out.Overflow == 0 && out.Distribution == 0:
			out.Overflow = kw
		case legacy && kw == keywords.Legacy && out.Distribution == 0 && out.Overflow == 0:
			out.Distribution = kw
		default:
			i = 2
			continue
		}
		vl.Next()
	}
	if out.Position == 0 {
		return nil, false
	}
	if out.Distribution == keywords.Legacy {
		switch out.Position {
		case keywords.Left, keywords.Right, keywords.Center:
		default:
			return nil, false
		}
	}
	return out, true
}

// justifyItems also accepts the legacy keyword
func justifyItems(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := alignmentKeyword(vl.Current()); {
	case kw == keywords.Auto || kw == keywords.Normal || kw == keywords.Stretch || kw.IsBaselinePosition():
		vl.Next()
		return values.ContentDistribution{Position: kw}, true
	}
	return p.selfPosition(vl, true)
}
