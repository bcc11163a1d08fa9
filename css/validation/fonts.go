package validation

import (
	"strings"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
	"github.com/benoitkugler/textlayout/fonts/truetype"
	"github.com/benoitkugler/textlayout/language"
	xlanguage "golang.org/x/text/language"
)

var (
	genericFamilies = utils.NewSet("serif", "sans-serif", "cursive", "fantasy", "monospace",
		"-webkit-body", "-webkit-pictograph")
	fontSizeKeywords = utils.NewSet("xx-small", "x-small", "small", "medium", "large", "x-large",
		"xx-large", "-webkit-xxx-large", "larger", "smaller")
	fontStyleKeywords   = utils.NewSet("normal", "italic", "oblique")
	fontVariantKeywords = utils.NewSet("normal", "small-caps")
	fontWeightKeywords  = utils.NewSet("normal", "bold", "bolder", "lighter")
	fontStretchKeywords = utils.NewSet("normal", "ultra-condensed", "extra-condensed", "condensed",
		"semi-condensed", "semi-expanded", "expanded", "extra-expanded", "ultra-expanded")
	systemFonts = utils.NewSet("caption", "icon", "menu", "message-box", "small-caption",
		"status-bar", "-webkit-mini-control", "-webkit-small-control", "-webkit-control")
)

// fontFamilyName parses one family: a string, a generic family,
// or a sequence of identifiers joined by spaces.
func (p *parser) fontFamilyName(vl *pa.ValueList) (values.Value, bool) {
	switch token := vl.Current().(type) {
	case pa.String:
		vl.Next()
		return values.FontFamily(token.Value), true
	case pa.Ident:
		if kw := utils.AsciiLower(token.Value); genericFamilies.Has(kw) {
			// a generic family must be alone
			if _, isIdent := vl.Peek(1).(pa.Ident); !isIdent {
				vl.Next()
				return p.keyword(kw), true
			}
		}
		var names []string
		for {
			ident, ok := vl.Current().(pa.Ident)
			if !ok {
				break
			}
			if values.NewCSSWideKeyword(utils.AsciiLower(ident.Value)) != 0 || utils.AsciiEqualFold(ident.Value, "default") {
				return nil, false
			}
			names = append(names, ident.Value)
			vl.Next()
		}
		return values.FontFamily(strings.Join(names, " ")), true
	}
	return nil, false
}

func fontFamilyItem(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.fontFamilyName(vl)
}

var fontFamily = commaSeparated(fontFamilyItem)

func fontSize(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(vl, fontSizeKeywords); ok {
		return kw, true
	}
	return p.consumeUnit(vl, fLength|fPercent|fNonNeg|fUnitlessQuirk)
}

// fontWeight accepts the keywords and the multiples of 100, from 100 to 900
func fontWeight(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(vl, fontWeightKeywords); ok {
		return kw, true
	}
	n, ok := vl.Current().(pa.Number)
	if !ok || !n.IsInt() {
		return nil, false
	}
	if w := n.Int(); w < 100 || w > 900 || w%100 != 0 {
		return nil, p.fail(RangeViolation)
	}
	vl.Next()
	return p.number(n.ValueF, pr.Scalar), true
}

// lineHeight accepts normal, a non negative number or length-percentage
func lineHeight(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "normal") {
		return p.keyword("normal"), true
	}
	return p.consumeUnit(vl, fNumber|fLength|fPercent|fNonNeg|fUnitlessQuirk)
}

var ligatureGroups = [...][2]string{
	{"common-ligatures", "no-common-ligatures"},
	{"discretionary-ligatures", "no-discretionary-ligatures"},
	{"historical-ligatures", "no-historical-ligatures"},
	{"contextual", "no-contextual"},
}

// fontVariantLigatures accepts normal, none, or at most one
// keyword of each group
func fontVariantLigatures(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := getKeyword(vl.Current()); kw {
	case "normal", "none":
		vl.Next()
		return p.keyword(kw), true
	}
	var (
		seen  [len(ligatureGroups)]bool
		items []values.Value
	)
outer:
	for !vl.AtEnd() {
		kw := getKeyword(vl.Current())
		for i, group := range ligatureGroups {
			if kw == group[0] || kw == group[1] {
				if seen[i] {
					return nil, false
				}
				seen[i] = true
				items = append(items, p.keyword(kw))
				vl.Next()
				continue outer
			}
		}
		break
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

// fontFeature parses <string> [<integer> | on | off]?
// The tag must be 4 printable ASCII characters.
func fontFeature(p *parser, vl *pa.ValueList) (values.Value, bool) {
	s, ok := vl.Current().(pa.String)
	if !ok || !isFeatureTag(s.Value) {
		return nil, false
	}
	vl.Next()
	feature := values.FontFeature{Tag: truetype.MustNewTag(s.Value), Value: 1}
	switch token := vl.Current().(type) {
	case pa.Number:
		if !token.IsInt() || token.ValueF < 0 {
			return nil, p.fail(RangeViolation)
		}
		feature.Value = token.Int()
		vl.Next()
	case pa.Ident:
		switch utils.AsciiLower(token.Value) {
		case "on":
			vl.Next()
		case "off":
			feature.Value = 0
			vl.Next()
		}
	}
	return feature, true
}

func isFeatureTag(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

var fontFeatureList = commaSeparated(fontFeature)

func fontFeatureSettings(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "normal") {
		return p.keyword("normal"), true
	}
	return fontFeatureList(p, vl)
}

// locale parses auto or a string holding a well formed language tag,
// which is stored in its canonical form.
func locale(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	s, ok := vl.Current().(pa.String)
	if !ok {
		return nil, false
	}
	tag, err := xlanguage.Parse(s.Value)
	if err != nil {
		tracer().Debugf("invalid locale %q: %s", s.Value, err)
		return nil, p.fail(RangeViolation)
	}
	vl.Next()
	return values.String(language.NewLanguage(tag.String())), true
}

func fontStyle(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, fontStyleKeywords)
}

func fontVariant(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, fontVariantKeywords)
}

func fontStretch(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, fontStretchKeywords)
}
