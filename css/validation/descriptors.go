package validation

import (
	"unicode/utf8"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

// Validate descriptors, used for @font-face and @viewport rules.
// See https://www.w3.org/TR/css-fonts-3/#font-resources
// and https://drafts.csswg.org/css-device-adapt/#viewport-desc.

// descriptor parses the whole value of a descriptor and adds its records.
type descriptor func(p *parser, vl *pa.ValueList) bool

var (
	fontFaceDescriptors = map[pr.KnownProp]descriptor{
		pr.PFontFamily:          single(fontFaceFamily),
		pr.PSrc:                 single(commaSeparated(fontFaceSource)),
		pr.PUnicodeRange:        single(commaSeparated(unicodeRange)),
		pr.PFontStyle:           single(fontStyle),
		pr.PFontWeight:          single(commaSeparated(fontFaceWeight)),
		pr.PFontStretch:         single(fontStretch),
		pr.PFontVariant:         single(commaSeparated(fontVariant)),
		pr.PFontFeatureSettings: single(fontFeatureSettings),
	}

	viewportDescriptors = map[pr.KnownProp]descriptor{
		pr.PMinWidth:    single(viewportLength),
		pr.PMaxWidth:    single(viewportLength),
		pr.PMinHeight:   single(viewportLength),
		pr.PMaxHeight:   single(viewportLength),
		pr.PWidth:       viewportRange(pr.PMinWidth, pr.PMaxWidth),
		pr.PHeight:      viewportRange(pr.PMinHeight, pr.PMaxHeight),
		pr.PZoom:        single(viewportZoom),
		pr.PMinZoom:     single(viewportZoom),
		pr.PMaxZoom:     single(viewportZoom),
		pr.PUserZoom:    single(keywordValidator("zoom", "fixed")),
		pr.POrientation: single(keywordValidator("auto", "portrait", "landscape")),
	}
)

// descriptorsFor returns the table of the descriptors allowed in [rule],
// or nil for style rules.
func descriptorsFor(rule RuleKind) map[pr.KnownProp]descriptor {
	switch rule {
	case FontFaceRule:
		return fontFaceDescriptors
	case ViewportRule:
		return viewportDescriptors
	default:
		return nil
	}
}

// single adapts a validator to a descriptor setting one value
func single(fn validator) descriptor {
	return func(p *parser, vl *pa.ValueList) bool {
		v, ok := p.parseWhole(vl, fn)
		if !ok {
			return false
		}
		p.addProperty(p.property, v, false)
		return true
	}
}

// fontFaceFamily accepts one family name, but no generic family.
func fontFaceFamily(p *parser, vl *pa.ValueList) (values.Value, bool) {
	v, ok := p.fontFamilyName(vl)
	if !ok {
		return nil, false
	}
	if _, isGeneric := v.(values.Keyword); isGeneric {
		return nil, false
	}
	return v, true
}

// fontFaceSource accepts url() [format(<string>#)]? | local(<family-name>)
func fontFaceSource(p *parser, vl *pa.ValueList) (values.Value, bool) {
	token := vl.Current()
	if name, fn := functionName(token); name == "local" {
		args := pa.NewValueList(fn.Arguments)
		family, ok := p.fontFamilyName(args)
		if !ok || !args.AtEnd() {
			return nil, false
		}
		vl.Next()
		// generic names are valid local font names
		var local string
		switch family := family.(type) {
		case values.FontFamily:
			local = string(family)
		case values.Keyword:
			local = string(family)
		}
		return values.FontFaceSrc{Local: local}, true
	}

	u, ok := p.parseURL(token)
	if !ok {
		return nil, false
	}
	vl.Next()
	out := values.FontFaceSrc{URI: u.URL}
	if name, fn := functionName(vl.Current()); name == "format" {
		// only the first hint is stored
		args := pa.NewValueList(fn.Arguments)
		for {
			s, ok := args.Current().(pa.String)
			if !ok {
				return nil, false
			}
			if out.Format == "" {
				out.Format = s.Value
			}
			args.Next()
			if args.AtEnd() {
				break
			}
			if !args.SkipComma() {
				return nil, false
			}
		}
		vl.Next()
	}
	return out, true
}

// unicodeRange accepts one unicode-range token, with a valid range
// of code points.
func unicodeRange(p *parser, vl *pa.ValueList) (values.Value, bool) {
	token, ok := vl.Current().(pa.UnicodeRange)
	if !ok {
		return nil, false
	}
	if token.Start > token.End || token.End > utf8.MaxRune {
		return nil, p.fail(RangeViolation)
	}
	vl.Next()
	return values.UnicodeRange{From: rune(token.Start), To: rune(token.End)}, true
}

// fontFaceWeight rejects the relative weights
func fontFaceWeight(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if kw := getKeyword(vl.Current()); kw == "bolder" || kw == "lighter" {
		return nil, false
	}
	return fontWeight(p, vl)
}

var viewportLengthKeywords = utils.NewSet("auto", "device-width", "device-height")

func viewportLength(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(vl, viewportLengthKeywords); ok {
		return kw, true
	}
	return p.consumeUnit(vl, fLength|fPercent|fNonNeg)
}

func viewportZoom(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	return p.consumeUnit(vl, fNumber|fPercent|fNonNeg)
}

// viewportRange expands the width and height descriptors:
// <viewport-length>{1,2}, the second value defaulting to the first.
func viewportRange(min, max pr.KnownProp) descriptor {
	return func(p *parser, vl *pa.ValueList) bool {
		first, ok := viewportLength(p, vl)
		if !ok {
			return false
		}
		second := first
		if !vl.AtEnd() {
			if second, ok = viewportLength(p, vl); !ok {
				return false
			}
		}
		if !vl.AtEnd() {
			return false
		}
		p.addProperty(min, first, false)
		p.addProperty(max, second, false)
		return true
	}
}
