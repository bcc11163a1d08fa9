package validation

import (
	"fmt"
	"strconv"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

var (
	// color keywords resolved at computed time
	systemColors = utils.NewSet(
		"currentcolor",
		"activeborder", "activecaption", "appworkspace", "background", "buttonface",
		"buttonhighlight", "buttonshadow", "buttontext", "captiontext", "graytext",
		"highlight", "highlighttext", "inactiveborder", "inactivecaption",
		"inactivecaptiontext", "infobackground", "infotext", "menu", "menutext",
		"scrollbar", "threeddarkshadow", "threedface", "threedhighlight",
		"threedlightshadow", "threedshadow", "window", "windowframe", "windowtext",
		"-webkit-link", "-webkit-activelink", "-webkit-focus-ring-color",
	)

	// only valid in the user agent style sheet
	internalColors = utils.NewSet(
		"-internal-active-list-box-selection",
		"-internal-active-list-box-selection-text",
		"-internal-inactive-list-box-selection",
		"-internal-inactive-list-box-selection-text",
		"-internal-quirk-inherit",
	)
)

// the text color keyword, accepted by background-color and the gradient stops
const internalText = "-internal-text"

// colorOptions are the policies layered on top of [parser.parseColor].
type colorOptions uint8

const (
	// accept the hexadecimal colors without '#'
	acceptQuirky colorOptions = 1 << iota
	// reject currentcolor
	rejectCurrentColor
	// accept -internal-text
	acceptInternalText
)

// acceptQuirkyColors returns the quirky option for the color properties
// accepting hexadecimal colors without '#' in quirks mode.
// Colors inside shorthands never use it.
func (p *parser) acceptQuirkyColors() colorOptions {
	if p.ctx.Mode != QuirksMode || p.shorthand != 0 {
		return 0
	}
	switch p.property {
	case pr.PColor, pr.PBackgroundColor,
		pr.PBorderTopColor, pr.PBorderRightColor, pr.PBorderBottomColor, pr.PBorderLeftColor:
		return acceptQuirky
	}
	return 0
}

// consumeColor parses the current token as a color, and advances on success.
func (p *parser) consumeColor(vl *pa.ValueList, options colorOptions) (values.Value, bool) {
	token := vl.Current()
	if token == nil {
		return nil, false
	}
	c, ok := p.parseColor(token, options)
	if ok {
		vl.Next()
	}
	return c, ok
}

// parseColor returns a [values.Color], or a [values.Keyword] for the
// colors depending on the cascade or the platform.
func (p *parser) parseColor(token Token, options colorOptions) (values.Value, bool) {
	switch token := token.(type) {
	case pa.Ident:
		kw := utils.AsciiLower(token.Value)
		if c, ok := namedColors[kw]; ok {
			return p.pool.Color(c), true
		}
		switch {
		case kw == "currentcolor" && options&rejectCurrentColor != 0:
			return nil, false
		case systemColors.Has(kw):
			return p.keyword(kw), true
		case internalColors.Has(kw):
			if p.ctx.Mode != UASheetMode {
				return nil, p.fail(DisabledFeature)
			}
			p.ctx.count(UseInternalColor)
			return p.keyword(kw), true
		case kw == internalText:
			if options&acceptInternalText == 0 && p.ctx.Mode != QuirksMode && p.ctx.Mode != UASheetMode {
				return nil, false
			}
			return p.keyword(kw), true
		}
		if options&acceptQuirky != 0 {
			return p.quirkyColor(token.Value)
		}
	case pa.Hash:
		c, ok := parseHex(token.Value, false)
		if !ok {
			return nil, false
		}
		return p.pool.Color(c), true
	case pa.Number:
		if options&acceptQuirky != 0 && token.IsInt() && token.ValueF >= 0 && token.ValueF < 1000000 {
			return p.quirkyColor(fmt.Sprintf("%06d", int(token.ValueF+.5)))
		}
	case pa.Dimension:
		if options&acceptQuirky != 0 && token.IsInt() && token.ValueF >= 0 {
			return p.quirkyColor(token.Value + token.Unit)
		}
	case pa.FunctionBlock:
		c, ok := p.colorFunction(token)
		if !ok {
			return nil, false
		}
		return p.pool.Color(c), true
	}
	return nil, false
}

func (p *parser) quirkyColor(hex string) (values.Value, bool) {
	c, ok := parseHex(hex, true)
	if !ok {
		return nil, false
	}
	p.ctx.count(UseQuirkyColor)
	return p.pool.Color(c), true
}

// parseHex parses an hexadecimal color of 3, 4, 6 or 8 digits.
// Quirky colors only support 3 or 6 digits.
func parseHex(s string, quirky bool) (values.Color, bool) {
	switch len(s) {
	case 4, 8:
		if quirky {
			return values.Color{}, false
		}
	case 3, 6:
	default:
		return values.Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return values.Color{}, false
	}
	switch len(s) {
	case 3:
		return values.Color{R: expandHex(v >> 8), G: expandHex(v >> 4), B: expandHex(v), A: 255}, true
	case 4:
		return values.Color{R: expandHex(v >> 12), G: expandHex(v >> 8), B: expandHex(v >> 4), A: expandHex(v)}, true
	case 6:
		return values.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	default:
		return values.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
	}
}

// expandHex duplicates the last digit of v
func expandHex(v uint64) uint8 {
	d := uint8(v & 0xF)
	return d<<4 | d
}

// colorFunction parses the rgb(), rgba(), hsl() and hsla() functions.
func (p *parser) colorFunction(fn pa.FunctionBlock) (values.Color, bool) {
	name := utils.AsciiLower(fn.Name)
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return values.Color{}, false
	}
	var (
		c        values.Color
		hasAlpha bool
	)
	switch name {
	case "rgb", "rgba":
		hasAlpha = name == "rgba"
		ok = p.rgbChannels(args, &c)
	case "hsl", "hsla":
		hasAlpha = name == "hsla"
		ok = p.hslChannels(args, &c)
	default:
		return values.Color{}, false
	}
	if !ok {
		return values.Color{}, false
	}
	c.A = 255
	if hasAlpha {
		if !args.SkipComma() {
			return values.Color{}, false
		}
		alpha, ok := p.channelValue(args, fNumber)
		if !ok {
			return values.Color{}, false
		}
		c.A = alphaChannel(alpha)
	}
	return c, args.AtEnd()
}

// alphaChannel maps [0, 1] to [0, 255], with the same
// number of values mapped to each channel value.
func alphaChannel(alpha utils.Fl) uint8 {
	return uint8(utils.Clamp(alpha, 0, 1) * 255.99999999999997)
}

// channelValue consumes a numeric value, returning its value
func (p *parser) channelValue(args *pa.ValueList, flags unitFlags) (utils.Fl, bool) {
	v, ok := p.consumeUnit(args, flags)
	if !ok {
		return 0, false
	}
	f, _, ok := numericValue(v)
	return f, ok
}

// rgbChannels parses the red, green and blue channels, which
// must all be integers, or all percentages.
func (p *parser) rgbChannels(args *pa.ValueList, c *values.Color) bool {
	var flags unitFlags
	switch args.Current().(type) {
	case pa.Number:
		flags = fInteger
	case pa.Percentage:
		flags = fPercent
	default:
		return false
	}
	var channels [3]uint8
	for i := range channels {
		if i > 0 && !args.SkipComma() {
			return false
		}
		v, ok := p.channelValue(args, flags)
		if !ok {
			return false
		}
		if flags == fPercent {
			v = v * 256 / 100
		}
		channels[i] = uint8(utils.Clamp(v, 0, 255))
	}
	c.R, c.G, c.B = channels[0], channels[1], channels[2]
	return true
}

// hslChannels parses the hue, saturation and lightness channels,
// and converts them to RGB.
func (p *parser) hslChannels(args *pa.ValueList, c *values.Color) bool {
	hue, ok := p.channelValue(args, fNumber)
	if !ok {
		return false
	}
	var sl [2]utils.Fl
	for i := range sl {
		if !args.SkipComma() {
			return false
		}
		v, ok := p.channelValue(args, fPercent)
		if !ok {
			return false
		}
		sl[i] = utils.Clamp(v, 0, 100) / 100
	}
	r, g, b := hslToRGB(utils.FloatModulo(hue, 360)/360, sl[0], sl[1])
	c.R, c.G, c.B = uint8(r*255), uint8(g*255), uint8(b*255)
	return true
}

// hslToRGB converts a color, with all the components in [0, 1].
func hslToRGB(h, s, l utils.Fl) (r, g, b utils.Fl) {
	if s == 0 {
		return l, l, l
	}
	var q utils.Fl
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToRGB(p, q, h+1./3), hueToRGB(p, q, h), hueToRGB(p, q, h-1./3)
}

func hueToRGB(p, q, t utils.Fl) utils.Fl {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1./6:
		return p + (q-p)*6*t
	case t < 1./2:
		return q
	case t < 2./3:
		return p + (q-p)*(2./3-t)*6
	default:
		return p
	}
}
