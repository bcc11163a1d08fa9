package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

// parseURL accepts an url token, or an url() function with a string argument,
// and returns the URL completed against the base URL of the context.
func (p *parser) parseURL(token Token) (values.URI, bool) {
	var raw string
	switch token := token.(type) {
	case pa.URL:
		if token.IsError() {
			return values.URI{}, false
		}
		raw = token.Value
	case pa.FunctionBlock:
		if !utils.AsciiEqualFold(token.Name, "url") {
			return values.URI{}, false
		}
		args := pa.RemoveWhitespace(token.Arguments)
		if len(args) != 1 {
			return values.URI{}, false
		}
		s, ok := args[0].(pa.String)
		if !ok {
			return values.URI{}, false
		}
		raw = s.Value
	default:
		return values.URI{}, false
	}
	return values.URI{URL: utils.CompleteURL(p.ctx.BaseURL, raw), Referrer: p.ctx.ReferrerPolicy}, true
}

func (p *parser) consumeURL(vl *pa.ValueList) (values.Value, bool) {
	u, ok := p.parseURL(vl.Current())
	if !ok {
		return nil, false
	}
	vl.Next()
	return u, true
}

// consumeImage accepts an url, a gradient or an image set.
func (p *parser) consumeImage(vl *pa.ValueList) (values.Value, bool) {
	token := vl.Current()
	if u, ok := p.parseURL(token); ok {
		vl.Next()
		return u, true
	}
	name, fn := functionName(token)
	var (
		img values.Value
		ok  bool
	)
	switch name {
	case "linear-gradient", "repeating-linear-gradient":
		img, ok = p.linearGradient(fn, values.StandardGradient, name != "linear-gradient")
	case "-webkit-linear-gradient", "-webkit-repeating-linear-gradient":
		p.ctx.count(UsePrefixedGradient)
		img, ok = p.linearGradient(fn, values.PrefixedGradient, name != "-webkit-linear-gradient")
	case "radial-gradient", "repeating-radial-gradient":
		img, ok = p.radialGradient(fn, values.StandardGradient, name != "radial-gradient")
	case "-webkit-radial-gradient", "-webkit-repeating-radial-gradient":
		p.ctx.count(UsePrefixedGradient)
		img, ok = p.radialGradient(fn, values.PrefixedGradient, name != "-webkit-radial-gradient")
	case "-webkit-gradient":
		p.ctx.count(UseDeprecatedGradient)
		img, ok = p.deprecatedGradient(fn)
	case "-webkit-image-set":
		p.ctx.count(UseImageSet)
		img, ok = p.imageSet(fn)
	default:
		return nil, false
	}
	if !ok {
		return nil, false
	}
	vl.Next()
	return img, true
}

// imageOrNone is the grammar of background-image, list-style-image,
// border-image-source, etc...
func imageOrNone(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	return p.consumeImage(vl)
}

// colorStops parses a comma separated list of color stops, until the end of [args].
// Color hints are only valid for standard gradients.
func (p *parser) colorStops(args *pa.ValueList, kind values.GradientKind) ([]values.ColorStop, bool) {
	var (
		stops      []values.ColorStop
		colorCount int
	)
	previousIsHint := true // a hint can't start the list
	for {
		var stop values.ColorStop
		if color, ok := p.consumeColor(args, acceptInternalText); ok {
			stop.Color = color
			if pos, ok := p.validUnit(args.Current(), fLength|fPercent); ok {
				args.Next()
				stop.Position = pos
			}
			colorCount++
			previousIsHint = false
		} else {
			if kind != values.StandardGradient || previousIsHint {
				return nil, false
			}
			pos, ok := p.consumeUnit(args, fLength|fPercent)
			if !ok {
				return nil, false
			}
			stop.Position = pos
			previousIsHint = true
		}
		stops = append(stops, stop)
		if len(stops) > p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
		if !args.SkipComma() {
			break
		}
	}
	if !args.AtEnd() || previousIsHint || colorCount < 2 {
		return nil, false
	}
	return stops, true
}

func (p *parser) linearGradient(fn pa.FunctionBlock, kind values.GradientKind, repeating bool) (values.Value, bool) {
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	g := values.LinearGradient{Kind: kind, Repeating: repeating}

	expectComma := false
	if angle, ok := p.validUnit(args.Current(), fAngle); ok {
		args.Next()
		g.Angle = angle
		expectComma = true
	} else {
		sides := kind == values.PrefixedGradient
		if kind == values.StandardGradient && consumeIdent(args, "to") {
			sides = true
			expectComma = true
		}
		if sides {
			for i := 0; i < 2; i++ {
				switch kw := getKeyword(args.Current()); kw {
				case "left", "right":
					if g.SideX != "" {
						return nil, false
					}
					g.SideX = values.Keyword(kw)
				case "top", "bottom":
					if g.SideY != "" {
						return nil, false
					}
					g.SideY = values.Keyword(kw)
				default:
					if i == 0 && expectComma { // 'to' must be followed by a side
						return nil, false
					}
					i = 2
					continue
				}
				args.Next()
				expectComma = true
			}
		}
	}
	if expectComma && !args.SkipComma() {
		return nil, false
	}

	g.Stops, ok = p.colorStops(args, kind)
	if !ok {
		return nil, false
	}
	return g, true
}

var (
	radialShapes  = utils.NewSet("circle", "ellipse")
	radialExtents = utils.NewSet("closest-side", "closest-corner", "farthest-side", "farthest-corner")
	// the prefixed syntax also accepts contain and cover
	prefixedRadialExtents = utils.NewSet("closest-side", "closest-corner", "farthest-side",
		"farthest-corner", "contain", "cover")
)

func (p *parser) radialGradient(fn pa.FunctionBlock, kind values.GradientKind, repeating bool) (values.Value, bool) {
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	g := values.RadialGradient{Kind: kind, Repeating: repeating}
	if kind == values.PrefixedGradient {
		ok = p.prefixedRadialPrelude(args, &g)
	} else {
		ok = p.radialPrelude(args, &g)
	}
	if !ok {
		return nil, false
	}
	g.Stops, ok = p.colorStops(args, kind)
	if !ok {
		return nil, false
	}
	return g, true
}

// radialPrelude parses [<shape> || <size>] [at <position>]? ,
func (p *parser) radialPrelude(args *pa.ValueList, g *values.RadialGradient) bool {
	var sizes []values.Value
	hasPrelude := false
	for !args.AtEnd() && !args.IsOperator(",") {
		kw := getKeyword(args.Current())
		switch {
		case kw == "at":
		case radialShapes.Has(kw):
			if g.Shape != "" {
				return false
			}
			g.Shape = values.Keyword(kw)
			args.Next()
		case radialExtents.Has(kw):
			if g.SizeKeyword != "" || len(sizes) != 0 {
				return false
			}
			g.SizeKeyword = values.Keyword(kw)
			args.Next()
		default:
			if g.SizeKeyword != "" || len(sizes) == 2 {
				return false
			}
			v, ok := p.validUnit(args.Current(), fLength|fPercent|fNonNeg)
			if !ok {
				return false
			}
			args.Next()
			sizes = append(sizes, v)
		}
		hasPrelude = true
		if kw == "at" {
			args.Next()
			x, y, ok := p.position(args, 4)
			if !ok {
				return false
			}
			g.CenterX, g.CenterY = x, y
			break
		}
	}

	switch len(sizes) {
	case 1:
		// a circle radius can't be a percentage
		if g.Shape == "ellipse" || isPercentage(sizes[0]) {
			return false
		}
		g.EndX = sizes[0]
	case 2:
		if g.Shape == "circle" {
			return false
		}
		g.EndX, g.EndY = sizes[0], sizes[1]
	}
	if !hasPrelude {
		return true
	}
	return args.SkipComma()
}

// prefixedRadialPrelude parses [<position> ,]? [[<shape> || <size>] | <length-percentage>{2} ,]?
func (p *parser) prefixedRadialPrelude(args *pa.ValueList, g *values.RadialGradient) bool {
	pos := args.Save()
	if x, y, ok := p.position(args, 2); ok && args.SkipComma() {
		g.CenterX, g.CenterY = x, y
	} else {
		args.Restore(pos)
	}

	hasShape := false
	for i := 0; i < 2; i++ {
		kw := getKeyword(args.Current())
		switch {
		case radialShapes.Has(kw) && g.Shape == "":
			g.Shape = values.Keyword(kw)
		case prefixedRadialExtents.Has(kw) && g.SizeKeyword == "":
			g.SizeKeyword = values.Keyword(kw)
		default:
			i = 2
			continue
		}
		args.Next()
		hasShape = true
	}
	if !hasShape {
		pos := args.Save()
		w, okW := p.consumeUnit(args, fLength|fPercent|fNonNeg)
		h, okH := p.consumeUnit(args, fLength|fPercent|fNonNeg)
		if okW && okH {
			g.EndX, g.EndY = w, h
			hasShape = true
		} else {
			args.Restore(pos)
		}
	}
	if hasShape {
		return args.SkipComma()
	}
	return true
}

func isPercentage(v values.Value) bool {
	n, ok := v.(values.Numeric)
	return ok && n.Unit == pr.Perc
}

// deprecatedGradient parses the legacy -webkit-gradient() syntax:
// -webkit-gradient(linear, <point>, <point> [, <stop>]*)
// -webkit-gradient(radial, <point>, <radius>, <point>, <radius> [, <stop>]*)
func (p *parser) deprecatedGradient(fn pa.FunctionBlock) (values.Value, bool) {
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	var g values.DeprecatedGradient
	switch getKeyword(args.Current()) {
	case "linear":
	case "radial":
		g.Radial = true
	default:
		return nil, false
	}
	args.Next()

	point := func() (x, y values.Value, ok bool) {
		if !args.SkipComma() {
			return nil, nil, false
		}
		if x, ok = p.deprecatedPointComponent(args, horizontalKeywords); !ok {
			return nil, nil, false
		}
		y, ok = p.deprecatedPointComponent(args, verticalKeywords)
		return x, y, ok
	}
	radius := func() (values.Value, bool) {
		if !args.SkipComma() {
			return nil, false
		}
		return p.consumeUnit(args, fNumber|fNonNeg)
	}

	if g.FirstX, g.FirstY, ok = point(); !ok {
		return nil, false
	}
	if g.Radial {
		if g.FirstRadius, ok = radius(); !ok {
			return nil, false
		}
	}
	if g.SecondX, g.SecondY, ok = point(); !ok {
		return nil, false
	}
	if g.Radial {
		if g.SecondRadius, ok = radius(); !ok {
			return nil, false
		}
	}

	for args.SkipComma() {
		stop, ok := p.deprecatedStop(args.Current())
		if !ok {
			return nil, false
		}
		args.Next()
		g.Stops = append(g.Stops, stop)
		if len(g.Stops) > p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
	}
	if !args.AtEnd() {
		return nil, false
	}
	return g, true
}

func (p *parser) deprecatedPointComponent(args *pa.ValueList, keywords utils.Set) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(args, keywords); ok {
		return kw, true
	}
	return p.consumeUnit(args, fNumber|fPercent)
}

// deprecatedStop parses from(<color>), to(<color>) or color-stop(<offset>, <color>)
func (p *parser) deprecatedStop(token Token) (values.DeprecatedStop, bool) {
	name, fn := functionName(token)
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return values.DeprecatedStop{}, false
	}
	var stop values.DeprecatedStop
	switch name {
	case "from":
		stop.Offset = values.Numeric{Value: 0, Unit: pr.Scalar}
	case "to":
		stop.Offset = values.Numeric{Value: 1, Unit: pr.Scalar}
	case "color-stop":
		switch offset := args.Current().(type) {
		case pa.Number:
			stop.Offset = values.Numeric{Value: offset.ValueF, Unit: pr.Scalar}
		case pa.Percentage:
			stop.Offset = values.Numeric{Value: offset.ValueF, Unit: pr.Perc}
		default:
			return values.DeprecatedStop{}, false
		}
		args.Next()
		if !args.SkipComma() {
			return values.DeprecatedStop{}, false
		}
	default:
		return values.DeprecatedStop{}, false
	}
	stop.Color, ok = p.consumeColor(args, rejectCurrentColor|acceptInternalText)
	if !ok || !args.AtEnd() {
		return values.DeprecatedStop{}, false
	}
	return stop, true
}

// imageSet parses -webkit-image-set(<url> <resolution>x [, <url> <resolution>x]*)
func (p *parser) imageSet(fn pa.FunctionBlock) (values.Value, bool) {
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	var set values.ImageSet
	for {
		u, ok := p.consumeURL(args)
		if !ok {
			return nil, false
		}
		scale, isDim := args.Current().(pa.Dimension)
		if !isDim || !utils.AsciiEqualFold(scale.Unit, "x") || scale.ValueF <= 0 {
			return nil, false
		}
		args.Next()
		set.Items = append(set.Items, values.ImageSetItem{Image: u, Scale: scale.ValueF})
		if len(set.Items) > p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
		if !args.SkipComma() {
			break
		}
	}
	if !args.AtEnd() {
		return nil, false
	}
	return set, true
}
