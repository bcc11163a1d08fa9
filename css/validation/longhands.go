package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

var (
	blendModes = []string{"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge",
		"color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue", "saturation",
		"color", "luminosity"}
	compositeOperators = []string{"clear", "copy", "source-over", "source-in", "source-out",
		"source-atop", "destination-over", "destination-in", "destination-out", "destination-atop",
		"xor", "plus-lighter"}
	intrinsicSizes = []string{"min-content", "max-content", "fit-content", "-webkit-min-content",
		"-webkit-max-content", "-webkit-fit-content", "-webkit-fill-available"}

	displayKeywords = utils.NewSet("inline", "block", "list-item", "inline-block", "table",
		"inline-table", "table-row-group", "table-header-group", "table-footer-group", "table-row",
		"table-column-group", "table-column", "table-cell", "table-caption", "-webkit-box",
		"-webkit-inline-box", "flex", "inline-flex", "-webkit-flex", "-webkit-inline-flex",
		"contents", "none")
	gridDisplayKeywords = utils.NewSet("grid", "inline-grid")
)

// validators stores the grammar of each longhand.
var validators = [...]validator{
	pr.PAlignContent:            contentAlignment,
	pr.PAlignItems:              selfAlignment,
	pr.PAlignSelf:               selfAlignment,
	pr.PAlignmentBaseline:       keywordValidator("auto", "baseline", "before-edge", "text-before-edge", "middle", "central", "after-edge", "text-after-edge", "ideographic", "alphabetic", "hanging", "mathematical"),
	pr.PAnimationDelay:          commaSeparated(delay),
	pr.PAnimationDirection:      commaSeparated(animationDirection),
	pr.PAnimationDuration:       commaSeparated(duration),
	pr.PAnimationFillMode:       commaSeparated(animationFillMode),
	pr.PAnimationIterationCount: commaSeparated(iterationCount),
	pr.PAnimationName:           commaSeparated(animationName),
	pr.PAnimationPlayState:      commaSeparated(animationPlayState),
	pr.PAnimationTimingFunction: commaSeparated(timingFunction),
	pr.PBackfaceVisibility:      keywordValidator("visible", "hidden"),
	pr.PBackgroundAttachment:    commaSeparated(fillAttachment),
	pr.PBackgroundBlendMode:     commaSeparated(keywordValidator(blendModes...)),
	pr.PBackgroundClip:          commaSeparated(fillClip),
	pr.PBackgroundColor:         backgroundColor,
	pr.PBackgroundImage:         commaSeparated(imageOrNone),
	pr.PBackgroundOrigin:        commaSeparated(fillOrigin),
	pr.PBackgroundPositionX:     commaSeparated(positionX),
	pr.PBackgroundPositionY:     commaSeparated(positionY),
	pr.PBackgroundRepeatX:       commaSeparated(fillRepeatAxis),
	pr.PBackgroundRepeatY:       commaSeparated(fillRepeatAxis),
	pr.PBackgroundSize:          commaSeparated(fillSize),
	pr.PBaselineShift:           unitValidator(fLength|fPercent, "baseline", "sub", "super"),

	pr.PBorderBottomColor:       borderColor,
	pr.PBorderBottomLeftRadius:  borderRadius,
	pr.PBorderBottomRightRadius: borderRadius,
	pr.PBorderBottomStyle:       borderStyle,
	pr.PBorderBottomWidth:       borderWidth,
	pr.PBorderCollapse:          keywordValidator("separate", "collapse"),
	pr.PBorderImageOutset:       borderImageOutset,
	pr.PBorderImageRepeat:       borderImageRepeat,
	pr.PBorderImageSlice:        borderImageSlice,
	pr.PBorderImageSource:       imageOrNone,
	pr.PBorderImageWidth:        borderImageWidth,
	pr.PBorderLeftColor:         borderColor,
	pr.PBorderLeftStyle:         borderStyle,
	pr.PBorderLeftWidth:         borderWidth,
	pr.PBorderRightColor:        borderColor,
	pr.PBorderRightStyle:        borderStyle,
	pr.PBorderRightWidth:        borderWidth,
	pr.PBorderTopColor:          borderColor,
	pr.PBorderTopLeftRadius:     borderRadius,
	pr.PBorderTopRightRadius:    borderRadius,
	pr.PBorderTopStyle:          borderStyle,
	pr.PBorderTopWidth:          borderWidth,

	pr.PBottom:                    boxOffset,
	pr.PBoxShadow:                 shadowList(true),
	pr.PBoxSizing:                 keywordValidator("content-box", "border-box"),
	pr.PBufferedRendering:         keywordValidator("auto", "dynamic", "static"),
	pr.PCaptionSide:               keywordValidator("top", "bottom", "left", "right"),
	pr.PClear:                     keywordValidator("none", "left", "right", "both"),
	pr.PClip:                      clip,
	pr.PClipPath:                  clipPath,
	pr.PClipRule:                  keywordValidator("nonzero", "evenodd"),
	pr.PColor:                     textColor,
	pr.PColorInterpolation:        keywordValidator("auto", "srgb", "linearrgb"),
	pr.PColorInterpolationFilters: keywordValidator("auto", "srgb", "linearrgb"),
	pr.PColorRendering:            keywordValidator("auto", "optimizespeed", "optimizequality"),
	pr.PColumnCount:               unitValidator(fPositiveInteger, "auto"),
	pr.PColumnFill:                keywordValidator("balance", "auto"),
	pr.PColumnGap:                 unitValidator(fLength|fNonNeg, "normal"),
	pr.PColumnRuleColor:           colorValue,
	pr.PColumnRuleStyle:           borderStyle,
	pr.PColumnRuleWidth:           borderWidth,
	pr.PColumnSpan:                keywordValidator("none", "all"),
	pr.PColumnWidth:               columnWidth,
	pr.PContent:                   content,
	pr.PCounterIncrement:          counters(1),
	pr.PCounterReset:              counters(0),
	pr.PCursor:                    cursor,
	pr.PDirection:                 keywordValidator("ltr", "rtl"),
	pr.PDisplay:                   display,
	pr.PDominantBaseline:          keywordValidator("auto", "use-script", "no-change", "reset-size", "ideographic", "alphabetic", "hanging", "mathematical", "central", "middle", "text-after-edge", "text-before-edge"),
	pr.PEmptyCells:                keywordValidator("show", "hide"),

	pr.PFill:                 svgPaint,
	pr.PFillOpacity:          opacity,
	pr.PFillRule:             keywordValidator("nonzero", "evenodd"),
	pr.PFilter:               filter,
	pr.PFlexBasis:            unitValidator(fLength|fPercent|fNonNeg, "auto"),
	pr.PFlexDirection:        keywordValidator("row", "row-reverse", "column", "column-reverse"),
	pr.PFlexGrow:             flexFactor,
	pr.PFlexShrink:           flexFactor,
	pr.PFlexWrap:             keywordValidator("nowrap", "wrap", "wrap-reverse"),
	pr.PFloat:                keywordValidator("none", "left", "right"),
	pr.PFloodColor:           colorValue,
	pr.PFloodOpacity:         opacity,
	pr.PFontFamily:           fontFamily,
	pr.PFontFeatureSettings:  fontFeatureSettings,
	pr.PFontKerning:          keywordValidator("auto", "normal", "none"),
	pr.PFontSize:             fontSize,
	pr.PFontStretch:          fontStretch,
	pr.PFontStyle:            fontStyle,
	pr.PFontVariant:          fontVariant,
	pr.PFontVariantLigatures: fontVariantLigatures,
	pr.PFontWeight:           fontWeight,

	pr.PGridAutoColumns:     gridAutoTrack,
	pr.PGridAutoFlow:        gridAutoFlow,
	pr.PGridAutoRows:        gridAutoTrack,
	pr.PGridColumnEnd:       gridLine,
	pr.PGridColumnStart:     gridLine,
	pr.PGridRowEnd:          gridLine,
	pr.PGridRowStart:        gridLine,
	pr.PGridTemplateAreas:   gridTemplateAreas,
	pr.PGridTemplateColumns: trackList,
	pr.PGridTemplateRows:    trackList,

	pr.PHeight:            boxSize,
	pr.PImageRendering:    keywordValidator("auto", "optimizespeed", "optimizequality", "-webkit-optimize-contrast", "pixelated"),
	pr.PIsolation:         keywordValidator("auto", "isolate"),
	pr.PJustifyContent:    contentAlignment,
	pr.PJustifyItems:      justifyItems,
	pr.PJustifySelf:       selfAlignment,
	pr.PLeft:              boxOffset,
	pr.PLetterSpacing:     spacing,
	pr.PLightingColor:     colorValue,
	pr.PLineHeight:        lineHeight,
	pr.PListStyleImage:    imageOrNone,
	pr.PListStylePosition: listStylePosition,
	pr.PListStyleType:     listStyleType,
	pr.PMarginBottom:      margin,
	pr.PMarginLeft:        margin,
	pr.PMarginRight:       margin,
	pr.PMarginTop:         margin,
	pr.PMarkerEnd:         urlOrNone,
	pr.PMarkerMid:         urlOrNone,
	pr.PMarkerStart:       urlOrNone,
	pr.PMaskType:          keywordValidator("luminance", "alpha"),
	pr.PMaxHeight:         maxSize,
	pr.PMaxWidth:          maxSize,
	pr.PMinHeight:         boxSize,
	pr.PMinWidth:          boxSize,
	pr.PMixBlendMode:      keywordValidator(blendModes...),
	pr.PMotionOffset:      unitValidator(fLength | fPercent),
	pr.PMotionPath:        motionPath,
	pr.PMotionRotation:    motionRotation,

	pr.PObjectFit:         keywordValidator("fill", "contain", "cover", "none", "scale-down"),
	pr.PObjectPosition:    positionValue(4),
	pr.POpacity:           opacity,
	pr.POrder:             unitValidator(fInteger),
	pr.POrphans:           unitValidator(fPositiveInteger, "auto"),
	pr.POutlineColor:      outlineColor,
	pr.POutlineOffset:     unitValidator(fLength | fUnitlessQuirk),
	pr.POutlineStyle:      outlineStyle,
	pr.POutlineWidth:      borderWidth,
	pr.POverflowWrap:      keywordValidator("normal", "break-word"),
	pr.POverflowX:         overflow,
	pr.POverflowY:         overflow,
	pr.PPaddingBottom:     padding,
	pr.PPaddingLeft:       padding,
	pr.PPaddingRight:      padding,
	pr.PPaddingTop:        padding,
	pr.PPageBreakAfter:    keywordValidator("auto", "always", "avoid", "left", "right"),
	pr.PPageBreakBefore:   keywordValidator("auto", "always", "avoid", "left", "right"),
	pr.PPageBreakInside:   keywordValidator("auto", "avoid"),
	pr.PPaintOrder:        paintOrder,
	pr.PPerspective:       perspective,
	pr.PPerspectiveOrigin: positionValue(2),
	pr.PPointerEvents:     keywordValidator("visible", "none", "all", "auto", "visiblepainted", "visiblefill", "visiblestroke", "painted", "fill", "stroke", "bounding-box"),
	pr.PPosition:          keywordValidator("static", "relative", "absolute", "fixed", "sticky", "-webkit-sticky"),
	pr.PQuotes:            quotes,
	pr.PResize:            keywordValidator("none", "both", "horizontal", "vertical", "auto"),
	pr.PRight:             boxOffset,

	pr.PScrollBehavior:           keywordValidator("auto", "smooth"),
	pr.PScrollSnapType:           keywordValidator("none", "mandatory", "proximity"),
	pr.PShapeImageThreshold:      unitValidator(fNumber),
	pr.PShapeMargin:              unitValidator(fLength | fPercent | fNonNeg),
	pr.PShapeOutside:             shapeOutside,
	pr.PShapeRendering:           keywordValidator("auto", "optimizespeed", "crispedges", "geometricprecision"),
	pr.PSpeak:                    keywordValidator("none", "normal", "spell-out", "digits", "literal-punctuation", "no-punctuation"),
	pr.PStopColor:                colorValue,
	pr.PStopOpacity:              opacity,
	pr.PStroke:                   svgPaint,
	pr.PStrokeDasharray:          strokeDasharray,
	pr.PStrokeDashoffset:         unitValidator(fLength | fPercent | fNumber),
	pr.PStrokeLinecap:            keywordValidator("butt", "round", "square"),
	pr.PStrokeLinejoin:           keywordValidator("miter", "round", "bevel"),
	pr.PStrokeMiterlimit:         unitValidator(fNumber | fNonNeg),
	pr.PStrokeOpacity:            opacity,
	pr.PStrokeWidth:              unitValidator(fLength | fPercent | fNumber | fNonNeg),
	pr.PTabSize:                  unitValidator(fInteger | fLength | fNonNeg),
	pr.PTableLayout:              keywordValidator("auto", "fixed"),
	pr.PTextAlign:                keywordValidator("left", "right", "center", "justify", "-webkit-left", "-webkit-right", "-webkit-center", "start", "end"),
	pr.PTextAlignLast:            keywordValidator("auto", "start", "end", "left", "right", "center", "justify"),
	pr.PTextAnchor:               keywordValidator("start", "middle", "end"),
	pr.PTextDecorationColor:      colorValue,
	pr.PTextDecorationLine:       textDecorationLine,
	pr.PTextDecorationStyle:      keywordValidator("solid", "double", "dotted", "dashed", "wavy"),
	pr.PTextIndent:               unitValidator(fLength | fPercent | fUnitlessQuirk),
	pr.PTextOverflow:             keywordValidator("clip", "ellipsis"),
	pr.PTextRendering:            keywordValidator("auto", "optimizespeed", "optimizelegibility", "geometricprecision"),
	pr.PTextShadow:               shadowList(false),
	pr.PTextTransform:            keywordValidator("capitalize", "uppercase", "lowercase", "none"),
	pr.PTextUnderlinePosition:    keywordValidator("auto", "under"),
	pr.PTop:                      boxOffset,
	pr.PTouchAction:              touchAction,
	pr.PTransform:                transform,
	pr.PTransformOrigin:          transformOrigin,
	pr.PTransformStyle:           keywordValidator("flat", "preserve-3d"),
	pr.PTransitionDelay:          commaSeparated(delay),
	pr.PTransitionDuration:       commaSeparated(duration),
	pr.PTransitionProperty:       transitionProperty,
	pr.PTransitionTimingFunction: commaSeparated(timingFunction),

	pr.PUnicodeBidi:   keywordValidator("normal", "embed", "bidi-override", "isolate", "isolate-override", "plaintext", "-webkit-isolate", "-webkit-isolate-override", "-webkit-plaintext"),
	pr.PVectorEffect:  keywordValidator("none", "non-scaling-stroke"),
	pr.PVerticalAlign: verticalAlign,
	pr.PVisibility:    keywordValidator("visible", "hidden", "collapse"),

	pr.PWebkitBorderHorizontalSpacing: borderSpacing,
	pr.PWebkitBorderVerticalSpacing:   borderSpacing,
	pr.PWebkitBoxAlign:                keywordValidator("stretch", "start", "end", "center", "baseline"),
	pr.PWebkitBoxDirection:            keywordValidator("normal", "reverse"),
	pr.PWebkitBoxFlex:                 unitValidator(fNumber),
	pr.PWebkitBoxOrdinalGroup:         unitValidator(fPositiveInteger),
	pr.PWebkitBoxOrient:               keywordValidator("horizontal", "vertical", "inline-axis", "block-axis"),
	pr.PWebkitBoxPack:                 keywordValidator("start", "end", "center", "justify"),
	pr.PWebkitBoxReflect:              boxReflect,
	pr.PWebkitFontSmoothing:           keywordValidator("auto", "none", "antialiased", "subpixel-antialiased"),
	pr.PWebkitLineClamp:               unitValidator(fPercent|fPositiveInteger, "none"),
	pr.PWebkitLocale:                  locale,
	pr.PWebkitMaskClip:                commaSeparated(fillClip),
	pr.PWebkitMaskComposite:           commaSeparated(keywordValidator(compositeOperators...)),
	pr.PWebkitMaskImage:               commaSeparated(imageOrNone),
	pr.PWebkitMaskOrigin:              commaSeparated(fillOrigin),
	pr.PWebkitMaskPositionX:           commaSeparated(positionX),
	pr.PWebkitMaskPositionY:           commaSeparated(positionY),
	pr.PWebkitMaskRepeatX:             commaSeparated(fillRepeatAxis),
	pr.PWebkitMaskRepeatY:             commaSeparated(fillRepeatAxis),
	pr.PWebkitMaskSize:                commaSeparated(fillSize),
	pr.PWebkitRtlOrdering:             keywordValidator("logical", "visual"),
	pr.PWebkitTapHighlightColor:       colorValue,
	pr.PWebkitTextEmphasisColor:       colorValue,
	pr.PWebkitTextEmphasisPosition:    keywordValidator("over", "under"),
	pr.PWebkitTextEmphasisStyle:       textEmphasisStyle,
	pr.PWebkitTextFillColor:           colorValue,
	pr.PWebkitTextSecurity:            keywordValidator("none", "disc", "circle", "square"),
	pr.PWebkitTextStrokeColor:         colorValue,
	pr.PWebkitTextStrokeWidth:         borderWidth,
	pr.PWebkitUserDrag:                keywordValidator("auto", "none", "element"),
	pr.PWebkitUserModify:              keywordValidator("read-only", "read-write", "read-write-plaintext-only"),
	pr.PWebkitUserSelect:              keywordValidator("auto", "none", "text", "all"),

	pr.PWhiteSpace:  keywordValidator("normal", "pre", "pre-wrap", "pre-line", "nowrap", "-webkit-nowrap"),
	pr.PWidows:      unitValidator(fPositiveInteger, "auto"),
	pr.PWidth:       boxSize,
	pr.PWillChange:  willChange,
	pr.PWordBreak:   keywordValidator("normal", "break-all", "keep-all", "break-word"),
	pr.PWordSpacing: spacing,
	pr.PWritingMode: keywordValidator("horizontal-tb", "vertical-rl", "vertical-lr", "lr-tb", "rl-tb", "tb-rl", "lr", "rl", "tb"),
	pr.PZIndex:      unitValidator(fInteger, "auto"),
	pr.PZoom:        zoom,
}

// validatorFor returns the grammar of the longhand [prop], or nil
func validatorFor(prop pr.KnownProp) validator {
	if int(prop) < len(validators) {
		return validators[prop]
	}
	return nil
}

var (
	fillAttachment = keywordValidator("scroll", "fixed", "local")
	fillRepeatAxis = keywordValidator("repeat", "no-repeat", "space", "round")
)

func fillClip(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, clipBoxKeywords)
}

func fillOrigin(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeKeyword(vl, boxKeywords)
}

func colorValue(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeColor(vl, 0)
}

// textColor is the grammar of the color property
func textColor(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeColor(vl, p.acceptQuirkyColors())
}

func backgroundColor(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return p.consumeColor(vl, p.acceptQuirkyColors()|acceptInternalText)
}

func outlineColor(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "invert") {
		return p.keyword("invert"), true
	}
	return p.consumeColor(vl, 0)
}

var (
	boxOffset = unitValidator(fLength|fPercent|fUnitlessQuirk, "auto")
	margin    = unitValidator(fLength|fPercent|fUnitlessQuirk, "auto")
	padding   = unitValidator(fLength | fPercent | fNonNeg | fUnitlessQuirk)
	spacing   = unitValidator(fLength|fUnitlessQuirk, "normal")
	boxSize   = unitValidator(fLength|fPercent|fNonNeg|fUnitlessQuirk, append([]string{"auto"}, intrinsicSizes...)...)
	maxSize   = unitValidator(fLength|fPercent|fNonNeg|fUnitlessQuirk, append([]string{"none"}, intrinsicSizes...)...)
	opacity   = unitValidator(fNumber)
	overflow  = keywordValidator("visible", "hidden", "scroll", "auto", "overlay", "-webkit-paged-x", "-webkit-paged-y")

	flexFactor        = unitValidator(fNumber | fNonNeg)
	listStylePosition = keywordValidator("inside", "outside")
)

// columnWidth accepts auto or a positive length: a literal 0 is invalid
func columnWidth(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	v, ok := p.consumeUnit(vl, fLength|fNonNeg)
	if !ok {
		return nil, false
	}
	if isZero(v) {
		return nil, p.fail(RangeViolation)
	}
	return v, true
}

// display only accepts the grid values when grid layout is enabled
func display(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(vl, displayKeywords); ok {
		return kw, true
	}
	kw := getKeyword(vl.Current())
	if !gridDisplayKeywords.Has(kw) {
		return nil, false
	}
	if !p.ctx.Features.Has(pr.FeatureGridLayout) {
		return nil, p.fail(DisabledFeature)
	}
	vl.Next()
	return p.keyword(kw), true
}

// zoom accepts normal, reset, document or a non negative number or percentage
func zoom(p *parser, vl *pa.ValueList) (values.Value, bool) {
	switch kw := getKeyword(vl.Current()); kw {
	case "normal", "reset", "document":
		vl.Next()
		return p.keyword(kw), true
	}
	return p.consumeUnit(vl, fNumber|fPercent|fNonNeg)
}

// motionPath accepts none or path(<string>)
func motionPath(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	name, fn := functionName(vl.Current())
	if name != "path" {
		return nil, false
	}
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	data, ok := args.Current().(pa.String)
	if !ok || args.Next() != nil {
		return nil, false
	}
	vl.Next()
	return values.Path{Data: data.Value}, true
}

// motionRotation parses [auto | reverse] && <angle>, where both
// parts are optional but one must be present.
func motionRotation(p *parser, vl *pa.ValueList) (values.Value, bool) {
	var keyword, angle values.Value
	for i := 0; i < 2 && !vl.AtEnd(); i++ {
		if keyword == nil {
			switch kw := getKeyword(vl.Current()); kw {
			case "auto", "reverse":
				vl.Next()
				keyword = p.keyword(kw)
				continue
			}
		}
		if angle != nil {
			break
		}
		v, ok := p.consumeUnit(vl, fAngle)
		if !ok {
			break
		}
		angle = v
	}
	switch {
	case keyword != nil && angle != nil:
		return values.List{Items: []values.Value{keyword, angle}}, true
	case keyword != nil:
		return keyword, true
	case angle != nil:
		return angle, true
	}
	return nil, false
}
