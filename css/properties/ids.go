package properties

// KnownProp identifies a CSS property: a longhand, a shorthand,
// or the special custom property (PVariable).
// The zero value is the invalid property.
type KnownProp uint16

const (
	_ KnownProp = iota

	// PVariable is the id of every custom property (--*)
	PVariable

	// longhands, sorted by name, followed by the @font-face and
	// @viewport descriptors
	PAlignContent
	PAlignItems
	PAlignSelf
	PAlignmentBaseline
	PAnimationDelay
	PAnimationDirection
	PAnimationDuration
	PAnimationFillMode
	PAnimationIterationCount
	PAnimationName
	PAnimationPlayState
	PAnimationTimingFunction
	PBackfaceVisibility
	PBackgroundAttachment
	PBackgroundBlendMode
	PBackgroundClip
	PBackgroundColor
	PBackgroundImage
	PBackgroundOrigin
	PBackgroundPositionX
	PBackgroundPositionY
	PBackgroundRepeatX
	PBackgroundRepeatY
	PBackgroundSize
	PBaselineShift
	PBorderBottomColor
	PBorderBottomLeftRadius
	PBorderBottomRightRadius
	PBorderBottomStyle
	PBorderBottomWidth
	PBorderCollapse
	PBorderImageOutset
	PBorderImageRepeat
	PBorderImageSlice
	PBorderImageSource
	PBorderImageWidth
	PBorderLeftColor
	PBorderLeftStyle
	PBorderLeftWidth
	PBorderRightColor
	PBorderRightStyle
	PBorderRightWidth
	PBorderTopColor
	PBorderTopLeftRadius
	PBorderTopRightRadius
	PBorderTopStyle
	PBorderTopWidth
	PBottom
	PBoxShadow
	PBoxSizing
	PBufferedRendering
	PCaptionSide
	PClear
	PClip
	PClipPath
	PClipRule
	PColor
	PColorInterpolation
	PColorInterpolationFilters
	PColorRendering
	PColumnCount
	PColumnFill
	PColumnGap
	PColumnRuleColor
	PColumnRuleStyle
	PColumnRuleWidth
	PColumnSpan
	PColumnWidth
	PContent
	PCounterIncrement
	PCounterReset
	PCursor
	PDirection
	PDisplay
	PDominantBaseline
	PEmptyCells
	PFill
	PFillOpacity
	PFillRule
	PFilter
	PFlexBasis
	PFlexDirection
	PFlexGrow
	PFlexShrink
	PFlexWrap
	PFloat
	PFloodColor
	PFloodOpacity
	PFontFamily
	PFontFeatureSettings
	PFontKerning
	PFontSize
	PFontStretch
	PFontStyle
	PFontVariant
	PFontVariantLigatures
	PFontWeight
	PGridAutoColumns
	PGridAutoFlow
	PGridAutoRows
	PGridColumnEnd
	PGridColumnStart
	PGridRowEnd
	PGridRowStart
	PGridTemplateAreas
	PGridTemplateColumns
	PGridTemplateRows
	PHeight
	PImageRendering
	PIsolation
	PJustifyContent
	PJustifyItems
	PJustifySelf
	PLeft
	PLetterSpacing
	PLightingColor
	PLineHeight
	PListStyleImage
	PListStylePosition
	PListStyleType
	PMarginBottom
	PMarginLeft
	PMarginRight
	PMarginTop
	PMarkerEnd
	PMarkerMid
	PMarkerStart
	PMaskType
	PMaxHeight
	PMaxWidth
	PMinHeight
	PMinWidth
	PMixBlendMode
	PMotionOffset
	PMotionPath
	PMotionRotation
	PObjectFit
	PObjectPosition
	POpacity
	POrder
	POrphans
	POutlineColor
	POutlineOffset
	POutlineStyle
	POutlineWidth
	POverflowWrap
	POverflowX
	POverflowY
	PPaddingBottom
	PPaddingLeft
	PPaddingRight
	PPaddingTop
	PPageBreakAfter
	PPageBreakBefore
	PPageBreakInside
	PPaintOrder
	PPerspective
	PPerspectiveOrigin
	PPointerEvents
	PPosition
	PQuotes
	PResize
	PRight
	PScrollBehavior
	PScrollSnapType
	PShapeImageThreshold
	PShapeMargin
	PShapeOutside
	PShapeRendering
	PSpeak
	PStopColor
	PStopOpacity
	PStroke
	PStrokeDasharray
	PStrokeDashoffset
	PStrokeLinecap
	PStrokeLinejoin
	PStrokeMiterlimit
	PStrokeOpacity
	PStrokeWidth
	PTabSize
	PTableLayout
	PTextAlign
	PTextAlignLast
	PTextAnchor
	PTextDecorationColor
	PTextDecorationLine
	PTextDecorationStyle
	PTextIndent
	PTextOverflow
	PTextRendering
	PTextShadow
	PTextTransform
	PTextUnderlinePosition
	PTop
	PTouchAction
	PTransform
	PTransformOrigin
	PTransformStyle
	PTransitionDelay
	PTransitionDuration
	PTransitionProperty
	PTransitionTimingFunction
	PUnicodeBidi
	PVectorEffect
	PVerticalAlign
	PVisibility
	PWebkitBorderHorizontalSpacing
	PWebkitBorderVerticalSpacing
	PWebkitBoxAlign
	PWebkitBoxDirection
	PWebkitBoxFlex
	PWebkitBoxOrdinalGroup
	PWebkitBoxOrient
	PWebkitBoxPack
	PWebkitBoxReflect
	PWebkitFontSmoothing
	PWebkitLineClamp
	PWebkitLocale
	PWebkitMaskClip
	PWebkitMaskComposite
	PWebkitMaskImage
	PWebkitMaskOrigin
	PWebkitMaskPositionX
	PWebkitMaskPositionY
	PWebkitMaskRepeatX
	PWebkitMaskRepeatY
	PWebkitMaskSize
	PWebkitRtlOrdering
	PWebkitTapHighlightColor
	PWebkitTextEmphasisColor
	PWebkitTextEmphasisPosition
	PWebkitTextEmphasisStyle
	PWebkitTextFillColor
	PWebkitTextSecurity
	PWebkitTextStrokeColor
	PWebkitTextStrokeWidth
	PWebkitUserDrag
	PWebkitUserModify
	PWebkitUserSelect
	PWhiteSpace
	PWidows
	PWidth
	PWillChange
	PWordBreak
	PWordSpacing
	PWritingMode
	PZIndex
	PZoom
	PSrc
	PUnicodeRange
	PMaxZoom
	PMinZoom
	POrientation
	PUserZoom

	// shorthands, sorted by name
	SAnimation
	SBackground
	SBackgroundPosition
	SBackgroundRepeat
	SBorder
	SBorderBottom
	SBorderColor
	SBorderImage
	SBorderLeft
	SBorderRadius
	SBorderRight
	SBorderSpacing
	SBorderStyle
	SBorderTop
	SBorderWidth
	SColumnRule
	SColumns
	SFlex
	SFlexFlow
	SFont
	SGrid
	SGridArea
	SGridColumn
	SGridRow
	SGridTemplate
	SListStyle
	SMargin
	SMarker
	SMotion
	SOutline
	SOverflow
	SPadding
	STextDecoration
	STransition
	SWebkitMask
	SWebkitMaskPosition
	SWebkitMaskRepeat
	SWebkitTextEmphasis
	SWebkitTextStroke

	numProps
)

const (
	firstShorthand = SAnimation
	// number of longhand ids
	NumLonghands = int(firstShorthand)
)

var propsNames = [...]string{
	PVariable:                      "--*",
	PAlignContent:                  "align-content",
	PAlignItems:                    "align-items",
	PAlignSelf:                     "align-self",
	PAlignmentBaseline:             "alignment-baseline",
	PAnimationDelay:                "animation-delay",
	PAnimationDirection:            "animation-direction",
	PAnimationDuration:             "animation-duration",
	PAnimationFillMode:             "animation-fill-mode",
	PAnimationIterationCount:       "animation-iteration-count",
	PAnimationName:                 "animation-name",
	PAnimationPlayState:            "animation-play-state",
	PAnimationTimingFunction:       "animation-timing-function",
	PBackfaceVisibility:            "backface-visibility",
	PBackgroundAttachment:          "background-attachment",
	PBackgroundBlendMode:           "background-blend-mode",
	PBackgroundClip:                "background-clip",
	PBackgroundColor:               "background-color",
	PBackgroundImage:               "background-image",
	PBackgroundOrigin:              "background-origin",
	PBackgroundPositionX:           "background-position-x",
	PBackgroundPositionY:           "background-position-y",
	PBackgroundRepeatX:             "background-repeat-x",
	PBackgroundRepeatY:             "background-repeat-y",
	PBackgroundSize:                "background-size",
	PBaselineShift:                 "baseline-shift",
	PBorderBottomColor:             "border-bottom-color",
	PBorderBottomLeftRadius:        "border-bottom-left-radius",
	PBorderBottomRightRadius:       "border-bottom-right-radius",
	PBorderBottomStyle:             "border-bottom-style",
	PBorderBottomWidth:             "border-bottom-width",
	PBorderCollapse:                "border-collapse",
	PBorderImageOutset:             "border-image-outset",
	PBorderImageRepeat:             "border-image-repeat",
	PBorderImageSlice:              "border-image-slice",
	PBorderImageSource:             "border-image-source",
	PBorderImageWidth:              "border-image-width",
	PBorderLeftColor:               "border-left-color",
	PBorderLeftStyle:               "border-left-style",
	PBorderLeftWidth:               "border-left-width",
	PBorderRightColor:              "border-right-color",
	PBorderRightStyle:              "border-right-style",
	PBorderRightWidth:              "border-right-width",
	PBorderTopColor:                "border-top-color",
	PBorderTopLeftRadius:           "border-top-left-radius",
	PBorderTopRightRadius:          "border-top-right-radius",
	PBorderTopStyle:                "border-top-style",
	PBorderTopWidth:                "border-top-width",
	PBottom:                        "bottom",
	PBoxShadow:                     "box-shadow",
	PBoxSizing:                     "box-sizing",
	PBufferedRendering:             "buffered-rendering",
	PCaptionSide:                   "caption-side",
	PClear:                         "clear",
	PClip:                          "clip",
	PClipPath:                      "clip-path",
	PClipRule:                      "clip-rule",
	PColor:                         "color",
	PColorInterpolation:            "color-interpolation",
	PColorInterpolationFilters:     "color-interpolation-filters",
	PColorRendering:                "color-rendering",
	PColumnCount:                   "column-count",
	PColumnFill:                    "column-fill",
	PColumnGap:                     "column-gap",
	PColumnRuleColor:               "column-rule-color",
	PColumnRuleStyle:               "column-rule-style",
	PColumnRuleWidth:               "column-rule-width",
	PColumnSpan:                    "column-span",
	PColumnWidth:                   "column-width",
	PContent:                       "content",
	PCounterIncrement:              "counter-increment",
	PCounterReset:                  "counter-reset",
	PCursor:                        "cursor",
	PDirection:                     "direction",
	PDisplay:                       "display",
	PDominantBaseline:              "dominant-baseline",
	PEmptyCells:                    "empty-cells",
	PFill:                          "fill",
	PFillOpacity:                   "fill-opacity",
	PFillRule:                      "fill-rule",
	PFilter:                        "filter",
	PFlexBasis:                     "flex-basis",
	PFlexDirection:                 "flex-direction",
	PFlexGrow:                      "flex-grow",
	PFlexShrink:                    "flex-shrink",
	PFlexWrap:                      "flex-wrap",
	PFloat:                         "float",
	PFloodColor:                    "flood-color",
	PFloodOpacity:                  "flood-opacity",
	PFontFamily:                    "font-family",
	PFontFeatureSettings:           "font-feature-settings",
	PFontKerning:                   "font-kerning",
	PFontSize:                      "font-size",
	PFontStretch:                   "font-stretch",
	PFontStyle:                     "font-style",
	PFontVariant:                   "font-variant",
	PFontVariantLigatures:          "font-variant-ligatures",
	PFontWeight:                    "font-weight",
	PGridAutoColumns:               "grid-auto-columns",
	PGridAutoFlow:                  "grid-auto-flow",
	PGridAutoRows:                  "grid-auto-rows",
	PGridColumnEnd:                 "grid-column-end",
	PGridColumnStart:               "grid-column-start",
	PGridRowEnd:                    "grid-row-end",
	PGridRowStart:                  "grid-row-start",
	PGridTemplateAreas:             "grid-template-areas",
	PGridTemplateColumns:           "grid-template-columns",
	PGridTemplateRows:              "grid-template-rows",
	PHeight:                        "height",
	PImageRendering:                "image-rendering",
	PIsolation:                     "isolation",
	PJustifyContent:                "justify-content",
	PJustifyItems:                  "justify-items",
	PJustifySelf:                   "justify-self",
	PLeft:                          "left",
	PLetterSpacing:                 "letter-spacing",
	PLightingColor:                 "lighting-color",
	PLineHeight:                    "line-height",
	PListStyleImage:                "list-style-image",
	PListStylePosition:             "list-style-position",
	PListStyleType:                 "list-style-type",
	PMarginBottom:                  "margin-bottom",
	PMarginLeft:                    "margin-left",
	PMarginRight:                   "margin-right",
	PMarginTop:                     "margin-top",
	PMarkerEnd:                     "marker-end",
	PMarkerMid:                     "marker-mid",
	PMarkerStart:                   "marker-start",
	PMaskType:                      "mask-type",
	PMaxHeight:                     "max-height",
	PMaxWidth:                      "max-width",
	PMinHeight:                     "min-height",
	PMinWidth:                      "min-width",
	PMixBlendMode:                  "mix-blend-mode",
	PMotionOffset:                  "motion-offset",
	PMotionPath:                    "motion-path",
	PMotionRotation:                "motion-rotation",
	PObjectFit:                     "object-fit",
	PObjectPosition:                "object-position",
	POpacity:                       "opacity",
	POrder:                         "order",
	POrphans:                       "orphans",
	POutlineColor:                  "outline-color",
	POutlineOffset:                 "outline-offset",
	POutlineStyle:                  "outline-style",
	POutlineWidth:                  "outline-width",
	POverflowWrap:                  "overflow-wrap",
	POverflowX:                     "overflow-x",
	POverflowY:                     "overflow-y",
	PPaddingBottom:                 "padding-bottom",
	PPaddingLeft:                   "padding-left",
	PPaddingRight:                  "padding-right",
	PPaddingTop:                    "padding-top",
	PPageBreakAfter:                "page-break-after",
	PPageBreakBefore:               "page-break-before",
	PPageBreakInside:               "page-break-inside",
	PPaintOrder:                    "paint-order",
	PPerspective:                   "perspective",
	PPerspectiveOrigin:             "perspective-origin",
	PPointerEvents:                 "pointer-events",
	PPosition:                      "position",
	PQuotes:                        "quotes",
	PResize:                        "resize",
	PRight:                         "right",
	PScrollBehavior:                "scroll-behavior",
	PScrollSnapType:                "scroll-snap-type",
	PShapeImageThreshold:           "shape-image-threshold",
	PShapeMargin:                   "shape-margin",
	PShapeOutside:                  "shape-outside",
	PShapeRendering:                "shape-rendering",
	PSpeak:                         "speak",
	PStopColor:                     "stop-color",
	PStopOpacity:                   "stop-opacity",
	PStroke:                        "stroke",
	PStrokeDasharray:               "stroke-dasharray",
	PStrokeDashoffset:              "stroke-dashoffset",
	PStrokeLinecap:                 "stroke-linecap",
	PStrokeLinejoin:                "stroke-linejoin",
	PStrokeMiterlimit:              "stroke-miterlimit",
	PStrokeOpacity:                 "stroke-opacity",
	PStrokeWidth:                   "stroke-width",
	PTabSize:                       "tab-size",
	PTableLayout:                   "table-layout",
	PTextAlign:                     "text-align",
	PTextAlignLast:                 "text-align-last",
	PTextAnchor:                    "text-anchor",
	PTextDecorationColor:           "text-decoration-color",
	PTextDecorationLine:            "text-decoration-line",
	PTextDecorationStyle:           "text-decoration-style",
	PTextIndent:                    "text-indent",
	PTextOverflow:                  "text-overflow",
	PTextRendering:                 "text-rendering",
	PTextShadow:                    "text-shadow",
	PTextTransform:                 "text-transform",
	PTextUnderlinePosition:         "text-underline-position",
	PTop:                           "top",
	PTouchAction:                   "touch-action",
	PTransform:                     "transform",
	PTransformOrigin:               "transform-origin",
	PTransformStyle:                "transform-style",
	PTransitionDelay:               "transition-delay",
	PTransitionDuration:            "transition-duration",
	PTransitionProperty:            "transition-property",
	PTransitionTimingFunction:      "transition-timing-function",
	PUnicodeBidi:                   "unicode-bidi",
	PVectorEffect:                  "vector-effect",
	PVerticalAlign:                 "vertical-align",
	PVisibility:                    "visibility",
	PWebkitBorderHorizontalSpacing: "-webkit-border-horizontal-spacing",
	PWebkitBorderVerticalSpacing:   "-webkit-border-vertical-spacing",
	PWebkitBoxAlign:                "-webkit-box-align",
	PWebkitBoxDirection:            "-webkit-box-direction",
	PWebkitBoxFlex:                 "-webkit-box-flex",
	PWebkitBoxOrdinalGroup:         "-webkit-box-ordinal-group",
	PWebkitBoxOrient:               "-webkit-box-orient",
	PWebkitBoxPack:                 "-webkit-box-pack",
	PWebkitBoxReflect:              "-webkit-box-reflect",
	PWebkitFontSmoothing:           "-webkit-font-smoothing",
	PWebkitLineClamp:               "-webkit-line-clamp",
	PWebkitLocale:                  "-webkit-locale",
	PWebkitMaskClip:                "-webkit-mask-clip",
	PWebkitMaskComposite:           "-webkit-mask-composite",
	PWebkitMaskImage:               "-webkit-mask-image",
	PWebkitMaskOrigin:              "-webkit-mask-origin",
	PWebkitMaskPositionX:           "-webkit-mask-position-x",
	PWebkitMaskPositionY:           "-webkit-mask-position-y",
	PWebkitMaskRepeatX:             "-webkit-mask-repeat-x",
	PWebkitMaskRepeatY:             "-webkit-mask-repeat-y",
	PWebkitMaskSize:                "-webkit-mask-size",
	PWebkitRtlOrdering:             "-webkit-rtl-ordering",
	PWebkitTapHighlightColor:       "-webkit-tap-highlight-color",
	PWebkitTextEmphasisColor:       "-webkit-text-emphasis-color",
	PWebkitTextEmphasisPosition:    "-webkit-text-emphasis-position",
	PWebkitTextEmphasisStyle:       "-webkit-text-emphasis-style",
	PWebkitTextFillColor:           "-webkit-text-fill-color",
	PWebkitTextSecurity:            "-webkit-text-security",
	PWebkitTextStrokeColor:         "-webkit-text-stroke-color",
	PWebkitTextStrokeWidth:         "-webkit-text-stroke-width",
	PWebkitUserDrag:                "-webkit-user-drag",
	PWebkitUserModify:              "-webkit-user-modify",
	PWebkitUserSelect:              "-webkit-user-select",
	PWhiteSpace:                    "white-space",
	PWidows:                        "widows",
	PWidth:                         "width",
	PWillChange:                    "will-change",
	PWordBreak:                     "word-break",
	PWordSpacing:                   "word-spacing",
	PWritingMode:                   "writing-mode",
	PZIndex:                        "z-index",
	PZoom:                          "zoom",
	PSrc:                           "src",
	PUnicodeRange:                  "unicode-range",
	PMaxZoom:                       "max-zoom",
	PMinZoom:                       "min-zoom",
	POrientation:                   "orientation",
	PUserZoom:                      "user-zoom",
	SAnimation:                     "animation",
	SBackground:                    "background",
	SBackgroundPosition:            "background-position",
	SBackgroundRepeat:              "background-repeat",
	SBorder:                        "border",
	SBorderBottom:                  "border-bottom",
	SBorderColor:                   "border-color",
	SBorderImage:                   "border-image",
	SBorderLeft:                    "border-left",
	SBorderRadius:                  "border-radius",
	SBorderRight:                   "border-right",
	SBorderSpacing:                 "border-spacing",
	SBorderStyle:                   "border-style",
	SBorderTop:                     "border-top",
	SBorderWidth:                   "border-width",
	SColumnRule:                    "column-rule",
	SColumns:                       "columns",
	SFlex:                          "flex",
	SFlexFlow:                      "flex-flow",
	SFont:                          "font",
	SGrid:                          "grid",
	SGridArea:                      "grid-area",
	SGridColumn:                    "grid-column",
	SGridRow:                       "grid-row",
	SGridTemplate:                  "grid-template",
	SListStyle:                     "list-style",
	SMargin:                        "margin",
	SMarker:                        "marker",
	SMotion:                        "motion",
	SOutline:                       "outline",
	SOverflow:                      "overflow",
	SPadding:                       "padding",
	STextDecoration:                "text-decoration",
	STransition:                    "transition",
	SWebkitMask:                    "-webkit-mask",
	SWebkitMaskPosition:            "-webkit-mask-position",
	SWebkitMaskRepeat:              "-webkit-mask-repeat",
	SWebkitTextEmphasis:            "-webkit-text-emphasis",
	SWebkitTextStroke:              "-webkit-text-stroke",
}
