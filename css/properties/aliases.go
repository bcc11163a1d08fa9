package properties

// aliases are numbered after the shorthands
const firstAlias = numProps

type alias struct {
	name   string
	target KnownProp
}

// mostly legacy -webkit- prefixed names of standard properties
var aliasTable = [...]alias{
	{"-webkit-align-content", PAlignContent},
	{"-webkit-align-items", PAlignItems},
	{"-webkit-align-self", PAlignSelf},
	{"-webkit-animation", SAnimation},
	{"-webkit-animation-delay", PAnimationDelay},
	{"-webkit-animation-direction", PAnimationDirection},
	{"-webkit-animation-duration", PAnimationDuration},
	{"-webkit-animation-fill-mode", PAnimationFillMode},
	{"-webkit-animation-iteration-count", PAnimationIterationCount},
	{"-webkit-animation-name", PAnimationName},
	{"-webkit-animation-play-state", PAnimationPlayState},
	{"-webkit-animation-timing-function", PAnimationTimingFunction},
	{"-webkit-backface-visibility", PBackfaceVisibility},
	{"-webkit-background-clip", PBackgroundClip},
	{"-webkit-background-origin", PBackgroundOrigin},
	{"-webkit-background-size", PBackgroundSize},
	{"-webkit-border-bottom-left-radius", PBorderBottomLeftRadius},
	{"-webkit-border-bottom-right-radius", PBorderBottomRightRadius},
	{"-webkit-border-radius", SBorderRadius},
	{"-webkit-border-top-left-radius", PBorderTopLeftRadius},
	{"-webkit-border-top-right-radius", PBorderTopRightRadius},
	{"-webkit-box-shadow", PBoxShadow},
	{"-webkit-box-sizing", PBoxSizing},
	{"-webkit-clip-path", PClipPath},
	{"-webkit-column-count", PColumnCount},
	{"-webkit-column-gap", PColumnGap},
	{"-webkit-column-rule", SColumnRule},
	{"-webkit-column-rule-color", PColumnRuleColor},
	{"-webkit-column-rule-style", PColumnRuleStyle},
	{"-webkit-column-rule-width", PColumnRuleWidth},
	{"-webkit-column-span", PColumnSpan},
	{"-webkit-column-width", PColumnWidth},
	{"-webkit-columns", SColumns},
	{"-webkit-filter", PFilter},
	{"-webkit-flex", SFlex},
	{"-webkit-flex-basis", PFlexBasis},
	{"-webkit-flex-direction", PFlexDirection},
	{"-webkit-flex-flow", SFlexFlow},
	{"-webkit-flex-grow", PFlexGrow},
	{"-webkit-flex-shrink", PFlexShrink},
	{"-webkit-flex-wrap", PFlexWrap},
	{"-webkit-justify-content", PJustifyContent},
	{"-webkit-opacity", POpacity},
	{"-webkit-order", POrder},
	{"-webkit-perspective", PPerspective},
	{"-webkit-perspective-origin", PPerspectiveOrigin},
	{"-webkit-shape-image-threshold", PShapeImageThreshold},
	{"-webkit-shape-margin", PShapeMargin},
	{"-webkit-shape-outside", PShapeOutside},
	{"-webkit-transform", PTransform},
	{"-webkit-transform-origin", PTransformOrigin},
	{"-webkit-transform-style", PTransformStyle},
	{"-webkit-transition", STransition},
	{"-webkit-transition-delay", PTransitionDelay},
	{"-webkit-transition-duration", PTransitionDuration},
	{"-webkit-transition-property", PTransitionProperty},
	{"-webkit-transition-timing-function", PTransitionTimingFunction},
	{"word-wrap", POverflowWrap},
}

// IsAlias returns true if the property is an alternative
// name for another property.
func (p KnownProp) IsAlias() bool {
	return p >= firstAlias && int(p-firstAlias) < len(aliasTable)
}

// Resolve returns the canonical property of an alias,
// or [p] itself.
func (p KnownProp) Resolve() KnownProp {
	if p.IsAlias() {
		return aliasTable[p-firstAlias].target
	}
	return p
}
