package properties

// the four sides, in the top, right, bottom, left order used
// by the box model shorthands
func sides(top, right, bottom, left KnownProp) []KnownProp {
	return []KnownProp{top, right, bottom, left}
}

// shorthandsLonghands stores, for each shorthand, the longhands it sets,
// in the order used when matching its components.
var shorthandsLonghands = [...][]KnownProp{
	SAnimation - firstShorthand: {
		PAnimationDuration, PAnimationTimingFunction, PAnimationDelay, PAnimationIterationCount,
		PAnimationDirection, PAnimationFillMode, PAnimationPlayState, PAnimationName,
	},
	SBackground - firstShorthand: {
		PBackgroundImage, PBackgroundPositionX, PBackgroundPositionY, PBackgroundSize,
		PBackgroundRepeatX, PBackgroundRepeatY, PBackgroundAttachment, PBackgroundOrigin,
		PBackgroundClip, PBackgroundColor,
	},
	SBackgroundPosition - firstShorthand: {PBackgroundPositionX, PBackgroundPositionY},
	SBackgroundRepeat - firstShorthand:   {PBackgroundRepeatX, PBackgroundRepeatY},
	SBorder - firstShorthand: {
		PBorderTopWidth, PBorderRightWidth, PBorderBottomWidth, PBorderLeftWidth,
		PBorderTopStyle, PBorderRightStyle, PBorderBottomStyle, PBorderLeftStyle,
		PBorderTopColor, PBorderRightColor, PBorderBottomColor, PBorderLeftColor,
		PBorderImageSource, PBorderImageSlice, PBorderImageWidth, PBorderImageOutset, PBorderImageRepeat,
	},
	SBorderBottom - firstShorthand: {PBorderBottomWidth, PBorderBottomStyle, PBorderBottomColor},
	SBorderColor - firstShorthand:  sides(PBorderTopColor, PBorderRightColor, PBorderBottomColor, PBorderLeftColor),
	SBorderImage - firstShorthand: {
		PBorderImageSource, PBorderImageSlice, PBorderImageWidth, PBorderImageOutset, PBorderImageRepeat,
	},
	SBorderLeft - firstShorthand: {PBorderLeftWidth, PBorderLeftStyle, PBorderLeftColor},
	SBorderRadius - firstShorthand: {
		PBorderTopLeftRadius, PBorderTopRightRadius, PBorderBottomRightRadius, PBorderBottomLeftRadius,
	},
	SBorderRight - firstShorthand:   {PBorderRightWidth, PBorderRightStyle, PBorderRightColor},
	SBorderSpacing - firstShorthand: {PWebkitBorderHorizontalSpacing, PWebkitBorderVerticalSpacing},
	SBorderStyle - firstShorthand:   sides(PBorderTopStyle, PBorderRightStyle, PBorderBottomStyle, PBorderLeftStyle),
	SBorderTop - firstShorthand:     {PBorderTopWidth, PBorderTopStyle, PBorderTopColor},
	SBorderWidth - firstShorthand:   sides(PBorderTopWidth, PBorderRightWidth, PBorderBottomWidth, PBorderLeftWidth),
	SColumnRule - firstShorthand:    {PColumnRuleWidth, PColumnRuleStyle, PColumnRuleColor},
	SColumns - firstShorthand:       {PColumnWidth, PColumnCount},
	SFlex - firstShorthand:          {PFlexGrow, PFlexShrink, PFlexBasis},
	SFlexFlow - firstShorthand:      {PFlexDirection, PFlexWrap},
	SFont - firstShorthand: {
		PFontStyle, PFontVariant, PFontWeight, PFontStretch, PFontSize, PLineHeight, PFontFamily,
	},
	SGrid - firstShorthand: {
		PGridTemplateRows, PGridTemplateColumns, PGridTemplateAreas,
		PGridAutoFlow, PGridAutoRows, PGridAutoColumns,
	},
	SGridArea - firstShorthand:     {PGridRowStart, PGridColumnStart, PGridRowEnd, PGridColumnEnd},
	SGridColumn - firstShorthand:   {PGridColumnStart, PGridColumnEnd},
	SGridRow - firstShorthand:      {PGridRowStart, PGridRowEnd},
	SGridTemplate - firstShorthand: {PGridTemplateRows, PGridTemplateColumns, PGridTemplateAreas},
	SListStyle - firstShorthand:    {PListStyleType, PListStylePosition, PListStyleImage},
	SMargin - firstShorthand:       sides(PMarginTop, PMarginRight, PMarginBottom, PMarginLeft),
	SMarker - firstShorthand:       {PMarkerStart, PMarkerMid, PMarkerEnd},
	SMotion - firstShorthand:       {PMotionPath, PMotionOffset, PMotionRotation},
	SOutline - firstShorthand:      {POutlineColor, POutlineStyle, POutlineWidth},
	SOverflow - firstShorthand:     {POverflowX, POverflowY},
	SPadding - firstShorthand:      sides(PPaddingTop, PPaddingRight, PPaddingBottom, PPaddingLeft),
	STextDecoration - firstShorthand: {
		PTextDecorationLine, PTextDecorationStyle, PTextDecorationColor,
	},
	STransition - firstShorthand: {
		PTransitionProperty, PTransitionDuration, PTransitionTimingFunction, PTransitionDelay,
	},
	SWebkitMask - firstShorthand: {
		PWebkitMaskImage, PWebkitMaskPositionX, PWebkitMaskPositionY, PWebkitMaskSize,
		PWebkitMaskRepeatX, PWebkitMaskRepeatY, PWebkitMaskOrigin, PWebkitMaskClip,
	},
	SWebkitMaskPosition - firstShorthand:  {PWebkitMaskPositionX, PWebkitMaskPositionY},
	SWebkitMaskRepeat - firstShorthand:    {PWebkitMaskRepeatX, PWebkitMaskRepeatY},
	SWebkitTextEmphasis - firstShorthand:  {PWebkitTextEmphasisStyle, PWebkitTextEmphasisColor},
	SWebkitTextStroke - firstShorthand:    {PWebkitTextStrokeWidth, PWebkitTextStrokeColor},
}

// Longhands returns the longhands set by a shorthand, or
// [p] itself for a longhand. Aliases are resolved first.
// The returned slice must not be modified.
func (p KnownProp) Longhands() []KnownProp {
	p = p.Resolve()
	if p.IsShorthand() {
		return shorthandsLonghands[p-firstShorthand]
	}
	return []KnownProp{p}
}

// Shorthands returns the shorthands setting [p].
func (p KnownProp) Shorthands() []KnownProp {
	var out []KnownProp
	for i, longhands := range shorthandsLonghands {
		for _, l := range longhands {
			if l == p {
				out = append(out, firstShorthand+KnownProp(i))
				break
			}
		}
	}
	return out
}
