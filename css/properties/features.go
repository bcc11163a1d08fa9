package properties

// Feature is a set of runtime flags enabling
// experimental properties.
type Feature uint8

const (
	FeatureGridLayout Feature = 1 << iota
	FeatureMotionPath
	FeatureScrollSnap
	FeatureCompositing
	FeatureCSS3TextDecorations

	// DefaultFeatures are the features enabled when
	// no explicit configuration is given.
	DefaultFeatures = FeatureGridLayout | FeatureCompositing | FeatureCSS3TextDecorations
	// AllFeatures enables every experimental property.
	AllFeatures = FeatureGridLayout | FeatureMotionPath | FeatureScrollSnap | FeatureCompositing | FeatureCSS3TextDecorations
)

// Has returns true if all the features of [other] are set.
func (f Feature) Has(other Feature) bool { return f&other == other }

// the properties not listed are always enabled
var gatedProperties = map[KnownProp]Feature{
	PGridAutoColumns:     FeatureGridLayout,
	PGridAutoFlow:        FeatureGridLayout,
	PGridAutoRows:        FeatureGridLayout,
	PGridColumnEnd:       FeatureGridLayout,
	PGridColumnStart:     FeatureGridLayout,
	PGridRowEnd:          FeatureGridLayout,
	PGridRowStart:        FeatureGridLayout,
	PGridTemplateAreas:   FeatureGridLayout,
	PGridTemplateColumns: FeatureGridLayout,
	PGridTemplateRows:    FeatureGridLayout,
	SGrid:                FeatureGridLayout,
	SGridArea:            FeatureGridLayout,
	SGridColumn:          FeatureGridLayout,
	SGridRow:             FeatureGridLayout,
	SGridTemplate:        FeatureGridLayout,

	PMotionPath:     FeatureMotionPath,
	PMotionOffset:   FeatureMotionPath,
	PMotionRotation: FeatureMotionPath,
	SMotion:         FeatureMotionPath,

	PScrollSnapType: FeatureScrollSnap,

	PMixBlendMode:        FeatureCompositing,
	PIsolation:           FeatureCompositing,
	PBackgroundBlendMode: FeatureCompositing,

	PTextDecorationStyle:   FeatureCSS3TextDecorations,
	PTextDecorationColor:   FeatureCSS3TextDecorations,
	PTextUnderlinePosition: FeatureCSS3TextDecorations,
}

// RequiredFeature returns the feature needed to use the property,
// or 0 if it is always enabled. Aliases are resolved first.
func (p KnownProp) RequiredFeature() Feature { return gatedProperties[p.Resolve()] }

// IsEnabled returns true if the property may be used with the given features.
func (p KnownProp) IsEnabled(features Feature) bool {
	return features.Has(p.RequiredFeature())
}
