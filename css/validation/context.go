package validation

import (
	"sync"

	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/logger"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select(logger.KeyValidation)
}

// Mode is the parsing mode of a style sheet.
type Mode uint8

const (
	StandardMode Mode = iota
	// QuirksMode accepts unitless lengths for some properties,
	// and hexadecimal colors without '#'.
	QuirksMode
	// UASheetMode is used for the user agent style sheet, which
	// may use internal keywords and units.
	UASheetMode
	// SVGAttributeMode is used for SVG presentation attributes,
	// where every length may be unitless.
	SVGAttributeMode
)

func (m Mode) String() string {
	switch m {
	case StandardMode:
		return "standard"
	case QuirksMode:
		return "quirks"
	case UASheetMode:
		return "ua-sheet"
	case SVGAttributeMode:
		return "svg-attribute"
	default:
		return "<invalid mode>"
	}
}

// RuleKind is the kind of rule containing the declarations.
type RuleKind uint8

const (
	StyleRule RuleKind = iota
	// FontFaceRule only accepts the @font-face descriptors.
	FontFaceRule
	// ViewportRule only accepts the @viewport descriptors.
	ViewportRule
)

const (
	// DefaultMaxGridTracks is the maximum number of tracks
	// produced by repeat() in a track list.
	DefaultMaxGridTracks = 1000000
	// DefaultMaxNesting bounds the nesting of functions and blocks
	// in a declaration value.
	DefaultMaxNesting = 100
	// DefaultMaxArguments bounds the number of comma separated
	// items of a list or a function.
	DefaultMaxArguments = 10000
)

// Context stores the parameters of a parse, which do not depend
// on the declaration.
// A Context may be shared between goroutines, as long as it is not modified.
type Context struct {
	// UseCounter is optional and notified of the legacy syntaxes accepted.
	UseCounter UseCounter
	// Caches is shared by the parses using the context.
	Caches *Caches

	// BaseURL is used to complete the relative url().
	BaseURL string
	// ReferrerPolicy is stored in the URI values.
	ReferrerPolicy string

	Mode Mode
	Rule RuleKind

	// Features enables the experimental properties.
	Features pr.Feature

	// MaxGridTracks bounds the expansion of repeat(): the repetitions
	// exceeding it are silently dropped.
	MaxGridTracks int
	// MaxNesting bounds the depth of nested functions.
	MaxNesting int
	// MaxArguments bounds the number of items in comma separated lists.
	MaxArguments int
}

// NewContext returns a context for style rules in the given mode,
// with the default limits and features, and new caches.
func NewContext(mode Mode) *Context {
	return &Context{
		Mode:          mode,
		Features:      pr.DefaultFeatures,
		Caches:        NewCaches(),
		MaxGridTracks: DefaultMaxGridTracks,
		MaxNesting:    DefaultMaxNesting,
		MaxArguments:  DefaultMaxArguments,
	}
}

// ForRule returns a copy of the context, for the given kind of rule.
// The caches are shared.
func (ctx *Context) ForRule(rule RuleKind) *Context {
	out := *ctx
	out.Rule = rule
	return &out
}

// limits returns the limits to use, replacing the unset fields by their default
func (ctx *Context) limits() (maxTracks, maxNesting, maxArguments int) {
	maxTracks, maxNesting, maxArguments = ctx.MaxGridTracks, ctx.MaxNesting, ctx.MaxArguments
	if maxTracks <= 0 {
		maxTracks = DefaultMaxGridTracks
	}
	if maxNesting <= 0 {
		maxNesting = DefaultMaxNesting
	}
	if maxArguments <= 0 {
		maxArguments = DefaultMaxArguments
	}
	return
}

// used when the context has no caches
var processCaches = NewCaches()

func (ctx *Context) caches() *Caches {
	if ctx.Caches == nil {
		return processCaches
	}
	return ctx.Caches
}

// UseFeature identifies a legacy or non standard syntax.
type UseFeature uint8

const (
	UseQuirkyColor UseFeature = iota + 1
	UseUnitlessLength
	UseDeprecatedGradient
	UsePrefixedGradient
	UsePropertyAlias
	UseInternalColor
	UseImageSet
)

func (u UseFeature) String() string {
	switch u {
	case UseQuirkyColor:
		return "quirky-color"
	case UseUnitlessLength:
		return "unitless-length"
	case UseDeprecatedGradient:
		return "deprecated-gradient"
	case UsePrefixedGradient:
		return "prefixed-gradient"
	case UsePropertyAlias:
		return "property-alias"
	case UseInternalColor:
		return "internal-color"
	case UseImageSet:
		return "image-set"
	default:
		return "<invalid use feature>"
	}
}

// UseCounter is notified when a legacy syntax is accepted.
type UseCounter interface {
	Count(feature UseFeature)
}

// count notifies the use counter, if any.
// Errors in the counter never affect the parse.
func (ctx *Context) count(feature UseFeature) {
	tracer().Debugf("use counter: %s", feature)
	if ctx.UseCounter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("use counter failed for %s: %v", feature, r)
		}
	}()
	ctx.UseCounter.Count(feature)
}

// Caches stores data shared by all the parses of a process (or a worker).
// It is safe for concurrent use.
type Caches struct {
	// Values pools the frequent values.
	Values *values.Pool

	mu    sync.RWMutex
	names map[string]pr.KnownProp
}

// NewCaches returns empty caches.
func NewCaches() *Caches {
	return &Caches{
		Values: values.NewPool(),
		names:  make(map[string]pr.KnownProp),
	}
}

// PropertyID returns the property named [name] (which may be an alias),
// or 0 for unknown properties.
// The result of the lookup is memoized.
func (c *Caches) PropertyID(name string) pr.KnownProp {
	c.mu.RLock()
	id, ok := c.names[name]
	c.mu.RUnlock()
	if ok {
		return id
	}

	id = pr.FromName(name)
	if id == pr.PVariable {
		// custom properties are not memoized
		return id
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.names[name]; ok {
		return cached
	}
	c.names[name] = id
	return id
}
