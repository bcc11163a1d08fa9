package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/cssdecl/css/properties/keywords"
	"github.com/benoitkugler/textlayout/fonts/truetype"
)

// FontFamily is a family name, given as a string
// or as a sequence of identifiers.
// Generic families are stored as [Keyword].
type FontFamily string

func (f FontFamily) CSSText() string { return String(f).CSSText() }

func (f FontFamily) Equal(other Value) bool {
	o, ok := other.(FontFamily)
	return ok && f == o
}

// FontFeature is one OpenType feature of font-feature-settings.
type FontFeature struct {
	Tag   truetype.Tag
	Value int
}

func tagString(tag truetype.Tag) string {
	return string([]byte{byte(tag >> 24), byte(tag >> 16), byte(tag >> 8), byte(tag)})
}

func (f FontFeature) CSSText() string {
	s := String(tagString(f.Tag)).CSSText()
	if f.Value != 1 {
		s += " " + strconv.Itoa(f.Value)
	}
	return s
}

func (f FontFeature) Equal(other Value) bool {
	o, ok := other.(FontFeature)
	return ok && f == o
}

// UnicodeRange is an inclusive range of code points.
type UnicodeRange struct {
	From, To rune
}

func (u UnicodeRange) CSSText() string {
	if u.From == u.To {
		return fmt.Sprintf("U+%X", u.From)
	}
	return fmt.Sprintf("U+%X-%X", u.From, u.To)
}

func (u UnicodeRange) Equal(other Value) bool {
	o, ok := other.(UnicodeRange)
	return ok && u == o
}

// FontFaceSrc is one source of the @font-face src descriptor:
// either a local() font or an url() with optional format().
type FontFaceSrc struct {
	URI    string // completed URL, empty for local fonts
	Local  string
	Format string
}

func (f FontFaceSrc) CSSText() string {
	if f.URI == "" {
		return "local(" + String(f.Local).CSSText() + ")"
	}
	s := URI{URL: f.URI}.CSSText()
	if f.Format != "" {
		s += " format(" + String(f.Format).CSSText() + ")"
	}
	return s
}

func (f FontFaceSrc) Equal(other Value) bool {
	o, ok := other.(FontFaceSrc)
	return ok && f == o
}

// ContentDistribution is the value of the alignment properties.
// Zero fields are not set.
type ContentDistribution struct {
	Distribution keywords.Keyword
	Position     keywords.Keyword
	Overflow     keywords.Keyword
}

func (c ContentDistribution) CSSText() string {
	var chunks []string
	for _, k := range [...]keywords.Keyword{c.Distribution, c.Position, c.Overflow} {
		if k != 0 {
			chunks = append(chunks, k.String())
		}
	}
	return strings.Join(chunks, " ")
}

func (c ContentDistribution) Equal(other Value) bool {
	o, ok := other.(ContentDistribution)
	return ok && c == o
}
