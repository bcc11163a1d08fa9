package values

import (
	"strconv"

	"github.com/benoitkugler/cssdecl/utils"
)

// Color is a resolved RGBA color.
// Color keywords which depend on the cascade, like 'currentcolor',
// are stored as [Keyword].
type Color struct {
	R, G, B, A uint8
}

// Transparent is the color of the 'transparent' keyword.
var Transparent = Color{}

// RGBA returns the channels of [c], scaled to [0, 1].
func (c Color) RGBA() (r, g, b, a Fl) {
	return Fl(c.R) / 255, Fl(c.G) / 255, Fl(c.B) / 255, Fl(c.A) / 255
}

// CSSText uses the rgb() notation for opaque colors and rgba() otherwise.
func (c Color) CSSText() string {
	channels := strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " + strconv.Itoa(int(c.B))
	if c.A == 255 {
		return "rgb(" + channels + ")"
	}
	return "rgba(" + channels + ", " + utils.FormatFloat(Fl(c.A)/255) + ")"
}

func (c Color) Equal(other Value) bool {
	o, ok := other.(Color)
	return ok && c == o
}

// Shadow is one element of a box-shadow or text-shadow list.
// Blur, Spread and Color are optional.
type Shadow struct {
	X, Y   Value
	Blur   Value
	Spread Value
	Color  Value
	Inset  bool
}

func (s Shadow) CSSText() string {
	out := ""
	if s.Color != nil {
		out = s.Color.CSSText() + " "
	}
	out += s.X.CSSText() + " " + s.Y.CSSText()
	if s.Blur != nil {
		out += " " + s.Blur.CSSText()
	}
	if s.Spread != nil {
		out += " " + s.Spread.CSSText()
	}
	if s.Inset {
		out += " inset"
	}
	return out
}

func (s Shadow) Equal(other Value) bool {
	o, ok := other.(Shadow)
	return ok && s.Inset == o.Inset && Equal(s.X, o.X) && Equal(s.Y, o.Y) &&
		Equal(s.Blur, o.Blur) && Equal(s.Spread, o.Spread) && Equal(s.Color, o.Color)
}
