package properties

import "github.com/benoitkugler/cssdecl/utils"

// Unit is the unit of a numeric value.
// The zero value is invalid.
type Unit uint8

const (
	Scalar Unit = iota + 1 // means no unit, but a valid value
	Perc                   // percentage (%)

	// lengths
	Ex
	Em
	Ch
	Rem
	Px
	Pt
	Pc
	In
	Cm
	Mm
	Vw
	Vh
	Vmin
	Vmax
	QuirkyEm // only available in user agent style sheets

	// angles
	Rad
	Turn
	Deg
	Grad

	// times
	Ms
	S

	// frequencies
	Hz
	KHz

	// resolutions
	Dppx
	Dpi
	Dpcm

	// flexible grid tracks
	Fr
)

var unitsNames = [...]string{
	Scalar:   "",
	Perc:     "%",
	Ex:       "ex",
	Em:       "em",
	Ch:       "ch",
	Rem:      "rem",
	Px:       "px",
	Pt:       "pt",
	Pc:       "pc",
	In:       "in",
	Cm:       "cm",
	Mm:       "mm",
	Vw:       "vw",
	Vh:       "vh",
	Vmin:     "vmin",
	Vmax:     "vmax",
	QuirkyEm: "__qem",
	Rad:      "rad",
	Turn:     "turn",
	Deg:      "deg",
	Grad:     "grad",
	Ms:       "ms",
	S:        "s",
	Hz:       "hz",
	KHz:      "khz",
	Dppx:     "dppx",
	Dpi:      "dpi",
	Dpcm:     "dpcm",
	Fr:       "fr",
}

var unitsFromNames = map[string]Unit{}

func init() {
	for u, name := range unitsNames {
		if u != 0 && u != int(Scalar) && u != int(Perc) {
			unitsFromNames[name] = Unit(u)
		}
	}
}

func (u Unit) String() string {
	if u == 0 || int(u) >= len(unitsNames) {
		return "<invalid unit>"
	}
	return unitsNames[u]
}

// UnitFromString returns the dimension unit [s] (case insensitive), or 0.
// Number and percentage are not returned.
func UnitFromString(s string) Unit { return unitsFromNames[utils.AsciiLower(s)] }

// Category groups the units which may be compared or added.
type Category uint8

const (
	CatNumber Category = iota + 1
	CatPercent
	CatLength
	CatAngle
	CatTime
	CatFrequency
	CatResolution
	CatFlex
)

// Category returns the category of the unit, or 0 for invalid units.
func (u Unit) Category() Category {
	switch {
	case u == Scalar:
		return CatNumber
	case u == Perc:
		return CatPercent
	case Ex <= u && u <= QuirkyEm:
		return CatLength
	case Rad <= u && u <= Grad:
		return CatAngle
	case u == Ms || u == S:
		return CatTime
	case u == Hz || u == KHz:
		return CatFrequency
	case Dppx <= u && u <= Dpcm:
		return CatResolution
	case u == Fr:
		return CatFlex
	default:
		return 0
	}
}

// IsFontRelative returns true for the units depending on the font size.
func (u Unit) IsFontRelative() bool {
	return u == Em || u == Ex || u == Ch || u == Rem || u == QuirkyEm
}

// IsViewportRelative returns true for the vw, vh, vmin and vmax units.
func (u Unit) IsViewportRelative() bool { return Vw <= u && u <= Vmax }
