// Package keywords stores the alignment keywords used by the
// box alignment properties (align-*, justify-*).
package keywords

// Keyword efficiently stores CSS alignment keywords
type Keyword uint8

const (
	_ Keyword = iota
	Auto
	Baseline
	Center
	End
	FlexEnd
	FlexStart
	LastBaseline
	Left
	Legacy
	Normal
	Right
	Safe
	SelfEnd
	SelfStart
	SpaceAround
	SpaceBetween
	SpaceEvenly
	Start
	Stretch
	Unsafe
)

var names = [...]string{
	Auto:         "auto",
	Baseline:     "baseline",
	Center:       "center",
	End:          "end",
	FlexEnd:      "flex-end",
	FlexStart:    "flex-start",
	LastBaseline: "last-baseline",
	Left:         "left",
	Legacy:       "legacy",
	Normal:       "normal",
	Right:        "right",
	Safe:         "safe",
	SelfEnd:      "self-end",
	SelfStart:    "self-start",
	SpaceAround:  "space-around",
	SpaceBetween: "space-between",
	SpaceEvenly:  "space-evenly",
	Start:        "start",
	Stretch:      "stretch",
	Unsafe:       "unsafe",
}

// NewKeyword returns the keyword for the lower case [s], or 0.
func NewKeyword(s string) Keyword {
	switch s {
	case "auto":
		return Auto
	case "baseline":
		return Baseline
	case "center":
		return Center
	case "end":
		return End
	case "flex-end":
		return FlexEnd
	case "flex-start":
		return FlexStart
	case "last-baseline":
		return LastBaseline
	case "left":
		return Left
	case "legacy":
		return Legacy
	case "normal":
		return Normal
	case "right":
		return Right
	case "safe":
		return Safe
	case "self-end":
		return SelfEnd
	case "self-start":
		return SelfStart
	case "space-around":
		return SpaceAround
	case "space-between":
		return SpaceBetween
	case "space-evenly":
		return SpaceEvenly
	case "start":
		return Start
	case "stretch":
		return Stretch
	case "unsafe":
		return Unsafe
	}
	return 0
}

func (k Keyword) String() string {
	if int(k) < len(names) && k != 0 {
		return names[k]
	}
	return ""
}

// IsDistribution returns true for <content-distribution> keywords.
func (k Keyword) IsDistribution() bool {
	return k == SpaceBetween || k == SpaceAround || k == SpaceEvenly || k == Stretch
}

// IsContentPosition returns true for <content-position> keywords.
func (k Keyword) IsContentPosition() bool {
	switch k {
	case Center, Start, End, FlexStart, FlexEnd, Left, Right:
		return true
	}
	return false
}

// IsSelfPosition returns true for <self-position> keywords.
func (k Keyword) IsSelfPosition() bool {
	return k.IsContentPosition() || k == SelfStart || k == SelfEnd
}

// IsOverflowPosition returns true for 'safe' and 'unsafe'.
func (k Keyword) IsOverflowPosition() bool { return k == Safe || k == Unsafe }

// IsBaselinePosition returns true for 'baseline' and 'last-baseline'.
func (k Keyword) IsBaselinePosition() bool { return k == Baseline || k == LastBaseline }
