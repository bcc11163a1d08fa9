package utils

import (
	"math"
	"strconv"
	"strings"
)

type Fl = float64

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max Fl) Fl {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// FloatModulo implements Python modulo for float numbers, like
//
//	-30.5 % 360 == 329.5
func FloatModulo(x, m Fl) Fl {
	res := math.Mod(x, m)
	if res < 0 {
		res += m
	}
	return res
}

// RoundPrec rounds f with n digits precision
func RoundPrec(f Fl, n int) Fl {
	n10 := math.Pow10(n)
	return math.Round(f*n10) / n10
}

// FormatFloat writes f with at most 6 significant digits,
// without exponent and without trailing zeros.
func FormatFloat(f Fl) string {
	if f == 0 {
		return "0"
	}
	s := strconv.FormatFloat(f, 'g', 6, 64)
	if strings.ContainsAny(s, "eE") {
		v, _ := strconv.ParseFloat(s, 64)
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return s
}
