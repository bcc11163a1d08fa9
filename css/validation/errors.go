package validation

import (
	"errors"
	"fmt"

	pr "github.com/benoitkugler/cssdecl/css/properties"
)

// ErrInvalidValue is matched (with errors.Is) by every error
// returned when a declaration is dropped.
var ErrInvalidValue = errors.New("invalid or unsupported values for a known CSS property")

// ErrorKind classifies the reason why a declaration is invalid.
type ErrorKind uint8

const (
	// GrammarMismatch is used when the tokens do not fit the expected construct.
	GrammarMismatch ErrorKind = iota
	// UnitMismatch is used for numbers with a wrong unit category.
	UnitMismatch
	// RangeViolation is used for out of range numbers, like negative widths.
	RangeViolation
	// StructuralViolation is used for invalid structures, like
	// non rectangular grid areas or misplaced color hints.
	StructuralViolation
	// DisabledFeature is used for properties not enabled in the context.
	DisabledFeature
	// UnknownProperty is used for properties not valid in the context.
	UnknownProperty
)

func (k ErrorKind) String() string {
	switch k {
	case GrammarMismatch:
		return "grammar mismatch"
	case UnitMismatch:
		return "unit mismatch"
	case RangeViolation:
		return "range violation"
	case StructuralViolation:
		return "structural violation"
	case DisabledFeature:
		return "disabled feature"
	case UnknownProperty:
		return "unknown property"
	default:
		return fmt.Sprintf("<invalid error kind %d>", k)
	}
}

// ParseError is returned for invalid declarations.
// Kind is the most specific reason found while parsing, and
// defaults to [GrammarMismatch].
type ParseError struct {
	Property pr.KnownProp
	Kind     ErrorKind
}

func (e ParseError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Property, e.Kind)
}

// Is makes errors.Is(err, ErrInvalidValue) true.
func (e ParseError) Is(target error) bool { return target == ErrInvalidValue }
