// Package properties defines the identifiers of the CSS properties
// known by the declaration parser: longhands, shorthands, aliases and
// the @font-face and @viewport descriptors.
package properties

import (
	"strings"

	"github.com/benoitkugler/cssdecl/utils"
)

// This file is used to generate the property identifiers
//go:generate go run gen/gen.go

// the @font-face and @viewport only descriptors,
// at the end of the longhands
const (
	firstDescriptor = PSrc
	lastDescriptor  = PUserZoom
)

var propsFromNames map[string]KnownProp

func init() {
	propsFromNames = make(map[string]KnownProp, int(numProps)+len(aliasTable))
	for p := PVariable + 1; p < numProps; p++ {
		propsFromNames[propsNames[p]] = p
	}
	for i, alias := range aliasTable {
		propsFromNames[alias.name] = firstAlias + KnownProp(i)
	}
}

// String returns the CSS name of the property, as written in
// style sheets. For aliases, the alias name is returned.
func (p KnownProp) String() string {
	if p.IsAlias() {
		return aliasTable[p-firstAlias].name
	}
	if p < numProps {
		return propsNames[p]
	}
	return "<invalid property>"
}

// IsValid returns true for the known properties and aliases.
func (p KnownProp) IsValid() bool { return p > 0 && (p < numProps || p.IsAlias()) }

// IsShorthand returns true if the property expands to several longhands.
func (p KnownProp) IsShorthand() bool { return firstShorthand <= p && p < numProps }

// IsLonghand returns true for the longhands, which excludes the
// custom properties, the aliases and the descriptors.
func (p KnownProp) IsLonghand() bool {
	return PVariable < p && p < firstShorthand && !p.IsDescriptor()
}

// IsDescriptor returns true for the identifiers only valid
// in @font-face or @viewport rules.
func (p KnownProp) IsDescriptor() bool {
	return firstDescriptor <= p && p <= lastDescriptor
}

// FromName returns the property named [name], which may be an alias,
// or 0 if it is not known. [name] is matched case-insensitively.
// Any name starting with "--" is a custom property, and returns [PVariable].
func FromName(name string) KnownProp {
	if strings.HasPrefix(name, "--") {
		return PVariable
	}
	return propsFromNames[utils.AsciiLower(name)]
}
