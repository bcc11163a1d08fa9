package main

import (
	"bufio"
	"fmt"
	"go/format"
	"os"
	"strings"
)

const (
	IN  = "properties.txt"
	OUT = "ids.go"

	header = `package properties

// KnownProp identifies a CSS property: a longhand, a shorthand,
// or the special custom property (PVariable).
// The zero value is the invalid property.
type KnownProp uint16

const (
	_ KnownProp = iota

	// PVariable is the id of every custom property (--*)
	PVariable

	// longhands, sorted by name, followed by the @font-face and
	// @viewport descriptors
`
	footer = `
	numProps
)

const (
	firstShorthand = SAnimation
	// number of longhand ids
	NumLonghands = int(firstShorthand)
)
`
)

// Generates the KnownProp enum and the names table from properties.txt
func main() {
	longhands, shorthands := parseNames(IN)

	var code strings.Builder
	code.WriteString(header)
	for _, name := range longhands {
		fmt.Fprintf(&code, "\tP%s\n", camelCase(name))
	}
	code.WriteString("\n\t// shorthands, sorted by name\n")
	for _, name := range shorthands {
		fmt.Fprintf(&code, "\tS%s\n", camelCase(name))
	}
	code.WriteString(footer)

	code.WriteString("\nvar propsNames = [...]string{\n")
	code.WriteString("PVariable: \"--*\",\n")
	for _, name := range longhands {
		fmt.Fprintf(&code, "P%s: %q,\n", camelCase(name), name)
	}
	for _, name := range shorthands {
		fmt.Fprintf(&code, "S%s: %q,\n", camelCase(name), name)
	}
	code.WriteString("}\n")

	out, err := format.Source([]byte(code.String()))
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(OUT, out, os.ModePerm); err != nil {
		panic(err)
	}
	fmt.Println("Generated", OUT)
}

// camelCase maps -webkit-mask-clip to WebkitMaskClip
func camelCase(s string) string {
	var out strings.Builder
	for _, part := range strings.Split(strings.Trim(s, "-"), "-") {
		out.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return out.String()
}

func parseNames(fn string) (longhands, shorthands []string) {
	f, err := os.Open(fn)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	var current *[]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case line == "[longhands]":
			current = &longhands
		case line == "[shorthands]":
			current = &shorthands
		case current != nil:
			*current = append(*current, strings.Fields(line)...)
		}
	}
	if err := scanner.Err(); err != nil {
		panic(err)
	}
	return longhands, shorthands
}
