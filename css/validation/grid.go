package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
	"github.com/benoitkugler/cssdecl/utils"
)

var gridBreadthKeywords = utils.NewSet("auto", "min-content", "max-content")

// inflexibleBreadth parses a non negative length-percentage, auto,
// min-content or max-content.
func (p *parser) inflexibleBreadth(vl *pa.ValueList) (values.Value, bool) {
	if kw, ok := p.consumeKeyword(vl, gridBreadthKeywords); ok {
		return kw, true
	}
	return p.consumeUnit(vl, fLength|fPercent|fNonNeg)
}

// trackBreadth also accepts the flex unit.
func (p *parser) trackBreadth(vl *pa.ValueList) (values.Value, bool) {
	if dim, ok := vl.Current().(pa.Dimension); ok && utils.AsciiEqualFold(dim.Unit, "fr") {
		if dim.ValueF < 0 {
			return nil, p.fail(RangeViolation)
		}
		vl.Next()
		return p.number(dim.ValueF, pr.Fr), true
	}
	return p.inflexibleBreadth(vl)
}

// trackSize parses a breadth or a minmax() function.
func trackSize(p *parser, vl *pa.ValueList) (values.Value, bool) {
	name, fn := functionName(vl.Current())
	if name == "" {
		return p.trackBreadth(vl)
	}
	if name != "minmax" {
		return nil, false
	}
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return nil, false
	}
	min, ok := p.inflexibleBreadth(args)
	if !ok || !args.SkipComma() {
		return nil, false
	}
	max, ok := p.trackBreadth(args)
	if !ok || !args.AtEnd() {
		return nil, false
	}
	vl.Next()
	return values.Function{Name: "minmax", Args: []values.Value{min, max}}, true
}

// lineNames parses a bracketed list of identifiers, which may be empty.
func lineNames(token Token) (values.GridLineNames, bool) {
	block, ok := token.(pa.SquareBracketsBlock)
	if !ok {
		return values.GridLineNames{}, false
	}
	out := values.GridLineNames{Names: []string{}}
	for _, token := range pa.RemoveWhitespace(block.Arguments) {
		ident, ok := token.(pa.Ident)
		if !ok || isReservedGridName(ident.Value) {
			return values.GridLineNames{}, false
		}
		out.Names = append(out.Names, ident.Value)
	}
	return out, true
}

func isReservedGridName(name string) bool {
	switch utils.AsciiLower(name) {
	case "span", "auto", "inherit", "initial", "unset", "default":
		return true
	}
	return false
}

// trackListBuilder accumulates tracks and line names, merging
// adjacent line names.
type trackListBuilder struct {
	items      []values.Value
	trackCount int
	// the maximum number of tracks, extra repetitions are dropped
	maxTracks int
}

func (b *trackListBuilder) addNames(names values.GridLineNames) {
	if n := len(b.items); n != 0 {
		if last, ok := b.items[n-1].(values.GridLineNames); ok {
			merged := append(append([]string(nil), last.Names...), names.Names...)
			b.items[n-1] = values.GridLineNames{Names: merged}
			return
		}
	}
	b.items = append(b.items, names)
}

func (b *trackListBuilder) addTrack(track values.Value) {
	b.items = append(b.items, track)
	b.trackCount++
}

func (b *trackListBuilder) full() bool { return b.trackCount >= b.maxTracks }

// trackList parses the value of grid-template-columns (or -rows), with
// the repeat() functions expanded.
func trackList(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	b := trackListBuilder{maxTracks: p.maxTracks}
	if !p.trackListInto(vl, &b) {
		return nil, false
	}
	return b.value()
}

func (b trackListBuilder) value() (values.Value, bool) {
	if b.trackCount == 0 {
		return nil, false
	}
	if len(b.items) == 1 {
		return b.items[0], true
	}
	return values.List{Items: b.items}, true
}

// trackListInto consumes line names, track sizes and repeat() functions,
// until an unknown token.
func (p *parser) trackListInto(vl *pa.ValueList, b *trackListBuilder) bool {
	for !vl.AtEnd() {
		token := vl.Current()
		if names, ok := lineNames(token); ok {
			vl.Next()
			b.addNames(names)
			continue
		}
		if name, fn := functionName(token); name == "repeat" {
			if !p.repeatTracks(fn, b) {
				return false
			}
			vl.Next()
			continue
		}
		track, ok := trackSize(p, vl)
		if !ok {
			break
		}
		if !b.full() {
			b.addTrack(track)
		}
	}
	return true
}

// repeatTracks expands repeat(<positive-integer>, <names>? [<track-size> <names>?]+),
// stopping when the maximum number of tracks is reached.
func (p *parser) repeatTracks(fn pa.FunctionBlock, b *trackListBuilder) bool {
	args, ok := p.arguments(fn.Arguments)
	if !ok {
		return false
	}
	count, ok := args.Current().(pa.Number)
	if !ok || !count.IsInt() || count.ValueF < 1 {
		return p.fail(RangeViolation)
	}
	args.Next()
	if !args.SkipComma() {
		return false
	}

	var (
		pattern []values.Value
		tracks  int
	)
	for !args.AtEnd() {
		if names, ok := lineNames(args.Current()); ok {
			args.Next()
			pattern = append(pattern, names)
			continue
		}
		track, ok := trackSize(p, args)
		if !ok {
			return false
		}
		pattern = append(pattern, track)
		tracks++
	}
	if tracks == 0 {
		return false
	}

	repetitions := b.maxTracks
	if count.ValueF < float64(repetitions) {
		repetitions = int(count.ValueF)
	}
	if limit := float64(b.maxTracks-b.trackCount) / float64(tracks); count.ValueF > limit {
		tracer().Debugf("repeat(): %g repetitions truncated to the track limit %d", count.ValueF, b.maxTracks)
	}
	for i := 0; i < repetitions && !b.full(); i++ {
		for _, item := range pattern {
			if names, ok := item.(values.GridLineNames); ok {
				b.addNames(names)
			} else if !b.full() {
				b.addTrack(item)
			}
		}
	}
	return true
}

// gridAutoTrack parses grid-auto-columns and grid-auto-rows
func gridAutoTrack(p *parser, vl *pa.ValueList) (values.Value, bool) {
	return trackSize(p, vl)
}

// gridAutoFlow parses [row | column] || dense
func gridAutoFlow(p *parser, vl *pa.ValueList) (values.Value, bool) {
	var direction, dense values.Value
	for i := 0; i < 2; i++ {
		switch kw := getKeyword(vl.Current()); kw {
		case "row", "column":
			if direction != nil {
				return nil, false
			}
			direction = p.keyword(kw)
		case "dense":
			if dense != nil {
				return nil, false
			}
			dense = p.keyword(kw)
		default:
			i = 2
			continue
		}
		vl.Next()
	}
	switch {
	case direction != nil && dense != nil:
		return values.List{Items: []values.Value{direction, dense}}, true
	case direction != nil:
		return direction, true
	case dense != nil:
		// dense alone means row dense
		return values.List{Items: []values.Value{p.keyword("row"), dense}}, true
	}
	return nil, false
}

// gridLine parses auto, <custom-ident>, [<integer> && <custom-ident>?]
// or [span && [<integer> || <custom-ident>]].
func gridLine(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "auto") {
		return p.keyword("auto"), true
	}
	var (
		span    bool
		integer values.Value
		ident   values.Value
	)
	for i := 0; i < 3 && !vl.AtEnd(); i++ {
		token := vl.Current()
		if n, ok := token.(pa.Number); ok && n.IsInt() {
			if integer != nil || n.ValueF == 0 {
				return nil, p.fail(RangeViolation)
			}
			integer = p.number(n.ValueF, pr.Scalar)
		} else if kw := getKeyword(token); kw == "span" {
			if span {
				return nil, false
			}
			span = true
		} else if id, ok := token.(pa.Ident); ok && ident == nil && !isReservedGridName(id.Value) {
			ident = values.CustomIdent(id.Value)
		} else {
			break
		}
		vl.Next()
	}
	if span {
		if n, ok := integer.(values.Numeric); ok && n.Value < 0 {
			return nil, p.fail(RangeViolation)
		}
		if integer == nil && ident == nil {
			return nil, false
		}
	}
	var items []values.Value
	if span {
		items = append(items, p.keyword("span"))
	}
	if integer != nil {
		items = append(items, integer)
	}
	if ident != nil {
		items = append(items, ident)
	}
	switch len(items) {
	case 0:
		return nil, false
	case 1:
		return items[0], true
	default:
		return values.List{Items: items}, true
	}
}

// gridAreaRow splits a string of grid-template-areas into its cells.
// Unnamed cells are returned as empty strings.
func gridAreaRow(s string) ([]string, bool) {
	var (
		row       []string
		lastIsDot bool
	)
	for _, token := range pa.TokenizeString(s, true) {
		switch token := token.(type) {
		case pa.Ident:
			row = append(row, token.Value)
			lastIsDot = false
		case pa.Literal:
			if token.Value != "." {
				return nil, false
			}
			if !lastIsDot {
				row = append(row, "")
			}
			lastIsDot = true
		case pa.Whitespace:
			lastIsDot = false
		default:
			return nil, false
		}
	}
	return row, len(row) != 0
}

// gridTemplateAreas parses a list of strings, one per row. Each named
// area must form a rectangle.
func gridTemplateAreas(p *parser, vl *pa.ValueList) (values.Value, bool) {
	if consumeIdent(vl, "none") {
		return p.keyword("none"), true
	}
	var rows []string
	for !vl.AtEnd() {
		s, ok := vl.Current().(pa.String)
		if !ok {
			break
		}
		rows = append(rows, s.Value)
		vl.Next()
	}
	if len(rows) == 0 {
		return nil, false
	}
	areas, ok := p.buildGridAreas(rows)
	if !ok {
		return nil, false
	}
	return areas, true
}

// buildGridAreas checks that the rows have the same number of columns,
// and that each name defines a rectangle.
func (p *parser) buildGridAreas(rows []string) (values.GridTemplateAreas, bool) {
	out := values.GridTemplateAreas{Areas: map[string]values.GridArea{}, Rows: len(rows)}
	for rowIndex, s := range rows {
		cells, ok := gridAreaRow(s)
		if !ok {
			return out, p.fail(StructuralViolation)
		}
		if rowIndex == 0 {
			out.Columns = len(cells)
		} else if len(cells) != out.Columns {
			return out, p.fail(StructuralViolation)
		}
		for column := 0; column < len(cells); {
			name := cells[column]
			end := column + 1
			for end < len(cells) && cells[end] == name {
				end++
			}
			if name != "" {
				area, seen := out.Areas[name]
				if seen {
					// the area must continue the rectangle started on the previous row
					if area.RowEnd != rowIndex || area.ColumnStart != column || area.ColumnEnd != end {
						return out, p.fail(StructuralViolation)
					}
					area.RowEnd++
				} else {
					area = values.GridArea{RowStart: rowIndex, RowEnd: rowIndex + 1, ColumnStart: column, ColumnEnd: end}
				}
				out.Areas[name] = area
			}
			column = end
		}
	}
	return out, true
}
