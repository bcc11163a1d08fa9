package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	"github.com/benoitkugler/cssdecl/css/values"
)

// gridTemplate stores the longhands set by the grid-template syntax
type gridTemplate struct {
	rows, columns, areas values.Value
}

// parseGridTemplate parses
// none | <rows> / <columns> | [<line-names>? <string> <track-size>? <line-names>?]+ [/ <track-list>]?
func (p *parser) parseGridTemplate(vl *pa.ValueList) (gridTemplate, bool) {
	if getKeyword(vl.Current()) == "none" && vl.Peek(1) == nil {
		vl.Next()
		none := p.keyword("none")
		return gridTemplate{rows: none, columns: none, areas: none}, true
	}

	start := vl.Save()
	if rows, ok := trackList(p, vl); ok && vl.IsOperator("/") {
		vl.Next()
		if columns, ok := trackList(p, vl); ok && vl.AtEnd() {
			return gridTemplate{rows: rows, columns: columns, areas: p.keyword("none")}, true
		}
	}
	vl.Restore(start)

	return p.gridTemplateWithAreas(vl)
}

// gridTemplateWithAreas parses the syntax defining the rows with the area strings.
// The line names ending a row are merged with the names starting the next one.
func (p *parser) gridTemplateWithAreas(vl *pa.ValueList) (gridTemplate, bool) {
	var (
		out     gridTemplate
		b       = trackListBuilder{maxTracks: p.maxTracks}
		strs    []string
		pending int // consecutive line names
	)
	for !vl.AtEnd() && !vl.IsOperator("/") {
		if names, ok := lineNames(vl.Current()); ok {
			pending++
			if pending > 2 || (pending > 1 && len(strs) == 0) {
				return out, false
			}
			vl.Next()
			b.addNames(names)
			continue
		}
		s, ok := vl.Current().(pa.String)
		if !ok {
			return out, false
		}
		vl.Next()
		strs = append(strs, s.Value)
		pending = 0

		size := p.keyword("auto")
		pos := vl.Save()
		if v, ok := trackSize(p, vl); ok {
			size = v
		} else {
			vl.Restore(pos)
		}
		b.addTrack(size)
	}
	if len(strs) == 0 || pending > 1 {
		return out, false
	}
	areas, ok := p.buildGridAreas(strs)
	if !ok {
		return out, false
	}
	out.areas = areas
	out.rows, _ = b.value()

	out.columns = p.keyword("none")
	if vl.IsOperator("/") {
		vl.Next()
		if consumeIdent(vl, "none") {
			return out, false
		}
		if out.columns, ok = trackList(p, vl); !ok {
			return out, false
		}
	}
	return out, vl.AtEnd()
}

func expandGridTemplate(p *parser, vl *pa.ValueList) bool {
	t, ok := p.parseGridTemplate(vl)
	if !ok || !vl.AtEnd() {
		return false
	}
	p.addAll(p.shorthand.Longhands(), []values.Value{t.rows, t.columns, t.areas})
	return true
}

// expandGrid parses <grid-template> | <grid-auto-flow> [<grid-auto-rows> [/ <grid-auto-columns>]?]?
// The longhands not set by the chosen syntax are implicit.
func expandGrid(p *parser, vl *pa.ValueList) bool {
	longhands := p.shorthand.Longhands() // template rows, columns, areas, auto flow, rows, columns
	start := vl.Save()
	if t, ok := p.parseGridTemplate(vl); ok && vl.AtEnd() {
		p.addAll(longhands, []values.Value{t.rows, t.columns, t.areas, nil, nil, nil})
		return true
	}
	vl.Restore(start)

	flow, ok := gridAutoFlow(p, vl)
	if !ok {
		return false
	}
	var autoRows, autoColumns values.Value
	if !vl.AtEnd() {
		if autoRows, ok = gridAutoTrack(p, vl); !ok {
			return false
		}
		if vl.IsOperator("/") {
			vl.Next()
			if autoColumns, ok = gridAutoTrack(p, vl); !ok {
				return false
			}
		}
	}
	if !vl.AtEnd() {
		return false
	}
	p.addAll(longhands, []values.Value{nil, nil, nil, flow, autoRows, autoColumns})
	return true
}

// expandGridArea is used by grid-area, grid-row and grid-column:
// 1 to 4 (or 2) grid lines separated by '/'. An omitted line copies
// its opposite line when it is a custom identifier, and is auto otherwise.
func expandGridArea(p *parser, vl *pa.ValueList) bool {
	longhands := p.shorthand.Longhands()
	n := len(longhands)
	found := make([]values.Value, n)
	count := 0
	for {
		v, ok := gridLine(p, vl)
		if !ok {
			return false
		}
		found[count] = v
		count++
		if vl.AtEnd() {
			break
		}
		if !vl.IsOperator("/") || count == n {
			return false
		}
		vl.Next()
	}
	for i := count; i < n; i++ {
		source := i - n/2
		if n == 4 && i == 1 {
			source = 0
		}
		if ident, ok := found[source].(values.CustomIdent); ok {
			found[i] = ident
		} else {
			found[i] = p.keyword("auto")
		}
	}
	p.addAll(longhands, found)
	return true
}
