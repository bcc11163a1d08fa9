package values

import (
	"sort"
	"strings"

	pa "github.com/benoitkugler/cssdecl/css/parser"
)

// GridLineNames is a bracketed list of line names, like [a b].
type GridLineNames struct {
	Names []string
}

func (g GridLineNames) CSSText() string {
	chunks := make([]string, len(g.Names))
	for i, name := range g.Names {
		chunks[i] = pa.SerializeIdentifier(name)
	}
	return "[" + strings.Join(chunks, " ") + "]"
}

func (g GridLineNames) Equal(other Value) bool {
	o, ok := other.(GridLineNames)
	if !ok || len(g.Names) != len(o.Names) {
		return false
	}
	for i, n := range g.Names {
		if n != o.Names[i] {
			return false
		}
	}
	return true
}

// GridArea is a rectangle of grid cells, with
// exclusive ends, starting at 0.
type GridArea struct {
	RowStart, RowEnd       int
	ColumnStart, ColumnEnd int
}

// GridTemplateAreas is the value of grid-template-areas.
type GridTemplateAreas struct {
	Areas   map[string]GridArea
	Rows    int
	Columns int
}

// rows rebuilds the area names of each cell, using "." for
// unnamed cells.
func (g GridTemplateAreas) rows() [][]string {
	out := make([][]string, g.Rows)
	for i := range out {
		out[i] = make([]string, g.Columns)
		for j := range out[i] {
			out[i][j] = "."
		}
	}
	for name, area := range g.Areas {
		for row := area.RowStart; row < area.RowEnd && row < g.Rows; row++ {
			for column := area.ColumnStart; column < area.ColumnEnd && column < g.Columns; column++ {
				out[row][column] = name
			}
		}
	}
	return out
}

// CSSText returns one string per row.
func (g GridTemplateAreas) CSSText() string {
	rows := g.rows()
	chunks := make([]string, len(rows))
	for i, row := range rows {
		chunks[i] = pa.SerializeString(strings.Join(row, " "))
	}
	return strings.Join(chunks, " ")
}

func (g GridTemplateAreas) Equal(other Value) bool {
	o, ok := other.(GridTemplateAreas)
	if !ok || g.Rows != o.Rows || g.Columns != o.Columns || len(g.Areas) != len(o.Areas) {
		return false
	}
	for name, area := range g.Areas {
		if oa, has := o.Areas[name]; !has || oa != area {
			return false
		}
	}
	return true
}

// Names returns the sorted names of the areas.
func (g GridTemplateAreas) Names() []string {
	out := make([]string, 0, len(g.Areas))
	for name := range g.Areas {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
