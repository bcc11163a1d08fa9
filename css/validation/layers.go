package validation

import (
	pa "github.com/benoitkugler/cssdecl/css/parser"
	pr "github.com/benoitkugler/cssdecl/css/properties"
	"github.com/benoitkugler/cssdecl/css/values"
)

// layers stores the values of a comma separated shorthand:
// one row per layer, one column per longhand.
// Missing values are nil.
type layers [][]values.Value

// parseLayers calls [layer] for each comma separated layer of [vl].
func (p *parser) parseLayers(vl *pa.ValueList, width int, layer func(row []values.Value) bool) (layers, bool) {
	var out layers
	for {
		row := make([]values.Value, width)
		if !layer(row) {
			return nil, false
		}
		out = append(out, row)
		if len(out) > p.maxArguments {
			return nil, p.fail(StructuralViolation)
		}
		if vl.AtEnd() {
			return out, true
		}
		if !vl.SkipComma() {
			return nil, false
		}
	}
}

// layerInitials are the initial values of the layered longhands,
// used to fill the layers missing a value.
var layerInitials = map[pr.KnownProp]values.Value{
	pr.PAnimationDuration:       values.Numeric{Value: 0, Unit: pr.S},
	pr.PAnimationTimingFunction: values.Keyword("ease"),
	pr.PAnimationDelay:          values.Numeric{Value: 0, Unit: pr.S},
	pr.PAnimationIterationCount: values.Numeric{Value: 1, Unit: pr.Scalar},
	pr.PAnimationDirection:      values.Keyword("normal"),
	pr.PAnimationFillMode:       values.Keyword("none"),
	pr.PAnimationPlayState:      values.Keyword("running"),
	pr.PAnimationName:           values.Keyword("none"),

	pr.PTransitionProperty:       values.Keyword("all"),
	pr.PTransitionDuration:       values.Numeric{Value: 0, Unit: pr.S},
	pr.PTransitionTimingFunction: values.Keyword("ease"),
	pr.PTransitionDelay:          values.Numeric{Value: 0, Unit: pr.S},

	pr.PBackgroundImage:      values.Keyword("none"),
	pr.PBackgroundPositionX:  values.Numeric{Value: 0, Unit: pr.Perc},
	pr.PBackgroundPositionY:  values.Numeric{Value: 0, Unit: pr.Perc},
	pr.PBackgroundSize:       values.Keyword("auto"),
	pr.PBackgroundRepeatX:    values.Keyword("repeat"),
	pr.PBackgroundRepeatY:    values.Keyword("repeat"),
	pr.PBackgroundAttachment: values.Keyword("scroll"),
	pr.PBackgroundOrigin:     values.Keyword("padding-box"),
	pr.PBackgroundClip:       values.Keyword("border-box"),

	pr.PWebkitMaskImage:     values.Keyword("none"),
	pr.PWebkitMaskPositionX: values.Numeric{Value: 0, Unit: pr.Perc},
	pr.PWebkitMaskPositionY: values.Numeric{Value: 0, Unit: pr.Perc},
	pr.PWebkitMaskSize:      values.Keyword("auto"),
	pr.PWebkitMaskRepeatX:   values.Keyword("repeat"),
	pr.PWebkitMaskRepeatY:   values.Keyword("repeat"),
	pr.PWebkitMaskOrigin:    values.Keyword("border-box"),
	pr.PWebkitMaskClip:      values.Keyword("border-box"),
}

// column returns the value of the longhand [prop], stored at [index]:
// a single value for one layer, or a comma separated list where the
// missing values are the initial value of the longhand.
// It returns nil if no layer sets the longhand.
func (ls layers) column(index int, prop pr.KnownProp) values.Value {
	set := false
	for _, row := range ls {
		if row[index] != nil {
			set = true
			break
		}
	}
	if !set {
		return nil
	}
	if len(ls) == 1 {
		return ls[0][index]
	}
	items := make([]values.Value, len(ls))
	for i, row := range ls {
		if items[i] = row[index]; items[i] == nil {
			items[i] = layerInitials[prop]
		}
	}
	return values.List{Items: items, Sep: values.CommaSeparator}
}

// addLayers appends the records of the longhands, one per column
func (p *parser) addLayers(longhands []pr.KnownProp, ls layers) {
	found := make([]values.Value, len(longhands))
	for i := range longhands {
		found[i] = ls.column(i, longhands[i])
	}
	p.addAll(longhands, found)
}

// expandListOfGroups parses the comma separated shorthands whose
// layers are made of longhand values in any order.
func (p *parser) expandListOfGroups(vl *pa.ValueList, items []validator) (layers, bool) {
	return p.parseLayers(vl, len(items), func(row []values.Value) bool {
		found, ok := p.matchAnyOrder(vl, items)
		copy(row, found)
		return ok
	})
}

var animationItems = []validator{
	duration, timingFunction, delay, iterationCount,
	animationDirection, animationFillMode, animationPlayState, animationName,
}

func expandAnimation(p *parser, vl *pa.ValueList) bool {
	ls, ok := p.expandListOfGroups(vl, animationItems)
	if !ok {
		return false
	}
	p.addLayers(p.shorthand.Longhands(), ls)
	return true
}

var transitionItems = []validator{transitionPropertyItem, duration, timingFunction, delay}

// expandTransition rejects 'none' as a property when there are several layers.
func expandTransition(p *parser, vl *pa.ValueList) bool {
	ls, ok := p.expandListOfGroups(vl, transitionItems)
	if !ok {
		return false
	}
	if len(ls) > 1 {
		for _, row := range ls {
			if kw, isKeyword := row[0].(values.Keyword); isKeyword && kw == "none" {
				return false
			}
		}
	}
	p.addLayers(p.shorthand.Longhands(), ls)
	return true
}

// the columns of a fill layer, shared by background and -webkit-mask
const (
	fillImage = iota
	fillPositionX
	fillPositionY
	fillSizeIndex
	fillRepeatX
	fillRepeatY
	fillAttachmentIndex // background only
	fillOriginIndex
	fillClipIndex
	fillColor // background only, final layer
	fillColumns
)

// fillLayer parses one layer of background or -webkit-mask.
func (p *parser) fillLayer(vl *pa.ValueList, row []values.Value, isBackground bool) bool {
	for !vl.AtEnd() && !vl.IsOperator(",") {
		if row[fillImage] == nil {
			if v, ok := imageOrNone(p, vl); ok {
				row[fillImage] = v
				continue
			}
		}
		if row[fillPositionX] == nil {
			if x, y, ok := p.position(vl, 4); ok {
				row[fillPositionX], row[fillPositionY] = x, y
				if vl.IsOperator("/") {
					vl.Next()
					size, ok := fillSize(p, vl)
					if !ok {
						return false
					}
					row[fillSizeIndex] = size
				}
				continue
			}
		}
		if row[fillRepeatX] == nil {
			if x, y, ok := p.fillRepeat(vl); ok {
				row[fillRepeatX], row[fillRepeatY] = x, y
				continue
			}
		}
		if isBackground && row[fillAttachmentIndex] == nil {
			if v, ok := fillAttachment(p, vl); ok {
				row[fillAttachmentIndex] = v
				continue
			}
		}
		kw := getKeyword(vl.Current())
		if row[fillOriginIndex] == nil && boxKeywords.Has(kw) {
			vl.Next()
			row[fillOriginIndex] = p.keyword(kw)
			continue
		}
		if row[fillClipIndex] == nil && clipBoxKeywords.Has(kw) {
			vl.Next()
			row[fillClipIndex] = p.keyword(kw)
			continue
		}
		if isBackground && row[fillColor] == nil {
			if c, ok := p.consumeColor(vl, acceptInternalText); ok {
				row[fillColor] = c
				continue
			}
		}
		return false
	}
	// a single box sets both the origin and the clip
	if row[fillOriginIndex] != nil && row[fillClipIndex] == nil {
		row[fillClipIndex] = row[fillOriginIndex]
	}
	for _, v := range row {
		if v != nil {
			return true
		}
	}
	return false
}

// fillLonghands maps the longhands of a fill shorthand to the layer columns
func fillLonghands(shorthand pr.KnownProp) []int {
	if shorthand == pr.SWebkitMask {
		return []int{fillImage, fillPositionX, fillPositionY, fillSizeIndex, fillRepeatX, fillRepeatY, fillOriginIndex, fillClipIndex}
	}
	return []int{fillImage, fillPositionX, fillPositionY, fillSizeIndex, fillRepeatX, fillRepeatY, fillAttachmentIndex, fillOriginIndex, fillClipIndex, fillColor}
}

func (p *parser) expandFill(vl *pa.ValueList, isBackground bool) bool {
	ls, ok := p.parseLayers(vl, fillColumns, func(row []values.Value) bool {
		return p.fillLayer(vl, row, isBackground)
	})
	if !ok {
		return false
	}
	// the color is only valid in the final layer
	for _, row := range ls[:len(ls)-1] {
		if row[fillColor] != nil {
			return false
		}
	}
	longhands := p.shorthand.Longhands()
	columns := fillLonghands(p.shorthand)
	found := make([]values.Value, len(longhands))
	for i, column := range columns {
		if column == fillColor {
			found[i] = ls[len(ls)-1][fillColor]
		} else {
			found[i] = ls.column(column, longhands[i])
		}
	}
	p.addAll(longhands, found)
	return true
}

func expandBackground(p *parser, vl *pa.ValueList) bool { return p.expandFill(vl, true) }

func expandMask(p *parser, vl *pa.ValueList) bool { return p.expandFill(vl, false) }

// expandFillPosition splits a list of positions into the x and y longhands
func expandFillPosition(p *parser, vl *pa.ValueList) bool {
	ls, ok := p.parseLayers(vl, 2, func(row []values.Value) bool {
		x, y, ok := p.position(vl, 4)
		row[0], row[1] = x, y
		return ok
	})
	if !ok {
		return false
	}
	p.addLayers(p.shorthand.Longhands(), ls)
	return true
}

// expandFillRepeat splits a list of repeat values into the x and y longhands
func expandFillRepeat(p *parser, vl *pa.ValueList) bool {
	ls, ok := p.parseLayers(vl, 2, func(row []values.Value) bool {
		x, y, ok := p.fillRepeat(vl)
		row[0], row[1] = x, y
		return ok
	})
	if !ok {
		return false
	}
	p.addLayers(p.shorthand.Longhands(), ls)
	return true
}
