package values

func (k Keyword) Accept(v Visitor)                   { v.VisitKeyword(k) }
func (n Numeric) Accept(v Visitor)                   { v.VisitNumeric(n) }
func (s String) Accept(v Visitor)                    { v.VisitString(s) }
func (c CustomIdent) Accept(v Visitor)               { v.VisitCustomIdent(c) }
func (u URI) Accept(v Visitor)                       { v.VisitURI(u) }
func (c Calc) Accept(v Visitor)                      { v.VisitCalc(c) }
func (l List) Accept(v Visitor)                      { v.VisitList(l) }
func (f Function) Accept(v Visitor)                  { v.VisitFunction(f) }
func (p Pair) Accept(v Visitor)                      { v.VisitPair(p) }
func (q Quad) Accept(v Visitor)                      { v.VisitQuad(q) }
func (c Color) Accept(v Visitor)                     { v.VisitColor(c) }
func (s Shadow) Accept(v Visitor)                    { v.VisitShadow(s) }
func (g LinearGradient) Accept(v Visitor)            { v.VisitLinearGradient(g) }
func (g RadialGradient) Accept(v Visitor)            { v.VisitRadialGradient(g) }
func (g DeprecatedGradient) Accept(v Visitor)        { v.VisitDeprecatedGradient(g) }
func (s ImageSet) Accept(v Visitor)                  { v.VisitImageSet(s) }
func (b BorderImageSlice) Accept(v Visitor)          { v.VisitBorderImageSlice(b) }
func (g GridLineNames) Accept(v Visitor)             { v.VisitGridLineNames(g) }
func (g GridTemplateAreas) Accept(v Visitor)         { v.VisitGridTemplateAreas(g) }
func (c CustomPropertyReference) Accept(v Visitor)   { v.VisitCustomPropertyReference(c) }
func (c CustomPropertyDeclaration) Accept(v Visitor) { v.VisitCustomPropertyDeclaration(c) }
func (c CSSWide) Accept(v Visitor)                   { v.VisitCSSWide(c) }
func (c Circle) Accept(v Visitor)                    { v.VisitCircle(c) }
func (e Ellipse) Accept(v Visitor)                   { v.VisitEllipse(e) }
func (p Polygon) Accept(v Visitor)                   { v.VisitPolygon(p) }
func (i Inset) Accept(v Visitor)                     { v.VisitInset(i) }
func (c CubicBezier) Accept(v Visitor)               { v.VisitCubicBezier(c) }
func (s Steps) Accept(v Visitor)                     { v.VisitSteps(s) }
func (f FontFamily) Accept(v Visitor)                { v.VisitFontFamily(f) }
func (f FontFeature) Accept(v Visitor)               { v.VisitFontFeature(f) }
func (u UnicodeRange) Accept(v Visitor)              { v.VisitUnicodeRange(u) }
func (f FontFaceSrc) Accept(v Visitor)               { v.VisitFontFaceSrc(f) }
func (r Reflection) Accept(v Visitor)                { v.VisitReflection(r) }
func (c ContentDistribution) Accept(v Visitor)       { v.VisitContentDistribution(c) }
func (p Path) Accept(v Visitor)                      { v.VisitPath(p) }
func (c Counter) Accept(v Visitor)                   { v.VisitCounter(c) }

// isValue restricts the implementations of [Value] to this package.
func (Keyword) isValue()                   {}
func (Numeric) isValue()                   {}
func (String) isValue()                    {}
func (CustomIdent) isValue()               {}
func (URI) isValue()                       {}
func (Calc) isValue()                      {}
func (List) isValue()                      {}
func (Function) isValue()                  {}
func (Pair) isValue()                      {}
func (Quad) isValue()                      {}
func (Color) isValue()                     {}
func (Shadow) isValue()                    {}
func (LinearGradient) isValue()            {}
func (RadialGradient) isValue()            {}
func (DeprecatedGradient) isValue()        {}
func (ImageSet) isValue()                  {}
func (BorderImageSlice) isValue()          {}
func (GridLineNames) isValue()             {}
func (GridTemplateAreas) isValue()         {}
func (CustomPropertyReference) isValue()   {}
func (CustomPropertyDeclaration) isValue() {}
func (CSSWide) isValue()                   {}
func (Circle) isValue()                    {}
func (Ellipse) isValue()                   {}
func (Polygon) isValue()                   {}
func (Inset) isValue()                     {}
func (CubicBezier) isValue()               {}
func (Steps) isValue()                     {}
func (FontFamily) isValue()                {}
func (FontFeature) isValue()               {}
func (UnicodeRange) isValue()              {}
func (FontFaceSrc) isValue()               {}
func (Reflection) isValue()                {}
func (ContentDistribution) isValue()       {}
func (Path) isValue()                      {}
func (Counter) isValue()                   {}
