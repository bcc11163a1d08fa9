package validation

import (
	"strings"

	pa "github.com/benoitkugler/cssdecl/css/parser"
	"github.com/benoitkugler/cssdecl/logger"
	"github.com/benoitkugler/cssdecl/utils"
)

// ParseDeclarations parses a list of declarations, like the content
// of a style attribute, and returns the records of the valid ones.
//
// Invalid declarations are logged and ignored, without affecting
// the others. At-rules are ignored.
func ParseDeclarations(css string, ctx *Context) []Record {
	var out Collector
	for _, item := range pa.ParseDeclarationListString(css, true, true) {
		switch item := item.(type) {
		case pa.Declaration:
			addDeclaration(item, ctx, &out)
		case pa.ParseError:
			logger.Warning().Infof("Invalid declaration: %s", item.Message)
		case pa.AtRule:
			logger.Warning().Infof("Ignored at-rule @%s in a declaration list.", item.AtKeyword)
		}
	}
	return out.Records()
}

func addDeclaration(decl pa.Declaration, ctx *Context, out *Collector) {
	var err error
	if strings.HasPrefix(decl.Name, "--") {
		err = ParseCustomProperty(decl.Name, decl.Important, decl.Value, ctx, out)
	} else {
		name := utils.AsciiLower(decl.Name)
		id := ctx.caches().PropertyID(name)
		if id == 0 {
			logger.Warning().Infof("Ignored `%s:%s` , unknown property.", decl.Name, pa.Serialize(decl.Value))
			return
		}
		err = ParseValue(id, decl.Important, decl.Value, ctx, out)
	}
	if err != nil {
		logger.Warning().Infof("Ignored `%s:%s` , %s.", decl.Name, pa.Serialize(decl.Value), err)
	}
}
