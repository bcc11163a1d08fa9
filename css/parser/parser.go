package parser

import (
	"fmt"

	"github.com/benoitkugler/cssdecl/utils"
)

// Compound is a compound CSS chunk, like a declaration
// or an at-rule.
type Compound interface {
	Pos() Pos
	isCompound()
}

// AtRule is an at-rule found in a declaration list.
// It is always ignored by the value parser.
type AtRule struct {
	AtKeyword        string
	Prelude, Content []Token
	pos              Pos
}

type Declaration struct {
	Name      string
	Value     []Token
	pos       Pos
	Important bool
}

func (AtRule) isCompound()      {}
func (Declaration) isCompound() {}
func (ParseError) isCompound()  {}
func (Whitespace) isCompound()  {}
func (Comment) isCompound()     {}

func (t AtRule) Pos() Pos      { return t.pos }
func (t Declaration) Pos() Pos { return t.pos }

// Parse a single `declaration`, returning a [ParseError] or a [Declaration]
//
// This is used e.g. for a declaration in an `@supports`
// rule, or for the CSSOM `setProperty` entry point.
// Any whitespace or comment before the “:“ colon is dropped.
func ParseOneDeclaration(input []Token) Compound {
	tokens := NewIter(input)
	firstToken := tokens.NextSignificant()
	if firstToken == nil {
		return ParseError{pos: Pos{1, 1}, kind: errEmpty, Message: "Input is empty"}
	}
	return parseDeclaration(firstToken, tokens)
}

// parses a declaration, by consuming `tokens`
// until the end of the declaration or the first error.
// returns either a [ParseError] or a [Declaration]
func parseDeclaration(firstToken Token, tokens *TokensIter) Compound {
	name, ok := firstToken.(Ident)
	if !ok {
		return ParseError{
			pos:     firstToken.Pos(),
			kind:    errInvalid,
			Message: fmt.Sprintf("Expected <ident> for declaration name, got %s.", firstToken.Kind()),
		}
	}
	colon := tokens.NextSignificant()
	if colon == nil {
		return ParseError{
			pos:     firstToken.Pos(),
			kind:    errInvalid,
			Message: "Expected ':' after declaration name, got EOF",
		}
	}

	if lit, ok := colon.(Literal); !ok || lit.Value != ":" {
		return ParseError{
			pos:     colon.Pos(),
			kind:    errInvalid,
			Message: fmt.Sprintf("Expected ':' after declaration name, got %s.", colon.Kind()),
		}
	}

	const (
		_ = iota
		sValue
		sImportant
		sBang
	)
	var (
		value           []Token
		state           = sValue
		bangPosition, i = 0, -1
	)
	for tokens.HasNext() {
		i += 1
		token := tokens.Next()
		switch token := token.(type) {
		case Literal:
			if state == sValue && token.Value == "!" {
				state = sBang
				bangPosition = i
			} else {
				state = sValue
			}
		case Ident:
			if state == sBang && utils.AsciiLower(token.Value) == "important" {
				state = sImportant
			} else {
				state = sValue
			}
		default:
			if token.Kind() != KWhitespace && token.Kind() != KComment {
				state = sValue
			}
		}
		value = append(value, token)
	}

	if state == sImportant {
		value = value[:bangPosition]
	}

	return Declaration{
		pos:       name.pos,
		Name:      name.Value,
		Value:     value,
		Important: state == sImportant,
	}
}

// Like `parseDeclaration`, but stop at the first “;“.
func consumeDeclarationInList(firstToken Token, tokens *TokensIter) Compound {
	var otherDeclarationTokens []Token
	for tokens.HasNext() {
		token := tokens.Next()
		if lit, ok := token.(Literal); ok && lit.Value == ";" {
			break
		}
		otherDeclarationTokens = append(otherDeclarationTokens, token)
	}
	return parseDeclaration(firstToken, &TokensIter{otherDeclarationTokens, 0})
}

// ParseDeclarationListString tokenizes `css` and calls `ParseDeclarationList`.
func ParseDeclarationListString(css string, skipComments, skipWhitespace bool) []Compound {
	l := Tokenize([]byte(css), skipComments)
	return ParseDeclarationList(l, skipComments, skipWhitespace)
}

// Parse a `declaration list` (which may also contain at-rules).
// This is used e.g. for the content of a style rule
// or for the “style“ attribute of an HTML element.
//
// In contexts that don’t expect any at-rule, all `AtRule` objects should simply be rejected as invalid.
//
// If `skipComments`, ignore CSS comments at the top-level of the list.
// If `skipWhitespace`, ignore whitespace at the top-level of the list. Whitespace is still preserved in
// the `Declaration.value` of declarations and the `AtRule.prelude` and `AtRule.content` of at-rules.
func ParseDeclarationList(input []Token, skipComments, skipWhitespace bool) []Compound {
	tokens := NewIter(input)
	var result []Compound

	for tokens.HasNext() {
		token := tokens.Next()
		switch token := token.(type) {
		case Whitespace:
			if !skipWhitespace {
				result = append(result, token)
			}
		case Comment:
			if !skipComments {
				result = append(result, token)
			}
		case AtKeyword:
			val := consumeAtRule(token, tokens)
			result = append(result, val)
		case Literal:
			if token.Value != ";" {
				val := consumeDeclarationInList(token, tokens)
				result = append(result, val)
			}
		default:
			val := consumeDeclarationInList(token, tokens)
			result = append(result, val)
		}
	}
	return result
}

// Parse an at-rule, by consuming just enough of `tokens` for this rule.
// [atKeyword] is the token starting this rule.
func consumeAtRule(atKeyword AtKeyword, tokens *TokensIter) AtRule {
	var (
		prelude []Token
		content []Token
	)
	for tokens.HasNext() {
		token := tokens.Next()
		if curly, ok := token.(CurlyBracketsBlock); ok {
			content = curly.Arguments
			if content == nil {
				content = []Token{}
			}
			break
		}
		lit, ok := token.(Literal)
		if ok && lit.Value == ";" {
			break
		}
		prelude = append(prelude, token)
	}
	return AtRule{
		AtKeyword: atKeyword.Value,
		pos:       atKeyword.pos,
		Prelude:   prelude,
		Content:   content,
	}
}
