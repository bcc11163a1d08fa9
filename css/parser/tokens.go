package parser

import (
	"io"
	"strconv"

	"github.com/benoitkugler/cssdecl/utils"
)

// Kind identifies the concrete type of a [Token].
type Kind uint8

const (
	KIdent Kind = iota + 1
	KAtKeyword
	KHash
	KString
	KURL
	KUnicodeRange
	KNumber
	KPercentage
	KDimension
	KWhitespace
	KComment
	KLiteral
	KParseError
	KFunctionBlock
	KParenthesesBlock
	KSquareBracketsBlock
	KCurlyBracketsBlock
)

// String returns the name used in the serialization tables.
func (k Kind) String() string {
	switch k {
	case KIdent:
		return "ident"
	case KAtKeyword:
		return "at-keyword"
	case KHash:
		return "hash"
	case KString:
		return "string"
	case KURL:
		return "url"
	case KUnicodeRange:
		return "unicode-range"
	case KNumber:
		return "number"
	case KPercentage:
		return "percentage"
	case KDimension:
		return "dimension"
	case KWhitespace:
		return "whitespace"
	case KComment:
		return "comment"
	case KLiteral:
		return "literal"
	case KParseError:
		return "error"
	case KFunctionBlock:
		return "function"
	case KParenthesesBlock:
		return "() block"
	case KSquareBracketsBlock:
		return "[] block"
	case KCurlyBracketsBlock:
		return "{} block"
	default:
		return "<invalid kind " + strconv.Itoa(int(k)) + ">"
	}
}

// Pos is the position of a token in the input, starting at (1, 1).
type Pos struct {
	Line, Column int
}

func newPosition(line, column int) Pos { return Pos{Line: line, Column: column} }

// Token is one component value, as returned by [Tokenize].
type Token interface {
	Pos() Pos
	Kind() Kind
	serializeTo(writer io.StringWriter)
}

type (
	Ident struct {
		pos   Pos
		Value string
	}
	AtKeyword struct {
		pos   Pos
		Value string
	}
	Hash struct {
		pos   Pos
		Value string
		// true if Value is a valid identifier
		IsIdentifier bool
	}
	String struct {
		pos   Pos
		Value string
		bad   bool
	}
	URL struct {
		pos   Pos
		Value string
		flag  uint8
	}
	UnicodeRange struct {
		pos        Pos
		Start, End uint32
	}
	Whitespace struct {
		pos   Pos
		Value string
	}
	Comment struct {
		pos   Pos
		Value string
	}
	// Literal is a delimiter, like ',', '/', ':' or '!'.
	Literal struct {
		pos   Pos
		Value string
	}
	ParseError struct {
		pos     Pos
		kind    errKind
		Message string
	}
)

// numeric is the common part of numbers, percentages and dimensions.
type numeric struct {
	pos Pos
	// Value is the representation, as found in the input
	Value string
	// ValueF is the parsed value
	ValueF utils.Fl
	isInt  bool
}

// IsInt returns true if the representation is an integer.
func (n numeric) IsInt() bool { return n.isInt }

// Int returns the value as an integer.
// It is only meaningful if IsInt() is true.
func (n numeric) Int() int { return int(n.ValueF) }

type (
	Number     struct{ numeric }
	Percentage struct{ numeric }
	Dimension  struct {
		numeric
		Unit string
	}
)

type (
	FunctionBlock struct {
		pos       Pos
		Name      string
		Arguments []Token
	}
	ParenthesesBlock struct {
		pos       Pos
		Arguments []Token
	}
	SquareBracketsBlock struct {
		pos       Pos
		Arguments []Token
	}
	CurlyBracketsBlock struct {
		pos       Pos
		Arguments []Token
	}
)

const (
	isErrorInString uint8 = 1 << iota
	isErrorInURL
)

type errKind string

const (
	errEmpty       errKind = "empty"
	errInvalid     errKind = "invalid"
	errBadString   errKind = "bad-string"
	errBadURL      errKind = "bad-url"
	errEofInString errKind = "eof-in-string"
	errEofInUrl    errKind = "eof-in-url"
	errNumber      errKind = "invalid number"
	errP           errKind = ")"
	errB           errKind = "]"
	errC           errKind = "}"
)

func (t Ident) Pos() Pos               { return t.pos }
func (t AtKeyword) Pos() Pos           { return t.pos }
func (t Hash) Pos() Pos                { return t.pos }
func (t String) Pos() Pos              { return t.pos }
func (t URL) Pos() Pos                 { return t.pos }
func (t UnicodeRange) Pos() Pos        { return t.pos }
func (t Whitespace) Pos() Pos          { return t.pos }
func (t Comment) Pos() Pos             { return t.pos }
func (t Literal) Pos() Pos             { return t.pos }
func (t ParseError) Pos() Pos          { return t.pos }
func (t numeric) Pos() Pos             { return t.pos }
func (t FunctionBlock) Pos() Pos       { return t.pos }
func (t ParenthesesBlock) Pos() Pos    { return t.pos }
func (t SquareBracketsBlock) Pos() Pos { return t.pos }
func (t CurlyBracketsBlock) Pos() Pos  { return t.pos }

func (Ident) Kind() Kind               { return KIdent }
func (AtKeyword) Kind() Kind           { return KAtKeyword }
func (Hash) Kind() Kind                { return KHash }
func (String) Kind() Kind              { return KString }
func (URL) Kind() Kind                 { return KURL }
func (UnicodeRange) Kind() Kind        { return KUnicodeRange }
func (Whitespace) Kind() Kind          { return KWhitespace }
func (Comment) Kind() Kind             { return KComment }
func (Literal) Kind() Kind             { return KLiteral }
func (ParseError) Kind() Kind          { return KParseError }
func (Number) Kind() Kind              { return KNumber }
func (Percentage) Kind() Kind          { return KPercentage }
func (Dimension) Kind() Kind           { return KDimension }
func (FunctionBlock) Kind() Kind       { return KFunctionBlock }
func (ParenthesesBlock) Kind() Kind    { return KParenthesesBlock }
func (SquareBracketsBlock) Kind() Kind { return KSquareBracketsBlock }
func (CurlyBracketsBlock) Kind() Kind  { return KCurlyBracketsBlock }

func (t String) isError() bool { return t.bad }

func (t Hash) isIdentifier() bool { return t.IsIdentifier }

// IsError returns true if the URL was not properly terminated.
func (t URL) IsError() bool { return t.flag != 0 }

func (t ParseError) Error() string { return t.Message }

// Constructors, mainly used to build tokens programmatically.

func NewIdent(value string, pos Pos) Ident     { return Ident{pos: pos, Value: value} }
func NewLiteral(value string, pos Pos) Literal { return Literal{pos: pos, Value: value} }
func NewString(value string, pos Pos) String   { return String{pos: pos, Value: value} }
func NewWhitespace(value string, pos Pos) Whitespace {
	return Whitespace{pos: pos, Value: value}
}

func NewFunctionBlock(pos Pos, name string, arguments []Token) FunctionBlock {
	return FunctionBlock{pos: pos, Name: name, Arguments: arguments}
}

// NewNumber returns a number token for v, using the shortest representation.
func NewNumber(v utils.Fl, pos Pos) Number {
	repr := utils.FormatFloat(v)
	_, err := strconv.Atoi(repr)
	return Number{numeric{pos: pos, Value: repr, ValueF: v, isInt: err == nil}}
}

// IsLiteral returns true if t is the literal s.
func IsLiteral(t Token, s string) bool {
	lit, ok := t.(Literal)
	return ok && lit.Value == s
}

// HasVar returns true if t is, or contains, a var() function.
func HasVar(t Token) bool {
	switch t := t.(type) {
	case FunctionBlock:
		if utils.AsciiLower(t.Name) == "var" {
			return true
		}
		return anyHasVar(t.Arguments)
	case ParenthesesBlock:
		return anyHasVar(t.Arguments)
	case SquareBracketsBlock:
		return anyHasVar(t.Arguments)
	case CurlyBracketsBlock:
		return anyHasVar(t.Arguments)
	}
	return false
}

func anyHasVar(tokens []Token) bool {
	for _, t := range tokens {
		if HasVar(t) {
			return true
		}
	}
	return false
}

// RemoveWhitespace removes any Whitespace and Comment tokens from the list.
func RemoveWhitespace(tokens []Token) []Token {
	var out []Token
	for _, token := range tokens {
		if k := token.Kind(); k != KWhitespace && k != KComment {
			out = append(out, token)
		}
	}
	return out
}

// SplitOnComma splits a list of tokens on commas, ie “LiteralToken(',')“.
// Only “top-level“ comma tokens are considered: commas in functions
// or blocks are not.
func SplitOnComma(tokens []Token) [][]Token {
	var parts [][]Token
	var thisPart []Token
	for _, token := range tokens {
		if IsLiteral(token, ",") {
			parts = append(parts, thisPart)
			thisPart = nil
		} else {
			thisPart = append(thisPart, token)
		}
	}
	parts = append(parts, thisPart)
	return parts
}
