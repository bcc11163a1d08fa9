package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/benoitkugler/cssdecl/utils"
)

var (
	numberRe    = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+([eE][+-]?[0-9]+)?`)
	hexEscapeRe = regexp.MustCompile(`^([0-9A-Fa-f]{1,6})[ \n\t]?`)
)

// nestedBlock is a block being filled by the tokenizer.
type nestedBlock struct {
	parent  []Token
	endChar byte
	open    Token // FunctionBlock or one of the bracket blocks, with no arguments yet
}

// close returns the block token, with its arguments.
func (b nestedBlock) close(arguments []Token) Token {
	switch open := b.open.(type) {
	case FunctionBlock:
		open.Arguments = arguments
		return open
	case ParenthesesBlock:
		open.Arguments = arguments
		return open
	case SquareBracketsBlock:
		open.Arguments = arguments
		return open
	case CurlyBracketsBlock:
		open.Arguments = arguments
		return open
	default:
		panic("unexpected block type")
	}
}

// TokenizeString is a convenience wrapper for [Tokenize].
func TokenizeString(css string, skipComments bool) []Token {
	return Tokenize([]byte(css), skipComments)
}

// Tokenize parses a list of component values.
// If `skipComments` is true, ignore CSS comments :
// the return values (and recursively its blocks and functions)
// will not contain any `Comment` object.
//
// The lexical scanning is done by the tdewolff CSS lexer; this function
// unescapes the raw tokens, parses numbers and nests blocks and functions.
func Tokenize(input []byte, skipComments bool) []Token {
	input = bytes.ReplaceAll(input, []byte("\u0000"), []byte("\uFFFD"))
	input = bytes.ReplaceAll(input, []byte("\r\n"), []byte("\n"))
	input = bytes.ReplaceAll(input, []byte("\r"), []byte("\n"))
	input = bytes.ReplaceAll(input, []byte("\f"), []byte("\n"))

	lexer := css.NewLexer(parse.NewInputBytes(input))

	var (
		ts      []Token // tokens of the current block
		endChar byte    // Pop the stack when encountering this character.
		stack   []nestedBlock
		tracker = positionTracker{pos: newPosition(1, 1)}
	)
	push := func(open Token, end byte) {
		stack = append(stack, nestedBlock{parent: ts, endChar: endChar, open: open})
		ts, endChar = nil, end
	}
	pop := func() {
		var block nestedBlock
		block, stack = stack[len(stack)-1], stack[:len(stack)-1]
		ts = append(block.parent, block.close(ts))
		endChar = block.endChar
	}

	for {
		tt, raw := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				ts = append(ts, ParseError{pos: tracker.pos, kind: errInvalid, Message: err.Error()})
			}
			break
		}
		tokenPos := tracker.pos
		tracker.advance(raw)

		switch tt {
		case css.WhitespaceToken:
			ts = append(ts, Whitespace{pos: tokenPos, Value: string(raw)})
		case css.CommentToken:
			if !skipComments {
				value := bytes.TrimPrefix(raw, []byte("/*"))
				value = bytes.TrimSuffix(value, []byte("*/"))
				ts = append(ts, Comment{pos: tokenPos, Value: string(value)})
			}
		case css.IdentToken, css.CustomPropertyNameToken:
			value, _ := consumeIdent(raw, 0)
			ts = append(ts, Ident{pos: tokenPos, Value: value})
		case css.FunctionToken:
			name, _ := consumeIdent(raw[:len(raw)-1], 0)
			push(FunctionBlock{pos: tokenPos, Name: name}, ')')
		case css.AtKeywordToken:
			value, _ := consumeIdent(raw, 1)
			ts = append(ts, AtKeyword{pos: tokenPos, Value: value})
		case css.HashToken:
			value, _ := consumeIdent(raw, 1)
			ts = append(ts, Hash{pos: tokenPos, Value: value, IsIdentifier: len(raw) > 1 && isIdentStart(raw, 1)})
		case css.StringToken:
			value, _, _, err := consumeQuotedString(raw, 0)
			ts = append(ts, String{pos: tokenPos, Value: value, bad: err != nil})
			if err != nil {
				ts = append(ts, ParseError{pos: tokenPos, kind: errKind(err.Error()), Message: "bad string token"})
			}
		case css.BadStringToken:
			ts = append(ts, ParseError{pos: tokenPos, kind: errBadString, Message: "bad string token"})
		case css.URLToken:
			value, _, addValue, err := consumeUrl(raw, 4) // skip "url("
			if addValue {
				var flag uint8
				if err != nil {
					switch errKind(err.Error()) {
					case errEofInString:
						flag = isErrorInString
					case errEofInUrl:
						flag = isErrorInURL
					}
				}
				ts = append(ts, URL{pos: tokenPos, Value: value, flag: flag})
			}
			if err != nil {
				ts = append(ts, ParseError{pos: tokenPos, kind: errKind(err.Error()), Message: err.Error()})
			}
		case css.BadURLToken:
			ts = append(ts, ParseError{pos: tokenPos, kind: errBadURL, Message: "bad url token"})
		case css.UnicodeRangeToken:
			start, end, _, err := consumeUnicodeRange(raw, 2) // skip "U+"
			if err != nil {
				ts = append(ts, ParseError{pos: tokenPos, kind: errNumber, Message: err.Error()})
			} else {
				ts = append(ts, UnicodeRange{pos: tokenPos, Start: uint32(start), End: uint32(end)})
			}
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			ts = append(ts, newNumeric(tokenPos, raw))
		case css.LeftParenthesisToken:
			push(ParenthesesBlock{pos: tokenPos}, ')')
		case css.LeftBracketToken:
			push(SquareBracketsBlock{pos: tokenPos}, ']')
		case css.LeftBraceToken:
			push(CurlyBracketsBlock{pos: tokenPos}, '}')
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			if c := raw[0]; len(stack) != 0 && c == endChar {
				pop()
			} else {
				ts = append(ts, ParseError{pos: tokenPos, kind: errKind(raw), Message: "Unmatched " + string(raw)})
			}
		case css.EmptyToken:
		default: // delimiters, CDO and CDC, match tokens, ':', ';' and ','
			ts = append(ts, Literal{pos: tokenPos, Value: string(raw)})
		}
	}
	// unclosed blocks are closed at EOF
	for len(stack) != 0 {
		pop()
	}
	return ts
}

// positionTracker computes the line and column of the tokens
type positionTracker struct {
	pos Pos
}

func (pt *positionTracker) advance(raw []byte) {
	if newlines := bytes.Count(raw, []byte{'\n'}); newlines != 0 {
		pt.pos.Line += newlines
		pt.pos.Column = utf8.RuneCount(raw[bytes.LastIndexByte(raw, '\n')+1:]) + 1
	} else {
		pt.pos.Column += utf8.RuneCount(raw)
	}
}

// newNumeric splits the raw representation of a number, percentage or dimension.
func newNumeric(tokenPos Pos, raw []byte) Token {
	match := numberRe.Find(raw)
	repr := string(match)
	value, _ := strconv.ParseFloat(repr, 64)
	if value == 0 {
		value = 0. // workaround -0
	}
	_, err := strconv.ParseInt(repr, 10, 0)
	n := numeric{
		pos:    tokenPos,
		Value:  repr,
		isInt:  err == nil,
		ValueF: value,
	}
	rest := raw[len(match):]
	switch {
	case len(rest) == 0:
		return Number{n}
	case len(rest) == 1 && rest[0] == '%':
		return Percentage{n}
	default:
		unit, _ := consumeIdent(rest, 0)
		return Dimension{numeric: n, Unit: unit}
	}
}

const (
	charUnicodeRange = "0123456789abcdefABCDEF"
	nonPrintable     = "\"'(\x00\x01\x02\x03\x04\x05\x06\x07\x08\x0b\x0e\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f\x7f"
)

// Return true if the given character is a name-start code point.
func isNameStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#name-start-code-point
	c, _ := utf8.DecodeRune(css[pos:])
	return c > 0x7F || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// Return true if the given position is the start of a CSS identifier.
func isIdentStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#would-start-an-identifier
	if isNameStart(css, pos) {
		return true
	} else if css[pos] == '-' {
		pos += 1
		// Name-start code point
		nameStart := pos < len(css) && (isNameStart(css, pos) || css[pos] == '-')
		// Valid escape
		validEscape := pos < len(css) && css[pos] == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n"))
		return nameStart || validEscape
	} else if css[pos] == '\\' {
		return !bytes.HasPrefix(css[pos:], []byte("\\\n"))
	}
	return false
}

func consumeIdent(value []byte, pos int) (string, int) {
	// http://dev.w3.org/csswg/css-syntax/#consume-a-name
	var chunks strings.Builder
	L := len(value)
	startPos := pos
	for pos < L {
		c, w := utf8.DecodeRune(value[pos:])
		if strings.ContainsRune("abcdefghijklmnopqrstuvwxyz-_0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", c) || c > 0x7F {
			pos += w
		} else if c == '\\' && !bytes.HasPrefix(value[pos:], []byte("\\\n")) {
			// Valid escape
			chunks.Write(value[startPos:pos])
			var car string
			car, pos = consumeEscape(value, pos+w)
			chunks.WriteString(car)
			startPos = pos
		} else {
			break
		}
	}
	chunks.Write(value[startPos:pos])
	return chunks.String(), pos
}

// Return the range
// http://dev.w3.org/csswg/css-syntax/#consume-a-unicode-range-token
func consumeUnicodeRange(css []byte, pos int) (start, end int64, newPos int, err error) {
	length := len(css)
	startPos := pos
	maxPos := utils.MinInt(pos+6, length)
	var _start, _end string
	for pos < maxPos {
		r, w := utf8.DecodeRune(css[pos:])
		if !strings.ContainsRune(charUnicodeRange, r) {
			break
		}
		pos += w
	}
	_start = string(css[startPos:pos])
	questionMarks := 0
	// Same maxPos as before: total of hex digits && question marks <= 6
	for pos < maxPos {
		r, w := utf8.DecodeRune(css[pos:])
		if r != '?' {
			break
		}
		pos += w
		questionMarks += 1
	}

	if questionMarks != 0 {
		_end = _start + strings.Repeat("F", questionMarks)
		_start = _start + strings.Repeat("0", questionMarks)
	} else if pos+1 < length && css[pos] == '-' && strings.ContainsRune(charUnicodeRange, rune(css[pos+1])) {
		pos += utf8.RuneLen(rune(css[pos+1]))
		startPos = pos
		maxPos = utils.MinInt(pos+6, length)
		for pos < maxPos {
			r, w := utf8.DecodeRune(css[pos:])
			if !strings.ContainsRune(charUnicodeRange, r) {
				break
			}
			pos += w
		}
		_end = string(css[startPos:pos])
	} else {
		_end = _start
	}
	start, err = strconv.ParseInt(_start, 16, 0)
	if err != nil {
		newPos = pos
		return
	}
	end, err = strconv.ParseInt(_end, 16, 0)
	return start, end, pos, err
}

// http://dev.w3.org/csswg/css-syntax/#consume-a-url-token
func consumeUrl(css []byte, pos int) (value string, newPos int, addValue bool, err error) {
	length := len(css)
	// Skip whitespace
	for pos < length && strings.ContainsRune(" \n\t", rune(css[pos])) {
		pos += 1
	}
	if pos >= length { // EOF
		return "", pos, true, errors.New("eof-in-url")
	}
	c := rune(css[pos])
	if c == '"' || c == '\'' {
		value, pos, addValue, err = consumeQuotedString(css, pos)
	} else if c == ')' {
		return "", pos + 1, true, nil
	} else {
		var chunks strings.Builder
		startPos := pos
	mainLoop:
		for {
			if pos >= length { // EOF
				chunks.Write(css[startPos:pos])
				return chunks.String(), pos, true, errors.New("eof-in-url")
			}
			c, w := utf8.DecodeRune(css[pos:])
			switch {
			case c == ')':
				chunks.Write(css[startPos:pos])
				pos += w
				return chunks.String(), pos, true, nil
			case c == ' ' || c == '\n' || c == '\t':
				chunks.Write(css[startPos:pos])
				value = chunks.String()
				pos += w
				break mainLoop
			case c == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n")):
				// Valid escape
				chunks.Write(css[startPos:pos])
				var cs string
				cs, pos = consumeEscape(css, pos+w)
				chunks.WriteString(cs)
				startPos = pos
			default:
				pos += w
				// http://dev.w3.org/csswg/css-syntax/#non-printable-character
				if strings.ContainsRune(nonPrintable, c) {
					err = errors.New("non printable char")
					break mainLoop
				}
			}
		}
	}

	if err == nil {
		for pos < length {
			r, w := utf8.DecodeRune(css[pos:])
			if strings.ContainsRune(" \n\t", r) {
				pos += w
			} else {
				break
			}
		}
		if pos < length {
			if css[pos] == ')' {
				return value, pos + 1, true, err
			}
		} else {
			if err == nil {
				err = errors.New("eof-in-url")
			}
			return value, pos, true, err
		}
	}

	// http://dev.w3.org/csswg/css-syntax/#consume-the-remnants-of-a-bad-url0
	for pos < length {
		if bytes.HasPrefix(css[pos:], []byte("\\)")) {
			pos += 2
		} else if css[pos] == ')' {
			pos += 1
			break
		} else {
			_, w := utf8.DecodeRune(css[pos:])
			pos += w
		}
	}
	return "", pos, false, errors.New("bad-url") // bad-url
}

// Returns unescapedValue
// http://dev.w3.org/csswg/css-syntax/#consume-a-string-token
// css[pos] is assumed to be a quote
func consumeQuotedString(css []byte, pos int) (string, int, bool, error) {
	quote := rune(css[pos])
	pos += 1
	var chunks strings.Builder
	length := len(css)
	startPos := pos
	hasBroken := false
mainLoop:
	for pos < length {
		c, w := utf8.DecodeRune(css[pos:])
		switch c {
		case quote:
			chunks.Write(css[startPos:pos])
			pos += w
			hasBroken = true
			break mainLoop
		case '\\':
			chunks.Write(css[startPos:pos])
			pos += w
			if pos < length {
				if css[pos] == '\n' { // Ignore escaped newlines
					pos += 1
				} else {
					var cs string
					cs, pos = consumeEscape(css, pos)
					chunks.WriteString(cs)
				}
			} // else: Escaped EOF, do nothing
			startPos = pos
		case '\n': // Unescaped newline
			return "", pos, false, errors.New("bad-string") // bad-string
		default:
			pos += w
		}
	}
	var err error
	if !hasBroken {
		chunks.Write(css[startPos:pos])
		err = errors.New("eof-in-string")
	}
	return chunks.String(), pos, true, err
}

// Return (unescapedChar, newPos).
// Assumes a valid escape: pos is just after '\' and not followed by '\n'.
func consumeEscape(css []byte, pos int) (string, int) {
	// http://dev.w3.org/csswg/css-syntax/#consume-an-escaped-character
	hexMatch := hexEscapeRe.FindSubmatch(css[pos:])
	if len(hexMatch) >= 2 {
		codepoint, err := strconv.ParseInt(string(hexMatch[1]), 16, 0)
		if err != nil {
			// the regexp ensure its a valid hex number
			panic(fmt.Sprintf("codepoint should be valid hexadecimal, got %s", hexMatch[0]))
		}
		char := "\uFFFD"
		if 0 < codepoint && codepoint <= unicode.MaxRune {
			char = string(rune(codepoint))
		}
		return char, pos + len(hexMatch[0])
	} else if pos < len(css) {
		r, w := utf8.DecodeRune(css[pos:])
		return string(r), pos + w
	} else {
		return "\uFFFD", pos
	}
}
