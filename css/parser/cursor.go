package parser

// ValueList is a seekable cursor over the significant tokens
// of a declaration value (or of function arguments).
//
// Whitespace and comments are dropped when the list is built, so that
// grammars only see identifiers, numbers, strings, URLs, functions, blocks
// and the ',' and '/' operators.
//
// The cursor follows the "current token" convention: [ValueList.Current]
// returns the token under the cursor, [ValueList.Next] advances and returns
// the new current token. Both return nil at the end of the list.
type ValueList struct {
	tokens []Token
	index  int
}

// NewValueList returns a cursor positioned on the first significant token.
func NewValueList(tokens []Token) *ValueList {
	return &ValueList{tokens: RemoveWhitespace(tokens)}
}

// Len returns the number of significant tokens.
func (vl *ValueList) Len() int { return len(vl.tokens) }

// Index returns the position of the cursor.
func (vl *ValueList) Index() int { return vl.index }

// Seek moves the cursor to index, which may be Len() to
// position it after the last token.
func (vl *ValueList) Seek(index int) {
	if index < 0 {
		index = 0
	} else if index > len(vl.tokens) {
		index = len(vl.tokens)
	}
	vl.index = index
}

// Save returns the current position, to be used with [ValueList.Restore].
func (vl *ValueList) Save() int { return vl.index }

// Restore moves the cursor back to a position returned by [ValueList.Save].
func (vl *ValueList) Restore(position int) { vl.Seek(position) }

// Current returns the token under the cursor or nil.
func (vl *ValueList) Current() Token {
	if vl.index < len(vl.tokens) {
		return vl.tokens[vl.index]
	}
	return nil
}

// Next advances the cursor and returns the new current token, or nil.
func (vl *ValueList) Next() Token {
	if vl.index < len(vl.tokens) {
		vl.index++
	}
	return vl.Current()
}

// Previous moves the cursor one token backward and returns it.
func (vl *ValueList) Previous() Token {
	if vl.index > 0 {
		vl.index--
	}
	return vl.Current()
}

// Peek returns the token offset positions after the cursor, or nil.
func (vl *ValueList) Peek(offset int) Token {
	if i := vl.index + offset; 0 <= i && i < len(vl.tokens) {
		return vl.tokens[i]
	}
	return nil
}

// AtEnd returns true when all the tokens have been consumed.
func (vl *ValueList) AtEnd() bool { return vl.index >= len(vl.tokens) }

// Tokens returns the significant tokens.
// The slice must not be modified.
func (vl *ValueList) Tokens() []Token { return vl.tokens }

// IsOperator returns true if the current token is the literal op.
func (vl *ValueList) IsOperator(op string) bool { return IsLiteral(vl.Current(), op) }

// SkipComma consumes a ',' operator if present, returning true if it did.
// It returns false at the end of the list or if the comma is the last token.
func (vl *ValueList) SkipComma() bool {
	if !vl.IsOperator(",") || vl.index+1 >= len(vl.tokens) {
		return false
	}
	vl.index++
	return true
}

// Depth returns the maximum nesting depth of functions and blocks
// in tokens, stopping as soon as limit is exceeded.
func Depth(tokens []Token, limit int) int {
	max := 0
	for _, token := range tokens {
		var args []Token
		switch token := token.(type) {
		case FunctionBlock:
			args = token.Arguments
		case ParenthesesBlock:
			args = token.Arguments
		case SquareBracketsBlock:
			args = token.Arguments
		case CurlyBracketsBlock:
			args = token.Arguments
		default:
			continue
		}
		if limit <= 0 {
			return 1
		}
		if d := 1 + Depth(args, limit-1); d > max {
			max = d
		}
		if max > limit {
			return max
		}
	}
	return max
}
