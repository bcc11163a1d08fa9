package parser

// TokensIter is a forward iterator over a list of tokens,
// used by the declaration list parser.
type TokensIter struct {
	tokens []Token
	index  int
}

func NewIter(tokens []Token) *TokensIter {
	return &TokensIter{tokens: tokens}
}

func (it TokensIter) HasNext() bool {
	return it.index < len(it.tokens)
}

// Next returns the next token or nil at the end
func (it *TokensIter) Next() (t Token) {
	if !it.HasNext() {
		return nil
	}
	t = it.tokens[it.index]
	it.index += 1
	return t
}

// NextSignificant returns the next significant (neither whitespace or comment) token, or nil
func (it *TokensIter) NextSignificant() Token {
	for it.HasNext() {
		token := it.Next()
		if k := token.Kind(); k == KWhitespace || k == KComment {
			continue
		}
		return token
	}
	return nil
}
