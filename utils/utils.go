package utils

import (
	"github.com/tdewolff/parse/v2"
)

var Has = struct{}{}

type Set map[string]struct{}

func (s Set) Add(key string) {
	s[key] = Has
}

func (s Set) Extend(keys []string) {
	for _, key := range keys {
		s[key] = Has
	}
}

func (s Set) Has(key string) bool {
	_, in := s[key]
	return in
}

// Copy returns a deepcopy.
func (s Set) Copy() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func IsIn(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// AsciiLower lowers the ASCII letters of s, leaving other code points untouched,
// as required for CSS keywords, units and function names.
func AsciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			return string(parse.ToLower([]byte(s)))
		}
	}
	return s
}

// AsciiEqualFold reports whether s matches the lower case ASCII string target,
// ignoring ASCII case.
func AsciiEqualFold(s, target string) bool {
	return len(s) == len(target) && parse.EqualFold([]byte(s), []byte(target))
}
