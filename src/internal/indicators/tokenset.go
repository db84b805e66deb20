package indicators

import "sort"

// TokenSet is a set of opaque indicator strings.
type TokenSet map[string]struct{}

// NewTokenSet creates a TokenSet holding the given tokens.
func NewTokenSet(tokens ...string) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, token := range tokens {
		set.Add(token)
	}
	return set
}

func (s TokenSet) Add(token string) {
	s[token] = struct{}{}
}

func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

func (s TokenSet) Len() int {
	return len(s)
}

// Difference returns the tokens of s that are not in other.
func (s TokenSet) Difference(other TokenSet) TokenSet {
	out := make(TokenSet)
	for token := range s {
		if !other.Has(token) {
			out.Add(token)
		}
	}
	return out
}

// Values returns the tokens sorted lexicographically.
func (s TokenSet) Values() []string {
	values := make([]string, 0, len(s))
	for token := range s {
		values = append(values, token)
	}
	sort.Strings(values)
	return values
}
