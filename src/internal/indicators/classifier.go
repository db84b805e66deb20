package indicators

import (
	"strings"

	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
	"github.com/maksimkurb/ioc-diff/src/internal/log"
)

// rangeSeparator splits explicit address ranges such as "10.0.0.1-10.0.0.9".
const rangeSeparator = "-"

// Classified is one indicator list split into address space and opaque tokens.
type Classified struct {
	Addresses *addrspace.Space
	Opaque    TokenSet
}

// NewClassified returns an empty classification.
func NewClassified() *Classified {
	return &Classified{
		Addresses: addrspace.New(),
		Opaque:    NewTokenSet(),
	}
}

// Classifier partitions raw indicator tokens into IPv4 address space and opaque tokens.
type Classifier struct {
	matcher Matcher
	// lenient turns address parse failures into opaque tokens instead of errors.
	lenient bool
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithMatcher replaces the default RegexMatcher.
func WithMatcher(m Matcher) ClassifierOption {
	return func(c *Classifier) {
		c.matcher = m
	}
}

// WithLenientParsing makes tokens that look like addresses but fail to parse
// (e.g. "1.1.1.1:80") opaque, with a warning, instead of failing classification.
func WithLenientParsing(lenient bool) ClassifierOption {
	return func(c *Classifier) {
		c.lenient = lenient
	}
}

// NewClassifier creates a Classifier.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{matcher: NewRegexMatcher()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify sorts every token into the address space or the opaque set:
//
//  1. A token containing "-" that splits into exactly two IPv4 literals is a range.
//     Any other hyphenated token is opaque as a whole.
//  2. A token containing a CIDR literal, or starting with an IPv4 literal, is address space.
//  3. Everything else is opaque.
//
// The only error is a token routed to the address space that cannot be parsed.
func (c *Classifier) Classify(tokens []string) (*Classified, error) {
	result := NewClassified()

	for _, token := range tokens {
		if !c.isAddressToken(token) {
			result.Opaque.Add(token)
			continue
		}

		if err := result.Addresses.AddToken(token); err != nil {
			if !c.lenient {
				return nil, err
			}
			log.Warnf("Treating %q as a non-IP indicator: %v", token, err)
			result.Opaque.Add(token)
		}
	}

	log.Debugf("Classified %d tokens: %d address ranges, %d other indicators",
		len(tokens), len(result.Addresses.Ranges()), result.Opaque.Len())

	return result, nil
}

func (c *Classifier) isAddressToken(token string) bool {
	if strings.Contains(token, rangeSeparator) {
		parts := strings.Split(token, rangeSeparator)
		return len(parts) == 2 && c.matcher.IsIPv4(parts[0]) && c.matcher.IsIPv4(parts[1])
	}
	return c.matcher.ContainsCIDR(token) || c.matcher.HasIPv4Prefix(token)
}

// Classify classifies tokens with the default Classifier.
func Classify(tokens []string) (*Classified, error) {
	return NewClassifier().Classify(tokens)
}
