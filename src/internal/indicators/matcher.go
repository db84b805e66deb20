package indicators

import "regexp"

// Matcher recognizes IPv4 literal syntax inside raw indicator tokens.
type Matcher interface {
	// IsIPv4 reports whether the whole string is a dotted-quad address.
	IsIPv4(s string) bool
	// HasIPv4Prefix reports whether the string starts with a dotted-quad address.
	HasIPv4Prefix(s string) bool
	// ContainsCIDR reports whether the string contains an IPv4 CIDR literal.
	ContainsCIDR(s string) bool
}

// Octets with leading zeros are not matched: net/netip rejects them, and a
// token the matcher accepts must be parseable as an address.
const (
	octet       = `(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])`
	ipv4Pattern = `(?:` + octet + `\.){3}` + octet
	bitsPattern = `(?:3[0-2]|[12]?[0-9])`
)

var (
	ipv4FullRegexp   = regexp.MustCompile(`^` + ipv4Pattern + `$`)
	ipv4PrefixRegexp = regexp.MustCompile(`^` + ipv4Pattern + `\b`)
	cidrRegexp       = regexp.MustCompile(`\b` + ipv4Pattern + `/` + bitsPattern + `\b`)
)

// RegexMatcher is the default Matcher backed by RE2 patterns.
type RegexMatcher struct{}

// NewRegexMatcher returns the default Matcher.
func NewRegexMatcher() RegexMatcher {
	return RegexMatcher{}
}

func (RegexMatcher) IsIPv4(s string) bool {
	return ipv4FullRegexp.MatchString(s)
}

func (RegexMatcher) HasIPv4Prefix(s string) bool {
	return ipv4PrefixRegexp.MatchString(s)
}

func (RegexMatcher) ContainsCIDR(s string) bool {
	return cidrRegexp.MatchString(s)
}
