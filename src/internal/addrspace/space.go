package addrspace

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"

	"github.com/maksimkurb/ioc-diff/src/internal/errors"
)

// Space is a mutable set of IPv4 addresses. Addresses, ranges and CIDR
// blocks are stored as ranges; overlapping and adjacent ranges coalesce.
// The zero value is an empty Space ready to use.
type Space struct {
	b netipx.IPSetBuilder
}

// New returns an empty Space.
func New() *Space {
	return &Space{}
}

// FromTokens builds a Space out of address, CIDR and range tokens.
func FromTokens(tokens ...string) (*Space, error) {
	s := New()
	for _, token := range tokens {
		if err := s.AddToken(token); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddAddr adds a single address.
func (s *Space) AddAddr(addr netip.Addr) {
	s.b.Add(addr.Unmap())
}

// AddRange adds the inclusive range [from, to]. A range whose start is
// above its end, or whose ends belong to different families, adds nothing.
func (s *Space) AddRange(from, to netip.Addr) {
	s.b.AddRange(netipx.IPRangeFrom(from.Unmap(), to.Unmap()))
}

// AddPrefix adds a CIDR block. Host bits are ignored, so 10.0.0.5/24 adds 10.0.0.0/24.
func (s *Space) AddPrefix(prefix netip.Prefix) {
	s.b.AddPrefix(prefix.Masked())
}

// AddToken parses an IPv4 literal ("1.2.3.4"), a CIDR block ("10.0.0.0/8")
// or an explicit range ("10.0.0.1-10.0.0.9") and adds it.
func (s *Space) AddToken(token string) error {
	if strings.Contains(token, "-") {
		parts := strings.Split(token, "-")
		if len(parts) != 2 {
			return errors.NewParseError(fmt.Sprintf("cannot parse range %q", token), nil)
		}
		from, err := parseIPv4(parts[0])
		if err != nil {
			return errors.NewParseError(fmt.Sprintf("cannot parse range %q", token), err)
		}
		to, err := parseIPv4(parts[1])
		if err != nil {
			return errors.NewParseError(fmt.Sprintf("cannot parse range %q", token), err)
		}
		s.AddRange(from, to)
		return nil
	}

	if strings.Contains(token, "/") {
		prefix, err := netip.ParsePrefix(token)
		if err != nil {
			return errors.NewParseError(fmt.Sprintf("cannot parse CIDR %q", token), err)
		}
		if !prefix.Addr().Is4() {
			return errors.NewParseError(fmt.Sprintf("cannot parse CIDR %q", token), fmt.Errorf("not an IPv4 network"))
		}
		s.AddPrefix(prefix)
		return nil
	}

	addr, err := parseIPv4(token)
	if err != nil {
		return errors.NewParseError(fmt.Sprintf("cannot parse address %q", token), err)
	}
	s.AddAddr(addr)
	return nil
}

func parseIPv4(str string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(str)
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%s is not an IPv4 address", str)
	}
	return addr, nil
}

// ipSet snapshots the builder. The builder only records errors for invalid
// prefixes, which AddPrefix never passes, so the error is dropped.
func (s *Space) ipSet() *netipx.IPSet {
	set, _ := s.b.IPSet()
	return set
}

// Union adds every address of other to s.
func (s *Space) Union(other *Space) {
	if other == nil {
		return
	}
	s.b.AddSet(other.ipSet())
}

// Difference returns a new Space with the addresses of s that are not in other.
// Neither operand is modified.
func (s *Space) Difference(other *Space) *Space {
	out := New()
	out.b.AddSet(s.ipSet())
	if other != nil {
		out.b.RemoveSet(other.ipSet())
	}
	return out
}

// Contains reports whether addr is in s.
func (s *Space) Contains(addr netip.Addr) bool {
	return s.ipSet().Contains(addr.Unmap())
}

// Ranges returns the minimal list of maximal contiguous ranges covering s,
// sorted by address.
func (s *Space) Ranges() []netipx.IPRange {
	return s.ipSet().Ranges()
}

// IsEmpty reports whether s holds no addresses.
func (s *Space) IsEmpty() bool {
	return len(s.Ranges()) == 0
}

// Equal reports whether s and other hold exactly the same addresses.
func (s *Space) Equal(other *Space) bool {
	return s.ipSet().Equal(other.ipSet())
}

// Size returns the number of addresses in s.
func (s *Space) Size() uint64 {
	var total uint64
	for _, r := range s.Ranges() {
		total += RangeSize(r)
	}
	return total
}

// RangeSize returns the number of addresses in an IPv4 range.
func RangeSize(r netipx.IPRange) uint64 {
	if !r.IsValid() || !r.From().Is4() {
		return 0
	}
	from := r.From().As4()
	to := r.To().As4()
	return uint64(be32(to)) - uint64(be32(from)) + 1
}

func be32(b [4]byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Tokens renders every contiguous range of s in address order.
func (s *Space) Tokens(style RangeStyle) []string {
	var tokens []string
	for _, r := range s.Ranges() {
		tokens = append(tokens, FormatRange(r, style)...)
	}
	return tokens
}

// String renders s in RangeStyleAuto, comma separated.
func (s *Space) String() string {
	return strings.Join(s.Tokens(RangeStyleAuto), ",")
}
