package addrspace

import (
	"fmt"

	"go4.org/netipx"
)

// RangeStyle selects how a multi-address range is rendered.
type RangeStyle string

const (
	// RangeStyleAuto renders a CIDR-aligned range as a single CIDR block and
	// any other range as "from-to".
	RangeStyleAuto RangeStyle = "auto"
	// RangeStyleDash always renders "from-to".
	RangeStyleDash RangeStyle = "dash"
	// RangeStyleCIDR renders the minimal list of CIDR blocks covering the range.
	RangeStyleCIDR RangeStyle = "cidr"
)

// RangeStyles lists the accepted styles.
var RangeStyles = []RangeStyle{RangeStyleAuto, RangeStyleDash, RangeStyleCIDR}

// ParseRangeStyle converts a config or flag value into a RangeStyle.
// The empty string selects RangeStyleAuto.
func ParseRangeStyle(str string) (RangeStyle, error) {
	if str == "" {
		return RangeStyleAuto, nil
	}
	for _, style := range RangeStyles {
		if string(style) == str {
			return style, nil
		}
	}
	return "", fmt.Errorf("unknown range style %q (expected auto, dash or cidr)", str)
}

// FormatRange renders one contiguous range. A single address renders as the
// bare address regardless of style. Every returned token re-parses through
// Space.AddToken into exactly the addresses of r.
func FormatRange(r netipx.IPRange, style RangeStyle) []string {
	if !r.IsValid() {
		return nil
	}
	if r.From() == r.To() {
		return []string{r.From().String()}
	}

	switch style {
	case RangeStyleDash:
		return []string{r.String()}
	case RangeStyleCIDR:
		prefixes := r.Prefixes()
		tokens := make([]string, 0, len(prefixes))
		for _, p := range prefixes {
			tokens = append(tokens, p.String())
		}
		return tokens
	default:
		if p, ok := r.Prefix(); ok {
			return []string{p.String()}
		}
		return []string{r.String()}
	}
}
