package compare

import (
	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
	"github.com/maksimkurb/ioc-diff/src/internal/indicators"
)

// Result holds the indicators unique to each input list.
type Result struct {
	UniqueIndicators1 []string `json:"UniqueIndicators1"`
	UniqueIndicators2 []string `json:"UniqueIndicators2"`
	Summary           *Summary `json:"Summary,omitempty"`
}

// Summary describes the contents of both sides of a Result.
type Summary struct {
	List1 SideSummary `json:"List1"`
	List2 SideSummary `json:"List2"`
}

// SideSummary counts what is unique to one list.
type SideSummary struct {
	// AddressRanges is the number of contiguous address ranges.
	AddressRanges int `json:"AddressRanges"`
	// Addresses is the number of individual IPv4 addresses in those ranges.
	Addresses uint64 `json:"Addresses"`
	// Indicators counts non-IP indicators by kind.
	Indicators map[indicators.Kind]int `json:"Indicators"`
}

func summarize(ips *addrspace.Space, opaque indicators.TokenSet) SideSummary {
	s := SideSummary{
		AddressRanges: len(ips.Ranges()),
		Addresses:     ips.Size(),
		Indicators:    make(map[indicators.Kind]int),
	}
	for token := range opaque {
		s.Indicators[indicators.KindOf(token)]++
	}
	return s
}

// Swapped returns the Result with both sides exchanged.
func (r *Result) Swapped() *Result {
	out := &Result{
		UniqueIndicators1: r.UniqueIndicators2,
		UniqueIndicators2: r.UniqueIndicators1,
	}
	if r.Summary != nil {
		out.Summary = &Summary{List1: r.Summary.List2, List2: r.Summary.List1}
	}
	return out
}

// IsEmpty reports whether both lists held the same indicators.
func (r *Result) IsEmpty() bool {
	return len(r.UniqueIndicators1) == 0 && len(r.UniqueIndicators2) == 0
}

// Summarize counts the contents of a classified list.
func Summarize(c *indicators.Classified) SideSummary {
	return summarize(c.Addresses, c.Opaque)
}
