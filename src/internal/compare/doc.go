// Package compare finds the indicators unique to each of two lists.
//
// IP indicators are compared as address sets: overlapping and adjacent
// ranges merge, and whatever survives the difference is rendered back as
// bare addresses, CIDR blocks or "start-end" ranges. Other indicators are
// compared as plain strings.
//
// # Example Usage
//
//	result, err := compare.Compare(
//	    []string{"10.0.0.0/24", "example.com"},
//	    []string{"10.0.0.0-10.0.0.127", "example.org"},
//	    compare.WithRangeStyle(addrspace.RangeStyleDash),
//	)
//	// result.UniqueIndicators1: ["10.0.0.128-10.0.0.255", "example.com"]
//	// result.UniqueIndicators2: ["example.org"]
//
// Hosts that fetch lists from elsewhere implement Input and Output and call
// Engine.Run.
package compare
