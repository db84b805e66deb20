// Package addrspace implements a mergeable set of IPv4 addresses.
//
// A Space accepts single addresses, inclusive ranges and CIDR blocks, keeps
// them as coalesced ranges and supports exact set difference. Nothing is
// expanded address by address, so a /8 costs the same as a /32.
//
// # Example Usage
//
//	a, _ := addrspace.FromTokens("10.0.0.0/24")
//	b, _ := addrspace.FromTokens("10.0.0.0-10.0.0.127")
//	a.Difference(b).Tokens(addrspace.RangeStyleAuto) // ["10.0.0.128/25"]
//	a.Difference(b).Tokens(addrspace.RangeStyleDash) // ["10.0.0.128-10.0.0.255"]
package addrspace
