// Package indicators classifies raw security indicator tokens.
//
// A Classifier splits a list of tokens into an IPv4 address space (single
// addresses, CIDR blocks and explicit "start-end" ranges) and a TokenSet of
// everything else: domains, hashes, URLs and arbitrary strings. Unrecognized
// tokens are never rejected, they simply end up in the TokenSet.
//
// # Example Usage
//
//	c, err := indicators.Classify([]string{"10.0.0.0/24", "bad-domain.com", "1.1.1.1-1.1.1.9"})
//	if err != nil {
//	    return err
//	}
//	c.Addresses.Tokens(addrspace.RangeStyleAuto) // ["1.1.1.1-1.1.1.9", "10.0.0.0/24"]
//	c.Opaque.Values()                            // ["bad-domain.com"]
package indicators
