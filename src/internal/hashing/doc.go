// Package hashing calculates MD5 checksums of list content while it is read.
//
// The lists package wraps list files and HTTP responses in an MD5Reader so
// the checksum of every loaded list can be logged without buffering it:
//
//	proxy := hashing.NewMD5Reader(resp.Body)
//	indicators, _ := lists.ReadIndicators(proxy)
//	log.Debugf("%d indicators, md5 %s", len(indicators), proxy.Checksum())
package hashing
