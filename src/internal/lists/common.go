package lists

import (
	"bufio"
	"io"
	"strings"

	"github.com/maksimkurb/ioc-diff/src/internal/hashing"
)

// normalizeLine trims an indicator and drops empty and "#" comment lines.
func normalizeLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
}

// ReadIndicators reads one indicator per line.
func ReadIndicators(r io.Reader) ([]string, error) {
	var indicators []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line, ok := normalizeLine(scanner.Text()); ok {
			indicators = append(indicators, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return indicators, nil
}

// readIndicatorsWithChecksum is ReadIndicators that also returns the MD5 of the raw content.
func readIndicatorsWithChecksum(r io.Reader) ([]string, string, error) {
	proxy := hashing.NewMD5Reader(r)
	indicators, err := ReadIndicators(proxy)
	if err != nil {
		return nil, "", err
	}
	return indicators, proxy.Checksum(), nil
}

// SplitArgList splits a comma separated argument ("1.1.1.1, example.com")
// into trimmed, non-empty indicators.
func SplitArgList(arg string) []string {
	var indicators []string
	for _, part := range strings.Split(arg, ",") {
		if part = strings.TrimSpace(part); part != "" {
			indicators = append(indicators, part)
		}
	}
	return indicators
}

// normalizeHosts applies the line rules of list files to inline hosts.
func normalizeHosts(hosts []string) []string {
	indicators := make([]string, 0, len(hosts))
	for _, host := range hosts {
		if line, ok := normalizeLine(host); ok {
			indicators = append(indicators, line)
		}
	}
	return indicators
}
