//go:build !linux

package log

import "os"

// Colors stay off outside Linux; SetColored can still enable them.
func isTerminal(_ *os.File) bool {
	return false
}
