// Package log provides simple leveled logging for ioc-diff.
//
// Messages are prefixed with their level: DEBUG (verbose mode only), INFO,
// WARN and ERROR. Prefixes are colored with ANSI escape codes when stderr is
// a terminal.
//
// # Example Usage
//
//	log.Infof("Loaded %d indicators from %s", n, path)
//	log.Warnf("Skipping list %q: %v", name, err)
//
//	log.SetVerbose(true)
//	log.Debugf("Classified: %+v", classified)
//
// Command line tools print their results on stdout, so they route all log
// output to stderr:
//
//	log.SetForceStdErr(true)
//
// The package uses global state guarded by a mutex and is safe for
// concurrent use, e.g. from HTTP handlers.
package log
