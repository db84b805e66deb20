// Package lists reads indicator lists for ioc-diff.
//
// Lists can be sourced from:
//
//   - Remote URLs: downloaded via HTTP/HTTPS on every run
//   - Local files: read from filesystem paths relative to the config file
//   - Inline hosts: defined directly in configuration
//   - Command line arguments: comma separated values (SplitArgList)
//
// Every source uses the same line rules: surrounding whitespace is trimmed,
// and empty lines and lines starting with "#" are skipped. Nothing else is
// interpreted here; classification happens in package indicators.
package lists
