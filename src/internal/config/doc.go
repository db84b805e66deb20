// Package config handles configuration file parsing and validation for ioc-diff.
//
// The configuration file is TOML and optional: DefaultConfig provides every
// setting when no file is given.
//
// # Configuration Structure
//
//   - [general]: range rendering style, output format, text line template,
//     lenient parsing and summary switches
//   - [server]: HTTP API listen address, request size limit and allowed client networks
//   - [[list]]: named indicator lists read from a URL, a local file or
//     inline hosts
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/ioc-diff/ioc-diff.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err) // lists every invalid field
//	}
//
// Example configuration:
//
//	[general]
//	range_style = "auto"
//	output_format = "text"
//	line_template = "{{list}}: {{indicator}}"
//
//	[[list]]
//	list_name = "feed_a"
//	url = "https://feeds.example.com/a.txt"
//
//	[[list]]
//	list_name = "feed_b"
//	file = "lists/b.txt"
package config
