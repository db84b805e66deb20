// Package commands implements the ioc-diff subcommands.
//
// Every command implements Runner: Init parses the command flags and loads
// the configuration, Run does the work. The configuration file is optional;
// without one the defaults of config.DefaultConfig apply and only inline
// lists and files can be compared.
package commands
