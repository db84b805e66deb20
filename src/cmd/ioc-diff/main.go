package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/ioc-diff/src/internal/api"
	"github.com/maksimkurb/ioc-diff/src/internal/commands"
	"github.com/maksimkurb/ioc-diff/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version: api.VersionInfo{Version: version, Commit: commit, Date: date},
	}

	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to configuration file (optional)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "IP-aware indicator list comparison\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  compare                 Print indicators unique to each of two lists\n")
		fmt.Fprintf(os.Stderr, "  classify                Show how a list splits into IP address space and other indicators\n")
		fmt.Fprintf(os.Stderr, "  server                  Run the HTTP API server\n")
		fmt.Fprintf(os.Stderr, "  check-config            Validate the configuration file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}
	// stdout carries command results
	log.SetForceStdErr(true)

	cmds := []commands.Runner{
		commands.CreateCompareCommand(),
		commands.CreateClassifyCommand(),
		commands.CreateServerCommand(),
		commands.CreateCheckConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
