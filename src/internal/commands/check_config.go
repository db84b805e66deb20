package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/ioc-diff/src/internal/config"
	apperrors "github.com/maksimkurb/ioc-diff/src/internal/errors"
)

func CreateCheckConfigCommand() *CheckConfigCommand {
	gc := &CheckConfigCommand{
		fs: flag.NewFlagSet("check-config", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.print, "print", false, "Print the configuration with defaults applied")
	return gc
}

// CheckConfigCommand loads and validates the configuration file.
type CheckConfigCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	cfg   *config.Config
	print bool
}

func (g *CheckConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if ctx.ConfigPath == "" {
		return apperrors.NewConfigError("no configuration file given, use -config", nil)
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	return nil
}

func (g *CheckConfigCommand) Run() error {
	stdout := g.ctx.stdout()

	if g.print {
		buf, err := g.cfg.SerializeConfig()
		if err != nil {
			return apperrors.NewConfigError("failed to serialize configuration", err)
		}
		_, err = stdout.Write(buf.Bytes())
		return err
	}

	fmt.Fprintf(stdout, "Configuration is valid: %d list(s)\n", len(g.cfg.Lists))
	for _, list := range g.cfg.Lists {
		fmt.Fprintf(stdout, "  %s\n", list)
	}
	return nil
}
