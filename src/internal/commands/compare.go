package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
	"github.com/maksimkurb/ioc-diff/src/internal/compare"
	"github.com/maksimkurb/ioc-diff/src/internal/config"
	apperrors "github.com/maksimkurb/ioc-diff/src/internal/errors"
	"github.com/maksimkurb/ioc-diff/src/internal/indicators"
	"github.com/maksimkurb/ioc-diff/src/internal/lists"
	"github.com/maksimkurb/ioc-diff/src/internal/log"
	"github.com/maksimkurb/ioc-diff/src/internal/output"
)

func CreateCompareCommand() *CompareCommand {
	gc := &CompareCommand{
		fs:    flag.NewFlagSet("compare", flag.ExitOnError),
		list1: &listSpec{side: "1"},
		list2: &listSpec{side: "2"},
	}

	gc.list1.register(gc.fs)
	gc.list2.register(gc.fs)
	gc.fs.StringVar(&gc.format, "format", "", "Output format: json or text (default: from config, json)")
	gc.fs.StringVar(&gc.style, "style", "", "Range style: auto, dash or cidr (default: from config, auto)")
	gc.fs.BoolVar(&gc.summary, "summary", false, "Add per-list statistics to the output")
	gc.fs.BoolVar(&gc.lenient, "lenient", false, "Treat unparseable address-like tokens as plain indicators")

	return gc
}

type CompareCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	list1 *listSpec
	list2 *listSpec

	format  string
	style   string
	summary bool
	lenient bool

	rangeStyle addrspace.RangeStyle
}

func (g *CompareCommand) Name() string {
	return g.fs.Name()
}

func (g *CompareCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	g.list1.markSet(g.fs)
	g.list2.markSet(g.fs)

	if err := g.list1.validate(); err != nil {
		return err
	}
	if err := g.list2.validate(); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	if g.format == "" {
		g.format = cfg.General.OutputFormat
	}
	if g.format != config.OutputFormatJSON && g.format != config.OutputFormatText {
		return apperrors.NewValidationError(fmt.Sprintf("unknown output format: %s", g.format), nil)
	}

	if g.style == "" {
		g.rangeStyle = cfg.GetRangeStyle()
	} else if g.rangeStyle, err = addrspace.ParseRangeStyle(g.style); err != nil {
		return apperrors.NewValidationError("invalid -style", err)
	}

	g.summary = g.summary || cfg.General.Summary
	g.lenient = g.lenient || cfg.General.LenientParsing

	return nil
}

func (g *CompareCommand) Run() error {
	engine := compare.NewEngine(
		compare.WithRangeStyle(g.rangeStyle),
		compare.WithClassifier(indicators.NewClassifier(indicators.WithLenientParsing(g.lenient))),
		compare.WithSummary(g.summary),
	)

	out, err := g.output()
	if err != nil {
		return err
	}

	in := &listInput{
		ctx:    context.Background(),
		loader: lists.NewLoader(g.cfg, nil),
		list1:  g.list1,
		list2:  g.list2,
	}

	log.Debugf("Comparing lists with range style %s", g.rangeStyle)
	return engine.Run(in, out)
}

func (g *CompareCommand) output() (compare.Output, error) {
	stdout := g.ctx.stdout()
	if g.format == config.OutputFormatText {
		return output.NewTextWriter(stdout, g.cfg.General.LineTemplate, g.list1.name(), g.list2.name())
	}
	return output.NewJSONWriter(stdout), nil
}
