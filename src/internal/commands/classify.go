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
	"github.com/maksimkurb/ioc-diff/src/internal/output"
)

// CreateClassifyCommand creates the classify command, which prints how one
// list splits into address space and other indicators.
func CreateClassifyCommand() *ClassifyCommand {
	gc := &ClassifyCommand{
		fs:   flag.NewFlagSet("classify", flag.ExitOnError),
		list: &listSpec{},
	}

	gc.list.register(gc.fs)
	gc.fs.StringVar(&gc.style, "style", "", "Range style: auto, dash or cidr (default: from config, auto)")
	gc.fs.BoolVar(&gc.lenient, "lenient", false, "Treat unparseable address-like tokens as plain indicators")

	return gc
}

type ClassifyCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	list    *listSpec
	style   string
	lenient bool

	rangeStyle addrspace.RangeStyle
}

func (g *ClassifyCommand) Name() string {
	return g.fs.Name()
}

func (g *ClassifyCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	g.list.markSet(g.fs)
	if err := g.list.validate(); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	if g.style == "" {
		g.rangeStyle = cfg.GetRangeStyle()
	} else if g.rangeStyle, err = addrspace.ParseRangeStyle(g.style); err != nil {
		return apperrors.NewValidationError("invalid -style", err)
	}
	g.lenient = g.lenient || cfg.General.LenientParsing

	return nil
}

// Run prints one "<kind>\t<indicator>" line per entry, address space first.
func (g *ClassifyCommand) Run() error {
	tokens, err := g.list.load(context.Background(), lists.NewLoader(g.cfg, nil))
	if err != nil {
		return err
	}

	classifier := indicators.NewClassifier(indicators.WithLenientParsing(g.lenient))
	classified, err := classifier.Classify(tokens)
	if err != nil {
		return err
	}

	stdout := g.ctx.stdout()
	for _, token := range classified.Addresses.Tokens(g.rangeStyle) {
		if _, err := fmt.Fprintf(stdout, "ip\t%s\n", token); err != nil {
			return err
		}
	}
	for _, token := range classified.Opaque.Values() {
		if _, err := fmt.Fprintf(stdout, "%s\t%s\n", indicators.KindOf(token), token); err != nil {
			return err
		}
	}

	summary := output.FormatSideSummary(compare.Summarize(classified))
	_, err = fmt.Fprintf(stdout, "# %s\n", summary)
	return err
}
