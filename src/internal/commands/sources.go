package commands

import (
	"context"
	"flag"
	"fmt"

	apperrors "github.com/maksimkurb/ioc-diff/src/internal/errors"
	"github.com/maksimkurb/ioc-diff/src/internal/lists"
)

// listSpec is where one side of a comparison comes from: an inline comma
// separated list, a local file or a list from the configuration.
type listSpec struct {
	// side is "1" or "2" for a comparison, empty for a single list.
	side string

	inline string
	file   string
	source string

	inlineSet bool
	fileSet   bool
	sourceSet bool
}

func (s *listSpec) inlineFlag() string { return "list" + s.side }
func (s *listSpec) fileFlag() string   { return "file" + s.side }
func (s *listSpec) sourceFlag() string { return "source" + s.side }

func (s *listSpec) label() string {
	if s.side == "" {
		return "the list"
	}
	return "list " + s.side
}

// register adds the -listN, -fileN and -sourceN flags to fs.
func (s *listSpec) register(fs *flag.FlagSet) {
	fs.StringVar(&s.inline, s.inlineFlag(), "", fmt.Sprintf("Comma separated indicators of %s", s.label()))
	fs.StringVar(&s.file, s.fileFlag(), "", fmt.Sprintf("File with one indicator of %s per line", s.label()))
	fs.StringVar(&s.source, s.sourceFlag(), "", fmt.Sprintf("Name of a configured list to use as %s", s.label()))
}

// markSet records which flags were given. Call after fs.Parse.
func (s *listSpec) markSet(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case s.inlineFlag():
			s.inlineSet = true
		case s.fileFlag():
			s.fileSet = true
		case s.sourceFlag():
			s.sourceSet = true
		}
	})
}

func (s *listSpec) validate() error {
	count := 0
	for _, set := range []bool{s.inlineSet, s.fileSet, s.sourceSet} {
		if set {
			count++
		}
	}
	if count != 1 {
		return apperrors.NewValidationError(
			fmt.Sprintf("exactly one of -%s, -%s or -%s is required", s.inlineFlag(), s.fileFlag(), s.sourceFlag()), nil)
	}
	return nil
}

// name is the configured list name, or empty for inline lists and files.
func (s *listSpec) name() string {
	if s.sourceSet {
		return s.source
	}
	return ""
}

func (s *listSpec) load(ctx context.Context, loader *lists.Loader) ([]string, error) {
	switch {
	case s.sourceSet:
		return loader.LoadByName(ctx, s.source)
	case s.fileSet:
		indicators, err := lists.LoadFile(s.file)
		if err != nil {
			return nil, apperrors.NewListError(fmt.Sprintf("failed to load %s", s.label()), err)
		}
		return indicators, nil
	default:
		return lists.SplitArgList(s.inline), nil
	}
}

// listInput reads both sides of a comparison.
type listInput struct {
	ctx    context.Context
	loader *lists.Loader
	list1  *listSpec
	list2  *listSpec
}

func (in *listInput) IndicatorLists() ([]string, []string, error) {
	list1, err := in.list1.load(in.ctx, in.loader)
	if err != nil {
		return nil, nil, err
	}
	list2, err := in.list2.load(in.ctx, in.loader)
	if err != nil {
		return nil, nil, err
	}
	return list1, list2, nil
}
