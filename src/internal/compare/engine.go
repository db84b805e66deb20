package compare

import (
	"fmt"

	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
	"github.com/maksimkurb/ioc-diff/src/internal/indicators"
	"github.com/maksimkurb/ioc-diff/src/internal/log"
)

// Engine computes the symmetric difference of two classified indicator lists.
type Engine struct {
	style      addrspace.RangeStyle
	classifier *indicators.Classifier
	summary    bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRangeStyle selects how multi-address ranges are rendered (default: auto).
func WithRangeStyle(style addrspace.RangeStyle) Option {
	return func(e *Engine) {
		e.style = style
	}
}

// WithClassifier replaces the default Classifier used by Engine.Compare.
func WithClassifier(c *indicators.Classifier) Option {
	return func(e *Engine) {
		e.classifier = c
	}
}

// WithSummary attaches per-side statistics to every Result.
func WithSummary(enabled bool) Option {
	return func(e *Engine) {
		e.summary = enabled
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		style:      addrspace.RangeStyleAuto,
		classifier: indicators.NewClassifier(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Diff returns the indicators only present in c1 and those only present in c2.
// Address space is compared as sets of addresses, so "10.0.0.0/25" and
// "10.0.0.0-10.0.0.127" cancel out. Neither input is modified.
func (e *Engine) Diff(c1, c2 *indicators.Classified) *Result {
	ipDiff1 := c1.Addresses.Difference(c2.Addresses)
	ipDiff2 := c2.Addresses.Difference(c1.Addresses)
	opaqueDiff1 := c1.Opaque.Difference(c2.Opaque)
	opaqueDiff2 := c2.Opaque.Difference(c1.Opaque)

	result := &Result{
		UniqueIndicators1: render(ipDiff1, opaqueDiff1, e.style),
		UniqueIndicators2: render(ipDiff2, opaqueDiff2, e.style),
	}

	if e.summary {
		result.Summary = &Summary{
			List1: summarize(ipDiff1, opaqueDiff1),
			List2: summarize(ipDiff2, opaqueDiff2),
		}
	}

	log.Debugf("Unique indicators: %d in list 1, %d in list 2",
		len(result.UniqueIndicators1), len(result.UniqueIndicators2))

	return result
}

// Compare classifies both raw lists and diffs them.
func (e *Engine) Compare(list1, list2 []string) (*Result, error) {
	c1, err := e.classifier.Classify(list1)
	if err != nil {
		return nil, fmt.Errorf("failed to classify list 1: %w", err)
	}
	c2, err := e.classifier.Classify(list2)
	if err != nil {
		return nil, fmt.Errorf("failed to classify list 2: %w", err)
	}
	return e.Diff(c1, c2), nil
}

// Compare diffs two raw indicator lists with default settings.
func Compare(list1, list2 []string, opts ...Option) (*Result, error) {
	return NewEngine(opts...).Compare(list1, list2)
}

// render lists address tokens in address order followed by opaque tokens in lexicographic order.
func render(ips *addrspace.Space, opaque indicators.TokenSet, style addrspace.RangeStyle) []string {
	out := make([]string, 0, opaque.Len())
	out = append(out, ips.Tokens(style)...)
	out = append(out, opaque.Values()...)
	return out
}
