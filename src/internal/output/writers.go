package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/ioc-diff/src/internal/compare"
	"github.com/maksimkurb/ioc-diff/src/internal/config"
	"github.com/maksimkurb/ioc-diff/src/internal/indicators"
)

// OutputsPrefix is the top-level key of JSON results.
const OutputsPrefix = "IndicatorsCheck"

// JSONWriter writes results as {"IndicatorsCheck": {"UniqueIndicators1": [...], "UniqueIndicators2": [...]}}.
type JSONWriter struct {
	w io.Writer
}

func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

func (j *JSONWriter) WriteResult(result *compare.Result) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]*compare.Result{OutputsPrefix: result})
}

// TextWriter writes one line per unique indicator using a fasttemplate line
// template with the {{side}}, {{list}} and {{indicator}} tags.
type TextWriter struct {
	w         io.Writer
	tmpl      *fasttemplate.Template
	list1Name string
	list2Name string
}

// NewTextWriter creates a TextWriter. Empty list names default to "list1" and "list2".
func NewTextWriter(w io.Writer, lineTemplate, list1Name, list2Name string) (*TextWriter, error) {
	if lineTemplate == "" {
		lineTemplate = config.DefaultLineTemplate
	}
	tmpl, err := fasttemplate.NewTemplate(lineTemplate, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("invalid line template: %v", err)
	}
	if list1Name == "" {
		list1Name = "list1"
	}
	if list2Name == "" {
		list2Name = "list2"
	}
	return &TextWriter{w: w, tmpl: tmpl, list1Name: list1Name, list2Name: list2Name}, nil
}

func (t *TextWriter) WriteResult(result *compare.Result) error {
	if err := t.writeSide("1", t.list1Name, result.UniqueIndicators1); err != nil {
		return err
	}
	if err := t.writeSide("2", t.list2Name, result.UniqueIndicators2); err != nil {
		return err
	}

	if result.Summary != nil {
		if _, err := fmt.Fprintf(t.w, "# %s: %s\n", t.list1Name, FormatSideSummary(result.Summary.List1)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(t.w, "# %s: %s\n", t.list2Name, FormatSideSummary(result.Summary.List2)); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextWriter) writeSide(side, listName string, unique []string) error {
	for _, indicator := range unique {
		line := t.tmpl.ExecuteString(map[string]interface{}{
			config.TemplateTagSide:      side,
			config.TemplateTagList:      listName,
			config.TemplateTagIndicator: indicator,
		})
		if _, err := io.WriteString(t.w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatSideSummary renders a SideSummary as a single line,
// e.g. "2 ranges, 129 addresses domain=1 md5=1".
func FormatSideSummary(s compare.SideSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d ranges, %d addresses", s.AddressRanges, s.Addresses))

	kinds := make([]string, 0, len(s.Indicators))
	for kind := range s.Indicators {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		sb.WriteString(fmt.Sprintf(" %s=%d", kind, s.Indicators[indicators.Kind(kind)]))
	}
	return sb.String()
}
