package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/maksimkurb/ioc-diff/src/internal/compare"
	"github.com/maksimkurb/ioc-diff/src/internal/indicators"
)

func sampleResult() *compare.Result {
	return &compare.Result{
		UniqueIndicators1: []string{"10.0.0.128/25", "example.com"},
		UniqueIndicators2: []string{"example.org"},
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).WriteResult(sampleResult()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}

	outputs, ok := decoded[OutputsPrefix]
	if !ok {
		t.Fatalf("Expected %s key, got %s", OutputsPrefix, buf.String())
	}
	if !reflect.DeepEqual(outputs["UniqueIndicators1"], []string{"10.0.0.128/25", "example.com"}) {
		t.Errorf("UniqueIndicators1 = %v", outputs["UniqueIndicators1"])
	}
	if !reflect.DeepEqual(outputs["UniqueIndicators2"], []string{"example.org"}) {
		t.Errorf("UniqueIndicators2 = %v", outputs["UniqueIndicators2"])
	}
}

func TestTextWriter(t *testing.T) {
	tests := []struct {
		name     string
		template string
		list1    string
		list2    string
		expected string
	}{
		{
			name:     "Default template",
			expected: "1\t10.0.0.128/25\n1\texample.com\n2\texample.org\n",
		},
		{
			name:     "Named lists",
			template: "{{list}}: {{indicator}}",
			list1:    "feed_a",
			list2:    "feed_b",
			expected: "feed_a: 10.0.0.128/25\nfeed_a: example.com\nfeed_b: example.org\n",
		},
		{
			name:     "Indicator only",
			template: "{{indicator}}",
			expected: "10.0.0.128/25\nexample.com\nexample.org\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewTextWriter(&buf, tt.template, tt.list1, tt.list2)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err := w.WriteResult(sampleResult()); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Output = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestTextWriter_InvalidTemplate(t *testing.T) {
	if _, err := NewTextWriter(&bytes.Buffer{}, "{{indicator", "", ""); err == nil {
		t.Error("Expected error for unclosed tag")
	}
}

func TestTextWriter_Summary(t *testing.T) {
	result := sampleResult()
	result.Summary = &compare.Summary{
		List1: compare.SideSummary{
			AddressRanges: 1,
			Addresses:     128,
			Indicators:    map[indicators.Kind]int{indicators.KindDomain: 1},
		},
		List2: compare.SideSummary{
			Indicators: map[indicators.Kind]int{indicators.KindDomain: 1},
		},
	}

	var buf bytes.Buffer
	w, _ := NewTextWriter(&buf, "{{indicator}}", "", "")
	if err := w.WriteResult(result); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "10.0.0.128/25\nexample.com\nexample.org\n" +
		"# list1: 1 ranges, 128 addresses domain=1\n" +
		"# list2: 0 ranges, 0 addresses domain=1\n"
	if buf.String() != expected {
		t.Errorf("Output = %q, want %q", buf.String(), expected)
	}
}
