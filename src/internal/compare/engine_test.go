package compare

import (
	"reflect"
	"testing"

	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
	"github.com/maksimkurb/ioc-diff/src/internal/errors"
	"github.com/maksimkurb/ioc-diff/src/internal/indicators"
)

func mustCompare(t *testing.T, list1, list2 []string, opts ...Option) *Result {
	t.Helper()
	result, err := Compare(list1, list2, opts...)
	if err != nil {
		t.Fatalf("Compare(%v, %v) failed: %v", list1, list2, err)
	}
	return result
}

func TestCompare_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		list1 []string
		list2 []string
		style addrspace.RangeStyle
		want1 []string
		want2 []string
	}{
		{
			name:  "Single address removed",
			list1: []string{"1.1.1.1", "2.2.2.2"},
			list2: []string{"1.1.1.1"},
			want1: []string{"2.2.2.2"},
			want2: []string{},
		},
		{
			name:  "CIDR minus range, dash style",
			list1: []string{"10.0.0.0/24"},
			list2: []string{"10.0.0.0-10.0.0.127"},
			style: addrspace.RangeStyleDash,
			want1: []string{"10.0.0.128-10.0.0.255"},
			want2: []string{},
		},
		{
			name:  "CIDR minus range, auto style",
			list1: []string{"10.0.0.0/24"},
			list2: []string{"10.0.0.0-10.0.0.127"},
			want1: []string{"10.0.0.128/25"},
			want2: []string{},
		},
		{
			name:  "Mixed IP and domains",
			list1: []string{"example.com", "1.1.1.1"},
			list2: []string{"example.org"},
			want1: []string{"1.1.1.1", "example.com"},
			want2: []string{"example.org"},
		},
		{
			name:  "Hyphenated domain is not a range",
			list1: []string{"bad-domain-name.com"},
			list2: []string{},
			want1: []string{"bad-domain-name.com"},
			want2: []string{},
		},
		{
			name:  "Hole punched in a range",
			list1: []string{"5.5.5.1-5.5.5.10"},
			list2: []string{"5.5.5.5"},
			want1: []string{"5.5.5.1-5.5.5.4", "5.5.5.6-5.5.5.10"},
			want2: []string{},
		},
		{
			name:  "Halves merge before differencing",
			list1: []string{"10.0.0.0/25", "10.0.0.128/25"},
			list2: []string{"10.0.0.0/24"},
			want1: []string{},
			want2: []string{},
		},
		{
			name:  "Partial overlap on both sides",
			list1: []string{"192.168.0.0-192.168.0.20"},
			list2: []string{"192.168.0.10-192.168.0.30"},
			style: addrspace.RangeStyleDash,
			want1: []string{"192.168.0.0-192.168.0.9"},
			want2: []string{"192.168.0.21-192.168.0.30"},
		},
		{
			name:  "CIDR style splits unaligned ranges",
			list1: []string{"10.0.0.1-10.0.0.6"},
			list2: nil,
			style: addrspace.RangeStyleCIDR,
			want1: []string{"10.0.0.1/32", "10.0.0.2/31", "10.0.0.4/31", "10.0.0.6/32"},
			want2: []string{},
		},
		{
			name:  "Both empty",
			list1: nil,
			list2: nil,
			want1: []string{},
			want2: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.style != "" {
				opts = append(opts, WithRangeStyle(tt.style))
			}
			result := mustCompare(t, tt.list1, tt.list2, opts...)

			if !reflect.DeepEqual(result.UniqueIndicators1, tt.want1) {
				t.Errorf("UniqueIndicators1 = %v, want %v", result.UniqueIndicators1, tt.want1)
			}
			if !reflect.DeepEqual(result.UniqueIndicators2, tt.want2) {
				t.Errorf("UniqueIndicators2 = %v, want %v", result.UniqueIndicators2, tt.want2)
			}
		})
	}
}

var propertyLists = [][]string{
	nil,
	{"1.1.1.1"},
	{"1.1.1.1", "1.1.1.2", "example.com"},
	{"10.0.0.0/8", "evil.example", "d41d8cd98f00b204e9800998ecf8427e"},
	{"10.1.0.0-10.1.255.255", "10.0.0.0/24", "bad-domain-name.com"},
	{"5.5.5.1-5.5.5.10", "5.5.5.20", "5.5.5.10-5.5.5.1", "   "},
	{"0.0.0.0/0"},
	{"10.0.0.0/25", "10.0.0.128/25", "example.com", "example.org"},
}

func TestCompare_Symmetry(t *testing.T) {
	for i, l1 := range propertyLists {
		for j, l2 := range propertyLists {
			forward := mustCompare(t, l1, l2)
			backward := mustCompare(t, l2, l1)

			if !reflect.DeepEqual(forward, backward.Swapped()) {
				t.Errorf("lists %d/%d: diff(L1,L2) = %+v, diff(L2,L1) swapped = %+v", i, j, forward, backward.Swapped())
			}
		}
	}
}

func TestCompare_SelfIsEmpty(t *testing.T) {
	for i, l := range propertyLists {
		if result := mustCompare(t, l, l); !result.IsEmpty() {
			t.Errorf("list %d: diff(L,L) = %+v, want empty", i, result)
		}
	}
}

func TestCompare_Idempotent(t *testing.T) {
	for i, l1 := range propertyLists {
		l2 := propertyLists[(i+3)%len(propertyLists)]
		first := mustCompare(t, l1, l2)
		second := mustCompare(t, l1, l2)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("list %d: results differ between runs: %+v vs %+v", i, first, second)
		}
	}
}

func TestCompare_RenderedTokensRoundTrip(t *testing.T) {
	for _, style := range addrspace.RangeStyles {
		for i, l1 := range propertyLists {
			l2 := propertyLists[(i+1)%len(propertyLists)]

			c1, _ := indicators.Classify(l1)
			c2, _ := indicators.Classify(l2)
			expected := c1.Addresses.Difference(c2.Addresses)

			result := NewEngine(WithRangeStyle(style)).Diff(c1, c2)
			reparsed, err := indicators.Classify(result.UniqueIndicators1)
			if err != nil {
				t.Fatalf("%s: re-classifying %v failed: %v", style, result.UniqueIndicators1, err)
			}
			if !reparsed.Addresses.Equal(expected) {
				t.Errorf("%s: %v re-parsed into %s, want %s", style, result.UniqueIndicators1, reparsed.Addresses, expected)
			}
		}
	}
}

func TestCompare_LargeBlocksAreCheap(t *testing.T) {
	result := mustCompare(t, []string{"0.0.0.0/0"}, []string{"10.0.0.0/8", "192.168.1.1"}, WithSummary(true))

	expected := []string{
		"0.0.0.0-9.255.255.255", "11.0.0.0-192.168.1.0", "192.168.1.2-255.255.255.255",
	}
	if !reflect.DeepEqual(result.UniqueIndicators1, expected) {
		t.Errorf("UniqueIndicators1 = %v, want %v", result.UniqueIndicators1, expected)
	}
	if got := result.Summary.List1.Addresses; got != (1<<32)-(1<<24)-1 {
		t.Errorf("Addresses = %d", got)
	}
}

func TestCompare_ParseErrorIsReported(t *testing.T) {
	_, err := Compare([]string{"1.1.1.1"}, []string{"1.1.1.1:443"})
	if err == nil {
		t.Fatal("Expected error")
	}
	if !errors.HasCode(err, errors.ErrCodeParse) {
		t.Errorf("Expected PARSE_ERROR, got %v", err)
	}
}

func TestCompare_LenientClassifier(t *testing.T) {
	classifier := indicators.NewClassifier(indicators.WithLenientParsing(true))
	result := mustCompare(t, []string{"1.1.1.1"}, []string{"1.1.1.1:443"}, WithClassifier(classifier))

	if !reflect.DeepEqual(result.UniqueIndicators2, []string{"1.1.1.1:443"}) {
		t.Errorf("UniqueIndicators2 = %v", result.UniqueIndicators2)
	}
}

func TestCompare_Summary(t *testing.T) {
	result := mustCompare(t,
		[]string{"10.0.0.0/24", "1.1.1.1", "example.com", "d41d8cd98f00b204e9800998ecf8427e"},
		[]string{"10.0.0.0/25", "hello"},
		WithSummary(true),
	)

	want1 := SideSummary{
		AddressRanges: 2,
		Addresses:     129,
		Indicators: map[indicators.Kind]int{
			indicators.KindDomain: 1,
			indicators.KindMD5:    1,
		},
	}
	want2 := SideSummary{
		AddressRanges: 0,
		Addresses:     0,
		Indicators:    map[indicators.Kind]int{indicators.KindOther: 1},
	}

	if !reflect.DeepEqual(result.Summary.List1, want1) {
		t.Errorf("List1 summary = %+v, want %+v", result.Summary.List1, want1)
	}
	if !reflect.DeepEqual(result.Summary.List2, want2) {
		t.Errorf("List2 summary = %+v, want %+v", result.Summary.List2, want2)
	}
}

func TestDiff_DoesNotModifyInputs(t *testing.T) {
	c1, _ := indicators.Classify([]string{"10.0.0.0/24", "a.com"})
	c2, _ := indicators.Classify([]string{"10.0.0.0/25", "a.com"})

	NewEngine().Diff(c1, c2)

	if got := c1.Addresses.String(); got != "10.0.0.0/24" {
		t.Errorf("c1 addresses changed: %s", got)
	}
	if !c2.Opaque.Has("a.com") {
		t.Error("c2 opaque tokens changed")
	}
}
