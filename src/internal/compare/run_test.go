package compare

import (
	"errors"
	"reflect"
	"testing"
)

type recordingOutput struct {
	result *Result
	err    error
}

func (o *recordingOutput) WriteResult(result *Result) error {
	o.result = result
	return o.err
}

type failingInput struct{}

func (failingInput) IndicatorLists() ([]string, []string, error) {
	return nil, nil, errors.New("no such argument")
}

func TestRun(t *testing.T) {
	out := &recordingOutput{}
	in := StaticInput{
		List1: []string{"1.1.1.1", "2.2.2.2"},
		List2: []string{"1.1.1.1"},
	}

	if err := NewEngine().Run(in, out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(out.result.UniqueIndicators1, []string{"2.2.2.2"}) {
		t.Errorf("UniqueIndicators1 = %v", out.result.UniqueIndicators1)
	}
	if len(out.result.UniqueIndicators2) != 0 {
		t.Errorf("UniqueIndicators2 = %v", out.result.UniqueIndicators2)
	}
}

func TestRun_InputError(t *testing.T) {
	out := &recordingOutput{}
	if err := NewEngine().Run(failingInput{}, out); err == nil {
		t.Fatal("Expected input error")
	}
	if out.result != nil {
		t.Error("Output must not be called when input fails")
	}
}

func TestRun_OutputError(t *testing.T) {
	sinkErr := errors.New("sink closed")
	out := &recordingOutput{err: sinkErr}

	err := NewEngine().Run(StaticInput{List1: []string{"a"}}, out)
	if !errors.Is(err, sinkErr) {
		t.Errorf("Expected sink error, got %v", err)
	}
}
