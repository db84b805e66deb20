package compare

import "fmt"

// Input supplies the two raw indicator lists.
type Input interface {
	IndicatorLists() (list1, list2 []string, err error)
}

// Output receives the comparison result.
type Output interface {
	WriteResult(result *Result) error
}

// StaticInput is an Input backed by two in-memory lists.
type StaticInput struct {
	List1 []string
	List2 []string
}

func (in StaticInput) IndicatorLists() ([]string, []string, error) {
	return in.List1, in.List2, nil
}

// Run reads both lists from in, compares them and hands the result to out.
func (e *Engine) Run(in Input, out Output) error {
	list1, list2, err := in.IndicatorLists()
	if err != nil {
		return fmt.Errorf("failed to read indicator lists: %w", err)
	}

	result, err := e.Compare(list1, list2)
	if err != nil {
		return err
	}

	if err := out.WriteResult(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
