package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeParse, "cannot parse \"1.1.1.1:80\"", errors.New("unexpected character")),
			expected: "[PARSE_ERROR] cannot parse \"1.1.1.1:80\": unexpected character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeList, Message: "test error"}
	err2 := &Error{Code: ErrCodeList, Message: "another error"}
	err3 := &Error{Code: ErrCodeParse, Message: "parse error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestHasCode(t *testing.T) {
	parseErr := NewParseError("bad token", nil)
	wrapped := fmt.Errorf("failed to classify list 1: %w", parseErr)

	if !HasCode(wrapped, ErrCodeParse) {
		t.Error("Expected wrapped parse error to be detected")
	}
	if HasCode(wrapped, ErrCodeList) {
		t.Error("Did not expect list error code")
	}
	if HasCode(errors.New("plain"), ErrCodeParse) {
		t.Error("Plain errors carry no code")
	}
	if HasCode(nil, ErrCodeParse) {
		t.Error("nil error carries no code")
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("file not found")

	tests := []struct {
		name string
		err  *Error
		code ErrorCode
	}{
		{"config", NewConfigError("failed to load config", cause), ErrCodeConfig},
		{"validation", NewValidationError("bad field", cause), ErrCodeValidation},
		{"list", NewListError("failed to read list", cause), ErrCodeList},
		{"parse", NewParseError("bad token", cause), ErrCodeParse},
		{"internal", NewInternalError("unexpected", cause), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Expected code %v, got %v", tt.code, tt.err.Code)
			}
			if tt.err.Cause != cause {
				t.Errorf("Expected cause to be preserved")
			}
		})
	}
}

func TestNew(t *testing.T) {
	err := New(ErrCodeValidation, "list name is required")

	if err.Cause != nil {
		t.Error("Expected no cause")
	}
	if err.Error() != "[VALIDATION_ERROR] list name is required" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}
