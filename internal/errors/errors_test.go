package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "with field and value",
			err: &ValidationError{
				Field:   "cpr",
				Value:   "123",
				Message: "must be exactly 10 digits, optionally hyphen-separated",
			},
			expected: "validation failed for cpr=\"123\": must be exactly 10 digits, optionally hyphen-separated",
		},
		{
			name: "with field only",
			err: &ValidationError{
				Field:   "cprs",
				Message: "is required",
			},
			expected: "validation failed for cprs: is required",
		},
		{
			name: "message only",
			err: &ValidationError{
				Message: "something went wrong",
			},
			expected: "validation failed: something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("cpr", "abc", "must be exactly 10 digits")

	if err.Field != "cpr" {
		t.Errorf("Field = %q, want %q", err.Field, "cpr")
	}
	if err.Value != "abc" {
		t.Errorf("Value = %q, want %q", err.Value, "abc")
	}
	if err.Message != "must be exactly 10 digits" {
		t.Errorf("Message = %q, want %q", err.Message, "must be exactly 10 digits")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(NewValidationError("cpr", "", "is required")) {
		t.Error("IsValidation should be true for *ValidationError")
	}
	if IsValidation(errors.New("plain error")) {
		t.Error("IsValidation should be false for plain errors")
	}
	if IsValidation(nil) {
		t.Error("IsValidation should be false for nil")
	}
}

func TestValidationErrorAsTarget(t *testing.T) {
	wrapped := fmt.Errorf("tool failed: %w", NewValidationError("cpr", "", "is required"))

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As should unwrap *ValidationError")
	}
	if verr.Field != "cpr" {
		t.Errorf("Field = %q, want %q", verr.Field, "cpr")
	}
}
