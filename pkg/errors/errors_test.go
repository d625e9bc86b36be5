// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/specedit/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "tag_not_found_error",
			code:    errors.ErrTagNotFound,
			message: "no Source tag",
			wantStr: "[TAG_NOT_FOUND] no Source tag",
		},
		{
			name:    "spec_edit_error",
			code:    errors.ErrSpecEdit,
			message: "underlying spec edit failed",
			wantStr: "[SPEC_EDIT] underlying spec edit failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrSectionNotFound, "section %s is missing", "%prep")
	if err.Message != "section %prep is missing" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "cannot save spec")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_WRITE] cannot save spec: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTagNotFound, "missing").
		WithDetail("tag", "Source0").
		WithDetail("section", 0)

	if err.Details["tag"] != "Source0" {
		t.Errorf("WithDetail() tag = %v", err.Details["tag"])
	}
	if got := errors.GetErrorDetails(err); got["section"] != 0 {
		t.Errorf("GetErrorDetails() section = %v", got["section"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrTagNotFound, "error 1")
	err2 := errors.New(errors.ErrTagNotFound, "error 2")
	err3 := errors.New(errors.ErrSpecEdit, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrSourceNotFound, "x"), errors.ErrSourceNotFound, true},
		{"different_code", errors.New(errors.ErrSourceNotFound, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrSetupNotFound, "x")); got != errors.ErrSetupNotFound {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read spec")
	editErr := errors.Wrap(fileErr, errors.ErrSpecEdit, "reload failed")

	if !errors.IsErrorCode(editErr, errors.ErrSpecEdit) {
		t.Error("top level should have ErrSpecEdit code")
	}

	var specErr *errors.SpecError
	if !stderrors.As(editErr.Unwrap(), &specErr) || specErr.Code != errors.ErrFileAccess {
		t.Error("middle error should have ErrFileAccess code")
	}

	if !stderrors.Is(editErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("saving: %w", errors.New(errors.ErrFileWrite, "disk full"))

	var specErr *errors.SpecError
	if !errors.As(err, &specErr) {
		t.Fatal("should find the SpecError in the chain")
	}
	if specErr.Message != "disk full" {
		t.Errorf("unexpected message %q", specErr.Message)
	}

	if errors.As(stderrors.New("plain"), &specErr) {
		t.Error("plain errors carry no SpecError")
	}
}
