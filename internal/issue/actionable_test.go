// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "load configuration",
			},
			expected: "failed to load configuration",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "sniff archive",
				Resource:  "./backup.tar.gz",
			},
			expected: "failed to sniff archive: ./backup.tar.gz",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "parse config",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to parse config: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "./config.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load configuration: ./config.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap() should return the cause error")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("permission denied")
	wrapped := WrapWithOperation(inner, "open script")
	err := &ActionableError{
		Operation:   "run script",
		Resource:    "deploy.sh",
		Suggestions: []string{"Check file permissions", "Run from a directory you own"},
		Cause:       wrapped,
	}

	short := err.Format(false)
	if !strings.Contains(short, "failed to run script: deploy.sh") {
		t.Errorf("Format(false) missing main message: %q", short)
	}
	if !strings.Contains(short, "• Check file permissions") {
		t.Errorf("Format(false) missing suggestion bullet: %q", short)
	}
	if strings.Contains(short, "Error chain:") {
		t.Error("Format(false) must not include the error chain")
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") {
		t.Error("Format(true) should include the error chain")
	}
	if !strings.Contains(long, "permission denied") {
		t.Error("Format(true) should include the root cause")
	}
}

func TestErrorContext_Builder(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("/etc/chore/config.cue").
		WithSuggestion("Run 'chore config init'").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil with an operation set")
	}
	if err.Operation != "load configuration" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.Resource != "/etc/chore/config.cue" {
		t.Errorf("Resource = %q", err.Resource)
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() should be true")
	}
	if !errors.Is(err, cause) {
		t.Error("built error should wrap the cause")
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}
