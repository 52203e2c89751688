// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	t.Parallel()

	ids := []Id{
		ConfigLoadFailedId,
		ConfigParseErrorId,
		ScriptSyntaxErrorId,
		ScriptExecutionFailedId,
		FileNotFoundId,
		UnknownArchiveTypeId,
		PermissionDeniedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1 (iota + 1)", ConfigLoadFailedId)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	i := Get(ScriptExecutionFailedId)
	if i == nil {
		t.Fatal("Get(ScriptExecutionFailedId) returned nil")
	}
	if i.Id() != ScriptExecutionFailedId {
		t.Errorf("Id() = %d", i.Id())
	}
	if i.Code() != CodeScriptExecutionFailed {
		t.Errorf("Code() = %q", i.Code())
	}
	if !strings.Contains(string(i.MarkdownMsg()), "Script execution failed") {
		t.Error("markdown message should describe the failure")
	}

	if Get(Id(999)) != nil {
		t.Error("Get of an unknown ID should return nil")
	}
}

func TestValues_CoversAllIds(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != 7 {
		t.Errorf("Values() returned %d issues, want 7", len(values))
	}
	for _, i := range values {
		if i.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty message", i.Id())
		}
		if i.Code() == "" {
			t.Errorf("issue %d has no status code", i.Id())
		}
	}
}

func TestForCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		wantId Id
		wantOk bool
	}{
		{CodeConfigLoadFailed, ConfigLoadFailedId, true},
		{CodeUnknownArchiveType, UnknownArchiveTypeId, true},
		{"not_a_code", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			i, ok := ForCode(tt.code)
			if ok != tt.wantOk {
				t.Fatalf("ForCode(%q) ok = %v, want %v", tt.code, ok, tt.wantOk)
			}
			if ok && i.Id() != tt.wantId {
				t.Errorf("ForCode(%q).Id() = %d, want %d", tt.code, i.Id(), tt.wantId)
			}
		})
	}
}

func TestCodes_SortedAndUnique(t *testing.T) {
	t.Parallel()

	codes := Codes()
	if len(codes) != len(Values()) {
		t.Fatalf("Codes() returned %d codes for %d issues", len(codes), len(Values()))
	}

	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("Codes() not sorted/unique at %d: %q >= %q", i, codes[i-1], codes[i])
		}
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	// Stub the renderer; glamour output depends on terminal detection.
	orig := render
	render = func(in, stylePath string) (string, error) {
		return "rendered:" + stylePath + ":" + in, nil
	}
	t.Cleanup(func() { render = orig })

	out, err := Get(FileNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(out, "rendered:dark:") {
		t.Errorf("Render output = %q", out)
	}
	if !strings.Contains(out, "File not found") {
		t.Error("rendered output should contain the message body")
	}
}
