// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"chore-cli/internal/options"
)

func TestConfirm_ReadsAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"garbage", "maybe\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirm(strings.NewReader(tt.input), &out, "Proceed?")
			if got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Proceed?") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestConfirm_AssumeYes(t *testing.T) {
	options.Default().Set(options.AssumeYes, true)
	t.Cleanup(func() { options.Default().Clear(options.AssumeYes) })

	var out bytes.Buffer
	if !confirm(strings.NewReader(""), &out, "Proceed?") {
		t.Error("confirm() should return true with --assume-yes")
	}
	if out.Len() != 0 {
		t.Errorf("confirm() should not prompt with --assume-yes, wrote %q", out.String())
	}
}
