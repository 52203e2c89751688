// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"chore-cli/internal/options"
	"chore-cli/internal/session"
)

func TestRenderOptions(t *testing.T) {
	t.Parallel()

	store := options.NewStore(session.New())
	store.Set(options.Simulate, true)

	var buf bytes.Buffer
	if err := renderOptions(&buf, store); err != nil {
		t.Fatalf("renderOptions() returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"--verbose", "--simulate", "--assume-yes", "--config", "-v", "-s"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderOptions() output missing %q:\n%s", want, out)
		}
	}
}
