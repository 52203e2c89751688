// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"chore-cli/internal/config"
)

func TestDumpConfig_CUE(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := dumpConfig(&buf, config.DefaultConfig(), "cue"); err != nil {
		t.Fatalf("dumpConfig() returned error: %v", err)
	}
	if !strings.Contains(buf.String(), `log_level: "info"`) {
		t.Errorf("CUE dump missing log_level:\n%s", buf.String())
	}
}

func TestDumpConfig_TOML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := dumpConfig(&buf, config.DefaultConfig(), "toml"); err != nil {
		t.Fatalf("dumpConfig() returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "log_level = 'info'") {
		t.Errorf("TOML dump missing log_level:\n%s", buf.String())
	}
}

func TestDumpConfig_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := dumpConfig(&buf, config.DefaultConfig(), "yaml"); err == nil {
		t.Fatal("dumpConfig() should reject unknown formats")
	}
}

func TestFileExistsCheck(t *testing.T) {
	t.Parallel()

	if fileExistsCheck("/does/not/exist") {
		t.Error("fileExistsCheck() = true for missing path")
	}
	if fileExistsCheck(t.TempDir()) {
		t.Error("fileExistsCheck() = true for a directory")
	}
}
