// SPDX-License-Identifier: MPL-2.0

package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestGlobals_TableShape(t *testing.T) {
	t.Parallel()

	defs := Globals()
	if len(defs) == 0 {
		t.Fatal("Globals() returned an empty table")
	}

	// Presentation order is part of the contract.
	wantOrder := []string{Verbose, Debug, Quiet, Simulate, AssumeYes, NoColor, Config}
	if len(defs) != len(wantOrder) {
		t.Fatalf("Globals() has %d entries, want %d", len(defs), len(wantOrder))
	}
	for i, name := range wantOrder {
		if defs[i].Name != name {
			t.Errorf("Globals()[%d].Name = %q, want %q", i, defs[i].Name, name)
		}
	}

	seen := make(map[string]bool)
	shorts := make(map[string]bool)
	for _, opt := range defs {
		if seen[opt.Name] {
			t.Errorf("duplicate option name %q", opt.Name)
		}
		seen[opt.Name] = true
		if opt.Shorthand != "" {
			if shorts[opt.Shorthand] {
				t.Errorf("duplicate shorthand %q", opt.Shorthand)
			}
			shorts[opt.Shorthand] = true
		}
		if opt.Description == "" {
			t.Errorf("option %q has no description", opt.Name)
		}
	}
}

func TestGlobals_ReturnsCopy(t *testing.T) {
	t.Parallel()

	defs := Globals()
	defs[0].Name = "mutated"

	if got := Globals()[0].Name; got == "mutated" {
		t.Error("mutating the returned slice must not affect the table")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		wantOk bool
	}{
		{Simulate, true},
		{Config, true},
		{"does-not-exist", false},
		{"", false},
		{"SIMULATE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opt, ok := Lookup(tt.name)
			if ok != tt.wantOk {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOk)
			}
			if ok && opt.Name != tt.name {
				t.Errorf("Lookup(%q) returned option %q", tt.name, opt.Name)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Register(fs)

	for _, opt := range Globals() {
		flag := fs.Lookup(opt.Name)
		if flag == nil {
			t.Errorf("flag %q not registered", opt.Name)
			continue
		}
		if flag.Shorthand != opt.Shorthand {
			t.Errorf("flag %q shorthand = %q, want %q", opt.Name, flag.Shorthand, opt.Shorthand)
		}
		wantType := "bool"
		if opt.TakesValue {
			wantType = "string"
		}
		if flag.Value.Type() != wantType {
			t.Errorf("flag %q type = %q, want %q", opt.Name, flag.Value.Type(), wantType)
		}
	}
}

func TestRegister_ParsesShorthand(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Register(fs)

	if err := fs.Parse([]string{"-s", "-v", "--config", "/tmp/alt.cue"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	simulate, err := fs.GetBool(Simulate)
	if err != nil || !simulate {
		t.Errorf("GetBool(simulate) = %v, %v; want true", simulate, err)
	}
	cfg, err := fs.GetString(Config)
	if err != nil || cfg != "/tmp/alt.cue" {
		t.Errorf("GetString(config) = %q, %v", cfg, err)
	}
}

func TestBind(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Register(fs)
	v := viper.New()

	if err := Bind(v, fs); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if err := fs.Parse([]string{"--verbose"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !v.GetBool(Verbose) {
		t.Error("viper should see the parsed flag value")
	}
}

func TestBind_MissingFlag(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	// Register is deliberately skipped.
	if err := Bind(viper.New(), fs); err == nil {
		t.Error("Bind on an empty flag set should fail")
	}
}
