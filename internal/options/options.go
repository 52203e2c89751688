// SPDX-License-Identifier: MPL-2.0

package options

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Canonical names of the global options. Command code should reference these
// constants instead of repeating string literals.
const (
	Verbose   = "verbose"
	Debug     = "debug"
	Quiet     = "quiet"
	Simulate  = "simulate"
	AssumeYes = "assume-yes"
	NoColor   = "no-color"
	Config    = "config"
)

// Option describes a single global option.
type Option struct {
	// Name is the long flag name and the lookup key in the value store.
	Name string

	// Shorthand is the single-letter flag alias ("" for none).
	Shorthand string

	// Description is the help text shown in --help and `chore options`.
	Description string

	// TakesValue distinguishes string-valued options from boolean switches.
	TakesValue bool

	// Default is the schema default, rendered as a string ("false" for
	// switches, "" for unset string options).
	Default string

	// Hidden options are registered but omitted from help output.
	Hidden bool
}

// globals is the option schema table. Order is presentation order and must
// stay stable; tests pin it.
var globals = []Option{
	{Name: Verbose, Shorthand: "v", Description: "display extra information about the operation", Default: "false"},
	{Name: Debug, Shorthand: "d", Description: "display even more information, including call traces", Default: "false"},
	{Name: Quiet, Shorthand: "q", Description: "suppress non-error output", Default: "false"},
	{Name: Simulate, Shorthand: "s", Description: "report what would be done without doing it", Default: "false"},
	{Name: AssumeYes, Shorthand: "y", Description: "assume 'yes' for all confirmation prompts", Default: "false"},
	{Name: NoColor, Description: "disable colored output", Default: "false"},
	{Name: Config, Description: "path to an alternate config file", TakesValue: true},
}

// Globals returns the option schema table in presentation order.
func Globals() []Option {
	return slices.Clone(globals)
}

// Lookup finds an option definition by name.
func Lookup(name string) (Option, bool) {
	for _, opt := range globals {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Register adds every global option to the flag set. Boolean options become
// switches, value options become string flags.
func Register(fs *pflag.FlagSet) {
	for _, opt := range globals {
		if opt.TakesValue {
			fs.StringP(opt.Name, opt.Shorthand, opt.Default, opt.Description)
		} else {
			fs.BoolP(opt.Name, opt.Shorthand, opt.Default == "true", opt.Description)
		}
		if opt.Hidden {
			// Registration above guarantees the flag exists.
			_ = fs.MarkHidden(opt.Name)
		}
	}
}

// Bind connects every registered global flag to viper so config-file values
// flow through the usual viper precedence as well.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, opt := range globals {
		flag := fs.Lookup(opt.Name)
		if flag == nil {
			return fmt.Errorf("global option %q is not registered on the flag set", opt.Name)
		}
		if err := v.BindPFlag(opt.Name, flag); err != nil {
			return fmt.Errorf("bind option %q: %w", opt.Name, err)
		}
	}
	return nil
}

// asBool coerces a stored option value to bool. Strings go through
// strconv.ParseBool so "1"/"true"/"TRUE" behave like flag parsing.
func asBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		return err == nil && b
	default:
		return false
	}
}
