// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"chore-cli/internal/options"

	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the global options and their effective values",
	Long: `List the global options and their effective values.

Each option's value is resolved by precedence: values set at runtime beat
command-line flags, which beat the config file, which beats the built-in
default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderOptions(cmd.OutOrStdout(), options.Default())
	},
}

// renderOptions writes the option schema table with effective values.
func renderOptions(w io.Writer, store *options.Store) error {
	fmt.Fprintln(w, TitleStyle.Render("Global Options"))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSHORT\tVALUE\tDEFAULT\tDESCRIPTION")

	for _, opt := range options.Globals() {
		if opt.Hidden {
			continue
		}

		value := ""
		if v, ok := store.Get(opt.Name); ok {
			value = fmt.Sprintf("%v", v)
		}

		short := ""
		if opt.Shorthand != "" {
			short = "-" + opt.Shorthand
		}

		fmt.Fprintf(tw, "--%s\t%s\t%s\t%s\t%s\n",
			opt.Name, short, value, opt.Default, opt.Description)
	}

	return tw.Flush()
}
