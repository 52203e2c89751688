// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"chore-cli/internal/options"
)

// confirm asks the user a yes/no question on the given streams. The global
// --assume-yes option answers yes without prompting. Anything other than
// "y"/"yes" (case-insensitive) counts as no, including a read failure.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	if options.Default().Bool(options.AssumeYes) {
		return true
	}

	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
