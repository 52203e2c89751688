// SPDX-License-Identifier: MPL-2.0

// chore is a command-line automation tool for project maintenance tasks.
package main

import (
	cmd "chore-cli/cmd/chore"
)

func main() {
	cmd.Execute()
}
