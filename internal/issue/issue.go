// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ConfigParseErrorId
	ScriptSyntaxErrorId
	ScriptExecutionFailedId
	FileNotFoundId
	UnknownArchiveTypeId
	PermissionDeniedId
)

// Status codes recorded by the error tracker for each issue. Command code
// uses these with status.Tracker.Set.
const (
	CodeConfigLoadFailed      = "config_load_failed"
	CodeConfigParseError      = "config_parse_error"
	CodeScriptSyntaxError     = "script_syntax_error"
	CodeScriptExecutionFailed = "script_execution_failed"
	CodeFileNotFound          = "file_not_found"
	CodeUnknownArchiveType    = "unknown_archive_type"
	CodePermissionDenied      = "permission_denied"
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	code  string      // status-tracker code for this failure class
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Code() string {
	return i.code
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		code: CodeConfigLoadFailed,
		mdMsg: `
# Failed to load configuration!

Could not load the chore configuration file.

## Configuration file locations:
- Linux: ~/.config/chore/config.cue
- macOS: ~/Library/Application Support/chore/config.cue
- Windows: %APPDATA%\chore\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ chore config init
~~~

- Remove the config file to use defaults:
~~~
$ rm ~/.config/chore/config.cue
~~~`,
	}

	configParseErrorIssue = &Issue{
		id:   ConfigParseErrorId,
		code: CodeConfigParseError,
		mdMsg: `
# Failed to parse configuration!

Your config file contains syntax errors or values the schema rejects.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- Invalid values for known fields

## Things you can try:
- Check the error message above for the specific field
- Validate your file with the cue command-line tool
- Start over from defaults:
~~~
$ chore config init
~~~

## Example configuration:
~~~cue
log_level: "info"
simulate: false

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	scriptSyntaxErrorIssue = &Issue{
		id:   ScriptSyntaxErrorId,
		code: CodeScriptSyntaxError,
		mdMsg: `
# Script syntax error!

The script could not be parsed by the embedded shell interpreter.

## Things you can try:
- Check the error message above for the line and column
- Look for unterminated quotes or dangling pipes
- Validate the script without running it:
~~~
$ chore run --simulate my-script.sh
~~~`,
	}

	scriptExecutionFailedIssue = &Issue{
		id:   ScriptExecutionFailedId,
		code: CodeScriptExecutionFailed,
		mdMsg: `
# Script execution failed!

The script failed to execute properly.

## Common causes:
- Command not found in PATH
- Permission denied
- Missing dependencies

## Things you can try:
- Run with verbose mode for more details:
~~~
$ chore --verbose run my-script.sh
~~~

- Test the script manually in your shell
- Check file permissions and PATH settings`,
	}

	fileNotFoundIssue = &Issue{
		id:   FileNotFoundId,
		code: CodeFileNotFound,
		mdMsg: `
# File not found!

The file you specified does not exist or is not readable.

## Things you can try:
- Check for typos in the path
- Verify the file exists:
~~~
$ ls -l <path>
~~~`,
	}

	unknownArchiveTypeIssue = &Issue{
		id:   UnknownArchiveTypeId,
		code: CodeUnknownArchiveType,
		mdMsg: `
# Unknown archive type!

The file's content type could not be determined from its magic bytes or
its extension.

## Recognized types:
tar, gzip, bzip2, zip, xz, zstd

## Things you can try:
- Check that the file is not truncated or corrupted
- Rename the file with a conventional extension (.tar.gz, .zip, ...)`,
	}

	permissionDeniedIssue = &Issue{
		id:   PermissionDeniedId,
		code: CodePermissionDenied,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Common causes:
- Trying to write to a protected directory
- Script file is not readable

## Things you can try:
- Check file/directory permissions
- Run chore from a directory you own`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		configParseErrorIssue.Id():      configParseErrorIssue,
		scriptSyntaxErrorIssue.Id():     scriptSyntaxErrorIssue,
		scriptExecutionFailedIssue.Id(): scriptExecutionFailedIssue,
		fileNotFoundIssue.Id():          fileNotFoundIssue,
		unknownArchiveTypeIssue.Id():    unknownArchiveTypeIssue,
		permissionDeniedIssue.Id():      permissionDeniedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

// ForCode resolves a status-tracker code back to its catalog entry.
func ForCode(code string) (*Issue, bool) {
	for _, i := range issues {
		if i.code == code {
			return i, true
		}
	}
	return nil, false
}

// Codes returns every status code in the catalog, sorted.
func Codes() []string {
	codes := make([]string, 0, len(issues))
	for _, i := range issues {
		codes = append(codes, i.code)
	}
	slices.Sort(codes)
	return codes
}
