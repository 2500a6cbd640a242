package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	usage       = `jslite

Usage:
  jslite [-i]
  jslite -c COMMAND
  jslite -h
  jslite -v

Options:
  -c, --command=COMMAND  Run the specified command and exit.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print jslite version.

If jslite's stdin is a TTY and no command was given, the inspector
reads commands interactively with line editing and history. Otherwise
commands are read from stdin, one per line.
`
	version = "jslite 0.1"
)

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")

	if command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}
