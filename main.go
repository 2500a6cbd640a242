// Released under an MIT license. See LICENSE.

/*
Jslite is the object and scope core of an embeddable scripting-language
runtime: tagged values, objects whose properties live in a balanced
search tree, and the chain of lexical environments used to resolve
variable names.

The jslite command is an inspector for that core. It reads small
commands for declaring variables, building objects, and walking scope
frames:

    > object o
    > put o greeting 'hello'
    > put o count 3
    > dump o
    {
            count: 3,
            greeting: $'hello',
    }

Run jslite with no arguments on a terminal for an interactive session,
pipe commands on stdin, or pass one command with -c.
*/
package main

import (
	"bufio"
	"os"

	"jslite/internal/inspect"
	"jslite/internal/system/options"
	"jslite/internal/ui"
)

func main() {
	options.Parse()

	i := inspect.New(os.Stdout)

	if command := options.Command(); command != "" {
		i.Evaluate(command)

		return
	}

	if !options.Interactive() {
		lines := bufio.NewScanner(os.Stdin)

		for lines.Scan() {
			if !i.Evaluate(lines.Text()) {
				break
			}
		}

		return
	}

	ui.Run(i)
}
