// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the jslite inspector.
package ui

import (
	"strings"

	"github.com/peterh/liner"

	"jslite/internal/system/history"
)

// Evaluator is the interface for things that want to process commands.
// Evaluate returns false when the session should end.
type Evaluator interface {
	Evaluate(line string) bool
	Complete(prefix string) []string
}

// Run reads commands with line editing and history and hands them to
// the Evaluator e until it asks to stop or input ends.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		head := line[:pos]
		tail := line[pos:]

		prefix := head
		if i := strings.LastIndexAny(head, " \t"); i >= 0 {
			head, prefix = head[:i+1], head[i+1:]
		} else {
			head = ""
		}

		return head, e.Complete(prefix), tail
	})

	// A missing history file is not an error worth reporting.
	_ = history.Load(cli.ReadHistory)

	for {
		line, err := cli.Prompt("> ")

		switch err {
		case nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}

			if !e.Evaluate(line) {
				save(cli)

				return
			}
		case liner.ErrPromptAborted:
			continue
		default:
			save(cli)

			return
		}
	}
}

func save(cli *liner.State) {
	_ = history.Save(cli.WriteHistory)
}
