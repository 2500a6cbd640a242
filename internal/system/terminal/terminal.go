// Released under an MIT license. See LICENSE.

// Package terminal reports properties of the controlling terminal.
package terminal

// Columns returns the width of the terminal in characters, or a fixed
// default when stdout is not a terminal.
func Columns() int {
	return columns()
}
