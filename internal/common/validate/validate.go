// Released under an MIT license. See LICENSE.

package validate

import (
	"fmt"
)

// Fixed checks that between min and max operands follow the command
// name in args.
func Fixed(args []string, min, max int) error {
	n := len(args) - 1

	if n < min || n > max {
		s := Count(min, "operand", "s")
		if max != min {
			s = fmt.Sprintf("%d to %d operands", min, max)
		}

		return fmt.Errorf("%s expects %s, passed %d", args[0], s, n)
	}

	return nil
}

func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
