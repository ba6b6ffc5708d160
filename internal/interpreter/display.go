package interpreter

import (
	"fmt"
)

// Display writes the current robot state as a single report line.
func (c *Context) Display() error {
	if _, err := fmt.Fprintln(c.Out, c.Robot.String()); err != nil {
		return runtimeErr(fmt.Sprintf("REPORT failed: %v", err))
	}
	return nil
}
