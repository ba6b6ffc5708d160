package interpreter

import "io"

// Context stores the robot and where reports go

type Context struct {
	Robot *Robot
	Out   io.Writer
}
