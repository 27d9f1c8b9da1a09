package model

import (
	"fmt"
	"io"
	"os"
)

// TerminalRenderer echoes grids in the file format
type TerminalRenderer struct {
	Out io.Writer // defaults to stdout
}

// Display renders the grid interior
func (r *TerminalRenderer) Display(g *Grid) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	if err := Write(out, g); err != nil {
		fmt.Println("Error rendering grid:", err)
	}
}
