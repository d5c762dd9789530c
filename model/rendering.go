package model

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// clearScreen homes the cursor and erases the display
const clearScreen = "\033[H\033[2J"

// TerminalRenderer prints grids as rows of glyphs
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid row by row, top to bottom
func (r *TerminalRenderer) Display(g *Grid) {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			b.WriteString(Cell(g.cells[y*g.width+x]).String())
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.Out, b.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, clearScreen)
}
