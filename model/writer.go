package model

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteFile writes the grid interior to path, creating or truncating it
func WriteFile(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[WriteFile] cannot open output file: %+v", path)
	}

	if err = Write(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "[WriteFile] failed to write output file: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[WriteFile] failed to close output file: %+v", path)
}

// Write serializes the grid interior as "|c|c|...|" rows followed by a blank
// line, the same format Parse reads.
func Write(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)

	for row := 1; row < g.rows-1; row++ {
		for col := 1; col < g.cols-1; col++ {
			marker := byte(deadMarker)
			if g.cells[g.index(row, col)] == Alive {
				marker = aliveMarker
			}
			bw.WriteByte(delimiter)
			bw.WriteByte(marker)
		}
		bw.WriteByte(delimiter)
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	return errors.Wrap(bw.Flush(), "[Write] failed to flush grid")
}
