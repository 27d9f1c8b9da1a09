package model

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	aliveMarker = '*'
	deadMarker  = ' '
	delimiter   = '|'
)

// MaxCells caps the padded size of a parsed grid
const MaxCells = 1 << 28

// ParseOptions controls how strictly the grid body is checked
type ParseOptions struct {
	// Strict rejects bodies whose cell count differs from rows*cols.
	// Otherwise surplus cells are dropped and missing cells stay dead.
	Strict bool
}

// ParseFile reads a grid from the file at path
func ParseFile(path string, opts ParseOptions) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ParseFile] cannot open input file: %+v", path)
	}
	defer f.Close()

	g, err := Parse(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "[ParseFile] failed to parse input file: %+v", path)
	}
	return g, nil
}

// Parse reads a "rows cols" header followed by the cell body. Delimiters and
// line breaks are skipped, '*' is alive and any other byte is dead. Cells
// fill the interior row-major, wrapping after cols cells.
func Parse(r io.Reader, opts ParseOptions) (*Grid, error) {
	br := bufio.NewReader(r)

	var rows, cols int
	if _, err := fmt.Fscan(br, &rows, &cols); err != nil {
		return nil, errors.Wrap(err, "[Parse] failed to read grid dimensions")
	}
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("[Parse] invalid grid dimensions: %dx%d", rows, cols)
	}
	if cols > MaxCells-2 || rows > MaxCells/(cols+2)-2 {
		return nil, errors.Errorf("[Parse] grid dimensions %dx%d exceed the maximum of %d cells",
			rows, cols, MaxCells)
	}

	var (
		g     = NewGrid(rows, cols)
		row   = 1
		col   = 1
		cells = 0
	)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "[Parse] failed to read grid body")
		}

		switch b {
		case delimiter, '\n', '\r':
			continue
		}

		cells++
		if row > rows {
			continue // surplus
		}
		g.Set(row, col, cellOf(b == aliveMarker))

		col++
		if col > cols {
			row++
			col = 1
		}
	}

	if opts.Strict && cells != rows*cols {
		return nil, errors.Errorf("[Parse] expected %d cells for a %dx%d grid, found %d",
			rows*cols, rows, cols, cells)
	}

	return g, nil
}
