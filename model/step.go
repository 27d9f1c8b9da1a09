package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-cosmos/rules"
)

// Step writes the next generation of src into dst. Interior rows are split
// into contiguous chunks, one per worker; the border of dst is never written.
// workers <= 0 uses one worker per CPU.
func Step(src, dst *Grid, workers int) error {
	if src == nil || dst == nil {
		return errors.New("[Step] source and destination grids are required")
	}
	if src == dst {
		return errors.New("[Step] source and destination must be different buffers")
	}
	if !src.SameSize(dst) {
		return errors.Errorf("[Step] grid size mismatch: source %dx%d, destination %dx%d",
			src.Rows(), src.Cols(), dst.Rows(), dst.Cols())
	}

	var (
		first = 1
		last  = src.rows - 1 // exclusive
		rows  = last - first
	)
	if rows <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 {
		stepRows(src, dst, first, last)
		return nil
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = first + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, last)
		)
		if startRow >= last {
			break
		}

		eg.Go(func() error {
			stepRows(src, dst, startRow, endRow)
			return nil
		})
	}

	return errors.Wrap(eg.Wait(), "[Step] row worker failed")
}

// stepRows applies the rules to interior rows [from, to)
func stepRows(src, dst *Grid, from, to int) {
	for row := from; row < to; row++ {
		for col := 1; col < src.cols-1; col++ {
			i := src.index(row, col)
			dst.cells[i] = cellOf(rules.ApplyConwayRules(src.CountNeighbors(row, col), src.cells[i] == Alive))
		}
	}
}
