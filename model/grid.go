package model

import (
	"context"
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is one generation of a bounded board. Cells beyond the edges do not exist:
// they are never counted as neighbors and the board does not wrap.
type Grid struct {
	width  int
	height int
	cells  []bool // row-major, index y*width+x
}

// NewGrid creates a grid whose populated cells are exactly the in-bounds members of populated.
// Out-of-bounds coordinates are ignored.
func NewGrid(width, height int, populated []Coordinate) (*Grid, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGrid] failed to create grid")
	}
	g := newVacantGrid(width, height)
	g.populate(populated)
	return g, nil
}

func newVacantGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (g *Grid) populate(populated []Coordinate) {
	for _, c := range populated {
		if g.InBounds(c) {
			g.cells[g.index(c)] = true
		}
	}
}

// OutOfBounds returns the coordinates of coords that a width x height grid would drop
func OutOfBounds(width, height int, coords []Coordinate) []Coordinate {
	var dropped []Coordinate
	for _, c := range coords {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			dropped = append(dropped, c)
		}
	}
	return dropped
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid and vacates every cell
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	if cap(g.cells) < width*height {
		g.cells = make([]bool, width*height)
		return
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear vacates all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

func (g *Grid) index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// InBounds reports whether c lies inside [0,width) x [0,height)
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cell returns the state at c; ok is false when c is outside the grid
func (g *Grid) Cell(c Coordinate) (cell Cell, ok bool) {
	if !g.InBounds(c) {
		return Vacant, false
	}
	return Cell(g.cells[g.index(c)]), true
}

// IsPopulated returns the state of a cell. Out-of-bounds coordinates are vacant.
func (g *Grid) IsPopulated(c Coordinate) bool {
	cell, _ := g.Cell(c)
	return bool(cell)
}

// NeighborCoordinates returns the in-bounds Moore neighbors of c in row-major order
func (g *Grid) NeighborCoordinates(c Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, len(mooreOffsets))
	for _, offset := range mooreOffsets {
		if n := c.Add(offset); g.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// NeighborsOf returns the cells around c. Edge and corner cells have fewer than 8.
func (g *Grid) NeighborsOf(c Coordinate) []Cell {
	coords := g.NeighborCoordinates(c)
	neighbors := make([]Cell, len(coords))
	for i, n := range coords {
		neighbors[i] = Cell(g.cells[g.index(n)])
	}
	return neighbors
}

// CountPopulatedNeighbors counts populated cells in the Moore neighborhood of c
func (g *Grid) CountPopulatedNeighbors(c Coordinate) (count int) {
	for _, offset := range mooreOffsets {
		if n := c.Add(offset); g.InBounds(n) && g.cells[g.index(n)] {
			count++
		}
	}
	return
}

// evolveRows writes the next state of rows [startRow, endRow) into next.
// It only reads g.cells, so disjoint row ranges can run concurrently.
func (g *Grid) evolveRows(next []bool, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			c := Coordinate{X: x, Y: y}
			i := g.index(c)
			next[i] = rules.ApplyConwayRules(g.CountPopulatedNeighbors(c), g.cells[i])
		}
	}
}

// Evolve returns the populated coordinates of the next generation in row-major order.
// The receiver is not modified.
func (g *Grid) Evolve() []Coordinate {
	next := make([]bool, len(g.cells))
	g.evolveRows(next, 0, g.height)
	return g.collect(next)
}

// EvolveParallel computes the same result as Evolve, splitting rows across workers.
// workers <= 0 uses one worker per CPU.
func (g *Grid) EvolveParallel(ctx context.Context, workers int) ([]Coordinate, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		next          = make([]bool, len(g.cells))
		eg, egCtx     = errgroup.WithContext(ctx)
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)
	eg.SetLimit(workers)

	for startRow := 0; startRow < g.height; startRow += rowsPerWorker {
		endRow := min(startRow+rowsPerWorker, g.height)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g.evolveRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[EvolveParallel] generation aborted")
	}
	return g.collect(next), nil
}

// NextGeneration evolves the grid into a new Grid, reusing a pooled buffer when pool is non-nil
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = newVacantGrid(g.width, g.height)
	}
	g.evolveRows(next.cells, 0, g.height)
	return next
}

func (g *Grid) collect(cells []bool) []Coordinate {
	populated := make([]Coordinate, 0)
	for i, alive := range cells {
		if alive {
			populated = append(populated, Coordinate{X: i % g.width, Y: i / g.width})
		}
	}
	return populated
}

// Populated returns the populated coordinates in row-major order
func (g *Grid) Populated() []Coordinate {
	return g.collect(g.cells)
}

// CountLivingCells returns the total number of populated cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the grid's size and state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
