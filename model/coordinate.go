package model

// Coordinate identifies a cell position. It is a plain value and safe to use as a map key.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// mooreOffsets lists the neighborhood offsets in row-major order, top row first.
var mooreOffsets = [8]Coordinate{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Add returns the coordinate offset by o
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// AdjacentCoordinates returns all 8 Moore neighbors of c, ignoring any grid bounds
func AdjacentCoordinates(c Coordinate) []Coordinate {
	adjacent := make([]Coordinate, 0, len(mooreOffsets))
	for _, offset := range mooreOffsets {
		adjacent = append(adjacent, c.Add(offset))
	}
	return adjacent
}

// Cell is the state of a single grid position
type Cell bool

const (
	Vacant    Cell = false
	Populated Cell = true

	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// String returns the glyph used to render the cell
func (c Cell) String() string {
	if c {
		return gridPosBlock
	}
	return gridPosEmpty
}
