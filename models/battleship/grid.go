package battleship

import (
	"fmt"
	"io"
	"strings"
)

const (
	GridSize   int = 10
	ShipLength int = 3
)

type PositionState uint8

// Codes follow the board legend printed by Render.
const (
	PositionStateEmpty   PositionState = 0
	PositionStateShip    PositionState = 3
	PositionStateAbility PositionState = 5
)

func (ps PositionState) String() string {
	switch ps {
	case PositionStateEmpty:
		return "empty"
	case PositionStateShip:
		return "ship"
	case PositionStateAbility:
		return "ability"
	default:
		return fmt.Sprintf("PositionState(%d)", uint8(ps))
	}
}

// X is the row and Y is the column.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) add(d Coordinates) Coordinates {
	return Coordinates{X: c.X + d.X, Y: c.Y + d.Y}
}

// Grid is a fixed size board. Cells are only written through
// PlaceShip and ApplyAbility so they always hold a known state.
// The zero value is an empty board.
type Grid struct {
	cells [GridSize][GridSize]PositionState
}

// Creates a new default grid
// All indexes are PositionStateEmpty
func NewGrid() Grid {
	return Grid{}
}

func InBounds(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// At returns the state of the cell at row x, column y.
// Reading outside the board returns PositionStateEmpty.
func (g *Grid) At(x, y int) PositionState {
	if !InBounds(x, y) {
		return PositionStateEmpty
	}
	return g.cells[x][y]
}

func (g *Grid) set(c Coordinates, state PositionState) {
	g.cells[c.X][c.Y] = state
}

func (g *Grid) Count(state PositionState) int {
	n := 0
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			if g.cells[x][y] == state {
				n++
			}
		}
	}
	return n
}

// Rows copies the board into a slice form that
// can be sent over the wire.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, GridSize)
	for x := 0; x < GridSize; x++ {
		rows[x] = make([]uint8, GridSize)
		for y := 0; y < GridSize; y++ {
			rows[x][y] = uint8(g.cells[x][y])
		}
	}
	return rows
}

func (g *Grid) Render(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Final board (%d = water, %d = ship, %d = ability) ---\n\n",
		PositionStateEmpty, PositionStateShip, PositionStateAbility)

	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			fmt.Fprintf(&sb, "%d ", g.cells[x][y])
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
