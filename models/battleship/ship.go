package battleship

import "fmt"

type PlacementResult uint8

const (
	PlacementPlaced PlacementResult = iota
	PlacementOverlap
	PlacementOutOfBounds
)

func (pr PlacementResult) String() string {
	switch pr {
	case PlacementPlaced:
		return "placed"
	case PlacementOverlap:
		return "overlap"
	case PlacementOutOfBounds:
		return "out of bounds"
	default:
		return fmt.Sprintf("PlacementResult(%d)", uint8(pr))
	}
}

func (pr PlacementResult) MarshalText() ([]byte, error) {
	return []byte(pr.String()), nil
}

func (pr *PlacementResult) UnmarshalText(text []byte) error {
	for _, candidate := range []PlacementResult{PlacementPlaced, PlacementOverlap, PlacementOutOfBounds} {
		if candidate.String() == string(text) {
			*pr = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid placement result: %q", text)
}

// Ship is a straight run of ShipLength cells. It only lives
// until it is stamped on the grid.
type Ship struct {
	Label       string      `json:"label"`
	Origin      Coordinates `json:"origin"`
	Orientation Orientation `json:"orientation"`
}

func NewShip(label string, x, y int, orientation Orientation) Ship {
	return Ship{
		Label:       label,
		Origin:      NewCoordinates(x, y),
		Orientation: orientation,
	}
}

// Cells returns the coordinates the ship would occupy in step order.
// ok is false for an unknown orientation.
func (sh Ship) Cells() (cells [ShipLength]Coordinates, ok bool) {
	delta, ok := sh.Orientation.Delta()
	if !ok {
		return cells, false
	}

	c := sh.Origin
	for i := 0; i < ShipLength; i++ {
		cells[i] = c
		c = c.add(delta)
	}
	return cells, true
}

// ValidatePosition reports whether every cell of a ship starting
// at origin with the given orientation lies on the board.
func ValidatePosition(origin Coordinates, orientation Orientation) bool {
	if !InBounds(origin.X, origin.Y) {
		return false
	}

	cells, ok := Ship{Origin: origin, Orientation: orientation}.Cells()
	if !ok {
		return false
	}
	for _, c := range cells {
		if !InBounds(c.X, c.Y) {
			return false
		}
	}
	return true
}

// PlaceShip writes the ship into the grid only if all of its cells
// are free. On overlap nothing is written. Bounds are checked again
// here so a caller that skipped ValidatePosition can't index out of
// the board; that case reports PlacementOutOfBounds.
func (g *Grid) PlaceShip(ship Ship) PlacementResult {
	if !ValidatePosition(ship.Origin, ship.Orientation) {
		return PlacementOutOfBounds
	}

	cells, _ := ship.Cells()
	for _, c := range cells {
		if g.cells[c.X][c.Y] == PositionStateShip {
			return PlacementOverlap
		}
	}

	for _, c := range cells {
		g.set(c, PositionStateShip)
	}
	return PlacementPlaced
}
