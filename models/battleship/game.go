package battleship

import (
	"log"
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type PlacementOutcome struct {
	Ship   Ship            `json:"ship"`
	Result PlacementResult `json:"result"`
	Err    error           `json:"-"`
}

type AbilityApplication struct {
	Label  string       `json:"label"`
	Shape  AbilityShape `json:"shape"`
	Origin Coordinates  `json:"origin"`
}

func NewAbilityApplication(label string, shape AbilityShape, x, y int) AbilityApplication {
	return AbilityApplication{
		Label:  label,
		Shape:  shape,
		Origin: NewCoordinates(x, y),
	}
}

// Game owns a single board for one setup run.
type Game struct {
	uuid       string
	grid       Grid
	placements []PlacementOutcome
	abilities  []AbilityApplication
	createdAt  time.Time
}

func newGame(gameUuid string) *Game {
	return &Game{
		uuid:       gameUuid,
		grid:       NewGrid(),
		placements: make([]PlacementOutcome, 0, len(DefaultFleet)),
		abilities:  make([]AbilityApplication, 0, len(DefaultAbilities)),
		createdAt:  time.Now(),
	}
}

func NewGame() *Game {
	return newGame(uuid.NewString()[:6])
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid {
	return g.grid
}

func (g *Game) Placements() []PlacementOutcome {
	return g.placements
}

func (g *Game) Abilities() []AbilityApplication {
	return g.abilities
}

// Number of ships that were not placed due to
// bounds or overlap.
func (g *Game) RejectedPlacements() int {
	n := 0
	for _, p := range g.placements {
		if p.Result != PlacementPlaced {
			n++
		}
	}
	return n
}

// PlaceShip validates the ship against the board edges and then tries
// to place it. Rejections are logged and recorded; they never stop
// the setup.
func (g *Game) PlaceShip(ship Ship) PlacementOutcome {
	outcome := PlacementOutcome{Ship: ship}
	x, y, o := ship.Origin.X, ship.Origin.Y, ship.Orientation.String()

	if !ValidatePosition(ship.Origin, ship.Orientation) {
		outcome.Result = PlacementOutOfBounds
		outcome.Err = cerr.ErrOutOfBounds(x, y, o)
		log.Printf("[ERROR] coordinates of ship %s (%d, %d, %s) are invalid or off the board\n", ship.Label, x, y, o)
		g.placements = append(g.placements, outcome)
		return outcome
	}

	outcome.Result = g.grid.PlaceShip(ship)
	switch outcome.Result {
	case PlacementPlaced:
		log.Printf("[OK] ship %s placed at (%d, %d, %s)\n", ship.Label, x, y, o)
	case PlacementOverlap:
		outcome.Err = cerr.ErrOverlap(x, y, o)
		log.Printf("[ERROR] overlap detected for ship %s at (%d, %d, %s); ship not placed\n", ship.Label, x, y, o)
	case PlacementOutOfBounds:
		outcome.Err = cerr.ErrOutOfBounds(x, y, o)
	}

	g.placements = append(g.placements, outcome)
	return outcome
}

func (g *Game) UseAbility(ability AbilityApplication) error {
	mask, err := NewAbilityMask(ability.Shape)
	if err != nil {
		return err
	}

	g.grid.ApplyAbility(mask, ability.Origin)
	g.abilities = append(g.abilities, ability)
	log.Printf("[OK] ability %s (%s) applied at (%d, %d)\n", ability.Label, ability.Shape, ability.Origin.X, ability.Origin.Y)
	return nil
}
