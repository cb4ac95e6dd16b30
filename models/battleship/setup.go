package battleship

import "log"

// Fixed fleet. Ship 3 overlaps ship 2 and ship 6 runs off the
// right edge of the board; both are rejected.
var DefaultFleet = []Ship{
	NewShip("1", 2, 1, OrientationHorizontal),
	NewShip("2", 5, 5, OrientationVertical),
	NewShip("3", 5, 4, OrientationHorizontal),
	NewShip("4", 6, 0, OrientationDiagonalMain),
	NewShip("5", 0, 9, OrientationDiagonalAnti),
	NewShip("6", 8, 8, OrientationHorizontal),
}

// The cone is clipped at the right edge of the board.
var DefaultAbilities = []AbilityApplication{
	NewAbilityApplication("cone", AbilityShapeCone, 2, 8),
	NewAbilityApplication("cross", AbilityShapeCross, 4, 6),
	NewAbilityApplication("diamond", AbilityShapeDiamond, 7, 2),
}

// RunSetup places the fleet and then stamps the abilities on a
// fresh game. Only an unknown ability shape returns an error.
func RunSetup(fleet []Ship, abilities []AbilityApplication) (*Game, error) {
	game := NewGame()
	log.Printf("placing ships for game %s...\n", game.Uuid())
	for _, ship := range fleet {
		game.PlaceShip(ship)
	}

	for _, ability := range abilities {
		if err := game.UseAbility(ability); err != nil {
			return nil, err
		}
	}
	return game, nil
}
