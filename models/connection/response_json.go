package connection

import (
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid   string                  `json:"game_uuid"`
	Grid       [][]uint8               `json:"grid"`
	Placements []mb.PlacementOutcome   `json:"placements"`
	Abilities  []mb.AbilityApplication `json:"abilities"`
}

func NewRespCreateGame(game *mb.Game) RespCreateGame {
	grid := game.Grid()
	return RespCreateGame{
		GameUuid:   game.Uuid(),
		Grid:       grid.Rows(),
		Placements: game.Placements(),
		Abilities:  game.Abilities(),
	}
}

type RespFetchBoard struct {
	GameUuid string    `json:"game_uuid"`
	Grid     [][]uint8 `json:"grid"`
}

func NewRespFetchBoard(game *mb.Game) RespFetchBoard {
	grid := game.Grid()
	return RespFetchBoard{
		GameUuid: game.Uuid(),
		Grid:     grid.Rows(),
	}
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
