package api

import (
	"encoding/json"
	"log"

	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

func (rp RequestProcessor) handleCreateGame() mc.Message[mc.RespCreateGame] {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	game, err := rp.CreateGame()
	if err != nil {
		log.Println(err)
		resp.AddError(err.Error(), "failed to run the board setup")
		return resp
	}

	resp.AddPayload(mc.NewRespCreateGame(game))
	return resp
}

func (rp RequestProcessor) handleFetchBoard(payload []byte) mc.Message[mc.RespFetchBoard] {
	var req mc.Message[mc.ReqFetchBoard]
	if err := json.Unmarshal(payload, &req); err != nil {
		resp := mc.NewMessage[mc.RespFetchBoard](mc.CodeSignalAbsent)
		resp.AddError(err.Error(), "invalid fetch board payload")
		return resp
	}

	game, err := rp.gameManager.GetGame(req.Payload.GameUuid)
	if err != nil {
		resp := mc.NewMessage[mc.RespFetchBoard](mc.CodeGameNotFound)
		resp.AddError(err.Error(), "")
		return resp
	}

	resp := mc.NewMessage[mc.RespFetchBoard](mc.CodeFetchBoard)
	resp.AddPayload(mc.NewRespFetchBoard(game))
	return resp
}
