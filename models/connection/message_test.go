package connection_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

func TestMessageJSON(t *testing.T) {
	msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
	msg.AddError("", "invalid code in the incoming payload")

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":3,"error":{"message":"invalid code in the incoming payload"}}`, string(raw))
}

func TestRespCreateGame(t *testing.T) {
	game, err := mb.RunSetup(mb.DefaultFleet, mb.DefaultAbilities)
	require.NoError(t, err)

	msg := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)
	msg.AddPayload(mc.NewRespCreateGame(game))

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	payload := decoded["payload"].(map[string]any)
	placements := payload["placements"].([]any)
	require.Len(t, placements, len(mb.DefaultFleet))

	first := placements[0].(map[string]any)
	assert.Equal(t, "placed", first["result"])
	assert.Equal(t, "H", first["ship"].(map[string]any)["orientation"])
	assert.Equal(t, "overlap", placements[2].(map[string]any)["result"])
	assert.NotContains(t, first, "Err")
}

func TestConnErr(t *testing.T) {
	err := error(mc.NewConnErr(mc.ConnInvalidMsgType).AddDesc("bad type"))

	var connErr mc.ConnErr
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, mc.ConnInvalidMsgType, connErr.Code())
	assert.Contains(t, err.Error(), "bad type")
}

func TestSessionManager(t *testing.T) {
	bsm := mc.NewBattleshipSessionManager()

	session := bsm.GenerateNewSession(nil)
	found, err := bsm.FindSession(session.Id())
	require.NoError(t, err)
	assert.Same(t, session, found)
	assert.Equal(t, 1, bsm.SessionCount())

	bsm.TerminateSession(session.Id())
	_, err = bsm.FindSession(session.Id())
	assert.Error(t, err)
	assert.Zero(t, bsm.SessionCount())
}
