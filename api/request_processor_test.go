package api_test

import (
	"log"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saeidalz13/battleship-setup/api"
	"github.com/saeidalz13/battleship-setup/db/sqlc"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

var (
	testWsUrl          string
	testRp             api.RequestProcessor
	testMock           sqlmock.Sqlmock
	testGameManager    *mb.BattleshipGameManager
	testSessionManager *mc.BattleshipSessionManager
	dialer             = websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
)

func TestMain(m *testing.M) {
	db, mock, err := sqlmock.New()
	if err != nil {
		panic(err)
	}
	testMock = mock

	testSessionManager = mc.NewBattleshipSessionManager()
	testGameManager = mb.NewBattleshipGameManager()
	testRp = api.NewRequestProcessor(testSessionManager, testGameManager, sqlc.New(db))

	server := httptest.NewServer(api.NewMux(testRp))
	testWsUrl = "ws" + strings.TrimPrefix(server.URL, "http") + "/battleship"
	log.Println("test server:", testWsUrl)

	code := m.Run()

	server.Close()
	db.Close()
	os.Exit(code)
}

// dial opens a viewer connection and consumes the session id message.
func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	conn, _, err := dialer.Dial(testWsUrl, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var respSessionId mc.Message[mc.RespSessionId]
	require.NoError(t, conn.ReadJSON(&respSessionId))
	require.Equal(t, mc.CodeSessionID, respSessionId.Code)
	require.NotEmpty(t, respSessionId.Payload.SessionID)

	return conn
}

func expectRecordSetup(rejected int) {
	inet := pqtype.Inet{IPNet: testRp.GetIpNet(), Valid: true}
	testMock.ExpectExec(`INSERT INTO setup_server_analytics \(server_ip, setup_runs\)`).
		WithArgs(inet).
		WillReturnResult(sqlmock.NewResult(0, 1))
	testMock.ExpectExec(`INSERT INTO setup_server_analytics \(server_ip, rejected_placements\)`).
		WithArgs(inet, int64(rejected)).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestInvalidCode(t *testing.T) {
	tests := []struct {
		name string
		code uint8
	}{
		{name: "random invalid code", code: 255},
		{name: "session id is server only", code: mc.CodeSessionID},
	}

	conn := dial(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, conn.WriteJSON(mc.NewSignal(test.code)))

			var resp mc.Message[mc.NoPayload]
			require.NoError(t, conn.ReadJSON(&resp))

			if resp.Code != mc.CodeInvalidSignal {
				t.Fatalf("expected status: %d\t got: %d", mc.CodeInvalidSignal, resp.Code)
			}
			assert.NotNil(t, resp.Error)
		})
	}
}

func TestSignalAbsent(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	var resp mc.Message[mc.NoPayload]
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, mc.CodeSignalAbsent, resp.Code)
	require.NotNil(t, resp.Error)
}

func TestCreateGame(t *testing.T) {
	conn := dial(t)
	expectRecordSetup(2)

	require.NoError(t, conn.WriteJSON(mc.NewSignal(mc.CodeCreateGame)))

	var resp mc.Message[mc.RespCreateGame]
	require.NoError(t, conn.ReadJSON(&resp))
	require.Equal(t, mc.CodeCreateGame, resp.Code)
	require.Nil(t, resp.Error)

	game, err := testGameManager.GetGame(resp.Payload.GameUuid)
	require.NoError(t, err)
	grid := game.Grid()
	assert.Equal(t, grid.Rows(), resp.Payload.Grid)

	require.Len(t, resp.Payload.Placements, len(mb.DefaultFleet))
	assert.Equal(t, mb.PlacementOverlap, resp.Payload.Placements[2].Result)
	assert.Equal(t, mb.OrientationDiagonalAnti, resp.Payload.Placements[4].Ship.Orientation)
	assert.Equal(t, mb.PlacementOutOfBounds, resp.Payload.Placements[5].Result)
	require.Len(t, resp.Payload.Abilities, len(mb.DefaultAbilities))
	assert.Equal(t, mb.AbilityShapeCone, resp.Payload.Abilities[0].Shape)

	if err := testMock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestFetchBoard(t *testing.T) {
	expectRecordSetup(2)
	game, err := testRp.CreateGame()
	require.NoError(t, err)
	require.NoError(t, testMock.ExpectationsWereMet())

	tests := []struct {
		name         string
		gameUuid     string
		expectedCode uint8
	}{
		{name: "existing game", gameUuid: game.Uuid(), expectedCode: mc.CodeFetchBoard},
		{name: "unknown game", gameUuid: "-1invalid", expectedCode: mc.CodeGameNotFound},
	}

	conn := dial(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := mc.NewMessage[mc.ReqFetchBoard](mc.CodeFetchBoard)
			req.AddPayload(mc.ReqFetchBoard{GameUuid: test.gameUuid})
			require.NoError(t, conn.WriteJSON(req))

			var resp mc.Message[mc.RespFetchBoard]
			require.NoError(t, conn.ReadJSON(&resp))
			require.Equal(t, test.expectedCode, resp.Code)

			if test.expectedCode != mc.CodeFetchBoard {
				assert.NotNil(t, resp.Error)
				return
			}
			grid := game.Grid()
			assert.Equal(t, game.Uuid(), resp.Payload.GameUuid)
			assert.Equal(t, grid.Rows(), resp.Payload.Grid)
		})
	}
}

func TestSessionTerminatedOnClose(t *testing.T) {
	before := testSessionManager.SessionCount()

	conn, _, err := dialer.Dial(testWsUrl, nil)
	require.NoError(t, err)
	var respSessionId mc.Message[mc.RespSessionId]
	require.NoError(t, conn.ReadJSON(&respSessionId))

	_, err = testSessionManager.FindSession(respSessionId.Payload.SessionID)
	require.NoError(t, err)

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, msg))
	conn.Close()

	require.Eventually(t, func() bool {
		_, err := testSessionManager.FindSession(respSessionId.Payload.SessionID)
		return err != nil
	}, time.Second*5, time.Millisecond*20)
	assert.LessOrEqual(t, testSessionManager.SessionCount(), before)
}
