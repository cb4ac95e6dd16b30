package battleship

import (
	"sync"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type GameManager interface {
	CreateGame() (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	GameCount() int
}

// BattleshipGameManager keeps finished setups so they can be
// looked up by uuid. Each setup runs to completion before it is
// stored; the lock only guards the map.
type BattleshipGameManager struct {
	fleet     []Ship
	abilities []AbilityApplication
	games     map[string]*Game
	mu        sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return NewBattleshipGameManagerWithSetup(DefaultFleet, DefaultAbilities)
}

func NewBattleshipGameManagerWithSetup(fleet []Ship, abilities []AbilityApplication) *BattleshipGameManager {
	return &BattleshipGameManager{
		fleet:     fleet,
		abilities: abilities,
		games:     make(map[string]*Game, 10),
	}
}

func (bgm *BattleshipGameManager) CreateGame() (*Game, error) {
	game, err := RunSetup(bgm.fleet, bgm.abilities)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games[game.Uuid()] = game
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) GameCount() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
