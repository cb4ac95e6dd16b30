package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/saeidalz13/battleship-setup/api"
	"github.com/saeidalz13/battleship-setup/db"
	"github.com/saeidalz13/battleship-setup/db/sqlc"
	"github.com/saeidalz13/battleship-setup/internal/config"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
	mc "github.com/saeidalz13/battleship-setup/models/connection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var querier sqlc.Querier
	if cfg.AnalyticsEnabled() {
		conn := db.MustConnectToDb(cfg.PsqlUrl, db.DefaultMigrationDir)
		defer conn.Close()
		querier = sqlc.New(conn)
	}

	sessionManager := mc.NewBattleshipSessionManager()
	rp := api.NewRequestProcessor(sessionManager, mb.NewBattleshipGameManager(), querier)

	game, err := rp.CreateGame()
	if err != nil {
		panic(err)
	}
	fmt.Println()

	grid := game.Grid()
	if err := grid.Render(os.Stdout); err != nil {
		log.Println(err)
	}

	if !cfg.ServeViewer() {
		return
	}

	stop := make(chan struct{})
	defer close(stop)
	go sessionManager.CleanupPeriodically(stop)

	log.Printf("board viewer listening to port %d, game: %s\n", cfg.Port, game.Uuid())
	if err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", cfg.Port), api.NewMux(rp)); err != nil {
		log.Println(err)
	}
}
