package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage   string
	Port    int
	PsqlUrl string
}

// ServeViewer reports whether the board viewer should listen.
func (c Config) ServeViewer() bool {
	return c.Port != 0
}

func (c Config) AnalyticsEnabled() bool {
	return c.PsqlUrl != ""
}

// Load reads the configuration from the environment. Outside of
// prod the given env files are loaded first; missing files are not
// an error since every variable has a default.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if len(envFiles) == 0 {
			envFiles = []string{".env"}
		}
		if err := godotenv.Load(envFiles...); err != nil {
			log.Println("no env file loaded:", err)
		}
	}

	cfg := Config{
		Stage:   os.Getenv("STAGE"),
		PsqlUrl: os.Getenv("PSQL_URL"),
	}
	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrInvalidStage(cfg.Stage)
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, cerr.ErrInvalidPort(portEnv)
		}
		cfg.Port = port
	}

	return cfg, nil
}
