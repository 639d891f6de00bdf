package main

import (
	"github.com/Sovanra/DesignDeck/internal/config"
	"github.com/Sovanra/DesignDeck/internal/database"
	"github.com/Sovanra/DesignDeck/internal/env"
	"github.com/Sovanra/DesignDeck/internal/util"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Panic(err)
	}

	if err := database.SeedDemoUser(db); err != nil {
		logger.Panic(err)
	}

	logger.Info("Migration complete")
}
