package main

import (
	"github.com/phuchoang/InteriorHub/internal/config"
	"github.com/phuchoang/InteriorHub/internal/database"
	"github.com/phuchoang/InteriorHub/internal/env"
	"github.com/phuchoang/InteriorHub/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.Category{},
		&model.Design{},
		&model.Blog{},
		&model.Information{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	logger.Info("Migration completed")
}
