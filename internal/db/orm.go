package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SupremeBender/ajac-website/internal/logging"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Campaign{},
		&entities.SquadronRecord{},
		&entities.User{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	PgDB = db
	logging.Info("Connected to Postgres via GORM")
	return db, nil
}
