// Package database owns the GORM connection and schema migration.
//
// Repositories for individual domains live in subpackages (e.g. books)
// and receive the shared *gorm.DB handle.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/openshelf/internal/config"
	"github.com/openshelf/openshelf/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to Postgres when credentials are configured and to a
// local sqlite file otherwise, then migrates the schema.
func NewDatabase(cfg config.Database) (*Database, error) {
	var dialector gorm.Dialector
	if cfg.UsePostgres() {
		dialector = postgres.Open(cfg.PostgresDSN())
	} else {
		dialector = sqlite.Open(cfg.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.ISBN{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.UsePostgres() {
		log.Printf("Database initialized (postgres %s@%s:%d/%s)", cfg.User, cfg.Host, cfg.Port, cfg.Name)
	} else {
		log.Printf("Database initialized (sqlite %s)", cfg.Path)
	}

	return &Database{DB: db}, nil
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
