package infra

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/onboarding/infra/migrations"
	registrationmodel "github.com/amirasaad/onboarding/infra/repository/registration"
	"github.com/amirasaad/onboarding/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the configured database and brings its schema up to
// date when cfg.AutoMigrate is set. Postgres runs the embedded migrations;
// sqlite, used for local development, is migrated with GORM AutoMigrate.
func NewDBConnection(cfg *config.DB, appEnv string, log *slog.Logger) (*gorm.DB, error) {
	if cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "postgres":
		dialector = postgres.Open(cfg.Url)
	case "sqlite":
		dialector = sqlite.Open(cfg.Url)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := migrate(db, cfg.Driver); err != nil {
			return nil, err
		}
		log.Info("Database schema up to date", "driver", db.Dialector.Name())
	}
	return db, nil
}

func migrate(db *gorm.DB, driver string) error {
	if driver == "sqlite" {
		return db.AutoMigrate(&registrationmodel.AccountRequest{})
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return migrations.Up(sqlDB)
}
