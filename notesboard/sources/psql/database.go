package psql

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"notesboard/notesboard/config"
	"notesboard/notesboard/sources/psql/models"
	"notesboard/notesboard/utils/logging"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to PostgreSQL using cfg.DatabaseURL and migrates the
// schema. Both a key/value DSN and a postgres:// URL are accepted.
func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return Open(ctx, postgres.Open(cfg.DatabaseURL))
}

// Open connects through any GORM dialector, pings it and migrates the schema.
func Open(ctx context.Context, dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	database := &Database{DB: db}
	if err := database.Ping(ctx); err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}
	logging.AppLogger.Info("database connected", zap.String("dialect", db.Dialector.Name()))
	return database, nil
}

// Migrate creates or updates the notes table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&models.Note{}); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Stats exposes the connection pool statistics of the underlying *sql.DB.
func (db *Database) Stats() (sql.DBStats, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return sql.DBStats{}, err
	}
	return sqlDB.Stats(), nil
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
