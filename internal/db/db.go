package db

import (
	"fmt"
	"log"
	"time"

	"photo-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a Postgres-backed gorm handle and runs migrations.
// The connection string is parsed by pgx so it accepts both URL and
// keyword/value DSN forms.
func Connect(connString string) (*gorm.DB, error) {
	pgxConfig, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	sqlDB := stdlib.OpenDB(*pgxConfig)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}

	log.Println("Connected to PostgreSQL")
	return gormDB, nil
}

// Migrate creates or updates the schema for all persisted models.
func Migrate(gormDB *gorm.DB) error {
	err := gormDB.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.ActivityLog{},
	)
	if err != nil {
		return fmt.Errorf("unable to migrate database: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func Close(gormDB *gorm.DB) {
	if gormDB == nil {
		return
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
}
