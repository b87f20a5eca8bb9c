package db

import (
	"context"
	"database/sql"
	"fmt"
	"hbnb-api/logger"
	"hbnb-api/model"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open builds a gorm session over a lib/pq connection pool. No connection is
// made until the first query.
func Open(dsn string, debug bool) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	gdb, err := OpenWithConn(sqlDB, debug)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return gdb, nil
}

// OpenWithConn wraps an existing pool, e.g. a sqlmock connection in tests.
func OpenWithConn(conn *sql.DB, debug bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger: gormlogger.New(logger.Log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise gorm: %w", err)
	}
	return gdb, nil
}

// Ping checks that the database is reachable.
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Log.WithError(err).Error("Failed to ping database")
		return fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Log.Info("Database connection established successfully")
	return nil
}

// SyncSchema creates or updates the tables of the route-group entities.
func SyncSchema(gdb *gorm.DB) error {
	logger.Log.Info("Synchronising entity tables")
	if err := gdb.AutoMigrate(model.Entities()...); err != nil {
		return fmt.Errorf("failed to synchronise schema: %w", err)
	}
	return nil
}

func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
