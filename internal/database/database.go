package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"metropolitan/server/internal/models"
)

// Database wraps the SQLite connection pool. Hand-written queries go through
// db, schema management and the simpler lookups through gorm on the same pool.
type Database struct {
	db   *sql.DB
	gorm *gorm.DB
}

func NewDatabase(dbPath string, logger *logrus.Logger) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	d, err := newDatabase(db, newGormLogger(logger))
	if err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// NewTestDB opens a private in-memory database. The pool is pinned to a single
// connection since every new SQLite memory connection starts empty.
func NewTestDB() (*Database, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	d, err := newDatabase(db, gormlogger.Default.LogMode(gormlogger.Silent))
	if err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func newDatabase(db *sql.DB, logger gormlogger.Interface) (*Database, error) {
	gdb, err := gorm.Open(&sqlite.Dialector{Conn: db}, &gorm.Config{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}
	return &Database{db: db, gorm: gdb}, nil
}

func newGormLogger(logger *logrus.Logger) gormlogger.Interface {
	if logger == nil {
		return gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gormlogger.New(logger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func (d *Database) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.db.Close()
}

var notFoundErrors = []error{sql.ErrNoRows, gorm.ErrRecordNotFound}

// wrapErr maps driver level "no rows" errors to models.ErrNotFound.
func wrapErr(err error) error {
	for _, e := range notFoundErrors {
		if errors.Is(err, e) {
			return models.ErrNotFound
		}
	}
	return err
}

// wrapWriteErr marks a failed insert, update or delete as models.ErrWriteFailed
// while keeping the driver message.
func wrapWriteErr(err error) error {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: constraint violation: %v", models.ErrWriteFailed, sqliteErr)
	}
	return fmt.Errorf("%w: %v", models.ErrWriteFailed, err)
}
