// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // SQLite driver for database/sql
)

//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql
var migrations embed.FS

// Dialect identifies the relational backend behind a *sql.DB.
type Dialect string

// Supported dialects.
const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

// ParseDialect validates a driver name from configuration.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case DialectSQLite, DialectMySQL:
		return Dialect(s), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q (use %q or %q)", s, DialectSQLite, DialectMySQL)
	}
}

// gooseDialect returns the goose dialect and the migrations directory.
func (d Dialect) gooseDialect() (goose.Dialect, string) {
	if d == DialectMySQL {
		return goose.DialectMySQL, "migrations/mysql"
	}
	return goose.DialectSQLite3, "migrations/sqlite"
}

// DBConfig holds database configuration options.
type DBConfig struct {
	// MaxOpenConns is the maximum number of open connections to the database.
	MaxOpenConns int
	// MaxIdleConns is the maximum number of connections in the idle connection pool.
	MaxIdleConns int
	// ConnMaxLifetime is the maximum amount of time a connection may be reused.
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle.
	ConnMaxIdleTime time.Duration
}

// DefaultDBConfig returns sensible defaults for SQLite.
func DefaultDBConfig() DBConfig {
	return DBConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// sqlitePragmas are applied by the driver to every new connection.
// foreign_keys is per connection in SQLite, so it cannot be set once on the pool.
var sqlitePragmas = []string{
	"foreign_keys(1)",     // Enforce foreign key constraints (cascade / set null)
	"busy_timeout(5000)",  // Wait 5s when database is locked
	"journal_mode(WAL)",   // Write-Ahead Logging for better concurrency
	"synchronous(NORMAL)", // Good balance of safety and speed
	"temp_store(MEMORY)",  // Store temp tables in memory
	"cache_size(-16000)",  // 16MB cache
}

// sqliteDSN builds a modernc.org/sqlite DSN for the given file path.
// Transactions take the write lock at BEGIN so concurrent units of work serialize.
func sqliteDSN(path string) string {
	params := url.Values{}
	for _, p := range sqlitePragmas {
		params.Add("_pragma", p)
	}
	params.Set("_txlock", "immediate")
	return "file:" + path + "?" + params.Encode()
}

// NewDB opens a SQLite database connection and configures it for optimal performance.
func NewDB(path string) (*sql.DB, error) {
	return NewDBWithConfig(path, DefaultDBConfig())
}

// NewDBWithConfig opens a SQLite database connection with custom configuration.
func NewDBWithConfig(path string, cfg DBConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return configure(db, cfg)
}

// NewMySQL opens a MySQL database from a go-sql-driver DSN.
// Time parsing is forced on so DATETIME columns scan consistently, and
// rows affected counts matched rows so unchanged updates are not misses.
func NewMySQL(dsn string, cfg DBConfig) (*sql.DB, error) {
	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing mysql dsn: %w", err)
	}
	mcfg.ParseTime = true
	mcfg.Loc = time.UTC
	mcfg.ClientFoundRows = true

	connector, err := mysql.NewConnector(mcfg)
	if err != nil {
		return nil, fmt.Errorf("creating mysql connector: %w", err)
	}
	return configure(sql.OpenDB(connector), cfg)
}

// Open opens a database for the given dialect. target is a file path for
// SQLite and a DSN for MySQL.
func Open(dialect Dialect, target string) (*sql.DB, error) {
	switch dialect {
	case DialectMySQL:
		return NewMySQL(target, DefaultDBConfig())
	case DialectSQLite:
		return NewDB(target)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

func configure(db *sql.DB, cfg DBConfig) (*sql.DB, error) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Schema manages the migrations of one database. It is safe for
// concurrent use.
type Schema struct {
	provider *goose.Provider
}

// NewSchema binds the embedded migrations for dialect to db.
func NewSchema(db *sql.DB, dialect Dialect) (*Schema, error) {
	name, dir := dialect.gooseDialect()

	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("opening migrations: %w", err)
	}
	p, err := goose.NewProvider(name, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("creating migration provider: %w", err)
	}
	return &Schema{provider: p}, nil
}

// Up applies all pending migrations.
func (s *Schema) Up(ctx context.Context) error {
	if _, err := s.provider.Up(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Version reports the latest applied migration.
func (s *Schema) Version(ctx context.Context) (int64, error) {
	v, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// Migrate runs all pending database migrations for the dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	s, err := NewSchema(db, dialect)
	if err != nil {
		return err
	}
	return s.Up(context.Background())
}
