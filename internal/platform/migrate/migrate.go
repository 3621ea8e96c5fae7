// Package migrate applies the embedded goose migrations
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"seatime/internal/platform/logger"
	"seatime/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// goose keeps its base FS, dialect and logger in package globals
var mu sync.Mutex

var openDB = func(dsn string) (*sql.DB, error) { return sql.Open("pgx", dsn) }

// Up runs every pending migration
func Up(ctx context.Context, dsn string) error {
	return run(ctx, dsn, migrations.FS, func(db *sql.DB) error {
		return goose.UpContext(ctx, db, ".")
	})
}

// Status logs the applied state of every migration
func Status(ctx context.Context, dsn string) error {
	return run(ctx, dsn, migrations.FS, func(db *sql.DB) error {
		return goose.StatusContext(ctx, db, ".")
	})
}

// Version returns the current schema version
func Version(ctx context.Context, dsn string) (int64, error) {
	var v int64
	err := run(ctx, dsn, migrations.FS, func(db *sql.DB) error {
		var err error
		v, err = goose.GetDBVersionContext(ctx, db)
		return err
	})
	return v, err
}

func run(ctx context.Context, dsn string, fsys fs.FS, fn func(*sql.DB) error) error {
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("migrate open: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("migrate ping: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	goose.SetBaseFS(fsys)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return fn(db)
}

// gooseLogger routes goose output through zerolog
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	logger.Named("migrate").Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...any) {
	logger.Named("migrate").Fatal().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
