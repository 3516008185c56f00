package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const dir = "sql"

// Logger интерфейс для логирования хода миграций
type Logger interface {
	Info(format string, v ...interface{})
	Fatal(format string, v ...interface{})
}

// gooseLogger адаптер под goose.Logger
type gooseLogger struct {
	log Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) { g.log.Info(format, v...) }
func (g gooseLogger) Fatalf(format string, v ...interface{}) { g.log.Fatal(format, v...) }

func setup(logger Logger) error {
	goose.SetBaseFS(embedMigrations)
	if logger != nil {
		goose.SetLogger(gooseLogger{log: logger})
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrations: set dialect: %w", err)
	}
	return nil
}

// Up применяет все новые миграции
func Up(ctx context.Context, db *sql.DB, logger Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations: up: %w", err)
	}
	return nil
}

// Down откатывает последнюю миграцию
func Down(ctx context.Context, db *sql.DB, logger Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations: down: %w", err)
	}
	return nil
}

// Status выводит в лог состояние миграций
func Status(ctx context.Context, db *sql.DB, logger Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations: status: %w", err)
	}
	return nil
}
