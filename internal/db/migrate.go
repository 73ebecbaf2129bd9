package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// CampusTables lists the tables created by the migrations.
var CampusTables = []string{
	Tables.NewsItem.Name,
	Tables.Teacher.Name,
	Tables.QuickLink.Name,
	Tables.CampusBuilding.Name,
	Tables.Setting.Name,
}

// Migrate applies the embedded migrations to the database at dsn. goose needs
// a database/sql handle, so a separate pgx connection is opened for it.
func Migrate(ctx context.Context, dsn string) error {
	config, err := pgx.ParseConnectionString(dsn)
	if err != nil {
		return fmt.Errorf("parse connection string: %w", err)
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
