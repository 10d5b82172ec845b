package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	appconfig "github.com/agraisu/TaxiBookSite/config"
	"github.com/agraisu/TaxiBookSite/pkg/logger"
)

// Pool is the process-wide connection pool shared by every handler.
// Created once via InitDB and closed on shutdown via CloseDB.
var Pool *pgxpool.Pool

var log = logger.New("database")

func InitDB(cfg appconfig.Config) error {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresDB,
	)

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Error("error while parsing Postgres config", logger.Error(err))
		return err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Error("failed to connect Postgres", logger.Error(err))
		return err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		log.Error("Postgres is unreachable", logger.Error(err))
		return err
	}

	Pool = pool
	runMigrations(url)

	log.Info("Postgres connected")
	return nil
}

func CloseDB() {
	if Pool != nil {
		Pool.Close()
		Pool = nil
	}
}

func runMigrations(url string) {
	cwd, _ := os.Getwd()
	mPath := filepath.Join(cwd, "migrations")

	m, err := migrate.New("file://"+mPath, url)
	if err != nil {
		log.Warning("migration init error or no migrations found", logger.Error(err))
		return
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return
		}
		log.Error("migration up error", logger.Error(err))
		return
	}

	log.Info("migrations applied")
}
