package main

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"housing_finder/internal/adapters/observability"
	"housing_finder/internal/app"
	"housing_finder/internal/dataset"
	"housing_finder/internal/shared"
	mysqlrepo "housing_finder/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("csv", cfg.DataPath).
		Int("workers", cfg.Workers).
		Int("batch", cfg.BatchSize).
		Msg("ingestor starting")

	ds, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}
	log.Info().Int("listings", ds.Len()).Msg("csv parsed")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	ing := app.NewIngestionService(mysqlrepo.New(db), cfg.Workers)
	if err := ing.IngestAll(ctx, ds.Listings(), cfg.BatchSize); err != nil {
		log.Fatal().Err(err).Msg("ingestion failed")
	}
	log.Info().Int("listings", ds.Len()).Msg("ingestion completed")
}
