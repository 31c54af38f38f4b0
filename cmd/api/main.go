package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "housing_finder/internal/adapters/http_server"
	"housing_finder/internal/adapters/observability"
	redisad "housing_finder/internal/adapters/redis"
	smtpad "housing_finder/internal/adapters/smtp"
	"housing_finder/internal/adapters/twilio"
	"housing_finder/internal/app"
	"housing_finder/internal/assistant"
	"housing_finder/internal/contact"
	"housing_finder/internal/dataset"
	"housing_finder/internal/search"
	"housing_finder/internal/shared"
	mysqlrepo "housing_finder/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// dataset: loaded once, read-only for the process lifetime
	ds, err := loadDataset(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}
	log.Info().Int("listings", ds.Len()).Str("source", cfg.DataSource).Msg("dataset loaded")

	// deps
	engine := search.New(ds, search.DefaultWeights())
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(engine, cache, cfg.CacheTTL)
	session := assistant.NewSession(assistant.New(engine))
	contacts := contact.New(
		twilio.New(twilio.DefaultBaseURL, cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, 1),
		smtpad.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Session: session, Contact: contacts, DS: ds})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func loadDataset(cfg shared.Config) (*dataset.Dataset, error) {
	if cfg.DataSource == "mysql" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return nil, err
		}
		ls, err := mysqlrepo.New(db).LoadAll(context.Background())
		if err != nil {
			return nil, err
		}
		return dataset.FromListings(ls), nil
	}
	return dataset.Load(cfg.DataPath)
}
