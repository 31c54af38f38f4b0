package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// Dataset
	DataSource string // csv|mysql
	DataPath   string
	MySQLDSN   string

	// Cache
	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	// Outbound contact transports
	TwilioSID   string
	TwilioToken string
	TwilioFrom  string
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string

	// Ingestor
	Workers   int
	BatchSize int
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		DataSource:  env("DATA_SOURCE", "csv"),
		DataPath:    env("DATA_PATH", "data/housing_data.csv"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/housing?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		TwilioSID:   env("TWILIO_ACCOUNT_SID", ""),
		TwilioToken: env("TWILIO_AUTH_TOKEN", ""),
		TwilioFrom:  env("TWILIO_PHONE_NUMBER", ""),
		SMTPHost:    env("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    atoi("SMTP_PORT", 587),
		SMTPUser:    env("SMTP_USER", ""),
		SMTPPass:    env("SMTP_PASSWORD", ""),
		Workers:     atoi("INGEST_WORKERS", 4),
		BatchSize:   atoi("INGEST_BATCH_SIZE", 50),
	}
	if c.TwilioSID == "" {
		log.Warn().Msg("TWILIO_ACCOUNT_SID is empty; phone/SMS contact disabled")
	}
	if c.SMTPUser == "" {
		log.Warn().Msg("SMTP_USER is empty; email contact disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
