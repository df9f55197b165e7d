package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	ChatURL       string
	ChargeDelay   time.Duration
	ChargeTimeout time.Duration
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "skuchat.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./skuchat.log"
	}
	chatURL := os.Getenv("CHAT_URL")
	if chatURL == "" {
		chatURL = "http://localhost:8090/api/chat"
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		LogFile:       logFile,
		ChatURL:       chatURL,
		ChargeDelay:   duration("CHARGE_DELAY", 2*time.Second),
		ChargeTimeout: duration("CHARGE_TIMEOUT", 5*time.Second),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s CHAT_URL=%s CHARGE_DELAY=%s CHARGE_TIMEOUT=%s",
		cfg.Port, cfg.DBDSN, cfg.ChatURL, cfg.ChargeDelay, cfg.ChargeTimeout)
	return cfg
}

func duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, raw, def)
		return def
	}
	return d
}
