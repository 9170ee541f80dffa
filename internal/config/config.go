package config

import (
	"log"
	"os"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
	Debug   bool
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "ubermelon.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	debug := os.Getenv("DEBUG") == "1"

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, Debug: debug}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s DEBUG=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.Debug)
	return cfg
}
