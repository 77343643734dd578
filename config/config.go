package config

import (
	"log/slog"
	"os"
	"strconv"
)

type AppConfig struct {
	RedditClientID     string
	RedditClientSecret string
	RedditUserAgent    string
	GeminiAPIKey       string // optional; the summarizer degrades without it
	ProxyURL           string // optional SOCKS5 proxy for outbound requests
	DataLimit          int
	LogLevel           slog.Level
}

var Config AppConfig

func LoadConfig() {
	cfg := AppConfig{}

	cfg.RedditClientID = loadRequired("REDDIT_CLIENT_ID")
	cfg.RedditClientSecret = loadRequired("REDDIT_CLIENT_SECRET")
	cfg.RedditUserAgent = loadRequired("REDDIT_USER_AGENT")
	cfg.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.ProxyURL = os.Getenv("PROXY_URL")

	limitString := loadOptional("DATA_LIMIT", "100")
	limit, err := strconv.Atoi(limitString)
	if err != nil || limit <= 0 {
		slog.Error("Invalid DATA_LIMIT, falling back to 100", "value", limitString)
		limit = 100
	}
	cfg.DataLimit = limit

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	Config = cfg
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Required env var not set", "key", key)
		os.Exit(1)
	}
	return value
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
