package config

import (
	"os"
	"time"
)

type Config struct {
	Port           string
	Env            string
	DBDriver       string
	DatabaseDSN    string
	AniListURL     string
	AniListTimeout time.Duration
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DBDriver:       getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/anitrack?parseTime=true"),
		AniListURL:     getEnv("ANILIST_URL", "https://graphql.anilist.co"),
		AniListTimeout: getDuration("ANILIST_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
