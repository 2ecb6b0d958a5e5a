// internal/config/config.go
//
// Server configuration from the environment. main loads a .env file
// (godotenv) before calling Load, so either source works in development.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

type Config struct {
	Port     string
	LogLevel string
	DBPath   string

	JWTSecret    string
	JWTTTL       time.Duration
	CookieName   string
	ClientOrigin string
	Production   bool

	DailySalt      string
	LifeBudget     int
	WordFiles      map[words.Language]string
	AllowFixedWord bool
	SessionTTL     time.Duration // idle sessions are swept after this; 0 disables
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(k string) bool {
	b, _ := strconv.ParseBool(os.Getenv(k))
	return b
}

func Load() *Config {
	budget := getInt("LIFE_BUDGET", game.DefaultLifeBudget)
	if budget < 1 {
		budget = game.DefaultLifeBudget
	}
	return &Config{
		Port:     getEnv("PORT", "5175"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DBPath:   getEnv("DB_PATH", "./data/app.db"),

		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTTTL:       time.Duration(getInt("JWT_EXPIRES_DAYS", 14)) * 24 * time.Hour,
		CookieName:   getEnv("COOKIE_NAME", "hangman_token"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:   strings.EqualFold(os.Getenv("APP_ENV"), "production"),

		DailySalt:  getEnv("DAILY_SALT", "local_dev_salt"),
		LifeBudget: budget,
		WordFiles: map[words.Language]string{
			words.English: os.Getenv("WORDS_EN_FILE"),
			words.Finnish: os.Getenv("WORDS_FI_FILE"),
		},
		AllowFixedWord: getBool("ALLOW_FIXED_WORD"),
		SessionTTL:     time.Duration(getInt("SESSION_TTL_MINUTES", 24*60)) * time.Minute,
	}
}
