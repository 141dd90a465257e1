package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	WordsDir           string
	SourceURL          string
	ManifestFile       string
	ListsPath          string
	SpeechCommand      string
	SpeechWorkerCount  int
	SpeechQueueSize    int
	SessionIdleMinutes int
	FetchTimeoutSecs   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:phonicsplay.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		WordsDir:           envOr("WORDS_DIR", "public"),
		SourceURL:          os.Getenv("SOURCE_URL"),
		ManifestFile:       envOr("MANIFEST_FILE", "settings.txt"),
		ListsPath:          envOr("LISTS_PATH", "learning_words"),
		SpeechCommand:      os.Getenv("SPEECH_COMMAND"),
		SpeechWorkerCount:  envIntOr("SPEECH_WORKER_COUNT", 1),
		SpeechQueueSize:    envIntOr("SPEECH_QUEUE_SIZE", 16),
		SessionIdleMinutes: envIntOr("SESSION_IDLE_MINUTES", 120),
		FetchTimeoutSecs:   envIntOr("FETCH_TIMEOUT_SECONDS", 10),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
		c.LogLevel = strings.ToUpper(c.LogLevel)
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}

	if c.SourceURL == "" && strings.TrimSpace(c.WordsDir) == "" {
		errs = append(errs, errors.New("WORDS_DIR cannot be empty when SOURCE_URL is not set"))
	}
	if strings.TrimSpace(c.ManifestFile) == "" {
		errs = append(errs, errors.New("MANIFEST_FILE cannot be empty"))
	}
	if c.SourceURL != "" && !strings.HasPrefix(c.SourceURL, "http://") && !strings.HasPrefix(c.SourceURL, "https://") {
		errs = append(errs, fmt.Errorf("SOURCE_URL must be an http(s) URL (got %q)", c.SourceURL))
	}

	if c.SpeechWorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("SPEECH_WORKER_COUNT must be positive (got %d)", c.SpeechWorkerCount))
	}
	if c.SpeechQueueSize <= 0 {
		errs = append(errs, fmt.Errorf("SPEECH_QUEUE_SIZE must be positive (got %d)", c.SpeechQueueSize))
	}
	if c.SessionIdleMinutes <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_IDLE_MINUTES must be positive (got %d)", c.SessionIdleMinutes))
	}
	if c.FetchTimeoutSecs <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive (got %d)", c.FetchTimeoutSecs))
	}

	if c.SpeechCommand != "" {
		if _, err := exec.LookPath(c.SpeechCommand); err != nil {
			errs = append(errs, fmt.Errorf("SPEECH_COMMAND %q not found: %v", c.SpeechCommand, err))
		}
	}

	return errors.Join(errs...)
}

func (c Config) SessionIdle() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
