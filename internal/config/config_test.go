package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/phonicsplay/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		WordsDir:           "public",
		ManifestFile:       "settings.txt",
		ListsPath:          "learning_words",
		SpeechCommand:      "", // Empty command means log-only speech
		SpeechWorkerCount:  1,
		SpeechQueueSize:    16,
		SessionIdleMinutes: 120,
		FetchTimeoutSecs:   10,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = "  "

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_WordsDirOptionalWithSourceURL(t *testing.T) {
	cfg := validConfig()
	cfg.WordsDir = ""
	assert.ErrorContains(t, cfg.Validate(), "WORDS_DIR")

	cfg.SourceURL = "https://example.com/phonics"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_InvalidSourceURL(t *testing.T) {
	cfg := validConfig()
	cfg.SourceURL = "ftp://example.com"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCE_URL")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "invalid level", level: "INVALID", wantErr: true},
		{name: "empty level", level: "", wantErr: true},
		{name: "lowercase valid level", level: "debug", wantErr: false},
		{name: "warning alias", level: "warning", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NonPositiveCounts(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero speech workers",
			mutate:        func(c *config.Config) { c.SpeechWorkerCount = 0 },
			expectedError: "SPEECH_WORKER_COUNT",
		},
		{
			name:          "negative queue size",
			mutate:        func(c *config.Config) { c.SpeechQueueSize = -1 },
			expectedError: "SPEECH_QUEUE_SIZE",
		},
		{
			name:          "zero idle minutes",
			mutate:        func(c *config.Config) { c.SessionIdleMinutes = 0 },
			expectedError: "SESSION_IDLE_MINUTES",
		},
		{
			name:          "zero fetch timeout",
			mutate:        func(c *config.Config) { c.FetchTimeoutSecs = 0 },
			expectedError: "FETCH_TIMEOUT_SECONDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_SpeechCommandNotFound(t *testing.T) {
	cfg := validConfig()
	cfg.SpeechCommand = "nonexistent-tts-binary-12345"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SPEECH_COMMAND")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		LogLevel: "INVALID",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "WORDS_DIR")
	assert.Contains(t, errStr, "MANIFEST_FILE")
	assert.Contains(t, errStr, "SPEECH_WORKER_COUNT")
	assert.Contains(t, errStr, "SPEECH_QUEUE_SIZE")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("SPEECH_QUEUE_SIZE", "4")
	t.Setenv("SESSION_IDLE_MINUTES", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.SpeechQueueSize)
	assert.Equal(t, 120, cfg.SessionIdleMinutes, "invalid integers fall back to the default")
	assert.Equal(t, 2*time.Hour, cfg.SessionIdle())
}
