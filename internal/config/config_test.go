package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STUDYPIPE_CONFIG",
		"SERVER_ADDR",
		"WORK_DIR",
		"YTDLP_BIN",
		"ASSEMBLYAI_BASE_URL",
		"ASSEMBLYAI_API_KEY",
		"GROQ_BASE_URL",
		"GROQ_API_KEY",
		"POLL_INTERVAL_SECONDS",
		"POLL_MAX_ATTEMPTS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, os.TempDir(), cfg.WorkDir)
	assert.Equal(t, "yt-dlp", cfg.YtdlpBin)
	assert.Equal(t, "https://api.assemblyai.com", cfg.AssemblyAIBaseURL)
	assert.Equal(t, "https://api.groq.com/openai", cfg.GroqBaseURL)
	assert.Equal(t, 5, cfg.PollIntervalSeconds)
	assert.Equal(t, 0, cfg.PollMaxAttempts)
	assert.Empty(t, cfg.AssemblyAIAPIKey)
	assert.Empty(t, cfg.GroqAPIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("YTDLP_BIN", "/usr/local/bin/yt-dlp")
	t.Setenv("ASSEMBLYAI_API_KEY", "aai-key")
	t.Setenv("GROQ_API_KEY", "gsk-key")
	t.Setenv("POLL_INTERVAL_SECONDS", "2")
	t.Setenv("POLL_MAX_ATTEMPTS", "120")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "/usr/local/bin/yt-dlp", cfg.YtdlpBin)
	assert.Equal(t, "aai-key", cfg.AssemblyAIAPIKey)
	assert.Equal(t, "gsk-key", cfg.GroqAPIKey)
	assert.Equal(t, 2, cfg.PollIntervalSeconds)
	assert.Equal(t, 120, cfg.PollMaxAttempts)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "studypipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_addr: ":7070"
work_dir: /var/lib/studypipe
assemblyai_api_key: file-key
poll_interval_seconds: 10
poll_max_attempts: 60
`), 0o644))
	t.Setenv("STUDYPIPE_CONFIG", path)

	cfg := Load()

	assert.Equal(t, ":7070", cfg.ServerAddr)
	assert.Equal(t, "/var/lib/studypipe", cfg.WorkDir)
	assert.Equal(t, "file-key", cfg.AssemblyAIAPIKey)
	assert.Equal(t, 10, cfg.PollIntervalSeconds)
	assert.Equal(t, 60, cfg.PollMaxAttempts)
	// Untouched keys keep their defaults.
	assert.Equal(t, "yt-dlp", cfg.YtdlpBin)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "studypipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_addr: \":7070\"\nassemblyai_api_key: file-key\n"), 0o644))
	t.Setenv("STUDYPIPE_CONFIG", path)
	t.Setenv("SERVER_ADDR", ":9090")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "file-key", cfg.AssemblyAIAPIKey)
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STUDYPIPE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddr)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLL_INTERVAL_SECONDS", "not-a-number")
	t.Setenv("POLL_MAX_ATTEMPTS", "-3")

	cfg := Load()

	assert.Equal(t, 5, cfg.PollIntervalSeconds)
	assert.Equal(t, 0, cfg.PollMaxAttempts)
}
