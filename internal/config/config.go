package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the server.
type Config struct {
	ServerAddr          string `yaml:"server_addr"`
	WorkDir             string `yaml:"work_dir"`
	YtdlpBin            string `yaml:"ytdlp_bin"`
	AssemblyAIBaseURL   string `yaml:"assemblyai_base_url"`
	AssemblyAIAPIKey    string `yaml:"assemblyai_api_key"`
	GroqBaseURL         string `yaml:"groq_base_url"`
	GroqAPIKey          string `yaml:"groq_api_key"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	// PollMaxAttempts bounds the transcription poll loop; 0 polls until
	// the service reports a terminal state.
	PollMaxAttempts int `yaml:"poll_max_attempts"`
}

// Load reads the optional YAML config file named by STUDYPIPE_CONFIG, applies
// environment variable overrides, and returns normalized runtime config.
func Load() Config {
	cfg := Config{
		ServerAddr:          ":8080",
		WorkDir:             os.TempDir(),
		YtdlpBin:            "yt-dlp",
		AssemblyAIBaseURL:   "https://api.assemblyai.com",
		GroqBaseURL:         "https://api.groq.com/openai",
		PollIntervalSeconds: 5,
	}

	if path := strings.TrimSpace(os.Getenv("STUDYPIPE_CONFIG")); path != "" {
		_ = loadFile(path, &cfg)
	}

	cfg.ServerAddr = getEnv("SERVER_ADDR", cfg.ServerAddr)
	cfg.WorkDir = getEnv("WORK_DIR", cfg.WorkDir)
	cfg.YtdlpBin = getEnv("YTDLP_BIN", cfg.YtdlpBin)
	cfg.AssemblyAIBaseURL = getEnv("ASSEMBLYAI_BASE_URL", cfg.AssemblyAIBaseURL)
	cfg.AssemblyAIAPIKey = getEnv("ASSEMBLYAI_API_KEY", cfg.AssemblyAIAPIKey)
	cfg.GroqBaseURL = getEnv("GROQ_BASE_URL", cfg.GroqBaseURL)
	cfg.GroqAPIKey = getEnv("GROQ_API_KEY", cfg.GroqAPIKey)
	cfg.PollIntervalSeconds = getEnvInt("POLL_INTERVAL_SECONDS", cfg.PollIntervalSeconds)
	if v := strings.TrimSpace(os.Getenv("POLL_MAX_ATTEMPTS")); v != "" {
		var out int
		if _, err := fmt.Sscanf(v, "%d", &out); err == nil && out >= 0 {
			cfg.PollMaxAttempts = out
		}
	}

	return cfg
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	var out int
	_, err := fmt.Sscanf(value, "%d", &out)
	if err != nil || out <= 0 {
		return fallback
	}
	return out
}
