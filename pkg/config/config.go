package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is built once in main and handed to every component that needs it.
// Business logic never reads the process environment directly.
type Config struct {
	App    AppConfig    `yaml:"app"`
	OpenAI OpenAIConfig `yaml:"openai"`
	Speech SpeechConfig `yaml:"speech"`
}

type AppConfig struct {
	// Mode selects the conversation surface: "console" or "voice".
	Mode string `yaml:"mode"`
	// DataDir holds the persisted list files and the history database.
	DataDir string `yaml:"data_dir"`
	// Triggers optionally overrides the trigger phrases of a named
	// workflow, keyed by workflow name.
	Triggers map[string][]string `yaml:"triggers"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type SpeechConfig struct {
	// WhisperURL is an OpenAI-compatible /v1/audio/transcriptions endpoint.
	WhisperURL string `yaml:"whisper_url"`
	// KokoroURL is an OpenAI-compatible /v1/audio/speech endpoint.
	KokoroURL string  `yaml:"kokoro_url"`
	Speaker   string  `yaml:"speaker"`
	Speed     float64 `yaml:"speed"`
}

// Load builds the configuration from an optional YAML file, a .env file if
// present, and the process environment. Environment values win over the file.
// A missing OPENAI_API_KEY is a hard error: the assistant must not start
// partially configured.
func Load(path string) (*Config, error) {
	// .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Mode:    "console",
			DataDir: "data",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Speech: SpeechConfig{
			WhisperURL: "http://localhost:8000/v1/audio/transcriptions",
			KokoroURL:  "http://localhost:8880/v1/audio/speech",
			Speaker:    "af_heart",
			Speed:      1.2,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			// A missing file is fine; an unreadable one is not.
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("VAANI_MODE"); v != "" {
		cfg.App.Mode = v
	}
	if v := os.Getenv("VAANI_DATA_DIR"); v != "" {
		cfg.App.DataDir = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}
	if v := os.Getenv("WHISPER_URL"); v != "" {
		cfg.Speech.WhisperURL = v
	}
	if v := os.Getenv("KOKORO_URL"); v != "" {
		cfg.Speech.KokoroURL = v
	}
	if v := os.Getenv("KOKORO_SPEAKER"); v != "" {
		cfg.Speech.Speaker = v
	}
	if v := os.Getenv("KOKORO_SPEED"); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid KOKORO_SPEED %q: %w", v, err)
		}
		cfg.Speech.Speed = speed
	}

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	switch cfg.App.Mode {
	case "console", "voice":
	default:
		return nil, fmt.Errorf("unknown mode %q (expected console or voice)", cfg.App.Mode)
	}

	return cfg, nil
}
