package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config.yaml"
	PathEnv     = "LEARNBOT_CONFIG"
)

type Config struct {
	Log     Log     `yaml:"log"`
	Memory  Memory  `yaml:"memory"`
	Session Session `yaml:"session"`
}

type Log struct {
	// Minimal level printed to the console
	Level string `yaml:"level" example:"warn" validate:"oneof=debug info warn error"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890" validate:"required_with=Token"`
}

type Memory struct {
	// Path of the learned responses file
	Path string `yaml:"path" example:"chatbot_memory.json" validate:"required"`
}

type Session struct {
	// Input that ends the session
	ExitKeyword string `yaml:"exit_keyword" example:"exit" validate:"required"`
}

// Path returns the config file location, honoring LEARNBOT_CONFIG.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}

	return DefaultPath
}

// Load reads the YAML config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	var result Config

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if len(data) > 0 {
		if err = yaml.Unmarshal(data, &result); err != nil {
			return nil, oops.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if result.Log.Level == "" {
		result.Log.Level = "warn"
	}
	if result.Memory.Path == "" {
		result.Memory.Path = "chatbot_memory.json"
	}
	if result.Session.ExitKeyword == "" {
		result.Session.ExitKeyword = "exit"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
