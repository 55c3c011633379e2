// Package config loads cmdly settings from embedded defaults, an optional
// user config file, and the environment. The result is a read-only snapshot
// consumed by the registry and the chat subsystem at startup; nothing mutates
// it after Load returns.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

//go:embed default_settings.yaml
var defaultSettings []byte

// Features holds feature toggles.
type Features struct {
	// FunCommands gates commands marked as fun. When false the executor
	// refuses them with a warning instead of running them.
	FunCommands bool `yaml:"fun_commands" mapstructure:"fun_commands"`
}

// Chat holds tunables for the simulated chat subsystem.
type Chat struct {
	// AutoResponse is the server role's reply format. It receives the
	// message sequence number and the received text.
	AutoResponse string `yaml:"auto_response" mapstructure:"auto_response"`
	// Buffer is the capacity of each role's message channel.
	Buffer int `yaml:"buffer" mapstructure:"buffer"`
}

// LLM holds the opaque request/response endpoint settings for the llm command.
type LLM struct {
	Endpoint    string  `yaml:"endpoint" mapstructure:"endpoint"`
	Model       string  `yaml:"model" mapstructure:"model"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// Config is the full cmdly configuration snapshot.
type Config struct {
	// Aliases maps a command name to alternate names that resolve to it.
	Aliases  map[string][]string `yaml:"aliases" mapstructure:"aliases"`
	Features Features            `yaml:"features" mapstructure:"features"`
	Chat     Chat                `yaml:"chat" mapstructure:"chat"`
	LLM      LLM                 `yaml:"llm" mapstructure:"llm"`
}

// Load builds the configuration with priority (lowest to highest):
// embedded defaults, user config file, .env file, process environment.
// configFile may be empty, in which case the standard locations are searched
// and a missing file is not an error.
func Load(configFile string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultSettings, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}

	// .env values become process environment before the env overlay below.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/cmdly")
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				return nil, fmt.Errorf("invalid config file: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Chat.Buffer <= 0 {
		cfg.Chat.Buffer = 16
	}

	return cfg, nil
}

// applyEnvOverrides applies the small set of environment knobs. These win
// over both the embedded defaults and the config file.
func applyEnvOverrides(cfg *Config) {
	if s := os.Getenv("CMDLY_FUN_COMMANDS"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			cfg.Features.FunCommands = b
		}
	}
	if s := os.Getenv("CMDLY_LLM_ENDPOINT"); s != "" {
		cfg.LLM.Endpoint = s
	}
	if s := os.Getenv("CMDLY_LLM_MODEL"); s != "" {
		cfg.LLM.Model = s
	}
	if s := os.Getenv("CMDLY_CHAT_AUTO_RESPONSE"); s != "" {
		cfg.Chat.AutoResponse = s
	}
}
