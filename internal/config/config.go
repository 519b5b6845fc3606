package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harunnryd/genji/internal/pathutil"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Server ServerConfig `koanf:"server"`
	Model  ModelConfig  `koanf:"model"`
	Agent  AgentConfig  `koanf:"agent"`
	Tools  ToolsConfig  `koanf:"tools"`
}

type ServerConfig struct {
	LogLevel string `koanf:"log_level"`
}

type ModelConfig struct {
	Name      string `koanf:"name"`
	BaseURL   string `koanf:"base_url"`
	Path      string `koanf:"path"`
	APIKey    string `koanf:"api_key"`
	MaxTokens int    `koanf:"max_tokens"`
	// Temperature is only sent upstream when non-negative.
	Temperature    float64 `koanf:"temperature"`
	SystemPrompt   string  `koanf:"system_prompt"`
	RequestTimeout string  `koanf:"request_timeout"`
}

type AgentConfig struct {
	MaxIterations int `koanf:"max_iterations"`
}

type ToolsConfig struct {
	Bash BashToolConfig `koanf:"bash"`
}

type BashToolConfig struct {
	AutoAllow []string `koanf:"auto_allow"`
}

const (
	DefaultServerLogLevel      = "info"
	DefaultModelName           = "anthropic/claude-sonnet-4"
	DefaultModelBaseURL        = "https://openrouter.ai"
	DefaultModelPath           = "/api/v1/chat/completions"
	DefaultModelMaxTokens      = 4096
	DefaultModelRequestTimeout = "120s"
	DefaultAgentMaxIterations  = 20
)

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	// Hardcoded Defaults
	defaults := map[string]interface{}{
		"server.log_level":      DefaultServerLogLevel,
		"model.name":            DefaultModelName,
		"model.base_url":        DefaultModelBaseURL,
		"model.path":            DefaultModelPath,
		"model.max_tokens":      DefaultModelMaxTokens,
		"model.temperature":     -1.0,
		"model.request_timeout": DefaultModelRequestTimeout,
		"agent.max_iterations":  DefaultAgentMaxIterations,
		"tools.bash.auto_allow": []string{},
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Config file loading
	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		expanded, err := pathutil.Expand(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(expanded), yaml.Parser()); err != nil {
			return nil, err
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			globalPath := filepath.Join(home, ".genji", "config.yaml")
			if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
				slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
			}
		}
	}

	// Environment Variables
	k.Load(env.Provider("GENJI_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "GENJI_")), "_", ".", -1)
	}), nil)

	// CLI Flags
	if cmd != nil {
		k.Load(posflag.Provider(cmd.Flags(), ".", k), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	// Post-Process: Inject standard Env Vars if missing
	if cfg.Model.APIKey == "" {
		cfg.Model.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields the client cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Model.APIKey) == "" {
		return fmt.Errorf("model.api_key is required (set it in config or via OPENROUTER_API_KEY)")
	}
	if strings.TrimSpace(c.Model.Name) == "" {
		return fmt.Errorf("model.name is required")
	}
	if c.Model.MaxTokens <= 0 {
		return fmt.Errorf("model.max_tokens must be positive")
	}
	if c.Agent.MaxIterations <= 0 {
		return fmt.Errorf("agent.max_iterations must be positive")
	}
	if _, err := DurationOrDefault(c.Model.RequestTimeout, DefaultModelRequestTimeout); err != nil {
		return fmt.Errorf("model.request_timeout: %w", err)
	}
	return nil
}
