package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultTemperature keeps responses close to deterministic.
const DefaultTemperature = 0.1

// Providers lists every provider name accepted by the llm factory.
var Providers = []string{"zhipu", "azure", "openai", "ollama", "claude", "gemini"}

type LLMConfig struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	APIVersion  string  `toml:"api_version"`
	Deployment  string  `toml:"deployment"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Server   ServerConfig   `toml:"server"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Log      LogConfig      `toml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "zhipu",
			Temperature: DefaultTemperature,
		},
		Server: ServerConfig{Port: "8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a TOML file on top of Default(), so keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides config values with environment variables when set.
func (c *Config) ApplyEnv() error {
	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.LLM.Model, "LLM_MODEL")
	setString(&c.LLM.APIKey, "LLM_API_KEY")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")
	setString(&c.LLM.APIVersion, "LLM_API_VERSION")
	setString(&c.LLM.Deployment, "LLM_DEPLOYMENT")
	setString(&c.Server.Port, "PORT")
	setString(&c.Memgraph.URI, "MEMGRAPH_URI")
	setString(&c.Memgraph.User, "MEMGRAPH_USER")
	setString(&c.Memgraph.Password, "MEMGRAPH_PASSWORD")
	setString(&c.Log.Level, "LOG_LEVEL")

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", v, err)
		}
		c.LLM.Temperature = t
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks the provider name and the temperature range. It does not
// check the API key; a missing credential is reported by the extraction
// pipeline so callers get the same error kind on every entry point.
func (c LLMConfig) Validate() error {
	provider := strings.ToLower(strings.TrimSpace(c.Provider))
	known := false
	for _, p := range Providers {
		if p == provider {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unsupported llm provider: %q (want one of %s)", c.Provider, strings.Join(Providers, ", "))
	}
	if !(c.Temperature >= 0 && c.Temperature <= 1) {
		return fmt.Errorf("temperature must be within [0.0, 1.0], got %v", c.Temperature)
	}
	return nil
}

// RequiresAPIKey reports whether the provider needs a credential. Only a
// local Ollama server runs without one.
func (c LLMConfig) RequiresAPIKey() bool {
	return strings.ToLower(strings.TrimSpace(c.Provider)) != "ollama"
}
