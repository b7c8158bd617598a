package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported generation providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config represents the application configuration
type Config struct {
	AI        AIConfig        `mapstructure:"ai"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Server    ServerConfig    `mapstructure:"server"`
	Sources   SourcesConfig   `mapstructure:"sources"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// AIConfig selects which generation provider is used
type AIConfig struct {
	Provider string `mapstructure:"provider"` // openai, anthropic or gemini
}

// OpenAIConfig holds OpenAI API settings
type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	BaseURL     string  `mapstructure:"base_url"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// AnthropicConfig holds Claude API settings
type AnthropicConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	BaseURL     string  `mapstructure:"base_url"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// GeminiConfig holds Gemini API settings
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	BaseURL     string  `mapstructure:"base_url"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SourcesConfig holds topic source configurations
type SourcesConfig struct {
	RSS    RSSConfig    `mapstructure:"rss"`
	Custom CustomConfig `mapstructure:"custom"`
}

// RSSConfig holds RSS feed settings
type RSSConfig struct {
	Enabled bool      `mapstructure:"enabled"`
	Feeds   []RSSFeed `mapstructure:"feeds"`
	MaxAge  string    `mapstructure:"max_age"` // Skip items older than this
}

// RSSFeed represents a single RSS feed
type RSSFeed struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// CustomConfig holds a fixed watchlist of topics
type CustomConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Topics  []string `mapstructure:"topics"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // stdout, stderr or file path
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Load .env file if present (ignore errors if not found)
	_ = godotenv.Load()
	_ = godotenv.Load(".env.local")

	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".idea-agent"))
		}
	}

	v.SetEnvPrefix("IDEAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The provider credentials are also accepted under their conventional names
	v.BindEnv("openai.api_key", "IDEAS_OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("anthropic.api_key", "IDEAS_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	v.BindEnv("gemini.api_key", "IDEAS_GEMINI_API_KEY", "GEMINI_API_KEY")
	v.BindEnv("ai.provider", "IDEAS_AI_PROVIDER")
	v.BindEnv("server.addr", "IDEAS_SERVER_ADDR")
	v.BindEnv("logging.level", "IDEAS_LOGGING_LEVEL")

	// Keys without a default are invisible to AutomaticEnv during Unmarshal
	v.BindEnv("openai.base_url", "IDEAS_OPENAI_BASE_URL")
	v.BindEnv("anthropic.base_url", "IDEAS_ANTHROPIC_BASE_URL")
	v.BindEnv("gemini.base_url", "IDEAS_GEMINI_BASE_URL")
	v.BindEnv("sources.custom.topics", "IDEAS_SOURCES_CUSTOM_TOPICS") // comma separated

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.AI.Provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", ProviderOpenAI)

	v.SetDefault("openai.model", "gpt-4o")
	v.SetDefault("openai.max_tokens", 1000)
	v.SetDefault("openai.temperature", 0.7)

	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.max_tokens", 1000)
	v.SetDefault("anthropic.temperature", 0.7)

	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.max_tokens", 1000)
	v.SetDefault("gemini.temperature", 0.7)

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("sources.rss.enabled", true)
	v.SetDefault("sources.rss.max_age", "168h")
	v.SetDefault("sources.custom.enabled", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}

// APIKey returns the credential of the selected provider
func (c *Config) APIKey() string {
	switch c.AI.Provider {
	case ProviderAnthropic:
		return c.Anthropic.APIKey
	case ProviderGemini:
		return c.Gemini.APIKey
	default:
		return c.OpenAI.APIKey
	}
}

// LiveGenerationEnabled reports whether a credential is present for the selected provider
func (c *Config) LiveGenerationEnabled() bool {
	return c.APIKey() != ""
}
