// Package config provides application configuration management using Viper.
// Configuration is loaded from an optional .env file, YAML files and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Sentry      SentryConfig      `mapstructure:"sentry"`
	YouTube     YouTubeConfig     `mapstructure:"youtube"`
	Transcript  TranscriptConfig  `mapstructure:"transcript"`
	LLM         LLMConfig         `mapstructure:"llm"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Probe       ProbeConfig       `mapstructure:"probe"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name  string `mapstructure:"name"`
	Env   string `mapstructure:"env"` // development, staging, production
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	TemplatesDir string        `mapstructure:"templates_dir"`
	StaticDir    string        `mapstructure:"static_dir"`
	CORSOrigins  string        `mapstructure:"cors_origins"`
}

// YouTubeConfig holds YouTube Data API settings.
type YouTubeConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"` // empty means the public endpoint
	Timeout time.Duration `mapstructure:"timeout"`
	CB      CBConfig      `mapstructure:"circuit_breaker"`
}

// TranscriptConfig holds caption scraping settings.
type TranscriptConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Language  string        `mapstructure:"language"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CB        CBConfig      `mapstructure:"circuit_breaker"`
}

// LLMConfig holds language model backend settings.
type LLMConfig struct {
	Backend     string        `mapstructure:"backend"` // ollama, openai
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float32       `mapstructure:"temperature"`
	TopP        float32       `mapstructure:"top_p"`
	RateLimit   float64       `mapstructure:"rate_limit"` // requests per second, 0 disables pacing
	RateBurst   int           `mapstructure:"rate_burst"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Summary     TaskConfig    `mapstructure:"summary"`
	Keywords    TaskConfig    `mapstructure:"keywords"`
	CB          CBConfig      `mapstructure:"circuit_breaker"`
}

// TaskConfig holds per-prompt limits.
type TaskConfig struct {
	MaxChars int           `mapstructure:"max_chars"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CBConfig holds circuit breaker settings.
type CBConfig struct {
	MaxRequests  uint32        `mapstructure:"max_requests"`
	Interval     time.Duration `mapstructure:"interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	FailureRatio float64       `mapstructure:"failure_ratio"`
}

// CredentialsConfig holds the location of the persisted API key.
type CredentialsConfig struct {
	EnvFile string `mapstructure:"env_file"`
}

// ProbeConfig holds background model probe settings.
type ProbeConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval"`
	OnStartup bool          `mapstructure:"on_startup"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
	Output string `mapstructure:"output"` // stdout, stderr, file path
}

// SentryConfig holds Sentry error tracking settings.
type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// DefaultEnvFile is where the YouTube API key is persisted.
const DefaultEnvFile = ".env"

// Load reads configuration from file and environment variables.
// Priority: env vars > .env file > config file > defaults
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(envFileFromEnv()); err != nil {
		return nil, err
	}

	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The key saved through the settings endpoint uses the bare name.
	if err := v.BindEnv("youtube.api_key", "APP_YOUTUBE_API_KEY", "YOUTUBE_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding youtube api key: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile exports the variables of path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("loading env file %s: %w", path, err)
	}

	return nil
}

// envFileFromEnv resolves the env file location before viper is built.
func envFileFromEnv() string {
	if path := os.Getenv("APP_CREDENTIALS_ENV_FILE"); path != "" {
		return path
	}

	return DefaultEnvFile
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "youtube-analyst-api")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 5000)
	v.SetDefault("app.debug", true)

	// HTTP defaults
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "120s")
	v.SetDefault("http.idle_timeout", "60s")
	v.SetDefault("http.templates_dir", "./web/templates")
	v.SetDefault("http.static_dir", "./web/static")
	v.SetDefault("http.cors_origins", "*")

	// YouTube Data API defaults
	v.SetDefault("youtube.api_key", "")
	v.SetDefault("youtube.base_url", "")
	v.SetDefault("youtube.timeout", "10s")
	setBreakerDefaults(v, "youtube")

	// Transcript defaults
	v.SetDefault("transcript.base_url", "https://www.youtube.com")
	v.SetDefault("transcript.language", "en")
	v.SetDefault("transcript.user_agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	v.SetDefault("transcript.timeout", "15s")
	setBreakerDefaults(v, "transcript")

	// LLM defaults
	v.SetDefault("llm.backend", "ollama")
	v.SetDefault("llm.base_url", "http://localhost:11434")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemma3")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.top_p", 0.9)
	v.SetDefault("llm.rate_limit", 0)
	v.SetDefault("llm.rate_burst", 1)
	v.SetDefault("llm.timeout", "90s")
	v.SetDefault("llm.summary.max_chars", 10000)
	v.SetDefault("llm.summary.timeout", "60s")
	v.SetDefault("llm.keywords.max_chars", 6000)
	v.SetDefault("llm.keywords.timeout", "30s")
	setBreakerDefaults(v, "llm")

	// Credentials defaults
	v.SetDefault("credentials.env_file", DefaultEnvFile)

	// Probe defaults
	v.SetDefault("probe.enabled", true)
	v.SetDefault("probe.interval", "1m")
	v.SetDefault("probe.on_startup", true)
	v.SetDefault("probe.timeout", "5s")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stdout")

	// Sentry defaults
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)
}

func setBreakerDefaults(v *viper.Viper, section string) {
	v.SetDefault(section+".circuit_breaker.max_requests", 3)
	v.SetDefault(section+".circuit_breaker.interval", "60s")
	v.SetDefault(section+".circuit_breaker.timeout", "30s")
	v.SetDefault(section+".circuit_breaker.failure_ratio", 0.5)
}
