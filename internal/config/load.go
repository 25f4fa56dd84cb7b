package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment,
// e.g. server.port becomes STUDY_SERVER_PORT.
const EnvPrefix = "STUDY"

// ConfigFileEnv names the environment variable that points at an explicit config file.
const ConfigFileEnv = "STUDY_CONFIG_FILE"

// Default values applied before any config file or environment variable.
const (
	DefaultPort            = 3000
	DefaultLogLevel        = "info"
	DefaultEnvironment     = EnvProduction
	DefaultModelName       = "gemini-2.0-flash"
	DefaultEncyclopediaURL = "https://en.wikipedia.org/api/rest_v1"
	DefaultUserAgent       = "SmartStudyAssistant/1.0 (https://smartstudying.netlify.app)"
	DefaultShutdownTimeout = 10
	DefaultSampleRatio     = 0.1
	DefaultServiceName     = "study-api"
)

// DefaultAllowedOrigins are the browser origins served out of the box.
var DefaultAllowedOrigins = []string{
	"https://smartstudying.netlify.app",
	"http://localhost:5173",
}

// legacyEnv maps configuration keys to the unprefixed variable names used by
// existing deployments. The prefixed STUDY_* name always wins.
var legacyEnv = map[string][]string{
	"llm.gemini_api_key": {"GEMINI_API_KEY"},
	"llm.model_name":     {"GEMINI_MODEL"},
	"server.port":        {"PORT"},
	"server.environment": {"APP_ENV", "NODE_ENV"},
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Config file is optional: explicit path first, then ./config.yaml
	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		args := append([]string{key, prefixed}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags on cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.environment", DefaultEnvironment)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeout)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("encyclopedia.base_url", DefaultEncyclopediaURL)
	v.SetDefault("encyclopedia.user_agent", DefaultUserAgent)
	v.SetDefault("encyclopedia.timeout_seconds", 0)
	v.SetDefault("cors.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.otlp_endpoint", "")
	v.SetDefault("tracing.insecure", false)
	v.SetDefault("tracing.sample_ratio", DefaultSampleRatio)
	v.SetDefault("tracing.service_name", DefaultServiceName)
}

// normalize tidies values that commonly arrive with stray casing or whitespace
// from environment variables.
func normalize(cfg *Config) {
	cfg.Server.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Server.LogLevel))
	cfg.Server.Environment = strings.ToLower(strings.TrimSpace(cfg.Server.Environment))
	cfg.LLM.GeminiAPIKey = strings.TrimSpace(cfg.LLM.GeminiAPIKey)
	cfg.LLM.ModelName = strings.TrimSpace(cfg.LLM.ModelName)
	cfg.Encyclopedia.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Encyclopedia.BaseURL), "/")
}
