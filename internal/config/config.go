package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	LLM          LLMConfig          `mapstructure:"llm"`
	Encyclopedia EncyclopediaConfig `mapstructure:"encyclopedia" validate:"required"`
	CORS         CORSConfig         `mapstructure:"cors"`
	Tracing      TracingConfig      `mapstructure:"tracing"`
}

// Runtime environments. Anything other than production exposes stack traces
// in error responses.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production test"`
	// ShutdownTimeoutSeconds bounds the graceful drain on SIGINT/SIGTERM.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// IsProduction reports whether the server runs in production mode.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is optional at load time. Without it the study endpoint
	// answers with a configuration error instead of the server refusing to start.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
}

// Configured reports whether an AI credential is present.
func (c LLMConfig) Configured() bool {
	return c.GeminiAPIKey != ""
}

// EncyclopediaConfig contains settings for the Wikipedia summary API client.
type EncyclopediaConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required,url"`
	UserAgent string `mapstructure:"user_agent" validate:"required"`
	// TimeoutSeconds of zero leaves the transport defaults in place.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// CORSConfig lists the browser origins allowed to call the API.
// Any localhost or 127.0.0.1 origin is always allowed.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,url"`
}

// TracingConfig controls OpenTelemetry tracing.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// OTLPEndpoint selects the OTLP/HTTP exporter; empty means stdout.
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	Insecure     bool    `mapstructure:"insecure"`
	SampleRatio  float64 `mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
	ServiceName  string  `mapstructure:"service_name"`
}
