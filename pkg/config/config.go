package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"

	DefaultBaseURL        = "https://api.openai.com/v1"
	DefaultModel          = "gpt-4o-mini"
	DefaultTimeoutSeconds = 8.0
)

var supportedProviders = map[string]struct{}{
	ProviderMock:   {},
	ProviderOpenAI: {},
}

// Settings describes which provider answers /generate and how to reach it.
// It is resolved once at startup and passed around by value.
type Settings struct {
	Provider              string
	APIKey                string
	BaseURL               string
	Model                 string
	RequestTimeoutSeconds float64
}

// Timeout returns the outbound request budget as a time.Duration.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds * float64(time.Second))
}

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string
	Env         string
	Settings    Settings
}

// LoadDotEnv loads .env into the process environment if the file exists.
func LoadDotEnv() {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()
}

// Load reads the process environment.
func Load(log zerolog.Logger) Config {
	return Resolve(os.LookupEnv, log)
}

// Resolve builds Config from an arbitrary lookup function. It never fails:
// invalid values are logged and replaced with defaults.
func Resolve(lookup func(string) (string, bool), log zerolog.Logger) Config {
	env := envReader{lookup: lookup}
	return Config{
		Port:        env.get("PORT", "8080"),
		FrontendURL: env.get("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:    env.get("LOG_LEVEL", "info"),
		Env:         env.get("APP_ENV", "development"),
		Settings: Settings{
			Provider:              resolveProvider(env.get("AI_PROVIDER", ProviderMock), log),
			APIKey:                env.get("OPENAI_API_KEY", ""),
			BaseURL:               strings.TrimRight(env.get("OPENAI_BASE_URL", DefaultBaseURL), "/"),
			Model:                 env.get("OPENAI_MODEL", DefaultModel),
			RequestTimeoutSeconds: parseTimeout(env.get("REQUEST_TIMEOUT", ""), DefaultTimeoutSeconds, log),
		},
	}
}

func resolveProvider(raw string, log zerolog.Logger) string {
	provider := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := supportedProviders[provider]; !ok {
		log.Warn().
			Str("value", provider).
			Str("fallback", ProviderMock).
			Msg("unsupported AI_PROVIDER")
		return ProviderMock
	}
	return provider
}

func parseTimeout(raw string, def float64, log zerolog.Logger) float64 {
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Warn().
			Str("value", raw).
			Float64("fallback", def).
			Msg("invalid REQUEST_TIMEOUT")
		return def
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
		log.Warn().
			Float64("value", parsed).
			Float64("fallback", def).
			Msg("REQUEST_TIMEOUT must be a positive number of seconds")
		return def
	}
	return parsed
}

type envReader struct {
	lookup func(string) (string, bool)
}

func (e envReader) get(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}
