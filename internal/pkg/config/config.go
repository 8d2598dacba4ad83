package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, API keys)
// - default: values common across all environments (timeouts, base URLs)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
	Places PlacesConfig
	Voice  VoiceConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// PlacesConfig drives the Google Places directory lookup client.
type PlacesConfig struct {
	APIKey  string        `envconfig:"GOOGLE_PLACES_API_KEY" required:"true"`
	BaseURL string        `envconfig:"GOOGLE_PLACES_BASE_URL" default:"https://maps.googleapis.com/maps/api/place"`
	Timeout time.Duration `envconfig:"GOOGLE_PLACES_TIMEOUT" default:"10s"`
}

// VoiceConfig drives the outbound call initiation client.
type VoiceConfig struct {
	APIKey      string        `envconfig:"VOICE_API_KEY" required:"true"`
	BaseURL     string        `envconfig:"VOICE_BASE_URL" default:"https://api.retellai.com"`
	AgentID     string        `envconfig:"VOICE_OUTBOUND_AGENT_ID" required:"true"`
	FromNumber  string        `envconfig:"VOICE_FROM_NUMBER" required:"true"`
	Timeout     time.Duration `envconfig:"VOICE_TIMEOUT" default:"15s"`
	DialsPerMin int           `envconfig:"VOICE_DIALS_PER_MINUTE" default:"30"`
}

func LoadConfig() (Config, error) {
	if err := exportEnvFileIfExists(".env"); err != nil {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// exportEnvFileIfExists loads a dotenv-style file into the process environment
// before envconfig runs. Missing files are not an error.
func exportEnvFileIfExists(filepath string) error {
	info, err := os.Stat(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}

	viper.SetConfigFile(filepath)
	viper.SetConfigType("env")
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	for k, v := range viper.AllSettings() {
		if err := os.Setenv(strings.ToUpper(k), fmt.Sprint(v)); err != nil {
			return err
		}
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Places: PlacesConfig{
			APIKey:  "test-places-key",
			BaseURL: "http://localhost:18081",
			Timeout: time.Second,
		},
		Voice: VoiceConfig{
			APIKey:      "test-voice-key",
			BaseURL:     "http://localhost:18082",
			AgentID:     "agent-test",
			FromNumber:  "+15550100000",
			Timeout:     time.Second,
			DialsPerMin: 600,
		},
	}
}
