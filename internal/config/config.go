package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/recommend"
)

// EnvPrefix prefixes every environment override, e.g. GAMEFINDER_SERVER_ADDR.
const EnvPrefix = "GAMEFINDER"

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Finder  FinderConfig  `mapstructure:"finder"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
}

// FinderConfig holds the search endpoint the finder page posts to. An empty
// endpoint means the server's own find games route.
type FinderConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// LLMConfig holds provider settings. APIKeys is a comma separated list.
type LLMConfig struct {
	APIKeys string `mapstructure:"api_keys"`
	Model   string `mapstructure:"model"`
}

// Keys returns the parsed API key list.
func (c LLMConfig) Keys() []string {
	return recommend.ParseKeys(c.APIKeys)
}

// CatalogConfig points at an optional YAML option catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from an optional file and the environment. The
// file format follows its extension (yaml, toml, json). path
// wins over GAMEFINDER_CONFIG; without either, ./gamefinder.yaml is read when
// present. GEMINI_API_KEYS is honoured for the API key list.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("finder.endpoint", "")
	v.SetDefault("llm.api_keys", "")
	v.SetDefault("llm.model", recommend.DefaultModel)
	v.SetDefault("catalog.path", "")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.SetConfigName("gamefinder")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.api_keys", EnvPrefix+"_LLM_API_KEYS", "GEMINI_API_KEYS"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Server.AllowedOrigins = cleanList(c.Server.AllowedOrigins)
	return c, nil
}

// Endpoint returns the configured search endpoint or fallback when unset.
func (c Config) Endpoint(fallback string) string {
	if endpoint := strings.TrimSpace(c.Finder.Endpoint); endpoint != "" {
		return endpoint
	}
	if fallback != "" {
		return fallback
	}
	return finder.DefaultEndpoint
}

func cleanList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
