// Package config loads runtime configuration from the environment, with
// an optional YAML profile as the base layer. Environment variables win
// over the profile.
//
// Backend capabilities are selected by presence: a backend with no URL
// configured is bound to its in-memory stand-in.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Backend describes one remote capability service.
type Backend struct {
	URL     string        `koanf:"url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// Configured reports whether a remote backend is bound.
func (b Backend) Configured() bool {
	return b.URL != ""
}

// Redis configures the optional Redis-backed memory store. It takes
// precedence over the memory backend URL when set.
type Redis struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// HTTP configures the serving surface.
type HTTP struct {
	Port int `koanf:"port"`
}

// Log configures logging.
type Log struct {
	Level string `koanf:"level"`
}

// Config is the full runtime configuration.
type Config struct {
	Memory    Backend  `koanf:"memory"`
	Retrieval Backend  `koanf:"retrieval"`
	Graph     Backend  `koanf:"graph"`
	Redis     Redis    `koanf:"redis"`
	HTTP      HTTP     `koanf:"http"`
	Log       Log      `koanf:"log"`
	Topics    []string `koanf:"topics"`
	TopK      int      `koanf:"top_k"`
	Tools     []string `koanf:"tools"`
}

// Load reads the optional profile named by DANEEL_PROFILE, then layers
// the environment on top.
func Load() (*Config, error) {
	k := koanf.New(".")

	if profile := os.Getenv("DANEEL_PROFILE"); profile != "" {
		if err := k.Load(file.Provider(profile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load profile %s: %w", profile, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// Default values
	if !k.Exists("http.port") {
		k.Set("http.port", 8080)
	}
	if !k.Exists("log.level") {
		k.Set("log.level", "info")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// envKey maps an environment variable to its config path. Unknown
// variables are dropped by returning "".
func envKey(s string) string {
	switch s {
	case "MEMOBASE_REDIS_ADDR":
		return "redis.addr"
	case "MEMOBASE_REDIS_PASSWORD":
		return "redis.password"
	case "MEMOBASE_REDIS_DB":
		return "redis.db"
	case "DANEEL_HTTP_PORT":
		return "http.port"
	case "DANEEL_LOG_LEVEL":
		return "log.level"
	case "DANEEL_TOPICS":
		return "topics"
	case "DANEEL_TOP_K":
		return "top_k"
	case "DANEEL_TOOLS":
		return "tools"
	}

	switch {
	case strings.HasPrefix(s, "MEMOBASE_"):
		return "memory." + strings.ToLower(strings.TrimPrefix(s, "MEMOBASE_"))
	case strings.HasPrefix(s, "RAGDOLL_"):
		return "retrieval." + strings.ToLower(strings.TrimPrefix(s, "RAGDOLL_"))
	case strings.HasPrefix(s, "GRAPH_RAG_"):
		return "graph." + strings.ToLower(strings.TrimPrefix(s, "GRAPH_RAG_"))
	}
	return ""
}
