// Package config loads the settings shared by the automata commands.
//
// Values come from three layers, later ones winning: built-in defaults, an
// optional YAML file, and AUTOMATA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type (
	// Config holds configuration settings for the automata commands
	Config struct {
		LogLevel string      `yaml:"log_level"`
		DFA      DFAConfig   `yaml:"dfa"`
		HTTP     HTTPConfig  `yaml:"http"`
		Store    StoreConfig `yaml:"store"`
		MCP      MCPConfig   `yaml:"mcp"`
	}

	// DFAConfig parameterizes the zeros/ones counter automaton
	DFAConfig struct {
		ZeroModulus int `yaml:"zero_modulus"`
		OneModulus  int `yaml:"one_modulus"`
	}

	// HTTPConfig configures the JSON API server
	HTTPConfig struct {
		Port int `yaml:"port"`
	}

	// StoreConfig selects where evaluation results are kept
	StoreConfig struct {
		Backend string      `yaml:"backend"`
		Redis   RedisConfig `yaml:"redis"`
		File    FileConfig  `yaml:"file"`
	}

	// FileConfig configures the filesystem result store
	FileConfig struct {
		Dir string `yaml:"dir"`
	}

	// RedisConfig configures the Redis result store
	RedisConfig struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Prefix   string        `yaml:"prefix"`
		TTL      time.Duration `yaml:"ttl"`
	}

	// MCPConfig configures the MCP server transport
	MCPConfig struct {
		Transport string `yaml:"transport"`
		Port      int    `yaml:"port"`
	}
)

const (
	DefaultPath = "automata.yaml"

	DefaultZeroModulus = 5
	DefaultOneModulus  = 3
	DefaultHTTPPort    = 8080
	DefaultMCPPort     = 8081
	DefaultRedisAddr   = "localhost:6379"
	DefaultRedisPrefix = "automata:result:"
	DefaultRedisTTL    = 24 * time.Hour
	DefaultFileDir     = ".automata/results"

	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendFile   = "file"

	TransportStdio = "stdio"
	TransportSSE   = "sse"

	MaxTCPPort = 65535

	envPrefix = "AUTOMATA_"
)

var (
	ErrInvalidPort      = errors.New("invalid port")
	ErrInvalidModulus   = errors.New("modulus must be positive")
	ErrUnknownBackend   = errors.New("unknown store backend")
	ErrUnknownTransport = errors.New("unknown MCP transport")
	ErrInvalidTTL       = errors.New("redis TTL cannot be negative")
	ErrEmptyFileDir     = errors.New("file store directory cannot be empty")
)

// envKeys maps environment variables (without prefix) to config paths.
var envKeys = map[string][]string{
	"LOG_LEVEL":        {"log_level"},
	"DFA_ZERO_MODULUS": {"dfa", "zero_modulus"},
	"DFA_ONE_MODULUS":  {"dfa", "one_modulus"},
	"HTTP_PORT":        {"http", "port"},
	"STORE_BACKEND":    {"store", "backend"},
	"REDIS_ADDR":       {"store", "redis", "addr"},
	"REDIS_PASSWORD":   {"store", "redis", "password"},
	"REDIS_DB":         {"store", "redis", "db"},
	"REDIS_PREFIX":     {"store", "redis", "prefix"},
	"REDIS_TTL":        {"store", "redis", "ttl"},
	"FILE_DIR":         {"store", "file", "dir"},
	"MCP_TRANSPORT":    {"mcp", "transport"},
	"MCP_PORT":         {"mcp", "port"},
}

// NewDefault creates a configuration with the reference moduli and an
// in-memory result store.
func NewDefault() *Config {
	return &Config{
		LogLevel: "info",
		DFA: DFAConfig{
			ZeroModulus: DefaultZeroModulus,
			OneModulus:  DefaultOneModulus,
		},
		HTTP: HTTPConfig{Port: DefaultHTTPPort},
		Store: StoreConfig{
			Backend: BackendMemory,
			Redis: RedisConfig{
				Addr:   DefaultRedisAddr,
				Prefix: DefaultRedisPrefix,
				TTL:    DefaultRedisTTL,
			},
			File: FileConfig{Dir: DefaultFileDir},
		},
		MCP: MCPConfig{
			Transport: TransportStdio,
			Port:      DefaultMCPPort,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment. A missing file at DefaultPath is not an error; a missing file
// at any explicitly requested path is.
func Load(path string) (*Config, error) {
	raw := map[string]any{}

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case os.IsNotExist(err) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(raw, os.Environ())

	cfg := NewDefault()
	if err := decode(raw, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// applyEnv overlays AUTOMATA_* variables onto the raw document.
func applyEnv(raw map[string]any, environ []string) {
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, envPrefix) {
			continue
		}
		path, known := envKeys[strings.TrimPrefix(name, envPrefix)]
		if !known {
			continue
		}
		setPath(raw, path, value)
	}
}

func setPath(m map[string]any, path []string, value any) {
	for _, key := range path[:len(path)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.DFA.ZeroModulus < 1 || c.DFA.OneModulus < 1 {
		return fmt.Errorf("%w: zero=%d one=%d",
			ErrInvalidModulus, c.DFA.ZeroModulus, c.DFA.OneModulus)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > MaxTCPPort {
		return fmt.Errorf("%w: http %d", ErrInvalidPort, c.HTTP.Port)
	}
	if c.MCP.Port <= 0 || c.MCP.Port > MaxTCPPort {
		return fmt.Errorf("%w: mcp %d", ErrInvalidPort, c.MCP.Port)
	}
	switch c.Store.Backend {
	case BackendNone, BackendMemory, BackendRedis:
	case BackendFile:
		if c.Store.File.Dir == "" {
			return ErrEmptyFileDir
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Store.Backend)
	}
	if c.Store.Redis.TTL < 0 {
		return ErrInvalidTTL
	}
	switch c.MCP.Transport {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.MCP.Transport)
	}
	return nil
}
