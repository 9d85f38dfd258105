package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/contree/internal/cache"
	"github.com/vvka-141/contree/pkg/contree"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "contree.yaml"

// Environment variables overriding the config file.
const (
	EnvRoot     = "CONTREE_ROOT"
	EnvCacheDSN = "CONTREE_CACHE_DSN"
)

// Cache drivers.
const (
	DriverNone     = "none"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type CacheConfig struct {
	Driver  string `yaml:"driver"`
	DSN     string `yaml:"dsn,omitempty"`
	Table   string `yaml:"table,omitempty"`
	Timeout string `yaml:"timeout,omitempty"`
}

type QueryConfig struct {
	Limit int `yaml:"limit,omitempty"`
}

type ProjectConfig struct {
	Root           string      `yaml:"root"`
	Tree           string      `yaml:"tree,omitempty"`
	MetadataSuffix string      `yaml:"metadata_suffix,omitempty"`
	Cache          CacheConfig `yaml:"cache"`
	Query          QueryConfig `yaml:"query"`
}

// Default returns the configuration used when no config file exists:
// the current directory as root and a memory cache.
func Default() *ProjectConfig {
	cfg := &ProjectConfig{}
	cfg.applyDefaults()
	return cfg
}

// Load reads contree.yaml from dir. Relative root and tree paths are
// resolved against dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	cfg.resolvePaths(dir)
	return cfg, nil
}

// Parse decodes a config document. Unknown keys are rejected.
func Parse(data []byte) (*ProjectConfig, error) {
	var cfg ProjectConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// ApplyEnv overrides the root and cache DSN from the environment.
// A DSN override selects the postgres driver unless caching is disabled.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) {
	if root, ok := lookup(EnvRoot); ok && root != "" {
		c.Root = root
	}
	if dsn, ok := lookup(EnvCacheDSN); ok && dsn != "" {
		c.Cache.DSN = dsn
		if c.Cache.Driver != DriverNone {
			c.Cache.Driver = DriverPostgres
		}
	}
}

// CacheTimeout returns the parsed per-operation cache timeout.
func (c *ProjectConfig) CacheTimeout() (time.Duration, error) {
	if c.Cache.Timeout == "" {
		return cache.DefaultTimeout, nil
	}
	return time.ParseDuration(c.Cache.Timeout)
}

// Validate reports every problem at once. Each error wraps contree.ErrInvalidConfig.
func (c *ProjectConfig) Validate() error {
	var errs []error

	if c.Root == "" {
		errs = append(errs, fmt.Errorf("root is required: %w", contree.ErrInvalidConfig))
	}

	if strings.Contains(c.MetadataSuffix, "/") {
		errs = append(errs, fmt.Errorf("metadata_suffix %q cannot contain '/': %w", c.MetadataSuffix, contree.ErrInvalidConfig))
	}

	switch c.Cache.Driver {
	case DriverNone, DriverMemory:
	case DriverPostgres:
		if c.Cache.DSN == "" {
			errs = append(errs, fmt.Errorf("cache.dsn is required for the postgres driver (or set %s): %w", EnvCacheDSN, contree.ErrInvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown cache.driver %q (supported: %s, %s, %s): %w",
			c.Cache.Driver, DriverNone, DriverMemory, DriverPostgres, contree.ErrInvalidConfig))
	}

	if timeout, err := c.CacheTimeout(); err != nil {
		errs = append(errs, fmt.Errorf("invalid cache.timeout %q: %w", c.Cache.Timeout, contree.ErrInvalidConfig))
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("cache.timeout must be positive: %w", contree.ErrInvalidConfig))
	}

	if c.Query.Limit < 0 {
		errs = append(errs, fmt.Errorf("query.limit cannot be negative: %w", contree.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

func (c *ProjectConfig) applyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = DriverMemory
	}
	if c.Cache.Table == "" {
		c.Cache.Table = cache.DefaultTable
	}
	if c.MetadataSuffix == "" {
		c.MetadataSuffix = contree.DefaultMetadataSuffix
	}
}

func (c *ProjectConfig) resolvePaths(dir string) {
	if !filepath.IsAbs(c.Root) {
		c.Root = filepath.Join(dir, c.Root)
	}
	if c.Tree != "" && !filepath.IsAbs(c.Tree) {
		c.Tree = filepath.Join(dir, c.Tree)
	}
}
