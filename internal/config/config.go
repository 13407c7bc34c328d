// Package config loads codecloud configuration from .codecloud/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"codecloud/internal/errors"
)

// Config represents the complete codecloud configuration
type Config struct {
	Version  int    `json:"version" mapstructure:"version"`
	RepoRoot string `json:"repoRoot" mapstructure:"repoRoot"`

	Scan    ScanConfig    `json:"scan" mapstructure:"scan"`
	Server  ServerConfig  `json:"server" mapstructure:"server"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ScanConfig contains the scanning pipeline configuration
type ScanConfig struct {
	// MaxFileBytes caps how much of each file is read
	MaxFileBytes int `json:"maxFileBytes" mapstructure:"maxFileBytes"`

	// ExcludeDirs lists path segments that exclude a file from scanning
	ExcludeDirs []string `json:"excludeDirs" mapstructure:"excludeDirs"`

	// ScriptExtensions lists extensions skipped in symbols mode
	ScriptExtensions []string `json:"scriptExtensions" mapstructure:"scriptExtensions"`

	// TopTerms is the maximum number of ranked terms returned per cloud
	TopTerms int `json:"topTerms" mapstructure:"topTerms"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host      string `json:"host" mapstructure:"host"`
	Port      int    `json:"port" mapstructure:"port"`
	AssetsDir string `json:"assetsDir" mapstructure:"assetsDir"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		RepoRoot: ".",
		Scan: ScanConfig{
			MaxFileBytes: 400000,
			ExcludeDirs: []string{
				".git",
				"node_modules",
				"__pycache__",
				".venv",
				"venv",
			},
			ScriptExtensions: []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"},
			TopTerms:         120,
		},
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8000,
			AssetsDir: "public",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from .codecloud/config.json under repoRoot.
// A missing config file yields the defaults; CODECLOUD_* environment
// variables override individual keys.
func LoadConfig(repoRoot string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("repoRoot", repoRoot)
	v.SetDefault("scan.maxFileBytes", defaults.Scan.MaxFileBytes)
	v.SetDefault("scan.excludeDirs", defaults.Scan.ExcludeDirs)
	v.SetDefault("scan.scriptExtensions", defaults.Scan.ScriptExtensions)
	v.SetDefault("scan.topTerms", defaults.Scan.TopTerms)
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.assetsDir", defaults.Server.AssetsDir)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(repoRoot, ".codecloud"))

	v.SetEnvPrefix("CODECLOUD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, fall through to defaults + env
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.RepoRoot == "" {
		cfg.RepoRoot = repoRoot
	}

	return &cfg, nil
}

// Save writes the configuration to .codecloud/config.json
func (c *Config) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, ".codecloud")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return errors.New(errors.ConfigInvalid, "unsupported config version", nil)
	}
	if c.Scan.MaxFileBytes <= 0 {
		return errors.New(errors.ConfigInvalid, "scan.maxFileBytes must be positive", nil)
	}
	if c.Scan.TopTerms <= 0 {
		return errors.New(errors.ConfigInvalid, "scan.topTerms must be positive", nil)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New(errors.ConfigInvalid, "server.port out of range", nil)
	}
	return nil
}

// AssetsPath returns the absolute path of the static assets directory.
func (c *Config) AssetsPath() string {
	if filepath.IsAbs(c.Server.AssetsDir) {
		return c.Server.AssetsDir
	}
	return filepath.Join(c.RepoRoot, c.Server.AssetsDir)
}
