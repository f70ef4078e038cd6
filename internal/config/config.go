// Package config loads service configuration: defaults, an optional YAML
// file, and TOOLBRIDGE_* environment overrides, in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Tools  ToolsConfig  `mapstructure:"tools"`
}

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type ToolsConfig struct {
	// TimeoutSeconds is keyed by tool name; tools not listed fall back to
	// DefaultTimeoutSeconds.
	TimeoutSeconds        map[string]int `mapstructure:"timeout_seconds"`
	DefaultTimeoutSeconds int            `mapstructure:"default_timeout_seconds"`
	ProbeTimeoutSeconds   int            `mapstructure:"probe_timeout_seconds"`

	XSSPython            string `mapstructure:"xss_python"`
	XSSScript            string `mapstructure:"xss_script"`
	XSSRequestTimeoutSec int    `mapstructure:"xss_request_timeout_seconds"`
}

// Timeout returns the wall-clock budget for one invocation of tool.
func (c ToolsConfig) Timeout(tool string) time.Duration {
	if secs, ok := c.TimeoutSeconds[tool]; ok && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return time.Duration(c.DefaultTimeoutSeconds) * time.Second
}

// ProbeTimeout bounds one availability probe.
func (c ToolsConfig) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TOOLBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("tools.default_timeout_seconds", 300)
	v.SetDefault("tools.probe_timeout_seconds", 5)
	v.SetDefault("tools.timeout_seconds", map[string]int{
		"sqlmap":   600,
		"nikto":    600,
		"wpscan":   600,
		"nslookup": 30,
		"dig":      30,
	})

	v.SetDefault("tools.xss_python", "python3")
	v.SetDefault("tools.xss_script", "/opt/xsser/xsser.py")
	v.SetDefault("tools.xss_request_timeout_seconds", 10)
}
