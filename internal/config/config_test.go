package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":8000", cfg.Server.Addr)
	require.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 300, cfg.Tools.DefaultTimeoutSeconds)
	require.Equal(t, 5*time.Second, cfg.Tools.ProbeTimeout())
}

func TestToolTimeoutsPerTool(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 600*time.Second, cfg.Tools.Timeout("sqlmap"))
	require.Equal(t, 30*time.Second, cfg.Tools.Timeout("dig"))
	require.Equal(t, 300*time.Second, cfg.Tools.Timeout("nmap"))
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  addr: \":9090\"\ntools:\n  default_timeout_seconds: 60\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 60*time.Second, cfg.Tools.Timeout("gobuster"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}
