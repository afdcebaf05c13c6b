package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 2, cfg.Reconcile.Threshold)
	assert.Equal(t, 0, cfg.Reconcile.MaxPages)
	assert.Equal(t, 100, cfg.ThreePlay.PerPage)
	assert.Equal(t, 5.0, cfg.ThreePlay.RequestsPerSecond)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("RECONCILE_THRESHOLD", "4")
	t.Setenv("THREEPLAY_API_KEY", "vendor-key")
	t.Setenv("CLAPI_BASE_URL", "http://attrs.internal")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Reconcile.Threshold)
	assert.Equal(t, "vendor-key", cfg.ThreePlay.APIKey)
	assert.Equal(t, "http://attrs.internal", cfg.CLAPI.BaseURL)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CLAPI_TOKEN=from-file\nRECONCILE_MAX_PAGES=50\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("CLAPI_TOKEN")
		os.Unsetenv("RECONCILE_MAX_PAGES")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.CLAPI.Token)
	assert.Equal(t, 50, cfg.Reconcile.MaxPages)
}

func TestBindValues(t *testing.T) {
	type inner struct {
		Name string `mapstructure:"name" default:"x"`
	}
	type outer struct {
		Inner   inner  `mapstructure:"inner"`
		Skipped string
		Top     string `mapstructure:"top" default:"y"`
	}

	v := viper.New()
	bindValues(v, &outer{}, "")

	assert.Equal(t, "x", v.GetString("inner.name"))
	assert.Equal(t, "y", v.GetString("top"))
	assert.False(t, v.IsSet("skipped"))
}
