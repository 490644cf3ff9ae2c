package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadconsole/internal/importdir"
	"leadconsole/internal/roster"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{importdir.DirEnv, LogFileEnv, DebugEnv, OTLPEndpointEnv, ServiceNameEnv} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DefaultQuantity)
	assert.Equal(t, "leadconsole", cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, roster.DefaultSeed(), cfg.Seed())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
import_dir: /srv/leads
default_quantity: 25
log:
  file: /tmp/lc.log
  debug: true
telemetry:
  endpoint: localhost:4318
users:
  - id: chefe
    name: Chefe
    email: chefe@x
    phone: "1"
    tier: master
  - id: vend
    name: Vendedor
    email: vend@x
    phone: "2"
    tier: padrao
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/leads", cfg.ImportDir)
	assert.Equal(t, 25, cfg.DefaultQuantity)
	assert.Equal(t, "/tmp/lc.log", cfg.Log.File)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "leadconsole", cfg.Telemetry.ServiceName, "unset keys keep defaults")

	seed := cfg.Seed()
	require.Len(t, seed, 2)
	assert.Equal(t, roster.TierMaster, seed[0].Tier)
	assert.Equal(t, roster.TierStandard, seed[1].Tier)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_quantity: [nope"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(importdir.DirEnv, "/env/leads")
	t.Setenv(LogFileEnv, "/env/log")
	t.Setenv(DebugEnv, "true")
	t.Setenv(OTLPEndpointEnv, "collector:4318")
	t.Setenv(ServiceNameEnv, "console-test")

	cfg := &Config{ImportDir: "/file/leads"}
	cfg.applyEnvOverrides()

	assert.Equal(t, "/env/leads", cfg.ImportDir)
	assert.Equal(t, "/env/log", cfg.Log.File)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "collector:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "console-test", cfg.Telemetry.ServiceName)

	t.Run("unparseable debug is ignored", func(t *testing.T) {
		t.Setenv(DebugEnv, "maybe")
		cfg := &Config{Log: LogConfig{Debug: true}}
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Log.Debug)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultQuantity = 0
	assert.ErrorContains(t, cfg.Validate(), "default_quantity")

	cfg = DefaultConfig()
	cfg.Users = []UserConfig{{ID: "a", Email: "a@x", Tier: "standard"}}
	assert.ErrorIs(t, cfg.Validate(), roster.ErrValidation)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.DefaultQuantity = 3
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, got.DefaultQuantity)
}
