package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envConfigFile, "")
	cfg, err := Load()
	require.NoError(t, err)

	if cfg.InputPath != "" {
		t.Fatalf("expected no default input path, got %s", cfg.InputPath)
	}
	if cfg.TeamPattern != "" {
		t.Fatalf("expected empty team pattern, got %s", cfg.TeamPattern)
	}
	if cfg.Pacing.LineDelay != defaultLineDelay {
		t.Fatalf("expected default line delay %s, got %s", defaultLineDelay, cfg.Pacing.LineDelay)
	}
	if cfg.Pacing.TableDelay != defaultTableDelay {
		t.Fatalf("expected default table delay %s, got %s", defaultTableDelay, cfg.Pacing.TableDelay)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by default")
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envInputPath, "/data/results.txt")
	t.Setenv(envTeamPattern, `^(.+) (\d+)$`)
	t.Setenv(envLineDelay, "0s")
	t.Setenv(envTableDelay, "2s")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envLogFile, "/tmp/standings.log")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envMetricsFile, "/tmp/standings.prom")
	t.Setenv(envOtelEndpoint, "localhost:4318")
	t.Setenv(envOtelInsecure, "false")

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "/data/results.txt", cfg.InputPath)
	assert.Equal(t, `^(.+) (\d+)$`, cfg.TeamPattern)
	assert.Equal(t, time.Duration(0), cfg.Pacing.LineDelay)
	assert.Equal(t, 2*time.Second, cfg.Pacing.TableDelay)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json", File: "/tmp/standings.log"}, cfg.Log)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/standings.prom", cfg.Metrics.Textfile)
	assert.Equal(t, "localhost:4318", cfg.Metrics.OtlpEndpoint)
	assert.False(t, cfg.Metrics.OtlpInsecure)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envLineDelay, "not-a-duration")
	t.Setenv(envTableDelay, "-1s")
	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, defaultLineDelay, cfg.Pacing.LineDelay)
	assert.Equal(t, defaultTableDelay, cfg.Pacing.TableDelay)
}

func TestLoadFileAppliesTOMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standings.toml")
	contents := `
input_path = "fixtures/results.txt"

[pacing]
line_delay = "50ms"
table_delay = "1s"

[log]
level = "info"
format = "text"

[metrics]
enabled = true
textfile = "standings.prom"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	t.Setenv(envLogLevel, "error")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "fixtures/results.txt", cfg.InputPath)
	assert.Equal(t, 50*time.Millisecond, cfg.Pacing.LineDelay)
	assert.Equal(t, time.Second, cfg.Pacing.TableDelay)
	assert.Equal(t, "error", cfg.Log.Level, "env wins over file")
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "standings.prom", cfg.Metrics.Textfile)
	assert.Equal(t, defaultServiceName, cfg.Metrics.ServiceName, "unset keys keep defaults")
}

func TestLoadUsesConfigFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`team_pattern = "^([A-Za-z ]+) ([0-9]+)$"`), 0o644))
	t.Setenv(envConfigFile, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "^([A-Za-z ]+) ([0-9]+)$", cfg.TeamPattern)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "unknown.toml")
	require.NoError(t, os.WriteFile(path, []byte(`poll_interval = "1m"`), 0o644))
	_, err = LoadFile(path)
	require.ErrorContains(t, err, "unknown keys")
}
