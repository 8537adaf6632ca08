package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds runtime configuration for the standings tool.
type Config struct {
	// InputPath is offered as the default answer to the file prompt.
	InputPath   string        `toml:"input_path"`
	TeamPattern string        `toml:"team_pattern"`
	Pacing      PacingConfig  `toml:"pacing"`
	Log         LogConfig     `toml:"log"`
	Metrics     MetricsConfig `toml:"metrics"`
}

// Defaults returns the built-in configuration. An empty TeamPattern selects the parser default.
func Defaults() Config {
	return Config{
		Pacing: PacingConfig{
			LineDelay:  defaultLineDelay,
			TableDelay: defaultTableDelay,
		},
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Metrics: defaultMetrics(),
	}
}

// Load reads configuration from environment variables with sensible defaults.
// When STANDINGS_CONFIG names a TOML file it is applied before the environment.
func Load() (Config, error) {
	return LoadFile(os.Getenv(envConfigFile))
}

// LoadFile layers defaults, the TOML file at path (skipped when empty) and environment variables.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("read config %s: unknown keys %v", path, undecoded)
		}
	}
	return cfg.withEnv(), nil
}

func (c Config) withEnv() Config {
	return Config{
		InputPath:   envOrDefault(envInputPath, c.InputPath),
		TeamPattern: envOrDefault(envTeamPattern, c.TeamPattern),
		Pacing:      c.Pacing.withEnv(),
		Log:         c.Log.withEnv(),
		Metrics:     c.Metrics.withEnv(),
	}
}
