package config

// PacingConfig controls the waits the interactive shell inserts after output.
type PacingConfig struct {
	LineDelay  Duration `toml:"line_delay"`
	TableDelay Duration `toml:"table_delay"`
}

func (p PacingConfig) withEnv() PacingConfig {
	return PacingConfig{
		LineDelay:  durationEnvOrDefault(envLineDelay, p.LineDelay),
		TableDelay: durationEnvOrDefault(envTableDelay, p.TableDelay),
	}
}
