package config

// LogConfig controls logger level, console format and the optional log file.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

func (l LogConfig) withEnv() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, l.Level),
		Format: envOrDefault(envLogFormat, l.Format),
		File:   envOrDefault(envLogFile, l.File),
	}
}
