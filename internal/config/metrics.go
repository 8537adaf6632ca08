package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `toml:"enabled"`
	Textfile     string `toml:"textfile"`
	OtlpEndpoint string `toml:"otlp_endpoint"`
	ServiceName  string `toml:"service_name"`
	OtlpInsecure bool   `toml:"otlp_insecure"`
}

func defaultMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      false,
		ServiceName:  defaultServiceName,
		OtlpInsecure: true,
	}
}

func (m MetricsConfig) withEnv() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, m.Enabled),
		Textfile:     envOrDefault(envMetricsFile, m.Textfile),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, m.OtlpEndpoint),
		ServiceName:  envOrDefault(envOtelService, m.ServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, m.OtlpInsecure),
	}
}
