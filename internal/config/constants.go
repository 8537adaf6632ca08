package config

import "time"

const (
	envConfigFile   = "STANDINGS_CONFIG"
	envInputPath    = "STANDINGS_INPUT"
	envTeamPattern  = "STANDINGS_TEAM_PATTERN"
	envLineDelay    = "STANDINGS_LINE_DELAY"
	envTableDelay   = "STANDINGS_TABLE_DELAY"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envLogFile      = "LOG_FILE"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsFile  = "METRICS_TEXTFILE"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Pause after each printed standings row and after the whole table in the interactive shell.
	defaultLineDelay  = 200 * Duration(time.Millisecond)
	defaultTableDelay = 500 * Duration(time.Millisecond)

	defaultLogLevel    = "warn"
	defaultLogFormat   = "pretty"
	defaultServiceName = "league-standings"
)
