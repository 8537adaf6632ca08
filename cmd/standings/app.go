package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/league-standings/internal/config"
	"github.com/preston-bernstein/league-standings/internal/domain/standings"
	"github.com/preston-bernstein/league-standings/internal/logging"
	"github.com/preston-bernstein/league-standings/internal/metrics"
	"github.com/preston-bernstein/league-standings/internal/parser"
	"github.com/preston-bernstein/league-standings/internal/pipeline"
	"github.com/preston-bernstein/league-standings/internal/shell"
)

const stdinPath = "-"

var metricsSetup = metrics.Setup

func newApp(in io.Reader, out io.Writer, fsys afero.Fs) *cli.App {
	return &cli.App{
		Name:    "standings",
		Usage:   "Rank a league from a file of match results",
		Version: appVersion,
		Reader:  in,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML config path (defaults to $STANDINGS_CONFIG)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file loaded before reading configuration",
				Value: ".env",
			},
		},
		Before: loadEnvFile,
		Action: func(c *cli.Context) error {
			return withSession(c, fsys, runShell)
		},
		Commands: []*cli.Command{
			{
				Name:  "shell",
				Usage: "Prompt for results files and print their standings",
				Action: func(c *cli.Context) error {
					return withSession(c, fsys, runShell)
				},
			},
			{
				Name:      "run",
				Usage:     "Print the standings for one results file and exit",
				ArgsUsage: "<path|->",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: text or json",
						Value: "text",
					},
				},
				Action: func(c *cli.Context) error {
					return withSession(c, fsys, runOnce)
				},
			},
		},
	}
}

func loadEnvFile(c *cli.Context) error {
	path := c.String("env-file")
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// session bundles everything a command needs for one invocation.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	fs     afero.Fs
	runner *pipeline.Runner
}

func withSession(c *cli.Context, fsys afero.Fs, fn func(*cli.Context, *session) error) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Service: "league-standings",
		Version: appVersion,
		Output:  c.App.ErrWriter,
	})

	p, err := parser.New(cfg.TeamPattern)
	if err != nil {
		return err
	}
	logging.Debug(c.Context, logger, "results parser ready", "pattern", p.Pattern())

	recorder, gatherer, shutdown := buildMetrics(c.Context, cfg, logger)
	defer flushMetrics(cfg, logger, gatherer, shutdown)

	return fn(c, &session{
		cfg:    cfg,
		logger: logger,
		fs:     fsys,
		runner: pipeline.New(fsys, p, logger, recorder),
	})
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, prometheus.Gatherer, func(context.Context) error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rec, gatherer, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(ctx, logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, gatherer, shutdown
}

func flushMetrics(cfg config.Config, logger *slog.Logger, gatherer prometheus.Gatherer, shutdown func(context.Context) error) {
	ctx := context.Background()
	if err := metrics.WriteTextfile(cfg.Metrics.Textfile, gatherer); err != nil {
		logging.Warn(ctx, logger, "metrics textfile export failed", logging.FieldPath, cfg.Metrics.Textfile, logging.FieldError, err)
	}
	if shutdown == nil {
		return
	}
	if err := shutdown(ctx); err != nil {
		logging.Warn(ctx, logger, "metrics shutdown failed", logging.FieldError, err)
	}
}

func runShell(c *cli.Context, s *session) error {
	sh := shell.New(shell.Options{
		In:          c.App.Reader,
		Out:         c.App.Writer,
		Fs:          s.fs,
		Runner:      s.runner,
		Pacer:       shell.NewPacer(s.cfg.Pacing.LineDelay, s.cfg.Pacing.TableDelay),
		DefaultPath: s.cfg.InputPath,
		Logger:      s.logger,
	})
	return sh.Loop(c.Context)
}

func runOnce(c *cli.Context, s *session) error {
	format := c.String("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("run: unknown format %q", format)
	}

	path := c.Args().First()
	if path == "" {
		path = s.cfg.InputPath
	}
	if path == "" {
		return errors.New("run: a results file path (or - for stdin) is required")
	}

	var (
		table standings.Table
		err   error
	)
	if path == stdinPath {
		table, err = s.runner.Process(c.Context, "stdin", c.App.Reader)
	} else {
		table, err = s.runner.Table(c.Context, path)
	}
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}
	for _, line := range shell.FormatTable(table.Entries) {
		if _, err := fmt.Fprintln(c.App.Writer, line); err != nil {
			return err
		}
	}
	return nil
}
