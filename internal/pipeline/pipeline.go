package pipeline

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/preston-bernstein/league-standings/internal/domain/standings"
	"github.com/preston-bernstein/league-standings/internal/league"
	"github.com/preston-bernstein/league-standings/internal/logging"
	"github.com/preston-bernstein/league-standings/internal/metrics"
	"github.com/preston-bernstein/league-standings/internal/parser"
)

// Runner turns a results file into a ranked standings table.
type Runner struct {
	fs      afero.Fs
	parser  *parser.Parser
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs a Runner. A nil fs reads the OS filesystem and a nil parser uses the default pattern.
func New(fs afero.Fs, p *parser.Parser, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if p == nil {
		p = parser.Default()
	}
	return &Runner{
		fs:      fs,
		parser:  p,
		logger:  logger,
		metrics: recorder,
	}
}

// Run reads the results file at path and returns its standings.
// Errors are *IOError or *parser.ParseError; no partial table is returned on failure.
func (r *Runner) Run(ctx context.Context, path string) ([]standings.RankedEntry, error) {
	table, err := r.Table(ctx, path)
	if err != nil {
		return nil, err
	}
	return table.Entries, nil
}

// Table is Run plus the number of matches counted.
func (r *Runner) Table(ctx context.Context, path string) (standings.Table, error) {
	start := time.Now()

	f, err := r.fs.Open(path)
	if err != nil {
		err = ioError(path, "open", err)
		r.finish(ctx, path, start, 0, 0, err)
		return standings.Table{}, err
	}
	defer f.Close()

	if info, statErr := f.Stat(); statErr == nil {
		logging.Debug(ctx, r.logger, "reading results file",
			logging.FieldPath, path,
			logging.FieldSize, humanize.Bytes(uint64(info.Size())),
		)
	}

	return r.read(ctx, path, f, start)
}

// Process runs the pipeline over an already open reader; source labels logs and metrics.
func (r *Runner) Process(ctx context.Context, source string, rd io.Reader) (standings.Table, error) {
	return r.read(ctx, source, rd, time.Now())
}

func (r *Runner) read(ctx context.Context, source string, rd io.Reader, start time.Time) (standings.Table, error) {
	var (
		points  []standings.MatchPoints
		matches int
		lineNo  int
	)

	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		m, err := r.parser.Parse(lineNo, text)
		if err != nil {
			r.metrics.RecordParseError(source)
			r.finish(ctx, source, start, 0, 0, err)
			return standings.Table{}, err
		}

		home, away := league.Award(m)
		points = append(points, home, away)
		matches++
	}
	if err := scanner.Err(); err != nil {
		err = ioError(source, "read", err)
		r.finish(ctx, source, start, 0, 0, err)
		return standings.Table{}, err
	}

	entries := league.Rank(league.Aggregate(points))
	r.finish(ctx, source, start, matches, len(entries), nil)
	return standings.NewTable(source, matches, entries), nil
}

func (r *Runner) finish(ctx context.Context, source string, start time.Time, matches, teams int, err error) {
	elapsed := time.Since(start)
	r.metrics.RecordRun(source, elapsed, matches, teams, err)

	if err != nil {
		logging.Info(ctx, r.logger, "standings run failed",
			logging.FieldPath, source,
			logging.FieldError, err,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return
	}
	logging.Debug(ctx, r.logger, "standings computed",
		logging.FieldPath, source,
		logging.FieldMatches, matches,
		logging.FieldTeams, teams,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}
