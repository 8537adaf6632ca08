package metrics

import (
	"sync"
	"time"
)

type pipelineStats struct {
	runs           int
	failures       int
	matches        int
	parseErrors    int
	teams          int
	lastRunLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about pipeline runs.
// Safe to call on a nil receiver; otel instruments are optional.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*pipelineStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*pipelineStats),
		otel:  otel,
	}
}

// RecordRun tracks one pipeline invocation against a results source.
func (r *Recorder) RecordRun(source string, duration time.Duration, matches, teams int, err error) {
	if r == nil {
		return
	}

	r.update(source, func(stats *pipelineStats) {
		stats.runs++
		stats.lastRunLatency = duration
		if err != nil {
			stats.failures++
			return
		}
		stats.matches += matches
		stats.teams = teams
	})
	if r.otel != nil {
		r.otel.recordRun(source, duration, matches, err)
	}
}

// RecordParseError tracks a results line rejected by the parser.
func (r *Recorder) RecordParseError(source string) {
	if r == nil {
		return
	}

	r.update(source, func(stats *pipelineStats) {
		stats.parseErrors++
	})
	if r.otel != nil {
		r.otel.recordParseError(source)
	}
}

// Runs returns the total pipeline invocations recorded for a source.
func (r *Recorder) Runs(source string) int {
	return r.Snapshot(source).Runs
}

// Failures returns the number of failed invocations for a source.
func (r *Recorder) Failures(source string) int {
	return r.Snapshot(source).Failures
}

// Matches returns the number of matches counted by successful runs for a source.
func (r *Recorder) Matches(source string) int {
	return r.Snapshot(source).Matches
}

// ParseErrors returns the number of rejected lines for a source.
func (r *Recorder) ParseErrors(source string) int {
	return r.Snapshot(source).ParseErrors
}

// Snapshot is a copy of the current stats for a source.
type Snapshot struct {
	Runs           int
	Failures       int
	Matches        int
	ParseErrors    int
	Teams          int
	LastRunLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(source)
	return Snapshot{
		Runs:           stats.runs,
		Failures:       stats.failures,
		Matches:        stats.matches,
		ParseErrors:    stats.parseErrors,
		Teams:          stats.teams,
		LastRunLatency: stats.lastRunLatency,
	}
}

func (r *Recorder) update(source string, fn func(*pipelineStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &pipelineStats{}
		r.stats[source] = stats
	}
	fn(stats)
}

func (r *Recorder) snapshot(source string) pipelineStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[source]; ok && stats != nil {
		return *stats
	}
	return pipelineStats{}
}
