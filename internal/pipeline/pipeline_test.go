package pipeline

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/league-standings/internal/domain/standings"
	"github.com/preston-bernstein/league-standings/internal/metrics"
	"github.com/preston-bernstein/league-standings/internal/parser"
	"github.com/preston-bernstein/league-standings/internal/testutil"
)

var scenarioB = []standings.RankedEntry{
	{Rank: 1, Team: "Tarantulas", Points: 6},
	{Rank: 2, Team: "Lions", Points: 5},
	{Rank: 3, Team: "FC Awesome", Points: 1},
	{Rank: 3, Team: "Snakes", Points: 1},
	{Rank: 5, Team: "Grouches", Points: 0},
}

func memRunner(t *testing.T, files map[string]string) (*Runner, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	return New(testutil.MemFs(t, files), nil, nil, rec), rec
}

func TestRunSingleMatch(t *testing.T) {
	r, _ := memRunner(t, map[string]string{"a.txt": "Tarantulas 1, FC Awesome 0\n"})

	got, err := r.Run(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, []standings.RankedEntry{
		{Rank: 1, Team: "Tarantulas", Points: 3},
		{Rank: 2, Team: "FC Awesome", Points: 0},
	}, got)
}

func TestRunLeagueFixtureFromDisk(t *testing.T) {
	r := New(afero.NewReadOnlyFs(afero.NewOsFs()), nil, nil, nil)

	got, err := r.Run(context.Background(), "testdata/results.txt")
	require.NoError(t, err)
	assert.Equal(t, scenarioB, got)

	var total int
	for _, e := range got {
		total += e.Points
	}
	assert.Equal(t, 2*5, total, "every match hands out exactly two points")
}

func TestRunLeagueFixtureInMemory(t *testing.T) {
	r, rec := memRunner(t, map[string]string{"/league.txt": testutil.ResultsFile(testutil.LeagueResults...)})

	table, err := r.Table(context.Background(), "/league.txt")
	require.NoError(t, err)
	assert.Equal(t, scenarioB, table.Entries)
	assert.Equal(t, 5, table.Matches)
	assert.Equal(t, 5, rec.Matches("/league.txt"))
}

func TestRunEmptyFileYieldsEmptyTable(t *testing.T) {
	r, rec := memRunner(t, map[string]string{"empty.txt": ""})

	got, err := r.Run(context.Background(), "empty.txt")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 1, rec.Runs("empty.txt"))
}

func TestRunSkipsBlankLines(t *testing.T) {
	body := "\nLions 3, Snakes 3\n   \nTarantulas 1, FC Awesome 0\r\n\n\n"
	r, _ := memRunner(t, map[string]string{"gaps.txt": body})

	table, err := r.Table(context.Background(), "gaps.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Matches)
	assert.Len(t, table.Entries, 4)
	assert.Equal(t, "Tarantulas", table.Entries[0].Team)
}

func TestRunMalformedLineAborts(t *testing.T) {
	body := "Lions 3, Snakes 3\n\nLions three, Snakes 3\nTarantulas 1, FC Awesome 0\n"
	r, rec := memRunner(t, map[string]string{"bad.txt": body})

	got, err := r.Run(context.Background(), "bad.txt")
	require.Error(t, err)
	assert.Nil(t, got)

	pErr, ok := parser.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, 3, pErr.Line)
	assert.Equal(t, "Lions three, Snakes 3", pErr.Text)

	_, isIO := AsIOError(err)
	assert.False(t, isIO)

	snap := rec.Snapshot("bad.txt")
	assert.Equal(t, 1, snap.Runs)
	assert.Equal(t, 1, snap.Failures)
	assert.Equal(t, 1, snap.ParseErrors)
	assert.Equal(t, 0, snap.Matches)
}

func TestRunMissingFileIsIOError(t *testing.T) {
	r, rec := memRunner(t, nil)

	_, err := r.Run(context.Background(), "nope.txt")
	require.Error(t, err)

	ioErr, ok := AsIOError(err)
	require.True(t, ok)
	assert.Equal(t, "nope.txt", ioErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "open")
	assert.Equal(t, 1, rec.Failures("nope.txt"))
}

type closeTrackingFs struct {
	afero.Fs
	closed int
}

type trackedFile struct {
	afero.File
	fs *closeTrackingFs
}

func (f trackedFile) Close() error {
	f.fs.closed++
	return f.File.Close()
}

func (c *closeTrackingFs) Open(name string) (afero.File, error) {
	f, err := c.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return trackedFile{File: f, fs: c}, nil
}

func TestRunClosesFileOnEveryPath(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "ok.txt", []byte("Lions 1, Snakes 0\n"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "bad.txt", []byte("Lions, Snakes\n"), 0o644))
	fs := &closeTrackingFs{Fs: mem}
	r := New(fs, nil, nil, nil)

	_, err := r.Run(context.Background(), "ok.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, fs.closed)

	_, err = r.Run(context.Background(), "bad.txt")
	require.Error(t, err)
	assert.Equal(t, 2, fs.closed)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestProcessReadFailureIsIOError(t *testing.T) {
	r := New(afero.NewMemMapFs(), nil, nil, nil)

	_, err := r.Process(context.Background(), "stdin", failingReader{})
	require.Error(t, err)

	ioErr, ok := AsIOError(err)
	require.True(t, ok)
	assert.Equal(t, "stdin", ioErr.Path)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestProcessUsesConfiguredPattern(t *testing.T) {
	p, err := parser.New(`^([a-zA-Z\s]+) ([0-9]+)\s*$`)
	require.NoError(t, err)
	r := New(afero.NewMemMapFs(), p, nil, nil)

	table, err := r.Process(context.Background(), "inline", strings.NewReader("Lions 2 , Snakes 1 \n"))
	require.NoError(t, err)
	assert.Equal(t, "inline", table.Source)
	assert.Equal(t, []standings.RankedEntry{
		{Rank: 1, Team: "Lions", Points: 3},
		{Rank: 2, Team: "Snakes", Points: 0},
	}, table.Entries)
}

func TestRunLogsAtDebug(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("Lions 1, Snakes 0\n"), 0o644))
	r := New(fs, nil, logger, nil)

	_, err := r.Run(context.Background(), "a.txt")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "standings computed")
	assert.Contains(t, out, "matches=1")
	assert.Contains(t, out, "teams=2")
}

func TestIOErrorString(t *testing.T) {
	err := &IOError{Err: errors.New("boom")}
	assert.Equal(t, "read results: boom", err.Error())

	withPath := &IOError{Path: "a.txt", Err: errors.New("boom")}
	assert.Equal(t, "read results a.txt: boom", withPath.Error())
}
