package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/preston-bernstein/league-standings/internal/domain/standings"
	"github.com/preston-bernstein/league-standings/internal/logging"
	"github.com/preston-bernstein/league-standings/internal/parser"
	"github.com/preston-bernstein/league-standings/internal/pipeline"
)

const (
	pathPrompt     = "Please enter the full path to the results file"
	continuePrompt = "Would you like to process another results file? (y/n)"
)

// Runner computes standings for a results file.
type Runner interface {
	Run(ctx context.Context, path string) ([]standings.RankedEntry, error)
}

// Shell is the interactive prompt loop around a Runner.
type Shell struct {
	in          *bufio.Scanner
	out         io.Writer
	fs          afero.Fs
	runner      Runner
	pacer       *Pacer
	defaultPath string
	logger      *slog.Logger
}

// Options configure a Shell.
type Options struct {
	In          io.Reader
	Out         io.Writer
	Fs          afero.Fs
	Runner      Runner
	Pacer       *Pacer
	DefaultPath string
	Logger      *slog.Logger
}

// New constructs a Shell. Fs is used for the existence check before each run.
func New(opts Options) *Shell {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Shell{
		in:          bufio.NewScanner(opts.In),
		out:         opts.Out,
		fs:          fs,
		runner:      opts.Runner,
		pacer:       opts.Pacer,
		defaultPath: strings.TrimSpace(opts.DefaultPath),
		logger:      opts.Logger,
	}
}

// Loop prompts for results files until the user declines to continue or input ends.
// It only returns an error when output fails or ctx is cancelled during a pause.
func (s *Shell) Loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		path, ok := s.ask(s.pathQuestion())
		if !ok {
			return s.say("")
		}
		if path == "" {
			path = s.defaultPath
		}
		if path == "" {
			if err := s.say("No path entered."); err != nil {
				return err
			}
			continue
		}

		exists, err := afero.Exists(s.fs, path)
		if err != nil || !exists {
			logging.Debug(ctx, s.logger, "results file not found", logging.FieldPath, path)
			if err := s.say(fmt.Sprintf("The file %q does not exist. Please try again.", path)); err != nil {
				return err
			}
			continue
		}

		if err := s.Show(ctx, path); err != nil {
			return err
		}

		answer, ok := s.ask(continuePrompt)
		if !ok || !ParseYesNo(answer) {
			return s.say("Thanks for using league standings. Goodbye!")
		}
	}
}

// Show runs the pipeline for path and prints the outcome with pacing.
// Pipeline errors are reported to the user, not returned.
func (s *Shell) Show(ctx context.Context, path string) error {
	entries, err := s.runner.Run(ctx, path)
	if err != nil {
		return s.say(describe(err))
	}

	if len(entries) == 0 {
		return s.say(fmt.Sprintf("No match results found in %s.", path))
	}

	if err := s.say("League standings:"); err != nil {
		return err
	}
	for _, line := range FormatTable(entries) {
		if err := s.say(line); err != nil {
			return err
		}
		if err := s.pacer.AfterLine(ctx); err != nil {
			return err
		}
	}
	if err := s.say(""); err != nil {
		return err
	}
	return s.pacer.AfterTable(ctx)
}

func describe(err error) string {
	if pErr, ok := parser.AsParseError(err); ok {
		return fmt.Sprintf("Line %d could not be read (%s):\n  %s\nNo standings were produced; fix the file and try again.",
			pErr.Line, pErr.Reason, pErr.Text)
	}
	if ioErr, ok := pipeline.AsIOError(err); ok {
		return fmt.Sprintf("Could not read %s: %v", ioErr.Path, ioErr.Err)
	}
	return fmt.Sprintf("Something went wrong: %v", err)
}

func (s *Shell) pathQuestion() string {
	if s.defaultPath == "" {
		return pathPrompt + ":"
	}
	return fmt.Sprintf("%s [%s]:", pathPrompt, s.defaultPath)
}

func (s *Shell) ask(question string) (string, bool) {
	if _, err := fmt.Fprint(s.out, question+" "); err != nil {
		return "", false
	}
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) say(line string) error {
	_, err := fmt.Fprintln(s.out, line)
	return err
}
