package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/preston-bernstein/league-standings/internal/domain/standings"
)

const (
	// Separator splits the two sides of a results line.
	Separator = ", "
	// DefaultPattern captures a letters-and-spaces team name, one separating space,
	// and a goal count anchored at the end of the segment.
	DefaultPattern = `^([a-zA-Z\s]+) ([0-9]+)$`
)

// Parser turns results lines into matches using a team/goals pattern.
type Parser struct {
	pattern *regexp.Regexp
}

// New compiles pattern, falling back to DefaultPattern when empty.
// The pattern must expose exactly two capture groups: team name, then goals.
func New(pattern string) (*Parser, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile team pattern: %w", err)
	}
	if re.NumSubexp() != 2 {
		return nil, fmt.Errorf("team pattern %q must have 2 capture groups, has %d", pattern, re.NumSubexp())
	}
	return &Parser{pattern: re}, nil
}

// Default returns a parser using DefaultPattern.
func Default() *Parser {
	return &Parser{pattern: regexp.MustCompile(DefaultPattern)}
}

// Pattern reports the expression in use.
func (p *Parser) Pattern() string {
	return p.pattern.String()
}

// Parse reads one results line. line is the 1-based position used in errors.
func (p *Parser) Parse(line int, text string) (standings.Match, error) {
	raw := strings.TrimSuffix(text, "\r")

	left, right, ok := strings.Cut(raw, Separator)
	if !ok {
		return standings.Match{}, &ParseError{Line: line, Text: text, Reason: fmt.Sprintf("missing %q separator", Separator)}
	}

	home, reason := p.segment(left)
	if reason != "" {
		return standings.Match{}, &ParseError{Line: line, Text: text, Reason: reason}
	}
	away, reason := p.segment(right)
	if reason != "" {
		return standings.Match{}, &ParseError{Line: line, Text: text, Reason: reason}
	}

	return standings.Match{Home: home, Away: away}, nil
}

func (p *Parser) segment(s string) (standings.Goals, string) {
	m := p.pattern.FindStringSubmatch(s)
	if m == nil {
		return standings.Goals{}, fmt.Sprintf("segment %q is not <team> <goals>", s)
	}

	name := m[1]
	if strings.TrimSpace(name) == "" {
		return standings.Goals{}, fmt.Sprintf("segment %q has an empty team name", s)
	}

	goals, err := strconv.Atoi(m[2])
	if err != nil {
		return standings.Goals{}, fmt.Sprintf("segment %q has an invalid goal count", s)
	}

	return standings.Goals{Team: name, Goals: goals}, ""
}
