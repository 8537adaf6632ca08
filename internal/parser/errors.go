package parser

import (
	"errors"
	"fmt"
)

// ParseError reports a results line that does not follow "<team> <goals>, <team> <goals>".
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "malformed results line"
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, reason, e.Text)
	}
	return fmt.Sprintf("%s: %q", reason, e.Text)
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
