package logging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// buildErrorChain walks an error's cause chain via errors.Unwrap and
// returns:
//   - chain: outermost -> innermost error messages
//   - root: the innermost error message
//
// It guards against excessive depth and repeated messages to avoid cycles.
func buildErrorChain(err error) (chain []string, root string) {
	const maxDepth = 50
	seen := map[string]bool{}

	for err != nil && len(chain) < maxDepth {
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = errors.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}

// LogError emits err at error severity with a structured err payload
// (message and concrete type) plus the full error chain, the joined
// history, and the root cause. msg defaults to err.Error() when empty.
// Caller fields are merged last, so a colliding key overwrites the built-in
// one; that is deliberate last-write-wins, not an error. A nil err is a
// no-op.
func LogError(l zerolog.Logger, err error, msg string, fields map[string]interface{}) {
	if err == nil {
		return
	}
	if msg == emptyString {
		msg = err.Error()
	}

	chain, root := buildErrorChain(err)

	e := l.Error().
		Dict("err", zerolog.Dict().
			Str("message", err.Error()).
			Str("type", fmt.Sprintf("%T", err))).
		Strs("error_chain", chain).
		Str("error_root", root).
		Str("error_history", joinChain(chain))
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	e.Msg(msg)
}

// statusLevel maps an HTTP status code to a severity: >=500 error, >=400
// warn, everything else info. The thresholds are inclusive lower bounds
// evaluated top-down; out-of-range codes fall through to info.
func statusLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogRequest emits one summary record for a handled HTTP request, at the
// severity statusLevel picks for status. The message reads
// "METHOD PATH STATUS DURms". Caller fields merge last, last write wins.
func LogRequest(l zerolog.Logger, method, path string, status int, duration time.Duration, fields map[string]interface{}) {
	ms := duration.Milliseconds()

	e := l.WithLevel(statusLevel(status)).
		Str(FieldMethod, method).
		Str(FieldPath, path).
		Int(FieldStatus, status).
		Int64(FieldDuration, ms)
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	e.Msg(fmt.Sprintf("%s %s %d %dms", method, path, status, ms))
}
