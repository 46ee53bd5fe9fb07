// Package errlvl annotates errors with a severity level so that callers
// (and Sentry) can tell operational noise from real failures.
package errlvl

import (
	"errors"
	"fmt"
)

type Lvl uint8

const (
	DEBUG Lvl = iota + 1
	INFO
	WARN
	ERROR
	FATAL
)

var (
	ErrDebug = errors.New("[DEBUG]")
	ErrInfo  = errors.New("[INFO]")
	ErrWarn  = errors.New("[WARN]")
	ErrError = errors.New("[ERROR]")
	ErrFatal = errors.New("[FATAL]")
)

// markers maps a severity level to its sentinel error.
var markers = map[Lvl]error{
	DEBUG: ErrDebug,
	INFO:  ErrInfo,
	WARN:  ErrWarn,
	ERROR: ErrError,
	FATAL: ErrFatal,
}

// Wrap tags the given error with the severity level.
// Errors that already carry a level are returned unchanged.
func Wrap(err error, level Lvl) error {
	if hasLevel(err) {
		return err
	}

	marker, ok := markers[level]
	if !ok {
		marker = ErrError
	}

	return fmt.Errorf("%w %w", marker, err)
}

func hasLevel(err error) bool {
	for _, marker := range markers {
		if errors.Is(err, marker) {
			return true
		}
	}
	return false
}
