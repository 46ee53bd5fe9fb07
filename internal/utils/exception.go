package utils

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/samgozman/coin-thread/pkg/errlvl"
)

type sentryHub interface {
	CaptureException(exception error) *sentry.EventID
	WithScope(callback func(scope *sentry.Scope))
}

// CaptureSentryException captures an exception under the given name.
// Without it Sentry reports every exception as its Go error type
// (errors.*something*), which makes grouping useless.
// The event level is derived from the errlvl marker carried by the error.
func CaptureSentryException(name string, hub sentryHub, err error) {
	level := sentryLevelFor(err)
	hub.WithScope(func(scope *sentry.Scope) {
		scope.AddEventProcessor(func(e *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			// The last element of the stack is the top one: that is the type Sentry shows.
			e.Exception[len(e.Exception)-1].Type = name
			e.Level = level
			return e
		})
		hub.CaptureException(err)
	})
}

// sentryLevelFor maps an errlvl-tagged error to the Sentry event level.
func sentryLevelFor(err error) sentry.Level {
	switch {
	case err == nil:
		return sentry.LevelDebug
	case errors.Is(err, errlvl.ErrFatal):
		return sentry.LevelFatal
	case errors.Is(err, errlvl.ErrError):
		return sentry.LevelError
	case errors.Is(err, errlvl.ErrWarn):
		return sentry.LevelWarning
	case errors.Is(err, errlvl.ErrInfo):
		return sentry.LevelInfo
	case errors.Is(err, errlvl.ErrDebug):
		return sentry.LevelDebug
	default:
		return sentry.LevelError
	}
}
