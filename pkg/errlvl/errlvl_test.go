package errlvl

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	base := errors.New("something broke")

	tests := []struct {
		name   string
		err    error
		level  Lvl
		marker error
	}{
		{name: "info", err: base, level: INFO, marker: ErrInfo},
		{name: "warn", err: base, level: WARN, marker: ErrWarn},
		{name: "error", err: base, level: ERROR, marker: ErrError},
		{name: "fatal", err: base, level: FATAL, marker: ErrFatal},
		{name: "unknown level falls back to error", err: base, level: Lvl(42), marker: ErrError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.level)
			if !errors.Is(wrapped, tt.marker) {
				t.Errorf("Wrap() = %v, want marker %v", wrapped, tt.marker)
			}
			if !errors.Is(wrapped, base) {
				t.Errorf("Wrap() = %v, lost the original error", wrapped)
			}
		})
	}
}

func TestWrap_alreadyLeveled(t *testing.T) {
	wrapped := Wrap(errors.New("db is down"), ERROR)

	rewrapped := Wrap(wrapped, INFO)
	if rewrapped != wrapped { //nolint:errorlint // identity check is intentional
		t.Errorf("Wrap() re-tagged an already leveled error: %v", rewrapped)
	}
	if errors.Is(rewrapped, ErrInfo) {
		t.Errorf("Wrap() must not add a second level: %v", rewrapped)
	}
}
