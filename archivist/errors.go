package archivist

import (
	"errors"

	"github.com/samgozman/coin-thread/pkg/errlvl"
)

// archivistError is a service-level error type.
type archivistError error

var (
	errFailedConnection archivistError = errors.New("failed to open the database")
	errFailedMigration  archivistError = errors.New("failed to migrate schema")
)

// newError creates a wrapped error instance with the given errors.
func newError(lvl errlvl.Lvl, genericErr archivistError, err error) error {
	if err != nil {
		return errlvl.Wrap(errors.Join(genericErr, err), lvl)
	}
	return errlvl.Wrap(genericErr, lvl)
}
