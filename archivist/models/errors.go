package models

import (
	"errors"

	"github.com/samgozman/coin-thread/pkg/errlvl"
)

var (
	errExchangeEmpty          = errors.New("exchange is empty")
	errExchangeTooLong        = errors.New("exchange is too long")
	errSourceIDEmpty          = errors.New("source_id is empty")
	errSourceIDTooLong        = errors.New("source_id is too long")
	errURLEmpty               = errors.New("url is empty")
	errURLTooLong             = errors.New("url is too long")
	errMarketTypeEmpty        = errors.New("market_type is empty")
	errPublishedAtEmpty       = errors.New("published_at is empty")
	errAnnouncementValidation = errors.New("announcement validation failed")
	errAnnouncementCreation   = errors.New("announcement creation failed")
	errAnnouncementFind       = errors.New("failed to find announcement")
	errAnnouncementUpdate     = errors.New("announcement update failed")
)

// newError creates a wrapped error instance with the given errors.
func newError(lvl errlvl.Lvl, genericErr error, err error) error {
	if err != nil {
		return errlvl.Wrap(errors.Join(genericErr, err), lvl)
	}
	return errlvl.Wrap(genericErr, lvl)
}
