package publisher

import (
	"errors"

	"github.com/samgozman/coin-thread/pkg/errlvl"
)

var errNoDestinations = errlvl.Wrap(errors.New("no destination channel configured"), errlvl.ERROR)
