// Package scout fetches listing announcements from cryptocurrency exchanges
// and normalizes them into Announcement values.
package scout

import "context"

// Exchange is the contract for a single exchange announcement source.
//
// Fetch returns the latest announcement candidates ordered as the exchange
// reports them. A transport or parse failure is returned as an error and
// should be treated by the caller as "no results this cycle", not as fatal.
type Exchange interface {
	Name() string
	Fetch(ctx context.Context) ([]*Announcement, error)
}
