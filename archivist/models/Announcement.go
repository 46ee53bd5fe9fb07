package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/samgozman/coin-thread/pkg/errlvl"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnnouncementsDB struct {
	Conn *gorm.DB
}

func NewAnnouncementsDB(db *gorm.DB) *AnnouncementsDB {
	return &AnnouncementsDB{Conn: db.Table("announcements")}
}

// Announcement is a single exchange-listing event.
// (Exchange, SourceID) is the identity of the row: the composite unique index
// is what makes CreateIfAbsent safe under concurrent polling tasks.
type Announcement struct {
	ID            uuid.UUID      `gorm:"primaryKey;type:uuid;not null;" json:"id"`
	Exchange      string         `gorm:"size:32;not null;uniqueIndex:idx_announcements_identity" json:"exchange"`   // Exchange identifier (e.g. "binance")
	SourceID      string         `gorm:"size:128;not null;uniqueIndex:idx_announcements_identity" json:"source_id"` // Exchange-native ID of the listing
	Title         string         `gorm:"size:512" json:"title"`                                                     // Announcement title
	URL           string         `gorm:"size:512;not null" json:"url"`                                              // Link to the original announcement
	MarketType    string         `gorm:"size:16;not null" json:"market_type"`                                       // SPOT, FUTURES or UNKNOWN
	Tickers       datatypes.JSON `gorm:"" json:"tickers"`                                                           // Tickers mentioned in the announcement
	PublicationID string         `gorm:"size:64" json:"publication_id"`                                             // ID of the notification (message ID in Telegram)
	PublishedAt   time.Time      `gorm:"not null" json:"published_at"`                                              // Exchange-reported date (or fetch time fallback)
	NotifiedAt    time.Time      `gorm:"default:null" json:"notified_at"`                                           // When the notification was delivered
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
}

func (a *Announcement) Validate() error {
	if a.Exchange == "" {
		return newError(errlvl.INFO, errExchangeEmpty, nil)
	}

	if len(a.Exchange) > 32 {
		return newError(errlvl.INFO, errExchangeTooLong, nil)
	}

	if a.SourceID == "" {
		return newError(errlvl.INFO, errSourceIDEmpty, nil)
	}

	if len(a.SourceID) > 128 {
		return newError(errlvl.INFO, errSourceIDTooLong, nil)
	}

	if a.URL == "" {
		return newError(errlvl.INFO, errURLEmpty, nil)
	}

	if len(a.URL) > 512 {
		return newError(errlvl.INFO, errURLTooLong, nil)
	}

	if a.MarketType == "" {
		return newError(errlvl.INFO, errMarketTypeEmpty, nil)
	}

	if a.PublishedAt.IsZero() {
		return newError(errlvl.INFO, errPublishedAtEmpty, nil)
	}

	return nil
}

func (a *Announcement) BeforeCreate(*gorm.DB) error {
	a.ID = uuid.New()

	if len(a.Title) > 512 {
		a.Title = a.Title[:512]
	}

	if err := a.Validate(); err != nil {
		return newError(errlvl.INFO, errAnnouncementValidation, err)
	}

	return nil
}

// CreateIfAbsent persists the announcement unless a row with the same
// (exchange, source_id) already exists. Returns true iff this call created
// the row. A conflict is the expected "already seen" outcome, not an error:
// under concurrent insertion of the same identity exactly one caller gets true.
func (db *AnnouncementsDB) CreateIfAbsent(ctx context.Context, a *Announcement) (bool, error) {
	res := db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "exchange"}, {Name: "source_id"}},
		DoNothing: true,
	}).Create(a)
	if res.Error != nil {
		return false, newError(errlvl.ERROR, errAnnouncementCreation, res.Error)
	}

	return res.RowsAffected > 0, nil
}

// FindBySource finds an announcement by its (exchange, source_id) identity.
// Returns nil without an error when the row does not exist.
func (db *AnnouncementsDB) FindBySource(ctx context.Context, exchange, sourceID string) (*Announcement, error) {
	var a Announcement
	res := db.Conn.WithContext(ctx).Where("exchange = ? AND source_id = ?", exchange, sourceID).First(&a)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, newError(errlvl.ERROR, errAnnouncementFind, res.Error)
	}

	return &a, nil
}

// FindLatestByExchange returns the most recently published announcement
// for the exchange, or nil when the exchange has no rows yet.
func (db *AnnouncementsDB) FindLatestByExchange(ctx context.Context, exchange string) (*Announcement, error) {
	var a Announcement
	res := db.Conn.WithContext(ctx).Where("exchange = ?", exchange).Order("published_at DESC").First(&a)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, newError(errlvl.ERROR, errAnnouncementFind, res.Error)
	}

	return &a, nil
}

// MarkNotified stamps a successful notification delivery on the row.
func (db *AnnouncementsDB) MarkNotified(ctx context.Context, a *Announcement, publicationID string) error {
	now := time.Now().UTC()
	res := db.Conn.WithContext(ctx).Where("id = ?", a.ID).Updates(map[string]any{
		"notified_at":    now,
		"publication_id": publicationID,
	})
	if res.Error != nil {
		return newError(errlvl.ERROR, errAnnouncementUpdate, res.Error)
	}

	a.NotifiedAt = now
	a.PublicationID = publicationID
	return nil
}
