// Package jobs contains the polling job executed by the scheduler: it fans
// out to the exchange sources, persists unseen announcements and dispatches
// them to the notification channels.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/samgozman/coin-thread/archivist/models"
	"github.com/samgozman/coin-thread/internal/utils"
	"github.com/samgozman/coin-thread/scout"
	"github.com/samgozman/coin-thread/trader"
)

// JobFunc is a type for job function that will be executed by the scheduler.
type JobFunc func()

// announcementStore is the slice of the archivist the job depends on.
type announcementStore interface {
	CreateIfAbsent(ctx context.Context, a *models.Announcement) (bool, error)
	FindLatestByExchange(ctx context.Context, exchange string) (*models.Announcement, error)
	MarkNotified(ctx context.Context, a *models.Announcement, publicationID string) error
}

// notificationSink delivers a formatted announcement, routed by exchange.
type notificationSink interface {
	Publish(exchange, msg string) (pubID string, err error)
}

// decisionEngine reacts to freshly discovered announcements.
type decisionEngine interface {
	OnAnnouncement(a *scout.Announcement) *trader.OrderResult
}

// WatchJob polls all configured exchanges on a fixed interval, persists the
// announcements that were never seen before and notifies about them.
type WatchJob struct {
	store     announcementStore // archivist entity that decides novelty
	publisher notificationSink  // publisher that will deliver notifications
	exchanges []scout.Exchange  // exchange sources polled each cycle
	trader    decisionEngine    // optional decision engine hook
	logger    *slog.Logger      // special logger for the job
	options   *watchJobOptions  // job options
}

type watchJobOptions struct {
	cycleTimeout  time.Duration // hard deadline for a single poll+dispatch cycle
	shouldPublish bool          // if true, will publish to the channels. Else: will just log them (for development)
}

// NewWatchJob creates a new WatchJob instance.
func NewWatchJob(store announcementStore, publisher notificationSink, exchanges []scout.Exchange) *WatchJob {
	return &WatchJob{
		store:     store,
		publisher: publisher,
		exchanges: exchanges,
		logger:    slog.Default(),
		options: &watchJobOptions{
			cycleTimeout: 25 * time.Second,
		},
	}
}

// Publish sets the flag that will publish announcements to the channels.
// Else: will just log them (for development).
func (job *WatchJob) Publish() *WatchJob {
	job.options.shouldPublish = true
	return job
}

// WithTrader attaches a decision engine that is invoked for every fresh announcement.
func (job *WatchJob) WithTrader(engine decisionEngine) *WatchJob {
	job.trader = engine
	return job
}

// CycleTimeout overrides the deadline for one polling cycle.
func (job *WatchJob) CycleTimeout(d time.Duration) *WatchJob {
	job.options.cycleTimeout = d
	return job
}

// freshAnnouncement pairs a fetched announcement with its persisted row.
type freshAnnouncement struct {
	src *scout.Announcement
	rec *models.Announcement
}

// exchangeStat is the per-exchange outcome of one polling cycle.
type exchangeStat struct {
	name   string
	total  int
	fresh  int
	failed bool
}

func (s exchangeStat) String() string {
	if s.failed {
		return fmt.Sprintf("❌ %s", s.name)
	}
	if s.fresh > 0 {
		return fmt.Sprintf("✅ %s %d/%d", s.name, s.fresh, s.total)
	}
	return fmt.Sprintf("✓ %s 0/%d", s.name, s.total)
}

// Run returns the job function that will be executed by the scheduler.
//
// Each cycle polls every exchange concurrently, waits for all of them, and
// only then dispatches the newly persisted announcements. Dispatch failures
// never undo the persistence decision: an announcement is "seen" once stored,
// so a crash or delivery error can drop a notification but never duplicate one.
func (job *WatchJob) Run() JobFunc {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), job.options.cycleTimeout)
		defer cancel()

		tx := sentry.StartTransaction(ctx, "Job.WatchCycle")
		tx.Op = "job"

		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
			ctx = sentry.SetHubOnContext(ctx, hub)
		}

		defer func() {
			tx.Finish()
			hub.Flush(2 * time.Second)
		}()

		span := tx.StartChild("poll")
		fresh, stats := job.poll(ctx, hub)
		span.Finish()

		summary := lo.Map(stats, func(s exchangeStat, _ int) string { return s.String() })
		job.logger.Info("cycle finished", "exchanges", summary, "new", len(fresh))
		hub.AddBreadcrumb(&sentry.Breadcrumb{
			Category: "successful",
			Message:  fmt.Sprintf("poll returned %d new announcements", len(fresh)),
			Level:    sentry.LevelInfo,
		}, nil)

		if len(fresh) == 0 {
			return
		}

		span = tx.StartChild("dispatch")
		job.dispatch(ctx, hub, fresh)
		span.Finish()
	}
}

// poll fans out one fetch per exchange and persists the candidates.
// A failure in one exchange never aborts the others: transport errors
// degrade to an empty result for that exchange for this cycle.
func (job *WatchJob) poll(ctx context.Context, hub *sentry.Hub) ([]*freshAnnouncement, []exchangeStat) {
	var mu sync.Mutex
	var fresh []*freshAnnouncement
	stats := make([]exchangeStat, len(job.exchanges))

	g := new(errgroup.Group)
	for i, ex := range job.exchanges {
		i, ex := i, ex
		g.Go(func() error {
			stats[i] = job.pollExchange(ctx, hub, ex, func(f *freshAnnouncement) {
				mu.Lock()
				fresh = append(fresh, f)
				mu.Unlock()
			})
			return nil
		})
	}
	_ = g.Wait()

	return fresh, stats
}

func (job *WatchJob) pollExchange(ctx context.Context, hub *sentry.Hub, ex scout.Exchange, collect func(*freshAnnouncement)) exchangeStat {
	announcements, err := ex.Fetch(ctx)
	if err != nil {
		job.logger.Warn("[WatchJob][Fetch]", "exchange", ex.Name(), "error", err)
		utils.CaptureSentryException("ExchangeFetchError", hub, err)
		return exchangeStat{name: ex.Name(), failed: true}
	}

	st := exchangeStat{name: ex.Name(), total: len(announcements)}
	for _, a := range announcements {
		rec, err := toModel(a)
		if err != nil {
			job.logger.Warn("[WatchJob][toModel]", "exchange", ex.Name(), "error", err)
			hub.CaptureException(err)
			continue
		}

		created, err := job.store.CreateIfAbsent(ctx, rec)
		if err != nil {
			// Non-conflict storage error: fatal for this item, the cycle goes on.
			job.logger.Error("[WatchJob][CreateIfAbsent]", "exchange", ex.Name(), "error", err)
			utils.CaptureSentryException("AnnouncementStoreError", hub, err)
			continue
		}
		if !created {
			continue
		}

		st.fresh++
		collect(&freshAnnouncement{src: a, rec: rec})
	}

	return st
}

// dispatch notifies about the newly persisted announcements.
func (job *WatchJob) dispatch(ctx context.Context, hub *sentry.Hub, fresh []*freshAnnouncement) {
	for _, f := range fresh {
		msg := formatAnnouncement(f.rec)

		if !job.options.shouldPublish {
			job.logger.Info("[WatchJob][dispatch] dry run", "exchange", f.rec.Exchange, "message", msg)
			continue
		}

		pubID, err := job.publisher.Publish(f.rec.Exchange, msg)
		if err != nil {
			// The row stays persisted: losing a notification is acceptable,
			// sending it twice is not.
			job.logger.Warn("[WatchJob][Publish]", "exchange", f.rec.Exchange, "error", err)
			utils.CaptureSentryException("PublishError", hub, err)
		} else if err := job.store.MarkNotified(ctx, f.rec, pubID); err != nil {
			job.logger.Warn("[WatchJob][MarkNotified]", "exchange", f.rec.Exchange, "error", err)
			hub.CaptureException(err)
		}

		if job.trader != nil {
			job.trader.OnAnnouncement(f.src)
		}
	}
}

// RunDemo republishes the most recent stored announcement of every exchange.
// It bypasses the dedup gate on purpose (delivery-path verification) and
// never writes to the store, so the uniqueness invariant stays intact.
func (job *WatchJob) RunDemo(ctx context.Context) {
	for _, ex := range job.exchanges {
		rec, err := job.store.FindLatestByExchange(ctx, ex.Name())
		if err != nil {
			job.logger.Warn("[WatchJob][RunDemo]", "exchange", ex.Name(), "error", err)
			continue
		}
		if rec == nil {
			continue
		}

		msg := formatAnnouncement(rec)
		if !job.options.shouldPublish {
			job.logger.Info("[WatchJob][RunDemo] dry run", "exchange", rec.Exchange, "message", msg)
			continue
		}
		if _, err := job.publisher.Publish(rec.Exchange, msg); err != nil {
			job.logger.Warn("[WatchJob][RunDemo][Publish]", "exchange", rec.Exchange, "error", err)
		}
	}
}

// toModel converts a fetched announcement into its database entity.
func toModel(a *scout.Announcement) (*models.Announcement, error) {
	tickers, err := json.Marshal(a.Tickers)
	if err != nil {
		return nil, err
	}

	return &models.Announcement{
		Exchange:    a.Exchange,
		SourceID:    a.SourceID,
		Title:       a.Title,
		URL:         a.URL,
		MarketType:  string(a.MarketType),
		Tickers:     tickers,
		PublishedAt: a.PublishedAt,
	}, nil
}
