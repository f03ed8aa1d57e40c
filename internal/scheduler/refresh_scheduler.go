package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/pkg/utils"
)

var ErrInvalidInterval = errors.New("refresh interval must be positive")

// TableRefresher re-populates one cached table.
type TableRefresher interface {
	Refresh(ctx context.Context, table string) error
}

// LowStockReporter lists the current low-stock items.
type LowStockReporter interface {
	LowStockAlerts(ctx context.Context) ([]models.StockItem, error)
}

// RefreshScheduler periodically warms the record cache and logs low-stock items.
type RefreshScheduler struct {
	scheduler gocron.Scheduler
	refresher TableRefresher
	reporter  LowStockReporter
	tables    []string
	timeout   time.Duration
}

// NewRefreshScheduler creates a scheduler running every interval.
// refresher may be nil when no cache is configured; only the stock check runs then.
func NewRefreshScheduler(interval time.Duration, loc *time.Location, refresher TableRefresher, reporter LowStockReporter) (*RefreshScheduler, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if loc == nil {
		loc = time.UTC
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	r := &RefreshScheduler{
		scheduler: s,
		refresher: refresher,
		reporter:  reporter,
		tables:    models.DashboardTables,
		timeout:   interval,
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
			defer cancel()
			r.RunOnce(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("registering refresh job: %w", err)
	}
	return r, nil
}

// RunOnce performs a single refresh pass and returns the number of tables that failed.
func (r *RefreshScheduler) RunOnce(ctx context.Context) int {
	failed := 0
	if r.refresher != nil {
		for _, table := range r.tables {
			if err := r.refresher.Refresh(ctx, table); err != nil {
				failed++
				utils.LogError(err, "Scheduled refresh failed", map[string]interface{}{"table": table})
			}
		}
	}

	if r.reporter == nil {
		return failed
	}
	items, err := r.reporter.LowStockAlerts(ctx)
	if err != nil {
		utils.LogError(err, "Low stock check failed")
		return failed
	}
	if len(items) == 0 {
		utils.LogDebug("Low stock check: all items above reorder level")
		return failed
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	utils.LogWarn("Low stock items", map[string]interface{}{"count": len(items), "items": names})
	return failed
}

// Start begins running the job in the background.
func (r *RefreshScheduler) Start() {
	r.scheduler.Start()
	utils.LogInfo("Refresh scheduler started", map[string]interface{}{"tables": len(r.tables)})
}

// Shutdown stops the scheduler and waits for a running job to finish.
func (r *RefreshScheduler) Shutdown() error {
	return r.scheduler.Shutdown()
}
