package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_dashboard/internal/models"
)

type fakeRefresher struct {
	mu      sync.Mutex
	calls   []string
	failFor map[string]bool
}

func (f *fakeRefresher) Refresh(_ context.Context, table string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, table)
	if f.failFor[table] {
		return errors.New("upstream down")
	}
	return nil
}

func (f *fakeRefresher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeReporter struct {
	items []models.StockItem
	err   error
	calls int
}

func (f *fakeReporter) LowStockAlerts(context.Context) ([]models.StockItem, error) {
	f.calls++
	return f.items, f.err
}

func TestNewRefreshScheduler_RejectsNonPositiveInterval(t *testing.T) {
	_, err := NewRefreshScheduler(0, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewRefreshScheduler(-time.Second, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestRunOnce_RefreshesEveryTable(t *testing.T) {
	refresher := &fakeRefresher{failFor: map[string]bool{models.TableStockInsights: true}}
	reporter := &fakeReporter{items: []models.StockItem{{Name: "Tomatoes"}}}

	s, err := NewRefreshScheduler(time.Hour, time.UTC, refresher, reporter)
	require.NoError(t, err)
	defer s.Shutdown()

	failed := s.RunOnce(context.Background())

	assert.Equal(t, 1, failed)
	assert.Equal(t, models.DashboardTables, refresher.calls)
	assert.Equal(t, 1, reporter.calls)
}

func TestRunOnce_WithoutCache(t *testing.T) {
	reporter := &fakeReporter{err: errors.New("boom")}

	s, err := NewRefreshScheduler(time.Hour, nil, nil, reporter)
	require.NoError(t, err)
	defer s.Shutdown()

	assert.Zero(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, reporter.calls)
}

func TestStart_RunsJobOnInterval(t *testing.T) {
	refresher := &fakeRefresher{}

	s, err := NewRefreshScheduler(50*time.Millisecond, time.UTC, refresher, nil)
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool {
		return refresher.callCount() >= len(models.DashboardTables)
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Shutdown())
}
