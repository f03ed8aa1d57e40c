package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/internal/transform"
	"restaurant_dashboard/pkg/utils"
)

const queryDateLayout = "2006-01-02"

// ErrInvalidDate is returned when a query date is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// DashboardService builds the dashboard view models from the record source.
type DashboardService interface {
	GetDashboard(ctx context.Context, date string) (*models.DashboardData, error)
	GetBookingCapacity(ctx context.Context) (*models.BookingCapacityView, error)
	GetCoverTracker(ctx context.Context) (*models.CoverTrackerView, error)
	GetFinancialOverview(ctx context.Context) (*models.FinancialOverviewView, error)
	GetStaffScheduling(ctx context.Context, date string) (*models.StaffSchedulingView, error)
	GetStockInsight(ctx context.Context, filter models.StockFilter) (*models.StockInsightView, error)
	LowStockAlerts(ctx context.Context) ([]models.StockItem, error)
}

// DashboardOptions tunes how records are interpreted.
type DashboardOptions struct {
	Location          *time.Location // Wall clock for dates and shift hours; UTC when nil
	CriticalThreshold float64        // Low stock at or below this many units is critical
	Now               func() time.Time
}

type dashboardService struct {
	source            repositories.RecordSource
	loc               *time.Location
	criticalThreshold float64
	now               func() time.Time
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(source repositories.RecordSource, opts DashboardOptions) DashboardService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &dashboardService{
		source:            source,
		loc:               opts.Location,
		criticalThreshold: opts.CriticalThreshold,
		now:               opts.Now,
	}
}

// fetchTables reads the tables concurrently. A table that fails to load is
// logged and returned empty so one bad table never blanks the whole dashboard.
func (s *dashboardService) fetchTables(ctx context.Context, tables ...string) map[string][]models.RawRecord {
	var mu sync.Mutex
	out := make(map[string][]models.RawRecord, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	for _, table := range tables {
		g.Go(func() error {
			records, err := s.source.FetchAll(gctx, table)
			if err != nil {
				utils.LogError(err, "Error fetching records", map[string]interface{}{"table": table})
				records = []models.RawRecord{}
			}
			mu.Lock()
			out[table] = records
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *dashboardService) fetchTable(ctx context.Context, table string) []models.RawRecord {
	return s.fetchTables(ctx, table)[table]
}

func (s *dashboardService) parseQueryDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(queryDateLayout, date, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

func (s *dashboardService) occupancy(bookings []models.BookingCapacity) *models.OccupancyData {
	latest, ok := transform.SelectLatestByDate(bookings, func(b models.BookingCapacity) string { return b.Date }, s.loc)
	if !ok {
		return nil
	}
	occ := transform.CalculateOccupancy(latest)
	return &occ
}

func coverDistribution(trackers []models.CoverTracker) ([]models.PeakTimeData, []models.CoverData) {
	peaks := make([]models.PeakTimeData, 0, len(trackers))
	all := []models.CoverData{}
	for _, ct := range trackers {
		covers := transform.GenerateCoverData(ct)
		all = append(all, covers...)
		peaks = append(peaks, transform.CreatePeakTimeData(ct, covers))
	}
	return peaks, all
}

func (s *dashboardService) latestFinancials(overviews []models.FinancialOverview) (*models.FinancialMetrics, []models.RevenueBreakdown) {
	latest, ok := transform.SelectLatestByDate(overviews, func(f models.FinancialOverview) string { return f.Date }, s.loc)
	if !ok {
		return nil, []models.RevenueBreakdown{}
	}
	metrics := transform.CalculateFinancialMetrics(latest)
	breakdown, unmatched := transform.CalculateRevenueBreakdown(latest)
	for _, part := range unmatched {
		utils.LogWarn("Could not parse revenue breakdown part", map[string]interface{}{
			"record_id": latest.ID,
			"part":      part,
		})
	}
	return &metrics, breakdown
}

func staffingForecast(schedules []models.StaffSchedule) []models.StaffingForecast {
	forecast, skipped := transform.GenerateStaffingForecast(schedules)
	for _, id := range skipped {
		utils.LogWarn("Skipping schedule without valid shift times", map[string]interface{}{"record_id": id})
	}
	return forecast
}

// GetDashboard assembles every view for the given day, defaulting to today.
// The date is echoed back; records are not filtered by it.
func (s *dashboardService) GetDashboard(ctx context.Context, date string) (*models.DashboardData, error) {
	if date == "" {
		date = s.now().In(s.loc).Format(queryDateLayout)
	} else if _, err := s.parseQueryDate(date); err != nil {
		return nil, err
	}

	raw := s.fetchTables(ctx, models.DashboardTables...)

	bookings := transform.MapBookingCapacities(raw[models.TableBookingCapacity])
	trackers := transform.MapCoverTrackers(raw[models.TableCoverTracking])
	overviews := transform.MapFinancialOverviews(raw[models.TableFinancialOverview])
	stock := transform.MapStockItems(raw[models.TableStockInsights], s.loc)
	schedules := transform.MapStaffSchedules(raw[models.TableStaffScheduling], s.loc)

	peaks, covers := coverDistribution(trackers)
	metrics, breakdown := s.latestFinancials(overviews)

	return &models.DashboardData{
		Date:                date,
		BookingCapacities:   bookings,
		Occupancy:           s.occupancy(bookings),
		CoverTrackers:       trackers,
		PeakTimeData:        peaks,
		CoverData:           covers,
		FinancialOverviews:  overviews,
		FinancialMetrics:    metrics,
		RevenueBreakdown:    breakdown,
		StockItems:          stock,
		LowStockItems:       transform.GetLowStockItems(stock),
		StaffSchedules:      schedules,
		TotalScheduledHours: transform.CalculateTotalScheduledHours(schedules),
		StaffingForecast:    staffingForecast(schedules),
		LastUpdated:         s.now().UTC(),
	}, nil
}

func (s *dashboardService) GetBookingCapacity(ctx context.Context) (*models.BookingCapacityView, error) {
	bookings := transform.MapBookingCapacities(s.fetchTable(ctx, models.TableBookingCapacity))
	return &models.BookingCapacityView{
		BookingCapacities: bookings,
		OccupancyData:     s.occupancy(bookings),
	}, nil
}

func (s *dashboardService) GetCoverTracker(ctx context.Context) (*models.CoverTrackerView, error) {
	trackers := transform.MapCoverTrackers(s.fetchTable(ctx, models.TableCoverTracking))
	peaks, covers := coverDistribution(trackers)
	return &models.CoverTrackerView{
		CoverTrackers: trackers,
		PeakTimeData:  peaks,
		CoverData:     covers,
	}, nil
}

// GetFinancialOverview adds period totals across every overview and the
// latest metrics formatted as currency.
func (s *dashboardService) GetFinancialOverview(ctx context.Context) (*models.FinancialOverviewView, error) {
	overviews := transform.MapFinancialOverviews(s.fetchTable(ctx, models.TableFinancialOverview))
	metrics, breakdown := s.latestFinancials(overviews)

	all := make([]models.FinancialMetrics, 0, len(overviews))
	for _, fo := range overviews {
		all = append(all, transform.CalculateFinancialMetrics(fo))
	}

	view := &models.FinancialOverviewView{
		FinancialOverviews: overviews,
		FinancialMetrics:   metrics,
		RevenueBreakdown:   breakdown,
		PeriodTotals:       transform.SumFinancialMetrics(all),
	}
	if metrics != nil {
		formatted := transform.FormatFinancialMetrics(*metrics)
		view.Formatted = &formatted
	}
	return view, nil
}

// GetStaffScheduling optionally narrows shifts to those starting on date,
// then orders them by role.
func (s *dashboardService) GetStaffScheduling(ctx context.Context, date string) (*models.StaffSchedulingView, error) {
	schedules := transform.MapStaffSchedules(s.fetchTable(ctx, models.TableStaffScheduling), s.loc)
	if date != "" {
		day, err := s.parseQueryDate(date)
		if err != nil {
			return nil, err
		}
		schedules = transform.SchedulesOnDay(schedules, day)
	}
	schedules = transform.SortSchedulesByRole(schedules)

	return &models.StaffSchedulingView{
		Date:                  date,
		StaffSchedules:        schedules,
		TotalScheduledHours:   transform.CalculateTotalScheduledHours(schedules),
		AverageScheduledHours: transform.AverageScheduledHours(schedules),
		StaffingForecast:      staffingForecast(schedules),
	}, nil
}

func (s *dashboardService) GetStockInsight(ctx context.Context, filter models.StockFilter) (*models.StockInsightView, error) {
	items := transform.MapStockItems(s.fetchTable(ctx, models.TableStockInsights), s.loc)
	current := transform.SelectCurrentSnapshot(items)
	return &models.StockInsightView{
		StockItems:     items,
		CurrentItems:   transform.FilterStock(current, filter),
		LowStockAlerts: transform.SelectLowStock(current),
		Summary:        transform.SummarizeStock(current, s.criticalThreshold),
	}, nil
}

// LowStockAlerts returns the current items that are low or out of stock.
func (s *dashboardService) LowStockAlerts(ctx context.Context) ([]models.StockItem, error) {
	items := transform.MapStockItems(s.fetchTable(ctx, models.TableStockInsights), s.loc)
	return transform.GetLowStockItems(items), nil
}
