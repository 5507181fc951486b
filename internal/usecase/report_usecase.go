package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase/interfaces"
)

const dateLayout = "2006-01-02"

type OccupancyReport struct {
	Total               int
	Occupied            int
	Available           int
	Maintenance         int
	OccupancyPercent    float64
	OccupiedByCategory  map[entities.Category]int
	AvailableByCategory map[entities.Category]int
}

type RevenueReport struct {
	From           string
	To             string
	Total          int64
	BySubscription map[entities.SubscriptionKind]int64
	ByDay          map[string]int64
	Count          int
}

type VehiclesReport struct {
	Total      int
	ByCategory map[entities.Category]int
	Percent    map[entities.Category]float64
}

type SubscriptionIncome struct {
	Daily   int64
	Monthly int64
	Total   int64
}

type SubscriptionsReport struct {
	TotalCustomers int
	ByKind         map[entities.SubscriptionKind]int
	Percent        map[entities.SubscriptionKind]float64
	Income         SubscriptionIncome
}

type HourCount struct {
	Hour    int
	Entries int
}

type DailyUsageReport struct {
	Date           string
	Entries        int
	Exits          int
	PeakPresence   int
	EntriesPerHour [24]int
	BusiestHours   []HourCount
}

// IReportUseCase builds read-only aggregates. Figures are computed from full
// scans and may lag concurrent writes.

type IReportUseCase interface {
	Occupancy(ctx context.Context) (OccupancyReport, error)
	Revenue(ctx context.Context, from, to string) (RevenueReport, error)
	Vehicles(ctx context.Context) (VehiclesReport, error)
	Subscriptions(ctx context.Context) (SubscriptionsReport, error)
	DailyUsage(ctx context.Context, date string) (DailyUsageReport, error)
}

type ReportUseCase struct {
	spaces    interfaces.ISpaceRepository
	sessions  interfaces.ISessionRepository
	customers interfaces.ICustomerRepository
	prices    SubscriptionPrices
	clock     interfaces.IClock
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	spaces interfaces.ISpaceRepository,
	sessions interfaces.ISessionRepository,
	customers interfaces.ICustomerRepository,
	prices SubscriptionPrices,
	clock interfaces.IClock,
) *ReportUseCase {
	return &ReportUseCase{spaces: spaces, sessions: sessions, customers: customers, prices: prices, clock: clock}
}

func (u *ReportUseCase) Occupancy(ctx context.Context) (OccupancyReport, error) {
	all, err := u.spaces.List(ctx)
	if err != nil {
		return OccupancyReport{}, err
	}
	r := OccupancyReport{
		Total:               len(all),
		OccupiedByCategory:  categoryCounter(),
		AvailableByCategory: categoryCounter(),
	}
	for _, s := range all {
		switch s.Status {
		case entities.SpaceStatusOccupied:
			r.Occupied++
			r.OccupiedByCategory[s.Category]++
		case entities.SpaceStatusAvailable:
			r.Available++
			r.AvailableByCategory[s.Category]++
		case entities.SpaceStatusMaintenance:
			r.Maintenance++
		}
	}
	r.OccupancyPercent = percent(r.Occupied, r.Total)
	return r, nil
}

// Revenue sums closed sessions whose exit falls in [from 00:00, to 23:59:59.999]
// UTC. Empty bounds default to the last 30 days.
func (u *ReportUseCase) Revenue(ctx context.Context, from, to string) (RevenueReport, error) {
	now := u.clock.Now().UTC()
	start := startOfDay(now.AddDate(0, 0, -30))
	end := now
	if strings.TrimSpace(from) != "" {
		t, err := time.Parse(dateLayout, strings.TrimSpace(from))
		if err != nil {
			return RevenueReport{}, ErrInvalidDate
		}
		start = t
	}
	if strings.TrimSpace(to) != "" {
		t, err := time.Parse(dateLayout, strings.TrimSpace(to))
		if err != nil {
			return RevenueReport{}, ErrInvalidDate
		}
		end = t
	}
	end = startOfDay(end).Add(24*time.Hour - time.Nanosecond)
	if start.After(end) {
		return RevenueReport{}, ErrInvalidDateRange
	}

	sessions, err := u.sessions.ListByStatus(ctx, entities.SessionStatusClosed)
	if err != nil {
		return RevenueReport{}, err
	}
	kinds, err := u.customerKinds(ctx)
	if err != nil {
		return RevenueReport{}, err
	}

	r := RevenueReport{
		From: start.Format(dateLayout),
		To:   end.Format(dateLayout),
		BySubscription: map[entities.SubscriptionKind]int64{
			entities.SubscriptionNone:    0,
			entities.SubscriptionDaily:   0,
			entities.SubscriptionMonthly: 0,
		},
		ByDay: map[string]int64{},
	}
	for _, s := range sessions {
		if s.ExitTime == nil {
			continue
		}
		exit := s.ExitTime.UTC()
		if exit.Before(start) || exit.After(end) {
			continue
		}
		kind := entities.SubscriptionNone
		if k, ok := kinds[s.CustomerID]; ok {
			kind = k
		}
		r.Total += s.Cost
		r.BySubscription[kind] += s.Cost
		r.ByDay[exit.Format(dateLayout)] += s.Cost
		r.Count++
	}
	return r, nil
}

// Vehicles counts distinct plates seen per category.
func (u *ReportUseCase) Vehicles(ctx context.Context) (VehiclesReport, error) {
	sessions, err := u.sessions.ListAll(ctx)
	if err != nil {
		return VehiclesReport{}, err
	}
	seen := map[string]struct{}{}
	r := VehiclesReport{ByCategory: categoryCounter(), Percent: map[entities.Category]float64{}}
	for _, s := range sessions {
		key := string(s.Category) + "|" + s.Plate
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		r.ByCategory[s.Category]++
		r.Total++
	}
	for cat, n := range r.ByCategory {
		r.Percent[cat] = percent(n, r.Total)
	}
	return r, nil
}

func (u *ReportUseCase) Subscriptions(ctx context.Context) (SubscriptionsReport, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return SubscriptionsReport{}, err
	}
	r := SubscriptionsReport{
		TotalCustomers: len(customers),
		ByKind:         map[entities.SubscriptionKind]int{},
		Percent:        map[entities.SubscriptionKind]float64{},
	}
	for _, k := range entities.SubscriptionKinds {
		r.ByKind[k] = 0
	}
	for _, c := range customers {
		kind := c.Subscription.Kind
		if kind == "" {
			kind = entities.SubscriptionNone
		}
		r.ByKind[kind]++
	}
	for k, n := range r.ByKind {
		r.Percent[k] = percent(n, r.TotalCustomers)
	}
	r.Income.Daily = int64(r.ByKind[entities.SubscriptionDaily]) * u.prices.Daily
	r.Income.Monthly = int64(r.ByKind[entities.SubscriptionMonthly]) * u.prices.Monthly
	r.Income.Total = r.Income.Daily + r.Income.Monthly
	return r, nil
}

// DailyUsage reports entries and exits of one UTC day. An empty date means today.
func (u *ReportUseCase) DailyUsage(ctx context.Context, date string) (DailyUsageReport, error) {
	day := startOfDay(u.clock.Now().UTC())
	if strings.TrimSpace(date) != "" {
		t, err := time.Parse(dateLayout, strings.TrimSpace(date))
		if err != nil {
			return DailyUsageReport{}, ErrInvalidDate
		}
		day = t
	}
	dayEnd := day.Add(24 * time.Hour)

	sessions, err := u.sessions.ListAll(ctx)
	if err != nil {
		return DailyUsageReport{}, err
	}

	r := DailyUsageReport{Date: day.Format(dateLayout)}
	for _, s := range sessions {
		entry := s.EntryTime.UTC()
		if !entry.Before(day) && entry.Before(dayEnd) {
			r.Entries++
			r.EntriesPerHour[entry.Hour()]++
		}
		if s.ExitTime != nil {
			exit := s.ExitTime.UTC()
			if !exit.Before(day) && exit.Before(dayEnd) {
				r.Exits++
			}
		}
	}

	for h := 0; h < 24; h++ {
		instant := day.Add(time.Duration(h) * time.Hour)
		present := 0
		for _, s := range sessions {
			if s.EntryTime.After(instant) {
				continue
			}
			if s.ExitTime != nil && s.ExitTime.Before(instant) {
				continue
			}
			present++
		}
		if present > r.PeakPresence {
			r.PeakPresence = present
		}
	}

	hours := make([]HourCount, 0, 24)
	for h, n := range r.EntriesPerHour {
		hours = append(hours, HourCount{Hour: h, Entries: n})
	}
	sort.SliceStable(hours, func(i, j int) bool { return hours[i].Entries > hours[j].Entries })
	r.BusiestHours = hours[:3]
	return r, nil
}

func (u *ReportUseCase) customerKinds(ctx context.Context) (map[string]entities.SubscriptionKind, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]entities.SubscriptionKind, len(customers))
	for _, c := range customers {
		kind := c.Subscription.Kind
		if kind == "" {
			kind = entities.SubscriptionNone
		}
		out[c.ID] = kind
	}
	return out, nil
}

func categoryCounter() map[entities.Category]int {
	out := make(map[entities.Category]int, len(entities.Categories))
	for _, c := range entities.Categories {
		out[c] = 0
	}
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
