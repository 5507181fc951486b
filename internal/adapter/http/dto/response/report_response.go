package response

import (
	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase"
)

type OccupancyResponse struct {
	Total               int            `json:"total"`
	Occupied            int            `json:"occupied"`
	Available           int            `json:"available"`
	Maintenance         int            `json:"maintenance"`
	OccupancyPercent    string         `json:"occupancy_percent"`
	OccupiedByCategory  map[string]int `json:"occupied_by_category"`
	AvailableByCategory map[string]int `json:"available_by_category"`
}

func FromOccupancy(r usecase.OccupancyReport) OccupancyResponse {
	return OccupancyResponse{
		Total:               r.Total,
		Occupied:            r.Occupied,
		Available:           r.Available,
		Maintenance:         r.Maintenance,
		OccupancyPercent:    Percent(r.OccupancyPercent),
		OccupiedByCategory:  byCategory(r.OccupiedByCategory),
		AvailableByCategory: byCategory(r.AvailableByCategory),
	}
}

type RevenueResponse struct {
	From           string             `json:"from"`
	To             string             `json:"to"`
	Total          int64              `json:"total"`
	TotalAmount    float64            `json:"total_amount"`
	Count          int                `json:"count"`
	BySubscription map[string]int64   `json:"by_subscription"`
	ByDay          map[string]int64   `json:"by_day"`
	ByDayAmount    map[string]float64 `json:"by_day_amount"`
}

func FromRevenue(r usecase.RevenueReport) RevenueResponse {
	res := RevenueResponse{
		From:           r.From,
		To:             r.To,
		Total:          r.Total,
		TotalAmount:    Amount(r.Total),
		Count:          r.Count,
		BySubscription: make(map[string]int64, len(r.BySubscription)),
		ByDay:          make(map[string]int64, len(r.ByDay)),
		ByDayAmount:    make(map[string]float64, len(r.ByDay)),
	}
	for k, v := range r.BySubscription {
		res.BySubscription[string(k)] = v
	}
	for day, v := range r.ByDay {
		res.ByDay[day] = v
		res.ByDayAmount[day] = Amount(v)
	}
	return res
}

type VehiclesResponse struct {
	Total      int               `json:"total"`
	ByCategory map[string]int    `json:"by_category"`
	Percent    map[string]string `json:"percent"`
}

func FromVehicles(r usecase.VehiclesReport) VehiclesResponse {
	res := VehiclesResponse{
		Total:      r.Total,
		ByCategory: byCategory(r.ByCategory),
		Percent:    make(map[string]string, len(entities.Categories)),
	}
	for _, c := range entities.Categories {
		res.Percent[string(c)] = Percent(r.Percent[c])
	}
	return res
}

type SubscriptionIncomeResponse struct {
	Daily   int64 `json:"daily"`
	Monthly int64 `json:"monthly"`
	Total   int64 `json:"total"`
}

type SubscriptionsResponse struct {
	TotalCustomers int                        `json:"total_customers"`
	ByKind         map[string]int             `json:"by_kind"`
	Percent        map[string]string          `json:"percent"`
	Income         SubscriptionIncomeResponse `json:"income"`
}

func FromSubscriptions(r usecase.SubscriptionsReport) SubscriptionsResponse {
	res := SubscriptionsResponse{
		TotalCustomers: r.TotalCustomers,
		ByKind:         make(map[string]int, len(entities.SubscriptionKinds)),
		Percent:        make(map[string]string, len(entities.SubscriptionKinds)),
		Income: SubscriptionIncomeResponse{
			Daily:   r.Income.Daily,
			Monthly: r.Income.Monthly,
			Total:   r.Income.Total,
		},
	}
	for _, k := range entities.SubscriptionKinds {
		res.ByKind[string(k)] = r.ByKind[k]
		res.Percent[string(k)] = Percent(r.Percent[k])
	}
	return res
}

type HourCountResponse struct {
	Hour    int `json:"hour"`
	Entries int `json:"entries"`
}

type DailyUsageResponse struct {
	Date           string              `json:"date"`
	Entries        int                 `json:"entries"`
	Exits          int                 `json:"exits"`
	PeakPresence   int                 `json:"peak_presence"`
	EntriesPerHour []int               `json:"entries_per_hour"`
	BusiestHours   []HourCountResponse `json:"busiest_hours"`
}

func FromDailyUsage(r usecase.DailyUsageReport) DailyUsageResponse {
	res := DailyUsageResponse{
		Date:           r.Date,
		Entries:        r.Entries,
		Exits:          r.Exits,
		PeakPresence:   r.PeakPresence,
		EntriesPerHour: append([]int{}, r.EntriesPerHour[:]...),
		BusiestHours:   make([]HourCountResponse, 0, len(r.BusiestHours)),
	}
	for _, h := range r.BusiestHours {
		res.BusiestHours = append(res.BusiestHours, HourCountResponse{Hour: h.Hour, Entries: h.Entries})
	}
	return res
}

func byCategory(m map[entities.Category]int) map[string]int {
	out := make(map[string]int, len(entities.Categories))
	for _, c := range entities.Categories {
		out[string(c)] = m[c]
	}
	return out
}
