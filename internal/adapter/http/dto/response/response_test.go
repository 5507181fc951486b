package response

import (
	"testing"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase"
)

func TestFromCloseSession(t *testing.T) {
	entry := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	exit := entry.Add(90 * time.Minute)
	res := FromCloseSession(usecase.CloseSessionResult{
		Session: entities.Session{Plate: "ABC123", SpaceCode: "C1", EntryTime: entry, ExitTime: &exit},
		Cost:    8000,
		Elapsed: 90 * time.Minute,
	})

	if res.Cost != 8000 || res.CostAmount != 80 {
		t.Fatalf("unexpected cost fields: %+v", res)
	}
	if res.ElapsedHours != 1.5 || res.ElapsedMinutes != 90 {
		t.Fatalf("unexpected elapsed fields: %+v", res)
	}
	if !res.ExitTime.Equal(exit) || res.SpaceCode != "C1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromCustomer_SubscriptionActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := entities.Customer{
		ID:           "c-1",
		Document:     "123",
		Subscription: entities.NewSubscription(entities.SubscriptionDaily, now),
		Vehicles:     []entities.CustomerVehicle{{Plate: "ABC123", Category: entities.CategoryCar}},
	}

	if res := FromCustomer(c, now.Add(time.Hour)); !res.Subscription.Active || len(res.Vehicles) != 1 {
		t.Fatalf("expected active subscription with one vehicle, got %+v", res)
	}
	if res := FromCustomer(c, now.Add(25*time.Hour)); res.Subscription.Active {
		t.Fatalf("expected expired subscription")
	}
}

func TestFromOccupancy_FillsEveryCategory(t *testing.T) {
	res := FromOccupancy(usecase.OccupancyReport{
		Total:              4,
		Occupied:           1,
		OccupancyPercent:   25,
		OccupiedByCategory: map[entities.Category]int{entities.CategoryCar: 1},
	})

	if res.OccupancyPercent != "25.00%" {
		t.Fatalf("expected 25.00%%, got %s", res.OccupancyPercent)
	}
	if len(res.OccupiedByCategory) != 3 || res.OccupiedByCategory["car"] != 1 || res.AvailableByCategory["bicycle"] != 0 {
		t.Fatalf("unexpected category breakdown: %+v", res)
	}
}

func TestFromDailyUsage(t *testing.T) {
	r := usecase.DailyUsageReport{Date: "2026-03-01", Entries: 2}
	r.EntriesPerHour[9] = 2
	r.BusiestHours = []usecase.HourCount{{Hour: 9, Entries: 2}}

	res := FromDailyUsage(r)
	if len(res.EntriesPerHour) != 24 || res.EntriesPerHour[9] != 2 {
		t.Fatalf("unexpected hourly entries: %v", res.EntriesPerHour)
	}
	if len(res.BusiestHours) != 1 || res.BusiestHours[0].Hour != 9 {
		t.Fatalf("unexpected busiest hours: %+v", res.BusiestHours)
	}
}
