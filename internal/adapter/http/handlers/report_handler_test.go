package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"parking_service/internal/adapter/http/handlers/mocks"
	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestReportHandler(t *testing.T) {
	t.Run("revenue forwards range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)
		uc.EXPECT().Revenue(gomock.Any(), "2026-03-01", "2026-03-31").Return(usecase.RevenueReport{
			From:  "2026-03-01",
			To:    "2026-03-31",
			Total: 12000,
			ByDay: map[string]int64{"2026-03-02": 12000},
			Count: 2,
		}, nil)

		r := newTestRouter()
		r.GET("/v1/reports/revenue", h.Revenue)

		w := doJSON(r, http.MethodGet, "/v1/reports/revenue?from=2026-03-01&to=2026-03-31", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["total_amount"].(float64) != 120 {
			t.Fatalf("expected total_amount 120, got %v", body["total_amount"])
		}
	})

	t.Run("revenue bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)
		uc.EXPECT().Revenue(gomock.Any(), "yesterday", "").Return(usecase.RevenueReport{}, usecase.ErrInvalidDate)

		r := newTestRouter()
		r.GET("/v1/reports/revenue", h.Revenue)

		w := doJSON(r, http.MethodGet, "/v1/reports/revenue?from=yesterday", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("occupancy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)
		uc.EXPECT().Occupancy(gomock.Any()).Return(usecase.OccupancyReport{
			Total:              2,
			Occupied:           1,
			Available:          1,
			OccupancyPercent:   50,
			OccupiedByCategory: map[entities.Category]int{entities.CategoryCar: 1},
		}, nil)

		r := newTestRouter()
		r.GET("/v1/reports/occupancy", h.Occupancy)

		w := doJSON(r, http.MethodGet, "/v1/reports/occupancy", "")
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["occupancy_percent"] != "50.00%" {
			t.Fatalf("unexpected response %d %v", w.Code, body)
		}
	})

	t.Run("daily usage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)
		uc.EXPECT().DailyUsage(gomock.Any(), "").Return(usecase.DailyUsageReport{Date: "2026-03-01"}, nil)

		r := newTestRouter()
		r.GET("/v1/reports/daily-usage", h.DailyUsage)

		w := doJSON(r, http.MethodGet, "/v1/reports/daily-usage", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
