package handlers

import (
	"net/http"

	response "parking_service/internal/adapter/http/dto/response"
	"parking_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves read-only aggregates.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Occupancy(c *gin.Context) {
	r, err := h.usecase.Occupancy(c.Request.Context())
	if err != nil {
		respondError(c, "[report][occupancy]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccupancy(r))
}

// Revenue accepts optional from/to query params formatted YYYY-MM-DD.
func (h *ReportHandler) Revenue(c *gin.Context) {
	r, err := h.usecase.Revenue(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, "[report][revenue]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRevenue(r))
}

func (h *ReportHandler) Vehicles(c *gin.Context) {
	r, err := h.usecase.Vehicles(c.Request.Context())
	if err != nil {
		respondError(c, "[report][vehicles]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(r))
}

func (h *ReportHandler) Subscriptions(c *gin.Context) {
	r, err := h.usecase.Subscriptions(c.Request.Context())
	if err != nil {
		respondError(c, "[report][subscriptions]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptions(r))
}

// DailyUsage takes ?date=YYYY-MM-DD and defaults to today.
func (h *ReportHandler) DailyUsage(c *gin.Context) {
	r, err := h.usecase.DailyUsage(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, "[report][daily-usage]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDailyUsage(r))
}
