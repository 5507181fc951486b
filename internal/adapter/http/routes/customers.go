package routes

import (
	"parking_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathReports   = "/reports"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler, sessions *handlers.SessionHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.RegisterCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/document/:document", h.GetCustomerByDocument)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.POST("/:id/subscription", h.RenewSubscription)
		customers.GET("/:id/history", h.History)
		customers.GET("/:id/sessions", sessions.ListCustomerSessions)
	}
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/occupancy", h.Occupancy)
		reports.GET("/revenue", h.Revenue)
		reports.GET("/vehicles", h.Vehicles)
		reports.GET("/subscriptions", h.Subscriptions)
		reports.GET("/daily-usage", h.DailyUsage)
	}
}
