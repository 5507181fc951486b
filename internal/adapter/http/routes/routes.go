package routes

import (
	"net/http"

	_ "parking_service/docs"
	"parking_service/internal/adapter/http/handlers"
	"parking_service/internal/adapter/http/middleware"
	"parking_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are built in cmd/api and handed to the router.
type Dependencies struct {
	Auth     *middleware.AuthMiddleware
	Metrics  *metrics.Recorder
	Spaces   *handlers.SpaceHandler
	Sessions *handlers.SessionHandler
	Customer *handlers.CustomerHandler
	Users    *handlers.AuthHandler
	Reports  *handlers.ReportHandler
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(deps.Metrics))
	router.Use(middleware.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, deps.Auth, deps.Users)

	private := v1.Group("")
	private.Use(deps.Auth.Authenticate())
	addSessionRoutes(private, deps.Auth, deps.Sessions)
	addSpaceRoutes(private, deps.Auth, deps.Spaces)
	addCustomerRoutes(private, deps.Customer, deps.Sessions)
	addReportRoutes(private, deps.Reports)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
