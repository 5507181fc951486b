package routes

import (
	"parking_service/internal/adapter/http/handlers"
	"parking_service/internal/adapter/http/middleware"
	"parking_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathSpaces   = "/spaces"
)

func addSessionRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware, h *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.OpenSession)
		sessions.GET("", h.ListActiveSessions)
		sessions.GET("/:plate", h.LookupSession)
		sessions.PUT("/:plate/exit", h.CloseSession)
		sessions.DELETE("/id/:id", auth.AuthorizeRole(entities.RoleAdmin), h.PurgeSession)
	}
}

func addSpaceRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware, h *handlers.SpaceHandler) {
	admin := auth.AuthorizeRole(entities.RoleAdmin)

	spaces := rg.Group(PathSpaces)
	{
		spaces.GET("", h.ListSpaces)
		spaces.GET("/available/:category", h.ListAvailable)

		spaces.POST("", admin, h.CreateSpace)
		spaces.PUT("/:code/status", admin, h.SetStatus)
		spaces.PUT("/:code/release", admin, h.Release)
		spaces.DELETE("/:code", admin, h.DeleteSpace)
	}
}
