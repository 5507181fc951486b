package routes

import (
	"parking_service/internal/adapter/http/handlers"
	"parking_service/internal/adapter/http/middleware"
	"parking_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, auth *middleware.AuthMiddleware, h *handlers.AuthHandler) {
	public := rg.Group(PathAuth)
	public.POST("/login", h.Login)

	private := rg.Group(PathAuth, auth.Authenticate())
	{
		private.GET("/me", h.Me)
		private.PUT("/password", h.ChangePassword)
		private.POST("/register", auth.AuthorizeRole(entities.RoleAdmin), h.Register)
		private.GET("/users", auth.AuthorizeRole(entities.RoleAdmin), h.ListUsers)
	}
}
