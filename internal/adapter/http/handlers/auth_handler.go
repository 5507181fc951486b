package handlers

import (
	"net/http"

	request "parking_service/internal/adapter/http/dto/request"
	response "parking_service/internal/adapter/http/dto/response"
	"parking_service/internal/adapter/http/middleware"
	"parking_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.LoginResponse
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	res, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, "[auth][login]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(res))
}

// Register godoc
// @Summary      Create an operator account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterUserRequest  true  "User"
// @Success      201   {object}  response.UserResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	user, err := h.usecase.Register(c.Request.Context(), usecase.RegisterUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
	})
	if err != nil {
		respondError(c, "[auth][register]", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.Me(c.Request.Context(), middleware.OperatorID(c))
	if err != nil {
		respondError(c, "[auth][me]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := h.usecase.ChangePassword(c.Request.Context(), middleware.OperatorID(c), payload.CurrentPassword, payload.NewPassword); err != nil {
		respondError(c, "[auth][password]", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, "[auth][users]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}
