package handlers

import (
	"net/http"

	request "parking_service/internal/adapter/http/dto/request"
	response "parking_service/internal/adapter/http/dto/response"
	"parking_service/internal/adapter/http/middleware"
	"parking_service/internal/domain/entities"
	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles vehicle entry and exit.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// OpenSession godoc
// @Summary      Register a vehicle entry
// @Description  Allocates a free space of the vehicle category and opens a session.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      request.OpenSessionRequest  true  "Entry"
// @Success      201   {object}  response.EntryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sessions [post]
func (h *SessionHandler) OpenSession(c *gin.Context) {
	var payload request.OpenSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	res, err := h.usecase.OpenSession(c.Request.Context(), usecase.OpenSessionInput{
		Plate:      payload.Plate,
		Category:   payload.Category,
		CustomerID: payload.ResolveCustomerID(),
		OperatorID: middleware.OperatorID(c),
	})
	if err != nil {
		respondError(c, "[session][open]", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOpenSession(res))
}

// CloseSession godoc
// @Summary      Register a vehicle exit
// @Description  Bills the stay, closes the session and frees the space.
// @Tags         sessions
// @Produce      json
// @Param        plate  path      string  true  "Plate"
// @Success      200    {object}  response.ExitResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Failure      500    {object}  response.ExitErrorResponse
// @Security     Bearer
// @Router       /sessions/{plate}/exit [put]
func (h *SessionHandler) CloseSession(c *gin.Context) {
	res, err := h.usecase.CloseSession(c.Request.Context(), c.Param("plate"), middleware.OperatorID(c))
	if err != nil && res.Session.ID != "" {
		appErr := mapError(err)
		logging.WithContext(c.Request.Context()).WithError(err).WithFields(map[string]interface{}{
			"session_id": res.Session.ID,
			"plate":      res.Session.Plate,
			"space":      res.Session.SpaceCode,
			"cost":       res.Cost,
		}).Error("[session][close] exit billed but follow-up failed")
		c.JSON(appErr.HTTPStatus, response.FromCloseSessionFailure(appErr.Code, appErr.Message, res))
		return
	}
	if err != nil {
		respondError(c, "[session][close]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCloseSession(res))
}

// LookupSession godoc
// @Summary      Find the current or latest session of a plate
// @Tags         sessions
// @Produce      json
// @Param        plate  path      string  true  "Plate"
// @Success      200    {object}  response.SessionResponse
// @Failure      404    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sessions/{plate} [get]
func (h *SessionHandler) LookupSession(c *gin.Context) {
	s, err := h.usecase.LookupSession(c.Request.Context(), c.Param("plate"))
	if err != nil {
		respondError(c, "[session][lookup]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// ListActiveSessions godoc
// @Summary      List parked vehicles
// @Tags         sessions
// @Produce      json
// @Success      200  {array}  response.SessionResponse
// @Security     Bearer
// @Router       /sessions [get]
func (h *SessionHandler) ListActiveSessions(c *gin.Context) {
	sessions, err := h.usecase.ListActiveSessions(c.Request.Context())
	if err != nil {
		respondError(c, "[session][list]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessions(sessions))
}

// ListCustomerSessions serves GET /customers/:id/sessions?status=active|closed.
func (h *SessionHandler) ListCustomerSessions(c *gin.Context) {
	status := entities.SessionStatus(c.Query("status"))
	if status != "" && status != entities.SessionStatusActive && status != entities.SessionStatusClosed {
		respondInvalidPayload(c)
		return
	}
	sessions, err := h.usecase.ListCustomerSessions(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, "[session][customer]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessions(sessions))
}

// PurgeSession godoc
// @Summary      Delete a session record
// @Tags         sessions
// @Param        id  path  string  true  "Session id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /sessions/id/{id} [delete]
func (h *SessionHandler) PurgeSession(c *gin.Context) {
	if err := h.usecase.PurgeSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[session][purge]", err)
		return
	}
	c.Status(http.StatusNoContent)
}
