package handlers

import (
	"net/http"

	request "parking_service/internal/adapter/http/dto/request"
	response "parking_service/internal/adapter/http/dto/response"
	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SpaceHandler exposes the Space Registry.
type SpaceHandler struct {
	usecase usecase.ISpaceUseCase
}

func NewSpaceHandler(uc usecase.ISpaceUseCase) *SpaceHandler {
	return &SpaceHandler{usecase: uc}
}

// CreateSpace godoc
// @Summary      Create a parking space
// @Tags         spaces
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateSpaceRequest  true  "Space"
// @Success      201   {object}  response.SpaceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /spaces [post]
func (h *SpaceHandler) CreateSpace(c *gin.Context) {
	var payload request.CreateSpaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	loc := entities.Location{
		Section:  payload.Location.Section,
		Level:    payload.Location.Level,
		Position: payload.Location.Position,
	}
	space, err := h.usecase.Create(c.Request.Context(), payload.Code, payload.Category, loc)
	if err != nil {
		respondError(c, "[space][create]", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSpace(space))
}

// ListSpaces godoc
// @Summary      List every space
// @Tags         spaces
// @Produce      json
// @Success      200  {array}  response.SpaceResponse
// @Security     Bearer
// @Router       /spaces [get]
func (h *SpaceHandler) ListSpaces(c *gin.Context) {
	spaces, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "[space][list]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSpaces(spaces))
}

// ListAvailable godoc
// @Summary      List available spaces of a category
// @Tags         spaces
// @Produce      json
// @Param        category  path   string  true  "car, motorcycle or bicycle"
// @Success      200       {array}  response.SpaceResponse
// @Failure      400       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /spaces/available/{category} [get]
func (h *SpaceHandler) ListAvailable(c *gin.Context) {
	spaces, err := h.usecase.ListAvailable(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, "[space][available]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSpaces(spaces))
}

// SetStatus godoc
// @Summary      Put a space under maintenance or back to available
// @Tags         spaces
// @Accept       json
// @Produce      json
// @Param        code  path      string                      true  "Space code"
// @Param        body  body      request.SpaceStatusRequest  true  "Status"
// @Success      200   {object}  response.SpaceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /spaces/{code}/status [put]
func (h *SpaceHandler) SetStatus(c *gin.Context) {
	var payload request.SpaceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	space, err := h.usecase.SetStatus(c.Request.Context(), c.Param("code"), payload.Status)
	if err != nil {
		respondError(c, "[space][status]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSpace(space))
}

// Release godoc
// @Summary      Force a space back to available
// @Tags         spaces
// @Produce      json
// @Param        code  path      string  true  "Space code"
// @Success      200   {object}  response.SpaceResponse
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /spaces/{code}/release [put]
func (h *SpaceHandler) Release(c *gin.Context) {
	space, err := h.usecase.Release(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, "[space][release]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSpace(space))
}

// DeleteSpace godoc
// @Summary      Delete an unoccupied space
// @Tags         spaces
// @Param        code  path  string  true  "Space code"
// @Success      204
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /spaces/{code} [delete]
func (h *SpaceHandler) DeleteSpace(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, "[space][delete]", err)
		return
	}
	c.Status(http.StatusNoContent)
}
