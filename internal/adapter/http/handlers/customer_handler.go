package handlers

import (
	"net/http"

	request "parking_service/internal/adapter/http/dto/request"
	response "parking_service/internal/adapter/http/dto/response"
	"parking_service/internal/usecase"
	"parking_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// CustomerHandler manages customers and their subscriptions.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
	clock   interfaces.IClock
}

func NewCustomerHandler(uc usecase.ICustomerUseCase, clock interfaces.IClock) *CustomerHandler {
	return &CustomerHandler{usecase: uc, clock: clock}
}

// RegisterCustomer godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateCustomerRequest  true  "Customer"
// @Success      201   {object}  response.CustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /customers [post]
func (h *CustomerHandler) RegisterCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	customer, err := h.usecase.Register(c.Request.Context(), usecase.CustomerInput{
		Document:     payload.Document,
		Name:         payload.Name,
		Phone:        payload.Phone,
		Email:        payload.Email,
		Subscription: payload.Subscription,
	})
	if err != nil {
		respondError(c, "[customer][register]", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer, h.clock.Now()))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "[customer][list]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers, h.clock.Now()))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[customer][get]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer, h.clock.Now()))
}

func (h *CustomerHandler) GetCustomerByDocument(c *gin.Context) {
	customer, err := h.usecase.GetByDocument(c.Request.Context(), c.Param("document"))
	if err != nil {
		respondError(c, "[customer][document]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer, h.clock.Now()))
}

// UpdateCustomer godoc
// @Summary      Update customer profile or subscription kind
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Customer id"
// @Param        body  body      request.UpdateCustomerRequest  true  "Fields to change"
// @Success      200   {object}  response.CustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		respondInvalidPayload(c)
		return
	}
	customer, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.CustomerUpdate{
		Name:         payload.Name,
		Phone:        payload.Phone,
		Email:        payload.Email,
		Subscription: payload.Subscription,
	})
	if err != nil {
		respondError(c, "[customer][update]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer, h.clock.Now()))
}

// RenewSubscription godoc
// @Summary      Start a new subscription window
// @Description  Charges the subscription price through the payment gateway when one is configured.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Customer id"
// @Param        body  body      request.SubscriptionRequest  true  "Kind"
// @Success      200   {object}  response.CustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      402   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /customers/{id}/subscription [post]
func (h *CustomerHandler) RenewSubscription(c *gin.Context) {
	var payload request.SubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	customer, err := h.usecase.RenewSubscription(c.Request.Context(), c.Param("id"), payload.Kind)
	if err != nil {
		respondError(c, "[customer][subscription]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer, h.clock.Now()))
}

// History returns the usage ledger together with sessions still in progress.
func (h *CustomerHandler) History(c *gin.Context) {
	history, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[customer][history]", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerHistory(history, h.clock.Now()))
}
