package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// GetStatus godoc
// @Summary  Entitlement snapshot of the tenant
// @Tags     subscription
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.SubscriptionStatusResponse
// @Router   /subscription/status [get]
func (h *SubscriptionHandler) GetStatus(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	status, err := h.usecase.Status(c.Request.Context(), tenant)
	if err != nil {
		abortWithError(c, mapSubscriptionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotaStatus(status))
}

// CreateCheckout godoc
// @Summary  Start a subscription checkout
// @Tags     subscription
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    payload body request.CheckoutRequest false "Billing interval"
// @Success  200 {object} response.CheckoutResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /subscription/create-checkout [post]
func (h *SubscriptionHandler) CreateCheckout(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.CheckoutRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		abortWithError(c, mapSubscriptionError(usecase.ErrInvalidBillingInterval))
		return
	}
	session, err := h.usecase.CreateCheckout(c.Request.Context(), tenant, payload.Interval)
	if err != nil {
		abortWithError(c, mapSubscriptionError(err))
		return
	}
	c.JSON(http.StatusOK, response.CheckoutResponse{URL: session.URL, SessionID: session.ID})
}

// BillingPortal godoc
// @Summary  Open the billing self-service portal
// @Tags     subscription
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.PortalResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /subscription/billing-portal [post]
func (h *SubscriptionHandler) BillingPortal(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	url, err := h.usecase.BillingPortal(c.Request.Context(), tenant)
	if err != nil {
		abortWithError(c, mapSubscriptionError(err))
		return
	}
	c.JSON(http.StatusOK, response.PortalResponse{URL: url})
}
