package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler is mounted behind RequireRole(admin).
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// SetSubscriptionStatus godoc
// @Summary  Override a tenant's subscription status
// @Tags     admin
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id      path string                           true "Tenant ID"
// @Param    payload body request.AdminSubscriptionRequest true "Status"
// @Success  200 {object} response.TenantResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /admin/tenants/{id}/subscription [patch]
func (h *AdminHandler) SetSubscriptionStatus(c *gin.Context) {
	actor, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.AdminSubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, mapAdminError(usecase.ErrInvalidSubscriptionStatus))
		return
	}
	t, err := h.usecase.SetSubscriptionStatus(c.Request.Context(), actor, c.Param("id"), payload.Status)
	if err != nil {
		abortWithError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTenant(t))
}
