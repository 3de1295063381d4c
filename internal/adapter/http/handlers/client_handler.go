package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// ListClients godoc
// @Summary  List the tenant's clients
// @Tags     clients
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.ClientListResponse
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	clients, err := h.usecase.List(c.Request.Context(), tenant.ID)
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient godoc
// @Summary  Get a client
// @Tags     clients
// @Security Bearer
// @Produce  json
// @Param    id path string true "Client ID"
// @Success  200 {object} response.ClientEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	client, err := h.usecase.Get(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// CreateClient godoc
// @Summary  Add a client
// @Tags     clients
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    payload body request.ClientRequest true "Client"
// @Success  201 {object} response.ClientEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	client, err := h.usecase.Create(c.Request.Context(), tenant.ID, payload.ToClient())
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// UpdateClient godoc
// @Summary  Edit a client
// @Tags     clients
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id      path string                true "Client ID"
// @Param    payload body request.ClientRequest true "Fields to change"
// @Success  200 {object} response.ClientEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	client, err := h.usecase.Update(c.Request.Context(), tenant.ID, c.Param("id"), payload.ToPatch())
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// DeleteClient godoc
// @Summary  Delete a client; its quotes are kept and unlinked
// @Tags     clients
// @Security Bearer
// @Param    id path string true "Client ID"
// @Success  200 {object} response.SuccessResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), tenant.ID, c.Param("id")); err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// ListClientQuotes godoc
// @Summary  Quotes linked to a client, newest first
// @Tags     clients
// @Security Bearer
// @Produce  json
// @Param    id path string true "Client ID"
// @Success  200 {object} response.QuoteListResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id}/quotes [get]
func (h *ClientHandler) ListClientQuotes(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteListResponse{Quotes: response.FromQuotes(quotes)})
}
