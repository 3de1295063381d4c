package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves the owner side of quotes: CRUD and send-to-client.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *zap.SugaredLogger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, log *zap.SugaredLogger) *QuoteHandler {
	request.RegisterValidators()
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &QuoteHandler{usecase: uc, log: log}
}

// ListQuotes godoc
// @Summary  List the tenant's quotes
// @Tags     quotes
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.QuoteListResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	quotes, err := h.usecase.List(c.Request.Context(), tenant.ID)
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteListResponse{Quotes: response.FromQuotes(quotes)})
}

// GetQuote godoc
// @Summary  Get a quote
// @Tags     quotes
// @Security Bearer
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	q, err := h.usecase.Get(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteEnvelope{Quote: response.FromQuote(q)})
}

// CreateQuote godoc
// @Summary  Create a quote (free tier is limited to 3 quotes)
// @Tags     quotes
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    payload body request.QuoteRequest true "Quote"
// @Success  201 {object} response.QuoteCreatedResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError "UPGRADE_REQUIRED"
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), tenant, payload.ToQuote())
	if err != nil {
		h.log.Infow("[quote][handler] create failed", "tenant_id", tenant.ID, "error", err)
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteCreated(created))
}

// UpdateQuote godoc
// @Summary  Update a quote; only the fields sent are changed
// @Tags     quotes
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id      path string               true "Quote ID"
// @Param    payload body request.QuoteRequest true "Fields to change"
// @Success  200 {object} response.QuoteEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	q, err := h.usecase.Update(c.Request.Context(), tenant.ID, c.Param("id"), payload.ToPatch())
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteEnvelope{Quote: response.FromQuote(q)})
}

// DeleteQuote godoc
// @Summary  Delete a quote and its checklist
// @Tags     quotes
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.SuccessResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), tenant.ID, c.Param("id")); err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// SendQuote godoc
// @Summary  Email the quote to the client and mark it sent
// @Tags     quotes
// @Security Bearer
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteSentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/send [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	sent, err := h.usecase.Send(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		h.log.Warnw("[quote][handler] send failed", "tenant_id", tenant.ID, "quote_id", c.Param("id"), "error", err)
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteSent(sent))
}
