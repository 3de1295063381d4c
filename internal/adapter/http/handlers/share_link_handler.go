package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"context"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShareLinkHandler serves the owner link endpoints and the unauthenticated
// client endpoints reached through a share token.
type ShareLinkHandler struct {
	usecase usecase.IShareLinkUseCase
	log     *zap.SugaredLogger
}

func NewShareLinkHandler(uc usecase.IShareLinkUseCase, log *zap.SugaredLogger) *ShareLinkHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ShareLinkHandler{usecase: uc, log: log}
}

// GetShareLink godoc
// @Summary  Current public link of a quote
// @Tags     share
// @Security Bearer
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.ShareLinkResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/share [get]
func (h *ShareLinkHandler) GetShareLink(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	link, err := h.usecase.GetLink(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShareLink(link))
}

// RegenerateShareLink godoc
// @Summary  Rotate the public link; the previous link stops working
// @Tags     share
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id      path string                         true  "Quote ID"
// @Param    payload body request.RegenerateShareRequest false "Expiry"
// @Success  200 {object} response.ShareLinkResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/share/regenerate [post]
func (h *ShareLinkHandler) RegenerateShareLink(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.RegenerateShareRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	link, err := h.usecase.RegenerateLink(context.WithoutCancel(c.Request.Context()), tenant.ID, c.Param("id"), payload.Days())
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShareLink(link))
}

// ViewPublicQuote godoc
// @Summary  Client view of a quote by share token (no auth)
// @Tags     public
// @Produce  json
// @Param    token path string true "Share token"
// @Success  200 {object} response.PublicQuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  410 {object} pkg.HTTPError
// @Router   /public/quotes/{token} [get]
func (h *ShareLinkHandler) ViewPublicQuote(c *gin.Context) {
	view, err := h.usecase.ResolvePublic(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.logPublicFailure("view", err)
		abortWithError(c, mapPublicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicQuote(view))
}

// ApproveQuote godoc
// @Summary  Client approves a quote (no auth)
// @Tags     public
// @Produce  json
// @Param    token path string true "Share token"
// @Success  200 {object} response.ApprovalResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  410 {object} pkg.HTTPError
// @Router   /public/quotes/{token}/approve [post]
func (h *ShareLinkHandler) ApproveQuote(c *gin.Context) {
	q, err := h.usecase.Approve(context.WithoutCancel(c.Request.Context()), c.Param("token"))
	if err != nil {
		h.logPublicFailure("approve", err)
		abortWithError(c, mapPublicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(q))
}

// RequestChanges godoc
// @Summary  Client asks for changes to a quote (no auth)
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    token   path string                       true "Share token"
// @Param    payload body request.ChangeRequestRequest true "Message"
// @Success  200 {object} response.ChangeRequestResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  410 {object} pkg.HTTPError
// @Router   /public/quotes/{token}/request-changes [post]
func (h *ShareLinkHandler) RequestChanges(c *gin.Context) {
	var payload request.ChangeRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, mapPublicError(usecase.ErrChangeMessageRequired))
		return
	}
	if _, err := h.usecase.RequestChanges(context.WithoutCancel(c.Request.Context()), c.Param("token"), payload.Message); err != nil {
		h.logPublicFailure("request-changes", err)
		abortWithError(c, mapPublicError(err))
		return
	}
	c.JSON(http.StatusOK, response.ChangeRequestAccepted())
}

func (h *ShareLinkHandler) logPublicFailure(action string, err error) {
	switch {
	case errors.Is(err, usecase.ErrShareLinkNotFound), errors.Is(err, usecase.ErrShareLinkExpired),
		errors.Is(err, usecase.ErrQuoteAlreadyApproved), errors.Is(err, usecase.ErrChangeMessageRequired):
		h.log.Infow("[share][handler] public request rejected", "action", action, "reason", err.Error())
	default:
		h.log.Errorw("[share][handler] public request failed", "action", action, "error", err)
	}
}

// bindOptionalJSON accepts an empty body as the zero payload.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
