package handlers

import (
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/adapter/http/middleware"
	"cleanlyquote/internal/usecase"
	"cleanlyquote/internal/usecase/interfaces"
	"cleanlyquote/pkg"
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const headerStripeSignature = "Stripe-Signature"

// WebhookHandler receives billing provider events. It must be mounted behind
// middleware.CaptureRawBody: the signature covers the unparsed bytes.
type WebhookHandler struct {
	verifier interfaces.IBillingEventVerifier
	sync     usecase.ISubscriptionSyncUseCase
	log      *zap.SugaredLogger
}

func NewWebhookHandler(verifier interfaces.IBillingEventVerifier, sync usecase.ISubscriptionSyncUseCase, log *zap.SugaredLogger) *WebhookHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &WebhookHandler{verifier: verifier, sync: sync, log: log}
}

// HandleBillingEvent godoc
// @Summary  Billing provider webhook
// @Tags     webhook
// @Accept   json
// @Produce  json
// @Param    Stripe-Signature header string true "Provider signature"
// @Success  200 {object} response.WebhookAck
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /webhook [post]
func (h *WebhookHandler) HandleBillingEvent(c *gin.Context) {
	payload, ok := middleware.RawBody(c)
	if !ok {
		h.log.Errorw("[billing][webhook] raw body not captured, route misconfigured")
		abortWithError(c, errInternal)
		return
	}

	event, err := h.verifier.ParseEvent(payload, c.GetHeader(headerStripeSignature))
	if err != nil {
		h.log.Warnw("[billing][webhook] rejected payload", "error", err)
		msg := "Webhook payload could not be parsed"
		if errors.Is(err, interfaces.ErrInvalidWebhookSignature) {
			msg = "Webhook signature verification failed"
		}
		abortWithError(c, pkg.NewDomainErrorSimple(pkg.KindInvalidInput, msg, http.StatusBadRequest))
		return
	}

	if err := h.sync.Apply(context.WithoutCancel(c.Request.Context()), event); err != nil {
		h.log.Errorw("[billing][webhook] processing failed", "event_id", event.ID, "event_type", event.ProviderType, "error", err)
		abortWithError(c, pkg.NewDomainError(pkg.KindInternal, "Webhook processing failed", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.WebhookAck{Received: true})
}
