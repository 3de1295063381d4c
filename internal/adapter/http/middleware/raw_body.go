package middleware

import (
	"bytes"
	"cleanlyquote/pkg"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeyRawBody = "raw_body"
	// DefaultRawBodyLimit matches the largest webhook payload Stripe sends.
	DefaultRawBodyLimit = 512 << 10
)

var errBodyTooLarge = pkg.NewDomainErrorSimple(pkg.KindInvalidInput, "Request body too large", http.StatusRequestEntityTooLarge)

// CaptureRawBody reads the unparsed request body before any binding happens
// and keeps it in the context. Webhook signatures are computed over these
// exact bytes, so this must be the first stage on the webhook route.
func CaptureRawBody(limit int64) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultRawBodyLimit
	}
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(errBodyTooLarge.HTTPStatus, errBodyTooLarge.ToHTTPError())
				return
			}
			appErr := pkg.NewDomainErrorSimple(pkg.KindInvalidInput, "Unreadable request body", http.StatusBadRequest)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(ctxKeyRawBody, body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}

// RawBody returns the bytes captured by CaptureRawBody.
func RawBody(c *gin.Context) ([]byte, bool) {
	v, ok := c.Get(ctxKeyRawBody)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}
