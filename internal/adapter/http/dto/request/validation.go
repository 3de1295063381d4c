package request

import (
	"cleanlyquote/internal/domain/entities"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules used by the request DTOs
// to gin's validator. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("quote_status", validQuoteStatus)
	})
}

func validQuoteStatus(fl validator.FieldLevel) bool {
	return entities.QuoteStatus(fl.Field().String()).Valid()
}
