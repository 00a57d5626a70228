package public

import (
	"errors"

	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/i18n"
	"github.com/scentlab/scentlab/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service sentinel to a business code and message key.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

// respondWeakPasswordError renders the concrete policy violation when the
// error carries one, otherwise the generic weak-password message.
func respondWeakPasswordError(c *gin.Context, err error) {
	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if errors.As(err, &policyErr) {
		locale := i18n.ResolveLocale(c)
		respondErrorWithMsg(c, response.CodeBadRequest, i18n.Sprintf(locale, policyErr.Key(), policyErr.Args()...), nil)
		return
	}
	respondError(c, response.CodeBadRequest, "error.password_weak", nil)
}

var cartErrorRules = []mappedHandlerError{
	{service.ErrProductNotFound, response.CodeNotFound, "error.product_not_found"},
	{service.ErrProductNotAvailable, response.CodeBadRequest, "error.product_unavailable"},
	{service.ErrInvalidQuantity, response.CodeBadRequest, "error.invalid_quantity"},
	{service.ErrCartItemNotFound, response.CodeNotFound, "error.cart_item_not_found"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}

var designErrorRules = []mappedHandlerError{
	{service.ErrProductNotFound, response.CodeNotFound, "error.product_not_found"},
	{service.ErrProductNotAvailable, response.CodeBadRequest, "error.product_unavailable"},
	{service.ErrColorNotFound, response.CodeBadRequest, "error.color_not_found"},
	{service.ErrScentNotFound, response.CodeBadRequest, "error.scent_not_found"},
	{service.ErrInvalidScentCount, response.CodeBadRequest, "error.invalid_scent_count"},
	{service.ErrInvalidLogoSize, response.CodeBadRequest, "error.invalid_logo_size"},
	{service.ErrDesignIncomplete, response.CodeBadRequest, "error.design_incomplete"},
	{service.ErrInvalidQuantity, response.CodeBadRequest, "error.invalid_quantity"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}

var checkoutErrorRules = []mappedHandlerError{
	{service.ErrCartEmpty, response.CodeBadRequest, "error.cart_empty"},
	{service.ErrAddressNotFound, response.CodeNotFound, "error.address_not_found"},
	{service.ErrAddressInvalid, response.CodeBadRequest, "error.address_invalid"},
	{service.ErrProductNotAvailable, response.CodeBadRequest, "error.product_unavailable"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}

var orderErrorRules = []mappedHandlerError{
	{service.ErrOrderNotFound, response.CodeNotFound, "error.order_not_found"},
	{service.ErrOrderNotCancelable, response.CodeBadRequest, "error.order_not_cancelable"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}

var addressErrorRules = []mappedHandlerError{
	{service.ErrAddressNotFound, response.CodeNotFound, "error.address_not_found"},
	{service.ErrInvalidInput, response.CodeBadRequest, "error.invalid_request"},
}
